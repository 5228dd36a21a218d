package messenger

import (
	"context"
	"strconv"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscordAPI struct {
	members  []*discordgo.Member
	afters   []string
	sent     []*discordgo.MessageSend
	edited   []*discordgo.MessageEdit
	deleted  []string
	channels map[string]string
}

func (f *fakeDiscordAPI) GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	f.afters = append(f.afters, after)

	start := 0
	if after != "" {
		for i, member := range f.members {
			if member.User.ID == after {
				start = i + 1
			}
		}
	}

	end := start + limit
	if end > len(f.members) {
		end = len(f.members)
	}
	return f.members[start:end], nil
}

func (f *fakeDiscordAPI) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: f.channels[recipientID]}, nil
}

func (f *fakeDiscordAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, data)
	return &discordgo.Message{ID: "m" + strconv.Itoa(len(f.sent)), ChannelID: channelID}, nil
}

func (f *fakeDiscordAPI) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edited = append(f.edited, m)
	return &discordgo.Message{ID: m.ID}, nil
}

func (f *fakeDiscordAPI) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, channelID+"/"+messageID)
	return nil
}

func TestDiscordMessenger_ListUsersPagesThroughGuild(t *testing.T) {
	api := &fakeDiscordAPI{}
	for i := 0; i < guildMembersPageSize+2; i++ {
		api.members = append(api.members, &discordgo.Member{User: &discordgo.User{ID: strconv.Itoa(i + 1), Username: "user"}})
	}
	api.members[0].Nick = "Boss"
	api.members[1].User.Bot = true
	api.members[2].User.System = true

	users, err := NewDiscordMessenger(api, "guild").ListUsers(context.Background())
	require.NoError(t, err)

	assert.Len(t, users, guildMembersPageSize+2)
	assert.Equal(t, []string{"", strconv.Itoa(guildMembersPageSize)}, api.afters)
	assert.Equal(t, User{ID: "1", Name: "Boss"}, users[0])
	assert.True(t, users[1].IsBot)
	assert.True(t, users[2].IsSystem)
}

func TestDiscordMessenger_PostUpdateDelete(t *testing.T) {
	api := &fakeDiscordAPI{channels: map[string]string{"u1": "dm1"}}
	m := NewDiscordMessenger(api, "guild")

	content := Content{
		Question: "Office tomorrow?",
		Summary:  "Nobody yet",
		Buttons: []Button{
			{Text: "Yes", Value: "yes", ActionID: "attendance_yes"},
			{Text: "No", Value: "no", ActionID: "attendance_no"},
		},
	}

	channel, err := m.OpenDirectChannel(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "dm1", channel)

	handle, err := m.PostMessage(context.Background(), channel, content)
	require.NoError(t, err)
	assert.Equal(t, Handle{ChannelID: "dm1", MessageID: "m1"}, handle)

	sent := api.sent[0]
	assert.Equal(t, "Office tomorrow?", sent.Content)
	assert.Equal(t, "Nobody yet", sent.Embeds[0].Description)
	require.Len(t, sent.Components, 1)
	row := sent.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
	assert.Equal(t, "attendance_no", row.Components[1].(discordgo.Button).CustomID)

	require.NoError(t, m.UpdateMessage(context.Background(), handle, content))
	assert.Equal(t, "m1", api.edited[0].ID)
	assert.Equal(t, "dm1", api.edited[0].Channel)

	require.NoError(t, m.DeleteMessage(context.Background(), handle))
	assert.Equal(t, []string{"dm1/m1"}, api.deleted)

	assert.Equal(t, "<@u1>", m.Mention("u1"))
}

func TestActionRowsSplitsIntoRowsOfFive(t *testing.T) {
	buttons := make([]Button, 7)
	for i := range buttons {
		buttons[i] = Button{Text: strconv.Itoa(i), ActionID: strconv.Itoa(i)}
	}

	rows := actionRows(buttons)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 2)
}
