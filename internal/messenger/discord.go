package messenger

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	guildMembersPageSize = 1000
	buttonsPerRow        = 5
)

type DiscordAPI interface {
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

type discordMessenger struct {
	api     DiscordAPI
	guildID string
}

func NewDiscordMessenger(api DiscordAPI, guildID string) Messenger {
	return &discordMessenger{
		api:     api,
		guildID: guildID,
	}
}

// ListUsers pages through every member of the guild. Deleted accounts are
// removed from guilds by Discord, so Deleted is never set here.
func (m *discordMessenger) ListUsers(ctx context.Context) ([]User, error) {
	var (
		users []User
		after string
	)

	for {
		members, err := m.api.GuildMembers(m.guildID, after, guildMembersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to get guild members: %w", err)
		}

		for _, member := range members {
			if member.User == nil {
				continue
			}

			users = append(users, User{
				ID:       member.User.ID,
				Name:     memberName(member),
				IsBot:    member.User.Bot,
				IsSystem: member.User.System,
			})
			after = member.User.ID
		}

		if len(members) < guildMembersPageSize {
			return users, nil
		}
	}
}

func (m *discordMessenger) OpenDirectChannel(ctx context.Context, userID string) (string, error) {
	channel, err := m.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (m *discordMessenger) PostMessage(ctx context.Context, channelID string, content Content) (Handle, error) {
	message, err := m.api.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content.Question,
		Embeds:     summaryEmbeds(content),
		Components: actionRows(content.Buttons),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return Handle{}, err
	}

	return Handle{ChannelID: channelID, MessageID: message.ID}, nil
}

func (m *discordMessenger) UpdateMessage(ctx context.Context, handle Handle, content Content) error {
	components := actionRows(content.Buttons)

	edit := discordgo.NewMessageEdit(handle.ChannelID, handle.MessageID).
		SetContent(content.Question).
		SetEmbeds(summaryEmbeds(content))
	edit.Components = &components

	_, err := m.api.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	return err
}

func (m *discordMessenger) DeleteMessage(ctx context.Context, handle Handle) error {
	return m.api.ChannelMessageDelete(handle.ChannelID, handle.MessageID, discordgo.WithContext(ctx))
}

func (m *discordMessenger) Mention(userID string) string {
	return "<@" + userID + ">"
}

func memberName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

func summaryEmbeds(content Content) []*discordgo.MessageEmbed {
	if content.Summary == "" {
		return []*discordgo.MessageEmbed{}
	}
	return []*discordgo.MessageEmbed{{Description: content.Summary}}
}

func actionRows(buttons []Button) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, (len(buttons)+buttonsPerRow-1)/buttonsPerRow)

	for start := 0; start < len(buttons); start += buttonsPerRow {
		end := start + buttonsPerRow
		if end > len(buttons) {
			end = len(buttons)
		}

		row := discordgo.ActionsRow{}
		for _, button := range buttons[start:end] {
			row.Components = append(row.Components, discordgo.Button{
				Label:    button.Text,
				Style:    discordgo.PrimaryButton,
				CustomID: button.ActionID,
			})
		}
		rows = append(rows, row)
	}

	return rows
}
