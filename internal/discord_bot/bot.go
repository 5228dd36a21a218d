package discordbot

import (
	"errors"
	"strings"

	"office_attendance_bot/internal/commands"
	"office_attendance_bot/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const CommandPrefix = "!"

type Bot struct {
	pollService services.PollService
	commands    []commands.Command
	logger      *zap.SugaredLogger

	async func(func())
}

func NewBot(pollService services.PollService, commands []commands.Command, logger *zap.SugaredLogger) *Bot {
	return &Bot{
		pollService: pollService,
		commands:    commands,
		logger:      logger,
		async:       func(f func()) { go f() },
	}
}

// Register attaches the message and interaction handlers to session.
func (b *Bot) Register(session *discordgo.Session) {
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State != nil && s.State.User != nil && m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}

	reply, ok := b.HandleMessage(m)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		b.logger.Errorw("failed to send reply", "channel_id", m.ChannelID, "error", err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	response, ok := b.HandleInteraction(i)
	if !ok {
		return
	}

	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		b.logger.Errorw("failed to acknowledge interaction", "interaction_id", i.ID, "error", err)
	}
}

// HandleMessage runs a prefixed text command and returns its reply.
func (b *Bot) HandleMessage(m *discordgo.MessageCreate) (string, bool) {
	if m.Author == nil || m.Author.Bot || !strings.HasPrefix(m.Content, CommandPrefix) {
		return "", false
	}

	name, arguments, _ := strings.Cut(strings.TrimPrefix(m.Content, CommandPrefix), " ")
	b.logger.Infow("received command", "command", name, "user_id", m.Author.ID)

	command, ok := commands.Find(b.commands, name)
	if !ok {
		b.logger.Warnw("received unknown command", "command", name)
		return "Unknown command. Send " + CommandPrefix + "help to see what I can do.", true
	}

	return command.Handle(arguments, m.Author.ID), true
}

// HandleInteraction acknowledges a poll button press and records the response
// in the background.
func (b *Bot) HandleInteraction(i *discordgo.InteractionCreate) (*discordgo.InteractionResponse, bool) {
	if i.Type != discordgo.InteractionMessageComponent {
		return nil, false
	}

	user := interactionUser(i)
	if user == nil {
		b.logger.Warnw("received interaction without user", "interaction_id", i.ID)
		return nil, false
	}

	userID := user.ID
	actionID := i.MessageComponentData().CustomID

	b.async(func() {
		if err := b.pollService.OnResponse(userID, actionID); err != nil && !errors.Is(err, services.ErrUnknownAction) {
			b.logger.Errorw("failed to handle response", "user_id", userID, "action_id", actionID, "error", err)
		}
	})

	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}, true
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
