package handlers

import (
	"errors"
	"strconv"
	"strings"

	"office_attendance_bot/internal/commands"
	"office_attendance_bot/internal/db/models"
	"office_attendance_bot/internal/db/repositories"
	"office_attendance_bot/internal/services"
	"office_attendance_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	startCommandName = "start"
	leaveCommandName = "leave"
)

type attendanceBotCommandHandler struct {
	memberRepository repositories.MemberRepository
	pollService      services.PollService
	logger           *zap.SugaredLogger
	commands         []commands.Command

	async func(func())
}

func NewAttendanceBotCommandHandler(
	memberRepository repositories.MemberRepository,
	pollService services.PollService,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &attendanceBotCommandHandler{
		memberRepository: memberRepository,
		pollService:      pollService,
		logger:           logger,
		commands:         commands,
		async:            func(f func()) { go f() },
	}
}

func (h *attendanceBotCommandHandler) Handle(update tgbotapi.Update) []tgbotapi.Chattable {
	if update.CallbackQuery != nil {
		return h.handleCallbackQuery(update.CallbackQuery)
	}

	message := update.Message
	if message == nil || message.From == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID

	if !message.Chat.IsPrivate() {
		h.logger.Infow("ignoring message outside private chat", "chat_id", chatID)
		return []tgbotapi.Chattable{}
	}

	if !message.IsCommand() {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Send /help to see what I can do.")}
	}

	command := message.Command()
	h.logger.Infow("received command", "command", command, "user_id", message.From.ID)

	switch command {
	case startCommandName:
		return h.register(message.From, chatID)
	case leaveCommandName:
		return h.leave(message.From, chatID)
	}

	handler, ok := commands.Find(h.commands, command)
	if !ok {
		h.logger.Warnw("received unknown command", "command", command)
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Unknown command. Send /help to see what I can do.")}
	}

	userID := strconv.FormatInt(message.From.ID, 10)
	reply := tgbotapi.NewMessage(chatID, handler.Handle(message.CommandArguments(), userID))
	if command == commands.StatsCommandName {
		reply.ParseMode = tgbotapi.ModeMarkdown
	}

	return []tgbotapi.Chattable{reply}
}

// handleCallbackQuery answers the button press right away and records the
// response in the background.
func (h *attendanceBotCommandHandler) handleCallbackQuery(callbackQuery *tgbotapi.CallbackQuery) []tgbotapi.Chattable {
	ack := tgbotapi.NewCallback(callbackQuery.ID, "")

	if callbackQuery.From == nil {
		h.logger.Warnw("received callback query without sender", "callback_query_id", callbackQuery.ID)
		return []tgbotapi.Chattable{ack}
	}

	userID := strconv.FormatInt(callbackQuery.From.ID, 10)
	actionID := callbackQuery.Data

	h.async(func() {
		if err := h.pollService.OnResponse(userID, actionID); err != nil && !errors.Is(err, services.ErrUnknownAction) {
			h.logger.Errorw("failed to handle response", "user_id", userID, "action_id", actionID, "error", err)
		}
	})

	return []tgbotapi.Chattable{ack}
}

func (h *attendanceBotCommandHandler) register(telegramUser *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	member := &models.Member{
		TelegramID:       telegramUser.ID,
		TelegramNickname: telegramUser.UserName,
		Name:             fullName(telegramUser),
		IsBot:            telegramUser.IsBot,
	}

	if _, err := h.memberRepository.Upsert(member); err != nil {
		h.logger.Errorw("failed to register member", "user_id", telegramUser.ID, "error", err)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	h.logger.Infow("member registered", "user_id", telegramUser.ID)

	text := "You're in! I'll ask you every workday whether you'll be in the office tomorrow. Send /help to see all commands."
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}

func (h *attendanceBotCommandHandler) leave(telegramUser *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	deactivated, err := h.memberRepository.Deactivate(telegramUser.ID)
	if err != nil {
		h.logger.Errorw("failed to deactivate member", "user_id", telegramUser.ID, "error", err)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	if !deactivated {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "You are not registered. Send /start to join.")}
	}

	h.logger.Infow("member deactivated", "user_id", telegramUser.ID)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "You won't receive attendance polls anymore. Send /start to join again.")}
}

func fullName(telegramUser *tgbotapi.User) string {
	var parts []string

	if telegramUser.FirstName != "" {
		parts = append(parts, telegramUser.FirstName)
	}

	if telegramUser.LastName != "" {
		parts = append(parts, telegramUser.LastName)
	}

	return strings.Join(parts, " ")
}
