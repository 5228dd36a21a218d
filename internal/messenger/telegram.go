package messenger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"office_attendance_bot/internal/db/models"
	"office_attendance_bot/internal/db/repositories"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const errMessageNotModified = "message is not modified"

type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// telegramMessenger talks to the Bot API. The Bot API cannot list users, so
// the recipients are the members registered in the roster.
type telegramMessenger struct {
	api              TelegramAPI
	memberRepository repositories.MemberRepository

	mu    sync.RWMutex
	names map[string]string
}

func NewTelegramMessenger(api TelegramAPI, memberRepository repositories.MemberRepository) Messenger {
	return &telegramMessenger{
		api:              api,
		memberRepository: memberRepository,
		names:            make(map[string]string),
	}
}

func (m *telegramMessenger) ListUsers(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	members, err := m.memberRepository.GetMany()
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	users := make([]User, 0, len(members))
	names := make(map[string]string, len(members))

	for _, member := range members {
		id := strconv.FormatInt(member.TelegramID, 10)
		user := User{
			ID:       id,
			Name:     member.DisplayName(),
			IsBot:    member.IsBot,
			IsSystem: member.TelegramID == models.TelegramServiceUserID,
			Deleted:  member.Deactivated,
		}
		users = append(users, user)

		if user.Name != "" {
			names[id] = user.Name
		}
	}

	m.mu.Lock()
	m.names = names
	m.mu.Unlock()

	return users, nil
}

// OpenDirectChannel returns the private chat, whose id equals the user id.
func (m *telegramMessenger) OpenDirectChannel(ctx context.Context, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := strconv.ParseInt(userID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid telegram user id %q: %w", userID, err)
	}

	return userID, nil
}

func (m *telegramMessenger) PostMessage(ctx context.Context, channelID string, content Content) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}

	chatID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return Handle{}, fmt.Errorf("invalid telegram chat id %q: %w", channelID, err)
	}

	message := tgbotapi.NewMessage(chatID, content.Text())
	message.ParseMode = tgbotapi.ModeMarkdown
	if len(content.Buttons) > 0 {
		message.ReplyMarkup = inlineKeyboard(content.Buttons)
	}

	sent, err := m.api.Send(message)
	if err != nil {
		return Handle{}, err
	}

	return Handle{ChannelID: channelID, MessageID: strconv.Itoa(sent.MessageID)}, nil
}

func (m *telegramMessenger) UpdateMessage(ctx context.Context, handle Handle, content Content) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID, messageID, err := parseTelegramHandle(handle)
	if err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, content.Text())
	edit.ParseMode = tgbotapi.ModeMarkdown
	if len(content.Buttons) > 0 {
		markup := inlineKeyboard(content.Buttons)
		edit.ReplyMarkup = &markup
	}

	if _, err := m.api.Send(edit); err != nil {
		// Re-rendering an unchanged summary is not a failure.
		if strings.Contains(err.Error(), errMessageNotModified) {
			return nil
		}
		return err
	}

	return nil
}

func (m *telegramMessenger) DeleteMessage(ctx context.Context, handle Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID, messageID, err := parseTelegramHandle(handle)
	if err != nil {
		return err
	}

	_, err = m.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (m *telegramMessenger) Mention(userID string) string {
	m.mu.RLock()
	name, ok := m.names[userID]
	m.mu.RUnlock()

	if !ok {
		return userID
	}
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, name)
}

func inlineKeyboard(buttons []Button) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, button := range buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.ActionID))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func parseTelegramHandle(handle Handle) (int64, int, error) {
	chatID, err := strconv.ParseInt(handle.ChannelID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid telegram chat id %q: %w", handle.ChannelID, err)
	}

	messageID, err := strconv.Atoi(handle.MessageID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid telegram message id %q: %w", handle.MessageID, err)
	}

	return chatID, messageID, nil
}
