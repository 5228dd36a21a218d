package tgbot

import (
	"context"

	"office_attendance_bot/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(ctx context.Context, api *tgbotapi.BotAPI, updateTimeout int, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

// Start consumes long-polled updates until ctx is cancelled.
func (b *bot) Start(ctx context.Context, api *tgbotapi.BotAPI, updateTimeout int, logger *zap.SugaredLogger) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout

	updates := api.GetUpdatesChan(u)
	logger.Infow("bot started", "username", api.Self.UserName)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	for update := range updates {
		for _, message := range b.handler.Handle(update) {
			// Request instead of Send: callback answers return a bool result.
			if _, err := api.Request(message); err != nil {
				logger.Errorw("failed to send message", "update_id", update.UpdateID, "error", err)
			}
		}
	}

	logger.Info("bot stopped")
}
