package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal/db"
	"office_attendance_bot/internal/db/repositories"
	"office_attendance_bot/internal/di"
	"office_attendance_bot/internal/messenger"
	"office_attendance_bot/internal/mute"
	"office_attendance_bot/internal/poll"
	"office_attendance_bot/internal/scheduler"
	"office_attendance_bot/internal/services"
	tgbot "office_attendance_bot/internal/tg_bot"
	"office_attendance_bot/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	config, err := configs.LoadAttendanceBotConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	pollConfig, err := di.LoadPollConfig(config.Poll)
	if err != nil {
		logger.Fatalw("invalid poll configuration", "error", err)
	}
	logger.Info("poll configuration loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go di.StartHealthCheckServer(ctx, config.App.HealthCheckAddr, "/attendance-bot/healthcheck", logger)

	logger.Info("creating bot")
	pollingAPI, err := tgbotapi.NewBotAPIWithClient(
		config.Bot.Token,
		tgbotapi.APIEndpoint,
		&http.Client{Timeout: time.Duration(config.Bot.UpdateTimeout)*time.Second + config.App.RequestTimeout},
	)
	if err != nil {
		logger.Fatalw("failed to create bot", "error", err)
	}

	sendingAPI, err := tgbotapi.NewBotAPIWithClient(
		config.Bot.Token,
		tgbotapi.APIEndpoint,
		&http.Client{Timeout: config.App.RequestTimeout},
	)
	if err != nil {
		logger.Fatalw("failed to create bot", "error", err)
	}
	pollingAPI.Debug = config.App.IsDevEnvironment()
	logger.Info("bot created")

	memberRepository := repositories.NewMemberRepository(database)
	mutes := mute.NewRegistry(pollConfig.Location())
	pollService := services.NewPollService(
		pollConfig,
		poll.NewState(),
		mutes,
		messenger.NewTelegramMessenger(sendingAPI, memberRepository),
		config.App.RequestTimeout,
		logger,
	)

	s, err := scheduler.NewScheduler(pollConfig, pollService, mutes, logger)
	if err != nil {
		logger.Fatalw("failed to create scheduler", "error", err)
	}
	s.Start()
	defer s.Stop()

	logger.Info("starting bot")
	tgbot.NewBot(
		handlers.NewAttendanceBotCommandHandler(
			memberRepository,
			pollService,
			logger,
			di.NewCommands(pollConfig, pollService, mutes, "/", logger),
		),
	).Start(ctx, pollingAPI, config.Bot.UpdateTimeout, logger)

	logger.Info("shutting down")
}
