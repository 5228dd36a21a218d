package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal/di"
	discordbot "office_attendance_bot/internal/discord_bot"
	"office_attendance_bot/internal/messenger"
	"office_attendance_bot/internal/mute"
	"office_attendance_bot/internal/poll"
	"office_attendance_bot/internal/scheduler"
	"office_attendance_bot/internal/services"

	"github.com/bwmarrin/discordgo"
)

func main() {
	config, err := configs.LoadDiscordAttendanceBotConfig()
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go di.StartHealthCheckServer(ctx, config.App.HealthCheckAddr, "/attendance-bot-discord/healthcheck", logger)

	logger.Info("starting bot")
	discord, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}
	discord.Client = &http.Client{Timeout: config.App.RequestTimeout}
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsGuildMembers | discordgo.IntentsMessageContent

	mutes := mute.NewRegistry(pollConfig.Location())
	pollService := services.NewPollService(
		pollConfig,
		poll.NewState(),
		mutes,
		messenger.NewDiscordMessenger(discord, config.Discord.GuildID),
		config.App.RequestTimeout,
		logger,
	)

	discordbot.NewBot(
		pollService,
		di.NewCommands(pollConfig, pollService, mutes, discordbot.CommandPrefix, logger),
		logger,
	).Register(discord)

	if err := discord.Open(); err != nil {
		logger.Fatalw("error opening connection", "error", err)
	}
	defer discord.Close()

	s, err := scheduler.NewScheduler(pollConfig, pollService, mutes, logger)
	if err != nil {
		logger.Fatalw("failed to create scheduler", "error", err)
	}
	s.Start()
	defer s.Stop()

	logger.Info("bot started")
	<-ctx.Done()

	logger.Info("shutting down")
}
