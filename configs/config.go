package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type AttendanceBotConfig struct {
	App    App
	Logger Logger
	Bot    Bot
	DB     DB
	Poll   PollPaths
}

type DiscordAttendanceBotConfig struct {
	App     App
	Logger  Logger
	Discord Discord
	Poll    PollPaths
}

func LoadAttendanceBotConfig() (AttendanceBotConfig, error) {
	var config AttendanceBotConfig

	if err := env.Parse(&config); err != nil {
		return AttendanceBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadDiscordAttendanceBotConfig() (DiscordAttendanceBotConfig, error) {
	var config DiscordAttendanceBotConfig

	if err := env.Parse(&config); err != nil {
		return DiscordAttendanceBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
