package di

import (
	"context"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal/commands"
	"office_attendance_bot/internal/mute"
	"office_attendance_bot/internal/services"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}

// LoadPollConfig loads and validates the poll settings. Any error is a
// *configs.ConfigurationError and must stop the process.
func LoadPollConfig(paths configs.PollPaths) (*configs.PollConfig, error) {
	config, err := configs.LoadPollConfig(paths.DefaultsPath, paths.OverridePath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// NewCommands builds the command set shared by every platform.
func NewCommands(
	pollConfig *configs.PollConfig,
	pollService services.PollService,
	mutes *mute.Registry,
	prefix string,
	logger *zap.SugaredLogger,
) []commands.Command {
	return []commands.Command{
		commands.NewAttendancePollCommand(pollService, logger),
		commands.NewForceNewPollCommand(pollService, logger),
		commands.NewDeletePollCommand(pollService, logger),
		commands.NewStatsCommand(pollService),
		commands.NewMuteCommand(mutes, logger),
		commands.NewUnmuteCommand(mutes, logger),
		commands.NewMuteStatusCommand(mutes),
		commands.NewHelpCommand(pollConfig, prefix),
	}
}
