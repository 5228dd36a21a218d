package scheduler

import (
	"fmt"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal"
	"office_attendance_bot/internal/mute"
	"office_attendance_bot/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const cleanupCron = "0 0 * * *"

// Scheduler fires the daily poll dispatch and the midnight mute cleanup in the
// configured timezone. Fires missed while the process is down are skipped.
type Scheduler struct {
	cron        *gocron.Scheduler
	config      *configs.PollConfig
	pollService services.PollService
	mutes       *mute.Registry
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewScheduler(
	config *configs.PollConfig,
	pollService services.PollService,
	mutes *mute.Registry,
	logger *zap.SugaredLogger,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:        gocron.NewScheduler(config.Location()),
		config:      config,
		pollService: pollService,
		mutes:       mutes,
		logger:      logger,
		now:         time.Now,
	}
	s.cron.SingletonModeAll()

	dispatchCron := fmt.Sprintf("%d %d * * *", config.Schedule.Minute, config.Schedule.Hour)
	if _, err := s.cron.Cron(dispatchCron).Tag("dispatch").Do(s.dispatch); err != nil {
		return nil, fmt.Errorf("failed to schedule poll dispatch: %w", err)
	}

	if _, err := s.cron.Cron(cleanupCron).Tag("cleanup").Do(s.cleanup); err != nil {
		return nil, fmt.Errorf("failed to schedule mute cleanup: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
	s.logger.Infow("scheduler started",
		"hour", s.config.Schedule.Hour,
		"minute", s.config.Schedule.Minute,
		"timezone", s.config.Location().String(),
	)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

// ShouldDispatchTomorrow reports whether the day after now, in the configured
// timezone, is a workday.
func ShouldDispatchTomorrow(config *configs.PollConfig, now time.Time) bool {
	return config.IsWorkday(internal.Tomorrow(now, config.Location()))
}

func (s *Scheduler) dispatch() {
	if !ShouldDispatchTomorrow(s.config, s.now()) {
		return
	}

	if _, err := s.pollService.SendPoll(); err != nil {
		s.logger.Errorw("scheduled poll failed", "error", err)
	}
}

func (s *Scheduler) cleanup() {
	today := internal.Today(s.now(), s.config.Location())

	removed := s.mutes.CleanupExpired(today)
	s.logger.Infow("expired mutes removed", "count", removed, "date", internal.Format(today))
}
