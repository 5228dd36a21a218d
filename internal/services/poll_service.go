package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal"
	"office_attendance_bot/internal/messenger"
	"office_attendance_bot/internal/mute"
	"office_attendance_bot/internal/poll"
	"office_attendance_bot/internal/render"

	"go.uber.org/zap"
)

var ErrUnknownAction = errors.New("unknown action")

//go:generate mockgen -source=poll_service.go -destination=mocks/mock_poll_service.go -package=mock_services
type PollService interface {
	SendPoll() (int, error)
	OnResponse(userID, actionID string) error
	RefreshAll()
	DeletePoll() bool
	ForceNewPoll() (int, error)
	Summary() (string, bool)
}

// pollService owns every change to the poll state. Each operation holds mu
// for its whole run so a response cannot land between an update and the
// re-render that follows it.
type pollService struct {
	mu sync.Mutex

	config    *configs.PollConfig
	state     *poll.State
	mutes     *mute.Registry
	messenger messenger.Messenger
	timeout   time.Duration
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewPollService(
	config *configs.PollConfig,
	state *poll.State,
	mutes *mute.Registry,
	messenger messenger.Messenger,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) PollService {
	return &pollService{
		config:    config,
		state:     state,
		mutes:     mutes,
		messenger: messenger,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// SendPoll starts tomorrow's poll and messages every eligible user. Failed
// recipients are logged and skipped; the count of delivered messages is
// returned.
func (s *pollService) SendPoll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sendPoll()
}

func (s *pollService) sendPoll() (int, error) {
	location := s.config.Location()
	today := internal.Today(s.now(), location)
	tomorrow := today.AddDate(0, 0, 1)

	s.state.StartNewPoll(tomorrow)
	s.logger.Infow("starting poll", "date", internal.Format(tomorrow))

	ctx, cancel := s.context()
	users, err := s.messenger.ListUsers(ctx)
	cancel()
	if err != nil {
		s.logger.Errorw("failed to list users", "operation", "send_poll", "error", err)
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	content := render.Render(s.config, s.state.Snapshot(), tomorrow, s.messenger.Mention)

	sent := 0
	for _, user := range users {
		if !s.isEligible(user, today) {
			continue
		}

		handle, err := s.deliver(user.ID, content)
		if err != nil {
			s.logger.Errorw("failed to send poll", "user_id", user.ID, "operation", "send_poll", "error", err)
			continue
		}

		s.state.RecordHandle(user.ID, handle)
		sent++
	}

	s.logger.Infow("poll sent", "date", internal.Format(tomorrow), "recipients", sent)
	return sent, nil
}

func (s *pollService) isEligible(user messenger.User, today time.Time) bool {
	if user.IsBot || user.Deleted || user.IsSystem {
		return false
	}
	return !s.mutes.IsMuted(user.ID, today)
}

func (s *pollService) deliver(userID string, content messenger.Content) (messenger.Handle, error) {
	ctx, cancel := s.context()
	defer cancel()

	channelID, err := s.messenger.OpenDirectChannel(ctx, userID)
	if err != nil {
		return messenger.Handle{}, fmt.Errorf("failed to open direct channel: %w", err)
	}

	return s.messenger.PostMessage(ctx, channelID, content)
}

// OnResponse records the choice behind actionID and re-renders every tracked
// message.
func (s *pollService) OnResponse(userID, actionID string) error {
	option, ok := s.config.OptionByActionID(actionID)
	if !ok {
		s.logger.Warnw("received unknown action", "user_id", userID, "action_id", actionID)
		return ErrUnknownAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.RecordResponse(userID, option.Value)
	s.logger.Infow("response recorded", "user_id", userID, "choice", option.Value)

	s.refreshAll()
	return nil
}

func (s *pollService) RefreshAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshAll()
}

func (s *pollService) refreshAll() {
	date, ok := s.state.ActiveDate()
	if !ok {
		return
	}

	content := render.Render(s.config, s.state.Snapshot(), date, s.messenger.Mention)

	for _, handle := range s.state.Handles() {
		ctx, cancel := s.context()
		err := s.messenger.UpdateMessage(ctx, handle, content)
		cancel()

		if err != nil {
			s.logger.Errorw("failed to update poll message", "channel_id", handle.ChannelID, "message_id", handle.MessageID, "operation", "refresh", "error", err)
		}
	}
}

// DeletePoll removes every tracked message and forgets the poll. It reports
// false when no poll was active.
func (s *pollService) DeletePoll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deletePoll()
}

func (s *pollService) deletePoll() bool {
	if _, ok := s.state.ActiveDate(); !ok {
		return false
	}

	for _, handle := range s.state.Handles() {
		ctx, cancel := s.context()
		err := s.messenger.DeleteMessage(ctx, handle)
		cancel()

		if err != nil {
			s.logger.Errorw("failed to delete poll message", "channel_id", handle.ChannelID, "message_id", handle.MessageID, "operation", "delete_poll", "error", err)
		}
	}

	s.state.Clear()
	s.logger.Info("poll deleted")
	return true
}

func (s *pollService) ForceNewPoll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletePoll()
	return s.sendPoll()
}

// Summary renders the live summary, or reports false without an active poll.
func (s *pollService) Summary() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date, ok := s.state.ActiveDate()
	if !ok {
		return "", false
	}

	return render.Render(s.config, s.state.Snapshot(), date, s.messenger.Mention).Summary, true
}

func (s *pollService) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
