package commands

import (
	"fmt"

	"office_attendance_bot/internal/services"

	"go.uber.org/zap"
)

// StatsCommandName replies with the rendered summary, which carries the
// summary template's markup.
const StatsCommandName = "stats"

const (
	attendancePollCommandName = "attendance_poll"
	forceNewPollCommandName   = "force_new_poll"
	deletePollCommandName     = "delete_poll"

	defaultErrorReply = "Something went wrong, please try again later."
)

type attendancePollCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewAttendancePollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &attendancePollCommand{
		pollService: pollService,
		logger:      logger,
	}
}

func (c *attendancePollCommand) CanHandle(command string) bool {
	return command == attendancePollCommandName
}

func (c *attendancePollCommand) Handle(arguments, userID string) string {
	c.logger.Infow("poll triggered manually", "user_id", userID)

	sent, err := c.pollService.SendPoll()
	if err != nil {
		c.logger.Errorw("failed to send poll", "user_id", userID, "error", err)
		return defaultErrorReply
	}

	return fmt.Sprintf("Attendance poll sent to %d members.", sent)
}

type forceNewPollCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewForceNewPollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &forceNewPollCommand{
		pollService: pollService,
		logger:      logger,
	}
}

func (c *forceNewPollCommand) CanHandle(command string) bool {
	return command == forceNewPollCommandName
}

func (c *forceNewPollCommand) Handle(arguments, userID string) string {
	c.logger.Infow("new poll forced", "user_id", userID)

	sent, err := c.pollService.ForceNewPoll()
	if err != nil {
		c.logger.Errorw("failed to force new poll", "user_id", userID, "error", err)
		return defaultErrorReply
	}

	return fmt.Sprintf("Previous poll removed, new poll sent to %d members.", sent)
}

type deletePollCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewDeletePollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &deletePollCommand{
		pollService: pollService,
		logger:      logger,
	}
}

func (c *deletePollCommand) CanHandle(command string) bool {
	return command == deletePollCommandName
}

func (c *deletePollCommand) Handle(arguments, userID string) string {
	if !c.pollService.DeletePoll() {
		return "There is no active poll to delete."
	}

	c.logger.Infow("poll deleted manually", "user_id", userID)
	return "The active poll has been deleted."
}

type statsCommand struct {
	pollService services.PollService
}

func NewStatsCommand(pollService services.PollService) Command {
	return &statsCommand{pollService: pollService}
}

func (c *statsCommand) CanHandle(command string) bool {
	return command == StatsCommandName
}

func (c *statsCommand) Handle(arguments, userID string) string {
	summary, ok := c.pollService.Summary()
	if !ok {
		return "There is no active poll."
	}
	return summary
}
