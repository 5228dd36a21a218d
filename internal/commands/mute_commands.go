package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"office_attendance_bot/internal"
	"office_attendance_bot/internal/mute"

	"go.uber.org/zap"
)

const (
	muteCommandName       = "mute"
	unmuteCommandName     = "unmute"
	muteStatusCommandName = "mute_status"

	invalidDurationReply = "Please give the number of days as a positive whole number, for example: mute 3"
)

type muteCommand struct {
	mutes  *mute.Registry
	logger *zap.SugaredLogger
}

func NewMuteCommand(mutes *mute.Registry, logger *zap.SugaredLogger) Command {
	return &muteCommand{
		mutes:  mutes,
		logger: logger,
	}
}

func (c *muteCommand) CanHandle(command string) bool {
	return command == muteCommandName
}

func (c *muteCommand) Handle(arguments, userID string) string {
	days, err := strconv.Atoi(strings.TrimSpace(arguments))
	if err != nil {
		return invalidDurationReply
	}

	expiresOn, err := c.mutes.Mute(userID, days)
	if errors.Is(err, mute.ErrInvalidDuration) {
		return invalidDurationReply
	}

	c.logger.Infow("user muted", "user_id", userID, "expires_on", internal.Format(expiresOn))
	return fmt.Sprintf("You won't receive attendance polls through %s.", internal.Format(expiresOn))
}

type unmuteCommand struct {
	mutes  *mute.Registry
	logger *zap.SugaredLogger
}

func NewUnmuteCommand(mutes *mute.Registry, logger *zap.SugaredLogger) Command {
	return &unmuteCommand{
		mutes:  mutes,
		logger: logger,
	}
}

func (c *unmuteCommand) CanHandle(command string) bool {
	return command == unmuteCommandName
}

func (c *unmuteCommand) Handle(arguments, userID string) string {
	if !c.mutes.Unmute(userID) {
		return "You are not muted."
	}

	c.logger.Infow("user unmuted", "user_id", userID)
	return "You will receive attendance polls again."
}

type muteStatusCommand struct {
	mutes *mute.Registry
}

func NewMuteStatusCommand(mutes *mute.Registry) Command {
	return &muteStatusCommand{mutes: mutes}
}

func (c *muteStatusCommand) CanHandle(command string) bool {
	return command == muteStatusCommandName
}

func (c *muteStatusCommand) Handle(arguments, userID string) string {
	status := c.mutes.Status(userID, c.mutes.Today())
	if !status.Muted {
		return "You are not muted."
	}

	return fmt.Sprintf("You are muted through %s (%d days left).", internal.Format(status.ExpiresOn), status.DaysLeft)
}
