package render

import (
	"strconv"
	"strings"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal"
	"office_attendance_bot/internal/messenger"
	"office_attendance_bot/internal/poll"
)

const emptyBucket = "None"

// Render fills the poll templates from snapshot and adds one button per
// response option in configured order. mention turns a user id into display
// text; nil leaves ids as they are.
func Render(config *configs.PollConfig, snapshot poll.Snapshot, date time.Time, mention func(userID string) string) messenger.Content {
	if mention == nil {
		mention = func(userID string) string { return userID }
	}

	replacer := strings.NewReplacer(
		placeholder(configs.PlaceholderDate), internal.Format(date),
		placeholder(configs.PlaceholderComing), names(snapshot.Coming, mention),
		placeholder(configs.PlaceholderComingCount), strconv.Itoa(len(snapshot.Coming)),
		placeholder(configs.PlaceholderNotComing), names(snapshot.NotComing, mention),
		placeholder(configs.PlaceholderNotComingCount), strconv.Itoa(len(snapshot.NotComing)),
		placeholder(configs.PlaceholderMaybe), names(snapshot.Maybe, mention),
		placeholder(configs.PlaceholderMaybeCount), strconv.Itoa(len(snapshot.Maybe)),
	)

	buttons := make([]messenger.Button, 0, len(config.ResponseOptions))
	for _, option := range config.ResponseOptions {
		buttons = append(buttons, messenger.Button{
			Text:     option.Text,
			Value:    option.Value,
			ActionID: option.ActionID,
		})
	}

	return messenger.Content{
		Question: replacer.Replace(config.MessageTemplate),
		Summary:  replacer.Replace(config.SummaryTemplate),
		Buttons:  buttons,
	}
}

func placeholder(name string) string {
	return "{" + name + "}"
}

func names(userIDs []string, mention func(string) string) string {
	if len(userIDs) == 0 {
		return emptyBucket
	}

	mentioned := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		mentioned = append(mentioned, mention(userID))
	}
	return strings.Join(mentioned, ", ")
}
