package commands

import (
	"fmt"
	"strings"

	"office_attendance_bot/configs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const helpCommandName = "help"

type helpCommand struct {
	config *configs.PollConfig
	prefix string
}

// NewHelpCommand lists the commands with the platform's command prefix.
func NewHelpCommand(config *configs.PollConfig, prefix string) Command {
	return &helpCommand{
		config: config,
		prefix: prefix,
	}
}

func (c *helpCommand) CanHandle(command string) bool {
	return command == helpCommandName
}

func (c *helpCommand) Handle(arguments, userID string) string {
	p := c.prefix

	return fmt.Sprintf(`I ask every workday whether you will be in the office tomorrow.

%sattendance_poll - send the poll for tomorrow now
%sforce_new_poll - delete the current poll and send a new one
%sdelete_poll - delete the current poll
%sstats - show the current answers
%smute <days> - stop receiving polls for a number of days
%sunmute - receive polls again
%smute_status - show whether you are muted
%shelp - show this message

Polls go out at %02d:%02d (%s) before: %s.`,
		p, p, p, p, p, p, p, p,
		c.config.Schedule.Hour, c.config.Schedule.Minute, c.config.Location().String(),
		c.workdays(),
	)
}

func (c *helpCommand) workdays() string {
	title := cases.Title(language.English)

	var days []string
	for _, day := range configs.Weekdays {
		if c.config.Workdays[day] {
			days = append(days, title.String(day))
		}
	}

	if len(days) == 0 {
		return "no days"
	}
	return strings.Join(days, ", ")
}
