package configs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"
)

//go:embed default_config.json
var defaultPollConfig []byte

const (
	PlaceholderDate           = "date"
	PlaceholderComing         = "coming"
	PlaceholderComingCount    = "coming_count"
	PlaceholderNotComing      = "not_coming"
	PlaceholderNotComingCount = "not_coming_count"
	PlaceholderMaybe          = "maybe"
	PlaceholderMaybeCount     = "maybe_count"

	ChoiceYes   = "yes"
	ChoiceNo    = "no"
	ChoiceMaybe = "maybe"
)

var (
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	knownPlaceholders = map[string]bool{
		PlaceholderDate:           true,
		PlaceholderComing:         true,
		PlaceholderComingCount:    true,
		PlaceholderNotComing:      true,
		PlaceholderNotComingCount: true,
		PlaceholderMaybe:          true,
		PlaceholderMaybeCount:     true,
	}

	knownChoices = map[string]bool{
		ChoiceYes:   true,
		ChoiceNo:    true,
		ChoiceMaybe: true,
	}

	placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)
)

// ConfigurationError reports a poll configuration that cannot be loaded,
// validated or saved. The bot must not start with one.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configurationError(err error, format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...), Err: err}
}

type Schedule struct {
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Timezone string `json:"timezone"`
}

type ResponseOption struct {
	Text     string `json:"text"`
	Value    string `json:"value"`
	ActionID string `json:"action_id"`
}

// PollConfig is the merged poll configuration. Treat it as read-only once
// Validate has returned nil.
type PollConfig struct {
	Schedule        Schedule         `json:"poll_schedule"`
	Workdays        map[string]bool  `json:"workdays"`
	ResponseOptions []ResponseOption `json:"response_options"`
	MessageTemplate string           `json:"message_template"`
	SummaryTemplate string           `json:"summary_template"`

	settings     map[string]any
	overridePath string
	location     *time.Location
}

// LoadPollConfig reads the defaults (the embedded default_config.json when
// defaultsPath is empty) and merges the override file over them if it exists.
func LoadPollConfig(defaultsPath, overridePath string) (*PollConfig, error) {
	data := defaultPollConfig
	if defaultsPath != "" {
		raw, err := os.ReadFile(defaultsPath)
		if err != nil {
			return nil, configurationError(err, "failed to load default configuration")
		}
		data = raw
	}

	settings := make(map[string]any)
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, configurationError(err, "failed to load default configuration")
	}

	if overridePath != "" {
		if _, err := os.Stat(overridePath); err == nil {
			raw, err := os.ReadFile(overridePath)
			if err != nil {
				return nil, configurationError(err, "failed to load custom configuration")
			}

			override := make(map[string]any)
			if err := json.Unmarshal(raw, &override); err != nil {
				return nil, configurationError(err, "failed to load custom configuration")
			}

			mergeSettings(settings, override)
		}
	}

	return newPollConfig(settings, overridePath)
}

func newPollConfig(settings map[string]any, overridePath string) (*PollConfig, error) {
	merged, err := json.Marshal(settings)
	if err != nil {
		return nil, configurationError(err, "failed to encode configuration")
	}

	config := &PollConfig{}
	if err := json.Unmarshal(merged, config); err != nil {
		return nil, configurationError(err, "invalid configuration")
	}

	config.settings = settings
	config.overridePath = overridePath

	return config, nil
}

// mergeSettings overrides top-level keys known to the defaults. Objects are
// merged one level deep, everything else is replaced wholesale.
func mergeSettings(settings, override map[string]any) {
	for key, value := range override {
		current, ok := settings[key]
		if !ok {
			continue
		}

		currentObject, currentIsObject := current.(map[string]any)
		valueObject, valueIsObject := value.(map[string]any)
		if currentIsObject && valueIsObject {
			for nestedKey, nestedValue := range valueObject {
				currentObject[nestedKey] = nestedValue
			}
			continue
		}

		settings[key] = value
	}
}

// Validate checks schedule, workdays, response options and templates in that
// order and returns the first violation.
func (c *PollConfig) Validate() error {
	if err := c.validateSchedule(); err != nil {
		return err
	}
	if err := c.validateWorkdays(); err != nil {
		return err
	}
	if err := c.validateResponseOptions(); err != nil {
		return err
	}
	return c.validateTemplates()
}

func (c *PollConfig) validateSchedule() error {
	if c.isNull("poll_schedule", "hour") {
		return configurationError(nil, "schedule hour must be an integer between 0 and 23")
	}
	if c.isNull("poll_schedule", "minute") {
		return configurationError(nil, "schedule minute must be an integer between 0 and 59")
	}

	if c.Schedule.Hour < 0 || c.Schedule.Hour > 23 {
		return configurationError(nil, "schedule hour must be an integer between 0 and 23")
	}

	if c.Schedule.Minute < 0 || c.Schedule.Minute > 59 {
		return configurationError(nil, "schedule minute must be an integer between 0 and 59")
	}

	timezone := c.Schedule.Timezone
	if timezone == "" || timezone == "Local" {
		return configurationError(nil, "invalid timezone: %q", timezone)
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return configurationError(err, "invalid timezone: %q", timezone)
	}
	c.location = location

	return nil
}

func (c *PollConfig) validateWorkdays() error {
	for _, day := range Weekdays {
		if _, ok := c.Workdays[day]; !ok {
			return configurationError(nil, "missing workday configuration for %s", day)
		}
		if c.isNull("workdays", day) {
			return configurationError(nil, "workday configuration for %s must be a boolean", day)
		}
	}
	return nil
}

// isNull reports whether the merged settings hold an explicit null at
// section.key. Decoding turns null into the zero value, which would pass the
// typed checks.
func (c *PollConfig) isNull(section, key string) bool {
	object, ok := c.settings[section].(map[string]any)
	if !ok {
		return false
	}

	value, ok := object[key]
	return ok && value == nil
}

func (c *PollConfig) validateResponseOptions() error {
	if len(c.ResponseOptions) == 0 {
		return configurationError(nil, "response options must be a non-empty list")
	}

	actionIDs := make(map[string]bool, len(c.ResponseOptions))

	for i, option := range c.ResponseOptions {
		switch {
		case option.Text == "":
			return configurationError(nil, "response option %d missing required key: text", i)
		case option.Value == "":
			return configurationError(nil, "response option %d missing required key: value", i)
		case option.ActionID == "":
			return configurationError(nil, "response option %d missing required key: action_id", i)
		}

		if !knownChoices[option.Value] {
			return configurationError(nil, "response option %d has unknown value %q", i, option.Value)
		}

		if actionIDs[option.ActionID] {
			return configurationError(nil, "response option %d has duplicate action_id %q", i, option.ActionID)
		}
		actionIDs[option.ActionID] = true
	}

	return nil
}

func (c *PollConfig) validateTemplates() error {
	templates := []struct {
		name  string
		value string
	}{
		{name: "message_template", value: c.MessageTemplate},
		{name: "summary_template", value: c.SummaryTemplate},
	}

	for _, template := range templates {
		if template.value == "" {
			return configurationError(nil, "%s must be a non-empty string", template.name)
		}

		for _, match := range placeholderPattern.FindAllStringSubmatch(template.value, -1) {
			if !knownPlaceholders[match[1]] {
				return configurationError(nil, "%s uses unknown placeholder {%s}", template.name, match[1])
			}
		}
	}

	return nil
}

// Location is the schedule timezone. It falls back to UTC before Validate.
func (c *PollConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *PollConfig) IsWorkday(date time.Time) bool {
	return c.Workdays[strings.ToLower(date.Weekday().String())]
}

func (c *PollConfig) OptionByActionID(actionID string) (ResponseOption, bool) {
	for _, option := range c.ResponseOptions {
		if option.ActionID == actionID {
			return option, true
		}
	}
	return ResponseOption{}, false
}

// Save writes the merged settings verbatim. An empty path falls back to the
// override path the configuration was loaded with.
func (c *PollConfig) Save(path string) error {
	if path == "" {
		path = c.overridePath
	}
	if path == "" {
		return configurationError(nil, "no configuration path specified")
	}

	settings := c.settings
	if settings == nil {
		settings = map[string]any{
			"poll_schedule":    c.Schedule,
			"workdays":         c.Workdays,
			"response_options": c.ResponseOptions,
			"message_template": c.MessageTemplate,
			"summary_template": c.SummaryTemplate,
		}
	}

	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return configurationError(err, "failed to save configuration")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return configurationError(err, "failed to save configuration")
	}

	return nil
}

func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}
