package configs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadValid(t *testing.T) *PollConfig {
	t.Helper()

	config, err := LoadPollConfig("", "")
	require.NoError(t, err)
	require.NoError(t, config.Validate())
	return config
}

func TestLoadPollConfig_Defaults(t *testing.T) {
	config := loadValid(t)

	assert.Equal(t, 16, config.Schedule.Hour)
	assert.Equal(t, 0, config.Schedule.Minute)
	assert.Equal(t, "Europe/London", config.Location().String())
	assert.Len(t, config.ResponseOptions, 3)
	assert.Equal(t, "attendance_yes", config.ResponseOptions[0].ActionID)
	assert.Equal(t, "attendance_maybe", config.ResponseOptions[2].ActionID)
}

func TestLoadPollConfig_MissingOverrideFileIsIgnored(t *testing.T) {
	config, err := LoadPollConfig("", filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.NoError(t, config.Validate())
}

func TestLoadPollConfig_OverrideMergesNestedObjectsOneLevelDeep(t *testing.T) {
	path := writeFile(t, "override.json", `{
		"poll_schedule": {"hour": 9},
		"workdays": {"friday": false},
		"message_template": "Office on {date}?",
		"unknown_key": 1
	}`)

	config, err := LoadPollConfig("", path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 9, config.Schedule.Hour)
	assert.Equal(t, 0, config.Schedule.Minute)
	assert.Equal(t, "Europe/London", config.Schedule.Timezone)
	assert.False(t, config.Workdays["friday"])
	assert.True(t, config.Workdays["thursday"])
	assert.Equal(t, "Office on {date}?", config.MessageTemplate)
	assert.NotContains(t, config.settings, "unknown_key")
}

func TestLoadPollConfig_OverrideReplacesListsWholesale(t *testing.T) {
	path := writeFile(t, "override.json", `{
		"response_options": [{"text": "Here", "value": "yes", "action_id": "here"}]
	}`)

	config, err := LoadPollConfig("", path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, []ResponseOption{{Text: "Here", Value: "yes", ActionID: "here"}}, config.ResponseOptions)
}

func TestLoadPollConfig_BrokenFiles(t *testing.T) {
	_, err := LoadPollConfig(filepath.Join(t.TempDir(), "absent.json"), "")
	assert.True(t, IsConfigurationError(err))

	_, err = LoadPollConfig(writeFile(t, "defaults.json", "{"), "")
	assert.True(t, IsConfigurationError(err))

	_, err = LoadPollConfig("", writeFile(t, "override.json", "not json"))
	assert.True(t, IsConfigurationError(err))

	_, err = LoadPollConfig("", writeFile(t, "override.json", `{"poll_schedule": {"hour": "nine"}}`))
	assert.True(t, IsConfigurationError(err))
}

func TestValidate_Schedule(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *PollConfig)
	}{
		{name: "hour too low", modify: func(c *PollConfig) { c.Schedule.Hour = -1 }},
		{name: "hour too high", modify: func(c *PollConfig) { c.Schedule.Hour = 24 }},
		{name: "minute too high", modify: func(c *PollConfig) { c.Schedule.Minute = 60 }},
		{name: "unknown timezone", modify: func(c *PollConfig) { c.Schedule.Timezone = "Mars/Olympus" }},
		{name: "empty timezone", modify: func(c *PollConfig) { c.Schedule.Timezone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := loadValid(t)
			tt.modify(config)

			err := config.Validate()
			assert.True(t, IsConfigurationError(err), "expected configuration error, got %v", err)
		})
	}

	nullOverrides := map[string]string{
		"null hour":   `{"poll_schedule": {"hour": null}}`,
		"null minute": `{"poll_schedule": {"minute": null}}`,
	}

	for name, override := range nullOverrides {
		t.Run(name, func(t *testing.T) {
			config, err := LoadPollConfig("", writeFile(t, "config.json", override))
			require.NoError(t, err)

			err = config.Validate()
			assert.True(t, IsConfigurationError(err), "expected configuration error, got %v", err)
			assert.Contains(t, err.Error(), "schedule")
		})
	}
}

func TestValidate_MissingWorkdayFailsClosed(t *testing.T) {
	config := loadValid(t)
	delete(config.Workdays, "sunday")

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sunday")

	config.Workdays = nil
	assert.Error(t, config.Validate())

	config, err = LoadPollConfig("", writeFile(t, "config.json", `{"workdays": {"friday": null}}`))
	require.NoError(t, err)

	err = config.Validate()
	assert.True(t, IsConfigurationError(err), "expected configuration error, got %v", err)
	assert.Contains(t, err.Error(), "friday")
}

func TestValidate_NullScheduleReportedBeforeNullWorkday(t *testing.T) {
	override := `{"poll_schedule": {"hour": null}, "workdays": {"friday": null}}`
	config, err := LoadPollConfig("", writeFile(t, "config.json", override))
	require.NoError(t, err)

	err = config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour")
}

func TestValidate_ResponseOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []ResponseOption
	}{
		{name: "empty list", options: nil},
		{name: "missing text", options: []ResponseOption{{Value: "yes", ActionID: "a"}}},
		{name: "missing value", options: []ResponseOption{{Text: "Yes", ActionID: "a"}}},
		{name: "missing action id", options: []ResponseOption{{Text: "Yes", Value: "yes"}}},
		{name: "unknown value", options: []ResponseOption{{Text: "Later", Value: "later", ActionID: "a"}}},
		{name: "duplicate action id", options: []ResponseOption{
			{Text: "Yes", Value: "yes", ActionID: "a"},
			{Text: "No", Value: "no", ActionID: "a"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := loadValid(t)
			config.ResponseOptions = tt.options

			assert.True(t, IsConfigurationError(config.Validate()))
		})
	}
}

func TestValidate_Templates(t *testing.T) {
	config := loadValid(t)
	config.MessageTemplate = ""
	assert.ErrorContains(t, config.Validate(), "message_template")

	config = loadValid(t)
	config.SummaryTemplate = "Coming: {coming} {late_count}"
	assert.ErrorContains(t, config.Validate(), "{late_count}")
}

func TestValidate_ReportsScheduleBeforeTemplates(t *testing.T) {
	config := loadValid(t)
	config.Schedule.Hour = 99
	config.MessageTemplate = ""

	assert.ErrorContains(t, config.Validate(), "hour")
}

func TestIsWorkday(t *testing.T) {
	config := loadValid(t)

	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	for i, day := range Weekdays {
		config.Workdays[day] = i%2 == 0
	}

	for i, day := range Weekdays {
		assert.Equal(t, i%2 == 0, config.IsWorkday(monday.AddDate(0, 0, i)), day)
	}
}

func TestOptionByActionID(t *testing.T) {
	config := loadValid(t)

	option, ok := config.OptionByActionID("attendance_no")
	assert.True(t, ok)
	assert.Equal(t, ChoiceNo, option.Value)

	_, ok = config.OptionByActionID("attendance_later")
	assert.False(t, ok)
}

func TestSave(t *testing.T) {
	override := writeFile(t, "override.json", `{"poll_schedule": {"minute": 30}}`)
	config, err := LoadPollConfig("", override)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, config.Save(target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	saved := make(map[string]any)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, float64(30), saved["poll_schedule"].(map[string]any)["minute"])
	assert.Contains(t, string(data), "\n    \"message_template\"")

	reloaded, err := LoadPollConfig(target, "")
	require.NoError(t, err)
	assert.Equal(t, 30, reloaded.Schedule.Minute)

	require.NoError(t, config.Save(""))
	data, err = os.ReadFile(override)
	require.NoError(t, err)
	assert.Contains(t, string(data), "summary_template")
}

func TestSave_Failures(t *testing.T) {
	config := loadValid(t)
	assert.True(t, IsConfigurationError(config.Save("")))

	missingDir := filepath.Join(t.TempDir(), "missing", "config.json")
	assert.True(t, IsConfigurationError(config.Save(missingDir)))
}
