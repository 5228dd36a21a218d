package internal

import "time"

const (
	formatYYYYMMDD = "2006-01-02"
)

func Format(date time.Time) string {
	return date.Format(formatYYYYMMDD)
}

// Today returns midnight of the current calendar day in location.
func Today(now time.Time, location *time.Location) time.Time {
	local := now.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}

func Tomorrow(now time.Time, location *time.Location) time.Time {
	return Today(now, location).AddDate(0, 0, 1)
}

// DaysBetween counts calendar days from one midnight to another.
func DaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
