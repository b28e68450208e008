package utils

import (
	"math"
	"time"

	"github.com/redchainhq/redchain/internal/constants"
)

// DateKey normalizes an instant to its calendar-day key (YYYY-MM-DD,
// zero-padded) in the machine-local timezone. All day-bucketed logic is built
// on this.
func DateKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Today returns the current day key.
func Today() string {
	return DateKey(time.Now())
}

// DaysAgo returns the day key n calendar days before the given instant.
// AddDate walks calendar days, so DST transitions don't shift the key.
func DaysAgo(t time.Time, n int) string {
	return DateKey(t.AddDate(0, 0, -n))
}

// ParseDay parses a day key back into a local midnight time.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// WeekSeries returns the last seven day keys ending at the given instant's
// day, oldest first.
func WeekSeries(now time.Time) []string {
	days := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		days = append(days, DaysAgo(now, i))
	}
	return days
}

// DaysSince returns the number of whole-or-partial days elapsed since t,
// never less than 1. Used for per-habit completion rates.
func DaysSince(t, now time.Time) int {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}
