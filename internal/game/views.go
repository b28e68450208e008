package game

import (
	"time"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/models"
	"github.com/redchainhq/redchain/internal/utils"
)

// Derived views are recomputed on demand from the stored primitives and are
// never cached in the persisted document.

// DayCount is one bar of the weekly completion chart.
type DayCount struct {
	Day     string // YYYY-MM-DD
	Weekday string // short label, e.g. "Mon"
	Count   int    // habits completed that day
}

// WeekSeries aggregates completions for the last 7 days, oldest first.
func WeekSeries(state models.GameState, now time.Time) []DayCount {
	series := make([]DayCount, 0, 7)
	for _, day := range utils.WeekSeries(now) {
		count := 0
		for _, h := range state.Habits {
			if h.CompletedOn(day) {
				count++
			}
		}
		t, err := utils.ParseDay(day)
		label := ""
		if err == nil {
			label = t.Weekday().String()[:3]
		}
		series = append(series, DayCount{Day: day, Weekday: label, Count: count})
	}
	return series
}

// WeeklyCompletionRate is the percentage of possible completions landed over
// the last 7 days. Zero habits means a zero rate.
func WeeklyCompletionRate(state models.GameState, now time.Time) float64 {
	possible := len(state.Habits) * 7
	if possible == 0 {
		return 0
	}
	total := 0
	for _, dc := range WeekSeries(state, now) {
		total += dc.Count
	}
	return float64(total) / float64(possible) * 100
}

// HabitCompletionRate is a habit's lifetime completion percentage: completions
// over days since creation, capped at 100.
func HabitCompletionRate(habit models.Habit, now time.Time) float64 {
	days := utils.DaysSince(habit.CreatedAt, now)
	rate := float64(len(habit.CompletedDays)) / float64(days) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}

// Medal is the weekly review award tier.
type Medal string

const (
	MedalGold   Medal = "GOLD"
	MedalSilver Medal = "SILVER"
	MedalBronze Medal = "BRONZE"
	MedalCore   Medal = "CORE"
)

// MedalFor maps a weekly completion rate to its award.
func MedalFor(rate float64) Medal {
	switch {
	case rate >= 90:
		return MedalGold
	case rate >= 70:
		return MedalSilver
	case rate >= 40:
		return MedalBronze
	default:
		return MedalCore
	}
}

// HeatLevel is one cell of the monthly calendar heatmap.
type HeatLevel struct {
	Day   int     // day of month, 1-based
	Level float64 // completedCount / habitCount, 0 when no habits
}

// MonthHeatmap computes per-day completion density for a calendar month.
func MonthHeatmap(state models.GameState, year int, month time.Month) []HeatLevel {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]HeatLevel, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		key := utils.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		level := 0.0
		if n := len(state.Habits); n > 0 {
			count := 0
			for _, h := range state.Habits {
				if h.CompletedOn(key) {
					count++
				}
			}
			level = float64(count) / float64(n)
		}
		cells = append(cells, HeatLevel{Day: day, Level: level})
	}
	return cells
}

// DailyQuote picks the day's discipline quote, stable for a calendar day.
func DailyQuote(now time.Time) string {
	idx := now.YearDay() % len(constants.Quotes)
	return constants.Quotes[idx]
}
