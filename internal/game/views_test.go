package game

import (
	"testing"
	"time"

	"github.com/redchainhq/redchain/internal/models"
	"github.com/redchainhq/redchain/internal/utils"
)

func TestWeekSeries(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)
	state := models.DefaultGameState()
	state.Habits = []models.Habit{
		{ID: "a", CompletedDays: []string{"2024-01-07", "2024-01-06"}},
		{ID: "b", CompletedDays: []string{"2024-01-07"}},
	}

	series := WeekSeries(state, now)
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[6].Count != 2 {
		t.Errorf("expected 2 completions today, got %d", series[6].Count)
	}
	if series[5].Count != 1 {
		t.Errorf("expected 1 completion yesterday, got %d", series[5].Count)
	}
	if series[0].Count != 0 {
		t.Errorf("expected 0 completions six days ago, got %d", series[0].Count)
	}
	if series[6].Weekday != "Sun" {
		t.Errorf("2024-01-07 is a Sunday, got %q", series[6].Weekday)
	}
}

func TestWeeklyCompletionRate(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)

	state := models.DefaultGameState()
	if rate := WeeklyCompletionRate(state, now); rate != 0 {
		t.Errorf("no habits should mean 0%%, got %f", rate)
	}

	// One habit completed every day of the window: 100%
	var days []string
	for i := 0; i < 7; i++ {
		days = append(days, utils.DaysAgo(now, i))
	}
	state.Habits = []models.Habit{{ID: "a", CompletedDays: days}}
	if rate := WeeklyCompletionRate(state, now); rate != 100 {
		t.Errorf("expected 100%%, got %f", rate)
	}

	// Second habit with no completions halves the rate
	state.Habits = append(state.Habits, models.Habit{ID: "b", CompletedDays: []string{}})
	if rate := WeeklyCompletionRate(state, now); rate != 50 {
		t.Errorf("expected 50%%, got %f", rate)
	}
}

func TestHabitCompletionRate(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	habit := models.Habit{
		CreatedAt:     now.Add(-time.Hour),
		CompletedDays: []string{"2024-01-10"},
	}
	if rate := HabitCompletionRate(habit, now); rate != 100 {
		t.Errorf("fresh habit completed today should be 100%%, got %f", rate)
	}

	habit = models.Habit{
		CreatedAt:     now.AddDate(0, 0, -3).Add(-time.Hour), // 4 days window
		CompletedDays: []string{"2024-01-09", "2024-01-10"},
	}
	if rate := HabitCompletionRate(habit, now); rate != 50 {
		t.Errorf("expected 50%%, got %f", rate)
	}
}

func TestMedalFor(t *testing.T) {
	tests := []struct {
		rate float64
		want Medal
	}{
		{95, MedalGold},
		{90, MedalGold},
		{89.9, MedalSilver},
		{70, MedalSilver},
		{40, MedalBronze},
		{39, MedalCore},
		{0, MedalCore},
	}
	for _, tt := range tests {
		if got := MedalFor(tt.rate); got != tt.want {
			t.Errorf("MedalFor(%v): expected %s, got %s", tt.rate, tt.want, got)
		}
	}
}

func TestMonthHeatmap(t *testing.T) {
	state := models.DefaultGameState()
	state.Habits = []models.Habit{
		{ID: "a", CompletedDays: []string{"2024-02-01", "2024-02-29"}},
		{ID: "b", CompletedDays: []string{"2024-02-29"}},
	}

	cells := MonthHeatmap(state, 2024, time.February)
	if len(cells) != 29 {
		t.Fatalf("February 2024 has 29 days, got %d cells", len(cells))
	}
	if cells[0].Level != 0.5 {
		t.Errorf("expected level 0.5 on the 1st, got %f", cells[0].Level)
	}
	if cells[28].Level != 1.0 {
		t.Errorf("expected level 1.0 on the 29th, got %f", cells[28].Level)
	}
	if cells[10].Level != 0 {
		t.Errorf("expected level 0 on an empty day, got %f", cells[10].Level)
	}
}

func TestMonthHeatmapNoHabits(t *testing.T) {
	cells := MonthHeatmap(models.DefaultGameState(), 2024, time.January)
	for _, c := range cells {
		if c.Level != 0 {
			t.Fatalf("no habits should produce zero levels, got %f on day %d", c.Level, c.Day)
		}
	}
}

func TestDailyQuoteStable(t *testing.T) {
	morning := time.Date(2024, 3, 3, 6, 0, 0, 0, time.Local)
	evening := time.Date(2024, 3, 3, 23, 0, 0, 0, time.Local)
	if DailyQuote(morning) != DailyQuote(evening) {
		t.Error("quote must be stable within a calendar day")
	}
	if DailyQuote(morning) == "" {
		t.Error("quote must not be empty")
	}
}
