package game

import (
	"testing"
	"time"

	"github.com/redchainhq/redchain/internal/models"
	"github.com/redchainhq/redchain/internal/utils"
)

func storeWithHabit(t *testing.T, completedDays []string, lastCheck string) *Store {
	t.Helper()
	state := models.DefaultGameState()
	state.Habits = []models.Habit{{
		ID:            "h1",
		Title:         "train",
		CompletedDays: completedDays,
		CreatedAt:     time.Date(2023, 12, 1, 0, 0, 0, 0, time.Local),
	}}
	state.Stats = models.UserStats{Points: 1200, TotalXP: 1200, RankIndex: 1}
	state.LastCheckDate = lastCheck
	return NewFromState(state, &memDoc{}, newMemVault())
}

func TestRolloverFirstRunSeedsDate(t *testing.T) {
	store := storeWithHabit(t, nil, "")
	now := time.Date(2024, 1, 3, 8, 0, 0, 0, time.Local)

	res := store.Rollover(now)
	if !res.FirstRun {
		t.Fatal("expected first-run result")
	}
	if res.Penalty != 0 {
		t.Error("first run must not penalize")
	}
	if got := store.State().LastCheckDate; got != "2024-01-03" {
		t.Errorf("expected lastCheckDate seeded, got %q", got)
	}
}

func TestRolloverSameDayNoop(t *testing.T) {
	store := storeWithHabit(t, nil, "2024-01-03")
	now := time.Date(2024, 1, 3, 23, 59, 0, 0, time.Local)

	res := store.Rollover(now)
	if res.Advanced || res.Penalty != 0 {
		t.Errorf("same-day rollover must be a no-op, got %+v", res)
	}
}

func TestRolloverYesterdayCompletedNoPenalty(t *testing.T) {
	// Habit completed 01-01 and 01-02; today is 01-03, last check 01-02.
	store := storeWithHabit(t, []string{"2024-01-01", "2024-01-02"}, "2024-01-02")
	now := time.Date(2024, 1, 3, 0, 10, 0, 0, time.Local)

	res := store.Rollover(now)
	if !res.Advanced {
		t.Fatal("expected day advance")
	}
	if res.MissedCount != 0 || res.Penalty != 0 {
		t.Errorf("yesterday was completed, expected no penalty, got %+v", res)
	}

	state := store.State()
	if state.Stats.Points != 1200 || state.Stats.TotalXP != 1200 {
		t.Errorf("stats must be untouched, got %+v", state.Stats)
	}
	if state.LastCheckDate != "2024-01-03" {
		t.Errorf("lastCheckDate must advance regardless, got %q", state.LastCheckDate)
	}
}

func TestRolloverYesterdayMissedPenalizes(t *testing.T) {
	store := storeWithHabit(t, []string{"2024-01-01"}, "2024-01-02")
	now := time.Date(2024, 1, 3, 0, 10, 0, 0, time.Local)

	res := store.Rollover(now)
	if res.MissedCount != 1 {
		t.Fatalf("expected 1 missed habit, got %d", res.MissedCount)
	}
	if res.Penalty != 500 {
		t.Errorf("expected penalty 500, got %d", res.Penalty)
	}

	state := store.State()
	if state.Stats.TotalXP != 700 {
		t.Errorf("expected 700 XP, got %d", state.Stats.TotalXP)
	}
	if state.Stats.Points != 700 {
		t.Errorf("expected 700 points, got %d", state.Stats.Points)
	}
	if state.Stats.RankIndex != 0 {
		t.Errorf("rank must be re-derived, got %d", state.Stats.RankIndex)
	}
}

func TestRolloverIdempotent(t *testing.T) {
	store := storeWithHabit(t, nil, "2024-01-02")
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local)

	first := store.Rollover(now)
	if first.Penalty == 0 {
		t.Fatal("setup should penalize once")
	}
	statsAfter := store.State().Stats

	// Same instant, no state change in between: must not double-penalize
	second := store.Rollover(now)
	if second.Advanced || second.Penalty != 0 {
		t.Errorf("second rollover must be a no-op, got %+v", second)
	}
	if got := store.State().Stats; got != statsAfter {
		t.Errorf("stats changed on repeated rollover: %+v -> %+v", statsAfter, got)
	}
}

func TestRolloverPenaltyFloorsAtZero(t *testing.T) {
	state := models.DefaultGameState()
	for i := 0; i < 3; i++ {
		state.Habits = append(state.Habits, models.Habit{
			ID: string(rune('a' + i)), Title: "h", CompletedDays: []string{},
			CreatedAt: time.Now(),
		})
	}
	state.Stats = models.UserStats{Points: 200, TotalXP: 900}
	state.LastCheckDate = "2024-01-02"
	store := NewFromState(state, &memDoc{}, newMemVault())

	res := store.Rollover(time.Date(2024, 1, 3, 1, 0, 0, 0, time.Local))
	if res.MissedCount != 3 {
		t.Fatalf("expected 3 missed, got %d", res.MissedCount)
	}

	stats := store.State().Stats
	if stats.Points != 0 || stats.TotalXP != 0 {
		t.Errorf("both tracks must floor at zero independently, got %+v", stats)
	}
}

// The rollover deliberately looks back exactly one day. After a multi-day
// absence only yesterday is reckoned; older missed days are silently let go.
// This leniency is intended behavior, not a gap to be "fixed" into a
// multi-day scan.
func TestRolloverMultiDayGapOnlyChecksYesterday(t *testing.T) {
	// Last check 01-02, today 01-10: seven unpenalized days in between.
	store := storeWithHabit(t, []string{"2024-01-09"}, "2024-01-02")
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.Local)

	res := store.Rollover(now)
	if !res.Advanced {
		t.Fatal("expected day advance")
	}
	// Yesterday (01-09) was completed, so no penalty despite the gap
	if res.MissedCount != 0 || res.Penalty != 0 {
		t.Errorf("only yesterday may be reckoned, got %+v", res)
	}
	if got := store.State().LastCheckDate; got != utils.DateKey(now) {
		t.Errorf("lastCheckDate must jump to today, got %q", got)
	}
}
