package game

import (
	"testing"
	"time"

	"github.com/redchainhq/redchain/internal/utils"
)

func dayKeys(now time.Time, offsets ...int) []string {
	keys := make([]string, 0, len(offsets))
	for _, off := range offsets {
		keys = append(keys, utils.DaysAgo(now, off))
	}
	return keys
}

func TestStreakEmpty(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	info := Streak(nil, now)
	if info.Count != 1 {
		t.Errorf("expected count 1 for empty habit, got %d", info.Count)
	}
	if info.Active {
		t.Error("empty habit must not have an active streak")
	}
}

func TestStreakActiveFiveDays(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	// Today plus the prior 4 consecutive days
	info := Streak(dayKeys(now, 0, 1, 2, 3, 4), now)
	if info.Count != 5 {
		t.Errorf("expected count 5, got %d", info.Count)
	}
	if !info.Active {
		t.Error("expected active streak")
	}
}

func TestStreakInactiveShowsStake(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	// Prior 3 days completed but not today: display is raw run + 1
	info := Streak(dayKeys(now, 1, 2, 3), now)
	if info.Count != 4 {
		t.Errorf("expected count 4, got %d", info.Count)
	}
	if info.Active {
		t.Error("streak must not be active without today's completion")
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	// Gap at two days ago cuts the run regardless of older completions
	info := Streak(dayKeys(now, 0, 1, 3, 4, 5), now)
	if info.Count != 2 {
		t.Errorf("expected count 2, got %d", info.Count)
	}
	if !info.Active {
		t.Error("expected active streak")
	}
}

func TestStreakIgnoresDuplicatesAndStrays(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	days := dayKeys(now, 0, 0, 1, 40)
	info := Streak(days, now)
	if info.Count != 2 {
		t.Errorf("expected count 2, got %d", info.Count)
	}
}

func TestStreakWalkTerminates(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)

	// More consecutive days than the walk bound; must terminate at the bound
	days := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		days = append(days, utils.DaysAgo(now, i))
	}
	info := Streak(days, now)
	if info.Count != 3650 {
		t.Errorf("expected walk-bounded count 3650, got %d", info.Count)
	}
}
