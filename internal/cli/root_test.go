package cli

import (
	"strings"
	"testing"

	"github.com/redchainhq/redchain/internal/models"
)

func testState() models.GameState {
	return models.GameState{
		Habits: []models.Habit{
			{ID: "aaa-111", Title: "Train"},
			{ID: "aab-222", Title: "Read"},
			{ID: "bcd-333", Title: "Meditate"},
		},
	}
}

func TestFindHabitByTitle(t *testing.T) {
	h, err := FindHabit(testState(), "Read")
	if err != nil {
		t.Fatalf("FindHabit: %v", err)
	}
	if h.ID != "aab-222" {
		t.Errorf("ID = %s, want aab-222", h.ID)
	}
}

func TestFindHabitByID(t *testing.T) {
	h, err := FindHabit(testState(), "bcd-333")
	if err != nil {
		t.Fatalf("FindHabit: %v", err)
	}
	if h.Title != "Meditate" {
		t.Errorf("Title = %s, want Meditate", h.Title)
	}
}

func TestFindHabitByPrefix(t *testing.T) {
	h, err := FindHabit(testState(), "bcd")
	if err != nil {
		t.Fatalf("FindHabit: %v", err)
	}
	if h.Title != "Meditate" {
		t.Errorf("Title = %s, want Meditate", h.Title)
	}
}

func TestFindHabitAmbiguousPrefix(t *testing.T) {
	if _, err := FindHabit(testState(), "aa"); err == nil {
		t.Fatal("expected ambiguity error")
	}
}

func TestFindHabitNotFound(t *testing.T) {
	if _, err := FindHabit(testState(), "zzz"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestFormatRankBounds(t *testing.T) {
	// Out-of-range indexes fall back to the unranked name instead of panicking.
	for _, idx := range []int{-1, 0, 16, 99} {
		out := FormatRank(idx)
		if out == "" {
			t.Errorf("FormatRank(%d) empty", idx)
		}
	}
	if !strings.Contains(FormatRank(16), "Elite") {
		t.Errorf("FormatRank(16) = %q, want Elite", FormatRank(16))
	}
	if !strings.Contains(FormatRank(99), "Unranked") {
		t.Errorf("FormatRank(99) = %q, want Unranked", FormatRank(99))
	}
}
