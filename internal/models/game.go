package models

import "time"

// Habit is a user-defined recurring task tracked per calendar day. Completed
// days are stored as YYYY-MM-DD keys; a key is appended at most once and never
// removed.
type Habit struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CompletedDays []string  `json:"completed_days"`
	CreatedAt     time.Time `json:"created_at"`
}

// CompletedOn reports whether the habit has a completion for the given day key.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

// Proof links a completion event to an image stored in the proof vault under
// the same ID. The record is metadata only; the habit reference is weak.
type Proof struct {
	ID      string    `json:"id"`
	HabitID string    `json:"habit_id"`
	Date    time.Time `json:"date"`
}

// UserStats is the single process-wide progression record. RankIndex is always
// re-derived from TotalXP, never set independently.
type UserStats struct {
	Points    int `json:"points"`
	TotalXP   int `json:"total_xp"`
	RankIndex int `json:"rank_index"`
}

// ColorTheme is one entry of the fixed cosmetic catalog. Unlocked transitions
// false to true exactly once and never reverts.
type ColorTheme struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Cost     int    `json:"cost"`
	Unlocked bool   `json:"unlocked"`
}

// GameState is the entire persisted document, serialized as one JSON blob
// after every mutation. ActiveThemeID must always resolve to an unlocked
// theme. ProofLog is ordered newest first.
type GameState struct {
	Habits        []Habit      `json:"habits"`
	Stats         UserStats    `json:"stats"`
	Themes        []ColorTheme `json:"themes"`
	ActiveThemeID string       `json:"active_theme_id"`
	ProofLog      []Proof      `json:"proof_log"`
	LastCheckDate string       `json:"last_check_date,omitempty"`
}

// FindHabit returns a pointer into Habits for the given ID, or nil.
func (g *GameState) FindHabit(id string) *Habit {
	for i := range g.Habits {
		if g.Habits[i].ID == id {
			return &g.Habits[i]
		}
	}
	return nil
}

// FindTheme returns a pointer into Themes for the given ID, or nil.
func (g *GameState) FindTheme(id string) *ColorTheme {
	for i := range g.Themes {
		if g.Themes[i].ID == id {
			return &g.Themes[i]
		}
	}
	return nil
}

// ActiveTheme resolves the selected theme. The store keeps the invariant that
// this never fails after normalization, but callers still get a nil check.
func (g *GameState) ActiveTheme() *ColorTheme {
	return g.FindTheme(g.ActiveThemeID)
}
