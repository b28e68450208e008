package models

import "github.com/redchainhq/redchain/internal/constants"

// DefaultGameState builds a fresh document: no habits, zeroed stats, the
// seeded theme catalog with only the default theme unlocked and selected.
// LastCheckDate is left for the rollover processor (or Reset) to seed.
func DefaultGameState() GameState {
	themes := make([]ColorTheme, 0, len(constants.ThemeCatalog))
	for _, seed := range constants.ThemeCatalog {
		themes = append(themes, ColorTheme{
			ID:       seed.ID,
			Name:     seed.Name,
			Hex:      seed.Hex,
			Cost:     seed.Cost,
			Unlocked: seed.ID == constants.DefaultThemeID,
		})
	}
	return GameState{
		Habits:        []Habit{},
		Stats:         UserStats{},
		Themes:        themes,
		ActiveThemeID: constants.DefaultThemeID,
		ProofLog:      []Proof{},
	}
}
