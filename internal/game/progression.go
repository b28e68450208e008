package game

import (
	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/models"
)

// RankForXP derives the rank ladder index from total XP. Rank is a pure view
// of XP: clamp(totalXP / XPPerRank, 0, len(Ranks)-1). Every stats mutation
// goes through this; the persisted rank index is never trusted on its own.
func RankForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	idx := totalXP / constants.XPPerRank
	if max := len(constants.Ranks) - 1; idx > max {
		idx = max
	}
	return idx
}

// ApplyCompletion awards one verified habit completion. Always succeeds.
func ApplyCompletion(stats models.UserStats) models.UserStats {
	stats.TotalXP += constants.XPPerCompletion
	stats.Points += constants.PointsPerCompletion
	stats.RankIndex = RankForXP(stats.TotalXP)
	return stats
}

// ApplyMissPenalty deducts the miss penalty for the given number of habits
// missed yesterday. XP and points floor at zero independently: a track that
// is already empty is not cross-subsidized by the other.
func ApplyMissPenalty(stats models.UserStats, missedHabitCount int) models.UserStats {
	if missedHabitCount <= 0 {
		return stats
	}
	penalty := missedHabitCount * constants.MissPenalty

	stats.TotalXP -= penalty
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	stats.Points -= penalty
	if stats.Points < 0 {
		stats.Points = 0
	}
	stats.RankIndex = RankForXP(stats.TotalXP)
	return stats
}

// PurchaseTheme deducts the theme's cost and flips it to unlocked. The whole
// operation is a no-op unless the theme is still locked and points cover the
// cost; callers hold the store lock so the check and the deduction see the
// same snapshot.
func PurchaseTheme(stats models.UserStats, theme models.ColorTheme) (models.UserStats, models.ColorTheme, bool) {
	if theme.Unlocked || stats.Points < theme.Cost {
		return stats, theme, false
	}
	stats.Points -= theme.Cost
	theme.Unlocked = true
	return stats, theme, true
}
