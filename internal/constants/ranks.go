package constants

// RankTier is the closed set of rank tiers. Display metadata is mapped
// exhaustively per tier so a rank name can never miss a lookup.
type RankTier int

const (
	TierUnranked RankTier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
	TierElite
)

// Ranks is the ordered rank ladder. rankIndex = clamp(totalXP/XPPerRank, 0, len-1).
var Ranks = []string{
	"Unranked",
	"Bronze III", "Bronze II", "Bronze I",
	"Silver III", "Silver II", "Silver I",
	"Gold III", "Gold II", "Gold I",
	"Platinum III", "Platinum II", "Platinum I",
	"Diamond III", "Diamond II", "Diamond I",
	"Elite",
}

// rankTiers maps each ladder index to its tier. Must stay in lockstep with Ranks.
var rankTiers = []RankTier{
	TierUnranked,
	TierBronze, TierBronze, TierBronze,
	TierSilver, TierSilver, TierSilver,
	TierGold, TierGold, TierGold,
	TierPlatinum, TierPlatinum, TierPlatinum,
	TierDiamond, TierDiamond, TierDiamond,
	TierElite,
}

// TierForRankIndex returns the tier for a ladder index. Out-of-range indexes
// collapse to TierUnranked rather than rejecting, matching how rank is always
// a pure view of XP.
func TierForRankIndex(i int) RankTier {
	if i < 0 || i >= len(rankTiers) {
		return TierUnranked
	}
	return rankTiers[i]
}

// String returns the tier's display name.
func (t RankTier) String() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	case TierDiamond:
		return "Diamond"
	case TierElite:
		return "Elite"
	default:
		return "Unranked"
	}
}

// Color returns the tier's accent color hex.
func (t RankTier) Color() string {
	switch t {
	case TierBronze:
		return "#804A00"
	case TierSilver:
		return "#C0C0C0"
	case TierGold:
		return "#FFD700"
	case TierPlatinum:
		return "#00FFFF"
	case TierDiamond:
		return "#E0B0FF"
	case TierElite:
		return "#FFFFFF"
	default:
		return "#444444"
	}
}

// Icon returns the tier's glyph for terminal rendering.
func (t RankTier) Icon() string {
	switch t {
	case TierBronze:
		return "🛡"
	case TierSilver:
		return "🛡"
	case TierGold:
		return "🏅"
	case TierPlatinum:
		return "🏆"
	case TierDiamond:
		return "💎"
	case TierElite:
		return "👑"
	default:
		return "○"
	}
}
