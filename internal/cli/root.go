package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/redchainhq/redchain/internal/backup"
	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/game"
	"github.com/redchainhq/redchain/internal/logger"
	"github.com/redchainhq/redchain/internal/models"
	"github.com/redchainhq/redchain/internal/storage"
)

// Context carries the shared dependencies every command runs against. The
// game store is opened lazily so commands like init and doctor can run
// before a document exists.
type Context struct {
	Doc   *storage.JSONStore
	Vault *storage.Vault

	store *game.Store
}

// DocPath returns the GameState document path.
func (c *Context) DocPath() string {
	return c.Doc.Path()
}

// VaultPath returns the proof vault database path.
func (c *Context) VaultPath() string {
	return filepath.Join(filepath.Dir(c.Doc.Path()), constants.VaultFileName)
}

// Game opens the store on first use and runs the day-boundary check. Every
// command that touches game state goes through here, so a missed yesterday
// gets penalized no matter which command the user runs first.
func (c *Context) Game() (*game.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	store, err := game.Open(c.Doc, c.Vault)
	if err != nil {
		return nil, err
	}
	c.store = store

	res := store.Rollover(time.Now())
	if res.Penalty > 0 {
		fmt.Printf("⚠ Chain broken: %d habit(s) missed yesterday. -%d XP and -%d points.\n\n",
			res.MissedCount, res.Penalty, res.Penalty)
	}
	return store, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.DocPath(), c.VaultPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindHabit resolves a habit by exact title first, then by ID, then by
// unambiguous ID prefix.
func FindHabit(state models.GameState, ref string) (models.Habit, error) {
	for _, h := range state.Habits {
		if h.Title == ref {
			return h, nil
		}
	}
	for _, h := range state.Habits {
		if h.ID == ref {
			return h, nil
		}
	}
	var match *models.Habit
	for i := range state.Habits {
		if strings.HasPrefix(state.Habits[i].ID, ref) {
			if match != nil {
				return models.Habit{}, fmt.Errorf("habit reference %q is ambiguous", ref)
			}
			match = &state.Habits[i]
		}
	}
	if match == nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	}
	return *match, nil
}

// AccentStyle returns a lipgloss style in the active theme's color.
func AccentStyle(state models.GameState) lipgloss.Style {
	hex := "#FF0000"
	if t := state.ActiveTheme(); t != nil {
		hex = t.Hex
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// FormatRank renders a rank index as "icon name" in the tier color.
func FormatRank(rankIndex int) string {
	tier := constants.TierForRankIndex(rankIndex)
	name := constants.Ranks[0]
	if rankIndex >= 0 && rankIndex < len(constants.Ranks) {
		name = constants.Ranks[rankIndex]
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color())).Bold(true)
	return fmt.Sprintf("%s %s", tier.Icon(), style.Render(name))
}

// StreakLabel renders a streak as a flame count, dimmed when the chain is at
// risk today.
func StreakLabel(info game.StreakInfo) string {
	if info.Active {
		return fmt.Sprintf("🔥 %d", info.Count)
	}
	return fmt.Sprintf("🔥 %d (at risk)", info.Count)
}
