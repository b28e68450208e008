package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/redchainhq/redchain/internal/game"
)

type ProgressCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current)."`
}

// heatRamp maps a completion density to an intensity bucket.
func heatRamp(level float64) int {
	switch {
	case level >= 1.0:
		return 3
	case level >= 0.5:
		return 2
	case level > 0:
		return 1
	default:
		return 0
	}
}

func (c *ProgressCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()

	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	cells := game.MonthHeatmap(state, year, month)
	accent := AccentStyle(state)

	hex := "#FF0000"
	if t := state.ActiveTheme(); t != nil {
		hex = t.Hex
	}
	ramp := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")),
		lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Faint(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color(hex)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true),
	}

	fmt.Println(accent.Render(fmt.Sprintf("%s %d", month, year)))
	fmt.Println("Mo Tu We Th Fr Sa Su")

	// Leading blanks so day 1 lands on its weekday column (Monday first).
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(first.Weekday()) + 6) % 7
	var row strings.Builder
	row.WriteString(strings.Repeat("   ", offset))

	col := offset
	for _, cell := range cells {
		row.WriteString(ramp[heatRamp(cell.Level)].Render("■"))
		row.WriteString("  ")
		col++
		if col == 7 {
			fmt.Println(strings.TrimRight(row.String(), " "))
			row.Reset()
			col = 0
		}
	}
	if row.Len() > 0 {
		fmt.Println(strings.TrimRight(row.String(), " "))
	}

	fmt.Println()
	fmt.Printf("Legend: %s none  %s some  %s half  %s all\n",
		ramp[0].Render("■"), ramp[1].Render("■"), ramp[2].Render("■"), ramp[3].Render("■"))
	return nil
}
