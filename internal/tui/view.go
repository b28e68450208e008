package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/game"
	"github.com/redchainhq/redchain/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.store.State()
	hex := "#FF0000"
	if t := state.ActiveTheme(); t != nil {
		hex = t.Hex
	}
	accent := accentStyle(hex)

	var content string
	switch m.state {
	case StateAddHabit:
		content = lipgloss.JoinVertical(lipgloss.Left,
			"New habit:",
			m.input.View(),
			"",
			dimStyle.Render("enter to save, esc to cancel"),
		)
	case StateConfirmDelete:
		content = lipgloss.JoinVertical(lipgloss.Left,
			dangerStyle.Render("Delete this habit and all its proofs?"),
			"",
			"[y] Yes",
			"[n] No",
		)
	default:
		content = m.viewHabits(accent)
	}

	sections := []string{m.viewHeader(accent), ""}
	if m.alert != "" {
		sections = append(sections, alertStyle.Render(m.alert), "")
	}
	sections = append(sections, content, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader(accent lipgloss.Style) string {
	state := m.store.State()
	now := time.Now()

	tier := constants.TierForRankIndex(state.Stats.RankIndex)
	rank := constants.Ranks[0]
	if state.Stats.RankIndex >= 0 && state.Stats.RankIndex < len(constants.Ranks) {
		rank = constants.Ranks[state.Stats.RankIndex]
	}

	line := fmt.Sprintf("%s %s   %d XP   %d points",
		tier.Icon(), rank, state.Stats.TotalXP, state.Stats.Points)

	return lipgloss.JoinVertical(lipgloss.Left,
		accent.Render("REDCHAIN"),
		line,
		dimStyle.Render(game.DailyQuote(now)),
	)
}

func (m Model) viewHabits(accent lipgloss.Style) string {
	state := m.store.State()
	if len(state.Habits) == 0 {
		return dimStyle.Render("No habits yet. Press 'a' to forge the first link.")
	}

	now := time.Now()
	today := utils.DateKey(now)

	var b strings.Builder
	for i, h := range state.Habits {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = accent.Render("[x]")
		}

		streak := game.Streak(h.CompletedDays, now)
		flame := fmt.Sprintf("🔥 %d", streak.Count)
		if !streak.Active {
			flame = dimStyle.Render(flame)
		}

		fmt.Fprintf(&b, "%s%s %-30s %s\n", cursor, mark, h.Title, flame)
	}
	return strings.TrimRight(b.String(), "\n")
}
