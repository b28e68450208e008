package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		alertCmd := m.rollover()
		return m, tea.Batch(tickCmd(), alertCmd)

	case alertClearMsg:
		m.alert = ""
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddHabit:
			return m.updateAddHabit(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.store.State().Habits

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(habits)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Done):
		if m.cursor < len(habits) {
			// Proof photos come in through the CLI; a dashboard
			// completion records without one.
			m.store.RecordCompletion(habits[m.cursor].ID, nil, time.Now())
		}

	case key.Matches(msg, m.keys.Add):
		m.input.SetValue("")
		m.input.Focus()
		m.state = StateAddHabit
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(habits) {
			m.habitToDelete = habits[m.cursor].ID
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateDashboard
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if title != "" {
			m.store.AddHabit(title, time.Now())
			m.cursor = 0
		}
		m.state = StateDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.habitToDelete != "" {
			m.store.DeleteHabit(m.habitToDelete)
			m.habitToDelete = ""
			if n := len(m.store.State().Habits); m.cursor >= n && m.cursor > 0 {
				m.cursor = n - 1
			}
		}
		m.state = StateDashboard
	case "n", "N", "esc":
		m.habitToDelete = ""
		m.state = StateDashboard
	}
	return m, nil
}
