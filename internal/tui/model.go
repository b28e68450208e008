package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/game"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

// tickMsg drives the periodic day-boundary check.
type tickMsg time.Time

// alertClearMsg expires the transient penalty banner.
type alertClearMsg struct{}

type Model struct {
	store *game.Store
	state SessionState
	keys  KeyMap
	help  help.Model

	cursor        int
	input         textinput.Model
	habitToDelete string
	alert         string
	quitting      bool
	width         int
	height        int
}

func NewModel(store *game.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Habit title"
	ti.CharLimit = 80

	return Model{
		store: store,
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(constants.RolloverIntervalSec*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func alertClearCmd() tea.Cmd {
	return tea.Tick(constants.PenaltyAlertSec*time.Second, func(time.Time) tea.Msg {
		return alertClearMsg{}
	})
}

// rollover runs the day-boundary check and arms the penalty banner when the
// chain broke overnight.
func (m *Model) rollover() tea.Cmd {
	res := m.store.Rollover(time.Now())
	if res.Penalty == 0 {
		return nil
	}
	m.alert = fmt.Sprintf("CHAIN BROKEN: %d habit(s) missed yesterday. -%d XP, -%d points.",
		res.MissedCount, res.Penalty, res.Penalty)
	return alertClearCmd()
}
