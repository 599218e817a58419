// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speedtype/internal/engine"
	"github.com/verte-zerg/speedtype/internal/model"
)

const tickInterval = time.Second

// tickMsg carries the timer ID it was scheduled for.
type tickMsg struct {
	id int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	engine  *engine.Engine
	keys    keyMap
	help    help.Model
	results []model.Result
	errMsg  string

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	strictOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	strictOffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a typing TUI model around eng.
func NewModel(eng *engine.Engine) *Model {
	return &Model{
		engine: eng,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Results returns the sessions finished while the UI was running.
func (m *Model) Results() []model.Result {
	return append([]model.Result(nil), m.results...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if !m.engine.Tick(msg.id) {
			return m, nil
		}
		return m, tick(msg.id)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.restart()
			return m, nil
		case key.Matches(msg, m.keys.Strict):
			m.engine.ToggleStrictMode()
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			return m, m.handleDeletion()
		}
		switch msg.Type {
		case tea.KeySpace:
			return m, m.handleRunes([]rune{' '})
		case tea.KeyRunes:
			return m, m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	state := m.engine.State()
	if len(state.Reference) == 0 {
		return ""
	}
	cursorIndex := -1
	if state.Phase != engine.Finished && len(state.Input) < len(state.Reference) {
		cursorIndex = len(state.Input)
	}
	styledRunes := buildStyledRunes(state.Reference, state.Status, cursorIndex)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes) + "\n\n" + footer
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	footerLines := strings.Count(footer, "\n") + 1
	body := lipgloss.Place(m.width, m.height-footerLines, lipgloss.Center, lipgloss.Center, content)
	footerBlock := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerBlock
}

func (m *Model) handleRunes(runes []rune) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range runes {
		if m.engine.Disabled() {
			break
		}
		state := m.engine.State()
		value := append(append([]rune(nil), state.Input...), r)
		if c := m.submit(state.Phase, string(value)); c != nil {
			cmd = c
		}
	}
	return cmd
}

func (m *Model) handleDeletion() tea.Cmd {
	if m.engine.Disabled() || !m.engine.AttemptDeletion() {
		return nil
	}
	state := m.engine.State()
	if len(state.Input) == 0 {
		return nil
	}
	return m.submit(state.Phase, string(state.Input[:len(state.Input)-1]))
}

// submit forwards value to the engine and returns the first tick when the
// session has just started.
func (m *Model) submit(prev engine.Phase, value string) tea.Cmd {
	m.errMsg = ""
	phase := m.engine.SubmitInput(value)
	if phase == engine.Finished && prev != engine.Finished {
		if res, ok := m.engine.State().Result(); ok {
			m.results = append(m.results, res)
		}
		return nil
	}
	if prev == engine.Idle && phase == engine.Running {
		return tick(m.engine.TimerID())
	}
	return nil
}

func (m *Model) restart() {
	if err := m.engine.Restart(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) renderFooter() string {
	state := m.engine.State()
	segments := []string{
		fmt.Sprintf("Time %ds", state.ElapsedSeconds),
		fmt.Sprintf("Speed %d WPM", state.WPM),
		fmt.Sprintf("Accuracy %d%%", state.Accuracy),
	}
	line := footerStyle.Render(strings.Join(segments, "  "))
	if state.Strict {
		line += "  " + strictOnStyle.Render("Strict on")
	} else {
		line += "  " + strictOffStyle.Render("Strict off")
	}

	lines := []string{line}
	if state.Phase == engine.Finished {
		lines = append(lines, resultStyle.Render(fmt.Sprintf("Finished: %d WPM · %d%% accuracy in %ds", state.WPM, state.Accuracy, state.ElapsedSeconds)))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func tick(id int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
