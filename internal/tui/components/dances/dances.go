package dances

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sportlog/internal/models"
)

// ToggleDanceMsg asks the parent to flip a dance and persist the settings.
type ToggleDanceMsg struct {
	Name string
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	enabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	settings models.Settings
	cursor   int
	keys     KeyMap
	width    int
	height   int
}

func New(settings models.Settings, width, height int) Model {
	return Model{
		settings: settings,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
	if m.cursor >= len(settings.Dances) {
		m.cursor = max(len(settings.Dances)-1, 0)
	}
}

// Cursor returns the index of the highlighted dance.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.settings.Dances)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.settings.Dances) {
				name := m.settings.Dances[m.cursor].Name
				return m, func() tea.Msg { return ToggleDanceMsg{Name: name} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.settings.Dances) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render("Settings could not be read.")
	}

	lines := []string{titleStyle.Render("Ballroom dances")}
	for i, d := range m.settings.Dances {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := disabledStyle.Render("[ ]")
		if d.Enabled {
			mark = enabledStyle.Render("[x]")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, mark, d.Name))
	}
	lines = append(lines, hintStyle.Render("Press space to enable or disable a dance"))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
