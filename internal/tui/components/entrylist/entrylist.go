package entrylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/models"
)

type EditEntryMsg struct {
	Entry models.Entry
}

type ClearEntriesMsg struct{}

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Entry.Sport.Info().Icon, i.Entry.Sport)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", i.Entry.Time().Format(constants.DisplayTimeFormat), models.Summarize(i.Entry))
}

func (i Item) FilterValue() string { return string(i.Entry.Sport) }

type KeyMap struct {
	Edit  key.Binding
	Clear key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

// New expects entries already ordered latest first.
func New(entries []models.Entry, width, height int) Model {
	l := list.New(items(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Entries"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("entry", "entries")

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Clear}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Clear}
	}

	return Model{list: l, keys: keys}
}

func items(entries []models.Entry) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Entry: e}
	}
	return out
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.list.SetItems(items(entries))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: i.Entry} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if len(m.list.Items()) == 0 {
				return m, nil
			}
			return m, func() tea.Msg { return ClearEntriesMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No entries yet. Log a session from the Home tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
