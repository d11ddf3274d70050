package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/diary"
	"github.com/julianstephens/sportlog/internal/models"
	"github.com/julianstephens/sportlog/internal/tui/components/dances"
	"github.com/julianstephens/sportlog/internal/tui/components/entrylist"
)

var tabs = []struct {
	title string
	state constants.SessionState
}{
	{"Home", constants.StateHome},
	{"Entries", constants.StateEntries},
	{"Settings", constants.StateSettings},
}

type Model struct {
	diary         *diary.Store
	today         func() string
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	sports        []models.SportInfo
	cursor        int
	entryList     entrylist.Model
	dancesModel   dances.Model
	form          *huh.Form
	draft         *draft
	confirm       *constants.ConfirmationMsg
	status        string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the TUI over d. today supplies the default date for new
// entries.
func NewModel(d *diary.Store, today func() string) Model {
	return Model{
		diary:       d,
		today:       today,
		state:       constants.StateHome,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		sports:      models.AllSports(),
		entryList:   entrylist.New(diary.Latest(d.GetEntries(), "", 0), 0, 0),
		dancesModel: dances.New(d.GetSettings(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHome:
		keys = append(keys, m.keys.Enter)
	case constants.StateEntries:
		keys = append(keys, m.keys.Edit, m.keys.Clear)
	case constants.StateSettings:
		keys = append(keys, m.keys.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateHome:
		actions = []key.Binding{m.keys.Enter}
	case constants.StateEntries:
		actions = []key.Binding{m.keys.Edit, m.keys.Clear}
	case constants.StateSettings:
		actions = []key.Binding{m.keys.Toggle}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshEntries() {
	m.entryList.SetEntries(diary.Latest(m.diary.GetEntries(), "", 0))
}

func (m *Model) refreshSettings() {
	m.dancesModel.SetSettings(m.diary.GetSettings())
}

// catalog is the dance list offered by the ballroom form.
func (m *Model) catalog() []string {
	return m.diary.GetSettings().EnabledDances()
}
