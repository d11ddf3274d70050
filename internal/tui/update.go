package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/forms"
	"github.com/julianstephens/sportlog/internal/models"
	"github.com/julianstephens/sportlog/internal/tui/components/dances"
	"github.com/julianstephens/sportlog/internal/tui/components/entrylist"
)

type entriesClearedMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.entryList.SetSize(msg.Width-4, msg.Height-6)
		m.dancesModel.SetSize(msg.Width, msg.Height-4)
	}

	switch m.state {
	case constants.StateForm:
		return m.updateForm(msg)
	case constants.StateConfirmClear:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case entrylist.EditEntryMsg:
		return m, m.startEdit(msg.Entry)

	case entrylist.ClearEntriesMsg:
		d := m.diary
		return m, func() tea.Msg {
			return constants.ConfirmationMsg{
				Message: "Delete every entry? This cannot be undone.",
				Action: func() tea.Cmd {
					d.ClearEntries()
					return func() tea.Msg { return entriesClearedMsg{} }
				},
			}
		}

	case constants.ConfirmationMsg:
		m.confirm = &msg
		m.previousState = m.state
		m.state = constants.StateConfirmClear
		return m, nil

	case entriesClearedMsg:
		m.refreshEntries()
		m.status = "All entries cleared"
		return m, nil

	case dances.ToggleDanceMsg:
		m.toggleDance(msg.Name)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHome:
		cmd = m.updateHome(msg)
	case constants.StateEntries:
		m.entryList, cmd = m.entryList.Update(msg)
	case constants.StateSettings:
		m.dancesModel, cmd = m.dancesModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchTab(delta int) {
	current := 0
	for i, t := range tabs {
		if t.state == m.state {
			current = i
		}
	}
	next := (current + delta + len(tabs)) % len(tabs)
	m.state = tabs[next].state
	m.status = ""
}

func (m *Model) updateHome(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.sports)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		return m.startNew(m.sports[m.cursor].Sport)
	}
	return nil
}

func (m *Model) startNew(sport models.Sport) tea.Cmd {
	f, err := forms.ForSport(sport, m.today(), m.catalog())
	if err != nil {
		m.status = err.Error()
		return nil
	}
	return m.startDraft(newDraft(f, 0))
}

func (m *Model) startEdit(e models.Entry) tea.Cmd {
	if e.Data == nil {
		m.status = "Entry has no data to edit"
		return nil
	}
	return m.startDraft(newDraft(forms.FromPayload(e.Data, m.catalog()), e.Timestamp))
}

func (m *Model) startDraft(d *draft) tea.Cmd {
	m.draft = d
	m.form = d.huhForm()
	m.previousState = m.state
	m.state = constants.StateForm
	m.status = ""
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.cancelDraft()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		cmds = append(cmds, m.completeStep())
	case huh.StateAborted:
		m.cancelDraft()
	}
	return m, tea.Batch(cmds...)
}

// completeStep moves the draft on after a huh form completes. Multi-step
// sports get a fresh form; everything else is saved.
func (m *Model) completeStep() tea.Cmd {
	if !m.draft.advance() {
		m.form = m.draft.huhForm()
		return m.form.Init()
	}

	payload := m.draft.form.Payload()
	if m.draft.editing() {
		m.diary.UpdateEntry(m.draft.timestamp, payload)
		m.status = fmt.Sprintf("Updated %s entry", payload.Sport())
	} else {
		m.diary.SaveEntry(payload)
		m.status = fmt.Sprintf("Logged %s session", payload.Sport())
	}
	m.refreshEntries()
	m.draft = nil
	m.form = nil
	m.state = m.previousState
	return nil
}

func (m *Model) cancelDraft() {
	m.draft = nil
	m.form = nil
	m.state = m.previousState
	m.status = "Cancelled"
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		action := m.confirm.Action
		m.confirm = nil
		m.state = m.previousState
		if action != nil {
			return m, action()
		}
	case "n", "N", "esc":
		m.confirm = nil
		m.state = m.previousState
	}
	return m, nil
}

func (m *Model) toggleDance(name string) {
	settings := m.diary.GetSettings()
	if len(settings.Dances) == 0 {
		m.status = "Settings could not be read; nothing was changed"
		return
	}
	if !settings.Toggle(name) {
		m.status = fmt.Sprintf("Unknown dance %q", name)
		return
	}
	m.diary.SaveSettings(settings)
	m.refreshSettings()
	m.status = ""
}
