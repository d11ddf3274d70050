package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sportlog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateHome:
		content = m.viewHome()
	case constants.StateEntries:
		content = docStyle.Render(m.entryList.View())
	case constants.StateSettings:
		content = m.dancesModel.View()
	case constants.StateForm:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmClear:
		content = m.viewConfirm()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	if m.state != constants.StateForm {
		parts = append(parts, m.help.View(m))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateForm || active == constants.StateConfirmClear {
		active = m.previousState
	}
	var rendered []string
	for _, t := range tabs {
		if t.state == active {
			rendered = append(rendered, activeTabStyle.Render(t.title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewHome() string {
	lines := []string{"Log a training session:", ""}
	for i, s := range m.sports {
		line := fmt.Sprintf("%s %s", s.Icon, s.Sport)
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("%d entries logged", m.entryList.Len())))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewConfirm() string {
	message := ""
	if m.confirm != nil {
		message = m.confirm.Message
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(message),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
