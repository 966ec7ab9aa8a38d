package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/filterpanel/internal/intl"
)

// View renders the current view.
func (m *Model) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.renderLoading()
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *Model) renderLoading() string {
	return m.spinner.View() + " " + m.loc.Get(intl.LoadingText)
}

func (m *Model) renderList() string {
	s := m.Screen()
	if s == nil {
		return SubtleStyle.Render(m.help.View(m.keys))
	}

	m.text.Cursor = m.cursor
	m.text.LoadingText = m.renderLoading()

	tv := m.tabs.View()
	tv.Content = m.text.Table(s.View())

	sections := []string{m.text.Tabs(tv)}
	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) statusLine() string {
	switch {
	case m.confirm != nil:
		answers := strings.Join([]string{"y " + m.loc.Get(intl.YesBtn), "n " + m.loc.Get(intl.NoBtn)}, " / ")
		return WarningStyle.Render(m.confirm.prompt + " (" + answers + ")")
	case m.err != nil:
		return CriticalStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		return SuccessStyle.Render(m.status)
	default:
		return ""
	}
}
