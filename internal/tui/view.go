package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case constants.StateDashboard:
		body = m.viewDashboard()
	case constants.StateTimer:
		body = m.timer.View()
	case constants.StateWheel:
		body = docStyle.Render(m.wheel.View())
	case constants.StateDetail:
		body = docStyle.Render(m.detail.View())
	case constants.StateSettings:
		body = m.settingsModel.View()
	case constants.StateAddSubGoal, constants.StateAddTask, constants.StateEditSettings:
		body = m.viewForm()
	}

	if m.dash.Celebrating {
		body = m.viewCelebration()
	}

	var status string
	if m.status != "" {
		status = warningStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		status,
		body,
		quoteStyle.Render(content.FooterQuote),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	stats := statStyle.Render(fmt.Sprintf("⭐ %d points   ✅ %d tasks today", m.dash.TotalPoints, m.dash.CompletedTasks))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render("✨ "+constants.AppName), stats),
		quoteStyle.Render(m.quote),
	)
}

func (m Model) viewTabs() string {
	titles := map[constants.SessionState]string{
		constants.StateDashboard: "Dashboard",
		constants.StateWheel:     "Wheel of Life",
		constants.StateSettings:  "Settings",
	}
	var rendered []string
	for _, s := range tabs {
		if m.state == s {
			rendered = append(rendered, activeTabStyle.Render(titles[s]))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(titles[s]))
		}
	}
	if m.state == constants.StateTimer {
		rendered = append(rendered, activeTabStyle.Render("Start My Day"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewDashboard() string {
	start := lipgloss.NewStyle().Bold(true).Render("[s] ☀️  Start My Day")
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		start,
		"",
		m.cards.View(),
		"",
		m.mood.View(),
	))
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), "", view)
	}
	return docStyle.Render(view)
}

func (m Model) viewCelebration() string {
	msg := celebrationStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		"🎉 Amazing! You completed Start My Day! 🎉",
		"",
		fmt.Sprintf("⭐ %d points · ✅ %d tasks", m.dash.TotalPoints, m.dash.CompletedTasks),
	))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
	}
	return msg
}
