package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ricardo-TDP/ruleta/internal/tui/components/wheelview"
	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.wheelView(),
		m.statusView(),
	)

	view.SetContent(lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	))
	return view
}

func (m *Model) wheelView() string {
	if m.deps.Wheel.Count() == 0 {
		return m.theme.Warning().Render("no options loaded — press r to reload")
	}

	view := wheelview.New(m.deps.Wheel.Options(), m.deps.Wheel.Angle())

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		view.Render(),
		"   ",
		m.legendView(),
	)
}

func (m *Model) legendView() string {
	lines := make([]string, 0, m.deps.Wheel.Count())
	for i, opt := range m.deps.Wheel.Options() {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(opt.Color)).
			Render("⬤ ")

		label := m.theme.Base().Render(opt.DisplayText)
		if i == m.winnerIndex {
			// winner takes its sector color as background; text color
			// follows the luminance rule
			label = lipgloss.NewStyle().
				Background(lipgloss.Color(opt.Color)).
				Foreground(lipgloss.Color(wheel.TextColor(opt.Color))).
				Bold(true).
				Render(" " + opt.DisplayText + " ")
		}
		lines = append(lines, swatch+label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) statusView() string {
	if m.loadErr != nil {
		return m.theme.Warning().Render(m.loadErr.Error())
	}

	if m.deps.Animator.Spinning() {
		return m.theme.Dim().Render("spinning...")
	}

	if winner, ok := m.Winner(); ok {
		banner := m.theme.Accent().Bold(true).Render("★ " + winner.DisplayText + " ★")
		return lipgloss.JoinVertical(
			lipgloss.Center,
			banner,
			m.theme.Dim().Render("space to spin again · q to quit"),
		)
	}

	return m.theme.Dim().Render("space to spin · r to reload · q to quit")
}
