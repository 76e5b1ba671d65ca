package ui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("29")).
			Padding(0, 1)
	findMatchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220"))
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("255")).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("238")).
				Padding(0, 1)
	navEnabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	navDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	suggestionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")).PaddingLeft(2)
	tileStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	selectedTileStyle = tileStyle.BorderForeground(lipgloss.Color("42")).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var logoColors = []string{"33", "196", "220", "33", "40", "196"}

func logo() string {
	out := ""
	for i, r := range "Google" {
		out += lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(logoColors[i])).Render(string(r))
	}
	return out
}

func panelStyle(active bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if active {
		return lipgloss.NewStyle().
			Border(border, true).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Border(border, true).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}
