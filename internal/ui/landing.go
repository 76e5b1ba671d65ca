package ui

import (
	"strings"

	"minaret/internal/browser"
	"minaret/internal/landing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shortcuts := landing.Shortcuts()

	switch {
	case key.Matches(msg, m.landingKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.landingKeys.OpenShell):
		return m.enterBrowser()
	case key.Matches(msg, m.landingKeys.NextTile):
		m.tile++
		if m.tile >= len(shortcuts) {
			m.tile = -1
		}
		return m, nil
	case key.Matches(msg, m.landingKeys.PrevTile):
		m.tile--
		if m.tile < -1 {
			m.tile = len(shortcuts) - 1
		}
		return m, nil
	case key.Matches(msg, m.landingKeys.Lucky):
		return m.runLanding(landing.Search(m.browser.SearchEngine(), m.search.Value(), true))
	case key.Matches(msg, m.landingKeys.Search):
		if m.tile >= 0 && m.tile < len(shortcuts) {
			return m.runLanding(landing.Activate(shortcuts[m.tile]))
		}
		return m.runLanding(landing.Search(m.browser.SearchEngine(), m.search.Value(), false))
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) runLanding(a landing.Action) (tea.Model, tea.Cmd) {
	m.logger.Debug("landing action", zap.Int("kind", int(a.Kind)), zap.String("url", a.URL))
	switch a.Kind {
	case landing.ActionRoute:
		if a.URL == landing.BrowserRoute {
			return m.enterBrowser()
		}
		m.notice = browser.Notice{Title: "Unknown route", Description: a.URL}
	case landing.ActionOpen:
		m.notice = browser.Notice{Title: "Opening", Description: a.URL}
		return m, m.openCmd(a.URL)
	default:
		m.notice = a.Notice
	}
	return m, nil
}

func (m Model) enterBrowser() (tea.Model, tea.Cmd) {
	m.screen = screenBrowser
	m.search.Blur()
	m.notice = browser.Notice{}
	cmd := m.renderCurrent()
	return m, cmd
}

func (m Model) viewLanding() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Gmail  Images  ⋮  (A)"))
	b.WriteString("\n\n")
	b.WriteString(logo())
	b.WriteString("\n\n")
	b.WriteString(panelStyle(m.tile < 0).Render(m.search.View()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("[enter] Google Search   [ctrl+l] I'm Feeling Lucky"))
	b.WriteString("\n\n")

	shortcuts := landing.Shortcuts()
	tiles := make([]string, 0, len(shortcuts))
	for i, s := range shortcuts {
		style := tileStyle
		if i == m.tile {
			style = selectedTileStyle
		}
		tiles = append(tiles, style.Render(s.Icon+"\n"+s.Name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Google offered in: हिन्दी বাংলা తెలుగు मराठी தமிழ் ગુજરાતી ಕನ್ನಡ മലയാളം ਪੰਜਾਬੀ"))

	body := b.String()
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}

	footer := m.help.View(m.landingKeys)
	if !m.notice.Empty() {
		footer = statusStyle.Render(m.notice.String()) + "\n" + footer
	}
	return body + "\n\n" + footer
}
