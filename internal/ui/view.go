package ui

import (
	"fmt"
	"strings"

	"minaret/internal/browser"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const maxTabTitle = 20

func (m Model) View() string {
	if m.screen == screenLanding {
		return m.viewLanding()
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabBar(),
		m.viewNavBar(),
	)

	var body string
	switch {
	case m.editing && len(m.suggestions) > 0:
		body = panelStyle(true).Render(m.viewSuggestions())
	case m.panel != panelNone:
		body = panelStyle(true).Render(m.list.View())
	default:
		page := m.viewport.View()
		if m.rendering && m.pageText == "" {
			page = "Loading..."
		}
		body = panelStyle(false).Render(page)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewFooter())
}

func (m Model) viewTabBar() string {
	tabs := m.browser.Tabs()
	parts := make([]string, 0, len(tabs)+1)
	for _, t := range tabs {
		title := ansi.Truncate(t.Title, maxTabTitle, "…")
		if t.Active {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(title))
		}
	}
	parts = append(parts, mutedStyle.Render(" + "))
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.width > 0 {
		bar = ansi.Truncate(bar, m.width, "")
	}
	return bar
}

func (m Model) viewNavBar() string {
	nav := func(label string, enabled bool) string {
		if enabled {
			return navEnabledStyle.Render(label)
		}
		return navDisabledStyle.Render(label)
	}
	buttons := strings.Join([]string{
		nav("◀", m.browser.CanGoBack()),
		nav("▶", m.browser.CanGoForward()),
		nav("⟳", true),
		nav("⌂", true),
	}, " ")

	addr := m.address.View()
	if !m.editing {
		url := m.browser.CurrentURL()
		if browser.IsBlank(url) {
			addr = m.address.Prompt + mutedStyle.Render(m.address.Placeholder)
		} else {
			addr = m.address.Prompt + url
		}
	}
	line := buttons + "  " + addr + "  " + mutedStyle.Render("🛡 ☆")
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m Model) viewSuggestions() string {
	lines := make([]string, 0, len(m.suggestions)+1)
	lines = append(lines, m.address.View())
	for i, s := range m.suggestions {
		text := fmt.Sprintf("%s  %s  %s", s.Title, mutedStyle.Render(s.URL), mutedStyle.Render("("+string(s.Source)+")"))
		if i == m.suggestIdx {
			lines = append(lines, selectedStyle.Render(text))
		} else {
			lines = append(lines, suggestionStyle.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewFooter() string {
	var status string
	switch {
	case m.promptMode != promptNone:
		status = m.prompt.View()
	case !m.notice.Empty():
		status = statusStyle.Render(m.notice.String())
	case m.finder.Query() != "":
		status = statusStyle.Render(fmt.Sprintf("find %q: %d/%d", m.finder.Query(), m.finder.Current(), m.finder.Count()))
	default:
		status = mutedStyle.Render(fmt.Sprintf("%d tabs | %d bookmarks | %d visits", len(m.browser.Tabs()), len(m.browser.Bookmarks()), len(m.browser.History())))
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	return status + "\n" + m.help.View(m.keys)
}
