// Package landing holds the behaviour of the search landing page: the search
// box, "I'm Feeling Lucky" and the shortcut tiles.
package landing

import (
	"net/url"
	"strings"

	"minaret/internal/browser"
)

const (
	BrowserRoute = "/islamic-browser"
	noTarget     = "#"
)

type ActionKind int

const (
	// ActionNotice only shows a notice.
	ActionNotice ActionKind = iota
	// ActionOpen opens URL in the host browser.
	ActionOpen
	// ActionRoute switches to an internal screen named by URL.
	ActionRoute
)

type Action struct {
	Kind   ActionKind
	URL    string
	Notice browser.Notice
}

type Shortcut struct {
	Name string
	Icon string
	URL  string
}

func Shortcuts() []Shortcut {
	return []Shortcut{
		{Name: "YOUTUBE", Icon: "🎥", URL: "https://youtube.com"},
		{Name: "chat gpt", Icon: "🤖", URL: "https://chat.openai.com"},
		{Name: "facebook", Icon: "📘", URL: "https://facebook.com"},
		{Name: "Islamic Browser", Icon: "🕌", URL: BrowserRoute},
		{Name: "Code With H...", Icon: "💻", URL: noTarget},
	}
}

func Activate(s Shortcut) Action {
	switch {
	case strings.HasPrefix(s.URL, "/"):
		return Action{Kind: ActionRoute, URL: s.URL}
	case s.URL != noTarget:
		return Action{Kind: ActionOpen, URL: s.URL}
	default:
		return Action{Kind: ActionNotice, Notice: browser.Notice{
			Title:       s.Name,
			Description: "This shortcut would open the respective app/website",
		}}
	}
}

// Search builds the action for the search box. A blank query only produces
// a notice.
func Search(engine, query string, lucky bool) Action {
	if strings.TrimSpace(query) == "" {
		if lucky {
			return Action{Kind: ActionNotice, Notice: browser.Notice{Title: "I'm Feeling Lucky", Description: "Enter a search term first!"}}
		}
		return Action{Kind: ActionNotice, Notice: browser.Notice{Title: "Please enter a search query", Description: "Type something to search for"}}
	}
	return Action{Kind: ActionOpen, URL: browser.SearchURL(engine, query, lucky)}
}

// QueryFromLocation returns the "search" parameter of a page location, or ""
// when the location does not parse.
func QueryFromLocation(loc string) string {
	u, err := url.Parse(strings.TrimSpace(loc))
	if err != nil {
		return ""
	}
	return u.Query().Get("search")
}
