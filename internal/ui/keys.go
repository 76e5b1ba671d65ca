package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Address     key.Binding
	Back        key.Binding
	Forward     key.Binding
	Refresh     key.Binding
	Home        key.Binding
	NewTab      key.Binding
	CloseTab    key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	SelectTab   key.Binding
	Bookmark    key.Binding
	Bookmarks   key.Binding
	History     key.Binding
	SearchIndex key.Binding
	Find        key.Binding
	NextMatch   key.Binding
	PrevMatch   key.Binding
	OpenHost    key.Binding
	Copy        key.Binding
	Export      key.Binding
	Remove      key.Binding
	Landing     key.Binding
	Esc         key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Address: key.NewBinding(
			key.WithKeys("g", "ctrl+l"),
			key.WithHelp("g", "address"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left", "backspace"),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "forward"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "refresh"),
		),
		Home: key.NewBinding(
			key.WithKeys("~", "home"),
			key.WithHelp("~", "home"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("t", "ctrl+t"),
			key.WithHelp("t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("w", "ctrl+w"),
			key.WithHelp("w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		SelectTab: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "go to tab"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("d", "ctrl+d"),
			key.WithHelp("d", "bookmark"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmarks"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		SearchIndex: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search visits"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find in page"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev match"),
		),
		OpenHost: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy url"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove bookmark"),
		),
		Landing: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "landing page"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Address, k.Back, k.Forward, k.NewTab, k.CloseTab, k.Bookmark, k.Bookmarks, k.History, k.Find, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Address},
		{k.Back, k.Forward, k.Refresh, k.Home, k.NewTab, k.CloseTab, k.NextTab, k.PrevTab, k.SelectTab},
		{k.Bookmark, k.Bookmarks, k.History, k.SearchIndex, k.Find, k.NextMatch, k.PrevMatch},
		{k.OpenHost, k.Copy, k.Export, k.Remove, k.Landing, k.Esc, k.Quit},
	}
}

type landingKeyMap struct {
	Search    key.Binding
	Lucky     key.Binding
	NextTile  key.Binding
	PrevTile  key.Binding
	OpenShell key.Binding
	Quit      key.Binding
}

func defaultLandingKeys() landingKeyMap {
	return landingKeyMap{
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search / open tile"),
		),
		Lucky: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "I'm feeling lucky"),
		),
		NextTile: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next shortcut"),
		),
		PrevTile: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev shortcut"),
		),
		OpenShell: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "browser shell"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k landingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Lucky, k.NextTile, k.PrevTile, k.OpenShell, k.Quit}
}

func (k landingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
