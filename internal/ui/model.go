package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"minaret/internal/browser"
	"minaret/internal/config"
	"minaret/internal/content"
	"minaret/internal/export"
	"minaret/internal/highlight"
	"minaret/internal/hostcmd"
	"minaret/internal/index"
	"minaret/internal/landing"
	"minaret/internal/suggest"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// Host is the desktop the shell hands URLs to.
type Host interface {
	Open(ctx context.Context, url string) error
	Copy(ctx context.Context, text string) error
}

type Deps struct {
	Config   config.AppConfig
	Browser  *browser.Browser
	Resolver *content.Resolver
	Indexer  *index.Indexer
	Exporter *export.Exporter
	Host     Host
	Logger   *zap.Logger
}

type screen int

const (
	screenLanding screen = iota
	screenBrowser
)

type panelKind int

const (
	panelNone panelKind = iota
	panelBookmarks
	panelHistory
	panelSearch
)

type promptMode int

const (
	promptNone promptMode = iota
	promptFind
	promptIndex
)

const maxSuggestions = 5

type Model struct {
	cfg      config.AppConfig
	browser  *browser.Browser
	resolver *content.Resolver
	indexer  *index.Indexer
	exporter *export.Exporter
	host     Host
	logger   *zap.Logger

	screen screen

	search textinput.Model
	tile   int

	address     textinput.Model
	editing     bool
	suggestions []suggest.Suggestion
	suggestIdx  int

	prompt     textinput.Model
	promptMode promptMode
	finder     *highlight.Finder

	panel panelKind
	list  list.Model

	viewport    viewport.Model
	help        help.Model
	keys        keyMap
	landingKeys landingKeyMap

	width  int
	height int

	version     int
	indexGen    uint64
	rendering   bool
	renderNonce int
	rendered    map[string]string
	pageKey     string
	pageText    string

	notice browser.Notice
	err    error
}

type renderMsg struct {
	cacheKey string
	rendered string
	nonce    int
	err      error
}
type openMsg struct {
	url string
	err error
}
type copyMsg struct {
	url string
	err error
}
type exportMsg struct {
	path string
	err  error
}
type indexedMsg struct {
	generation uint64
	err        error
}
type searchMsg struct {
	query   string
	entries []index.Entry
	err     error
}

type entryItem struct {
	title string
	url   string
	meta  string
	ref   string
}

func (i entryItem) Title() string       { return i.title }
func (i entryItem) Description() string { return i.meta }
func (i entryItem) FilterValue() string { return strings.ToLower(i.title + " " + i.url) }

func NewModel(d Deps) Model {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Resolver == nil {
		d.Resolver = content.NewResolver()
	}
	if d.Host == nil {
		d.Host = hostcmd.Runner{}
	}
	if d.Browser == nil {
		d.Browser = browser.New(browser.Options{
			HomeURL:      d.Config.HomeURL,
			SearchEngine: d.Config.SearchEngine,
			Logger:       d.Logger,
		})
	}

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 20)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	vp := viewport.New(60, 20)

	h := help.New()
	h.ShowAll = false

	search := textinput.New()
	search.Placeholder = "Search Google or type a URL"
	search.Prompt = "🔍 "
	search.CharLimit = 512
	search.Width = 50
	search.Focus()
	search.SetValue(initialQuery(d.Config))
	search.CursorEnd()

	addr := textinput.New()
	addr.Placeholder = "Enter URL or search Islamic content..."
	addr.Prompt = "🌐 "
	addr.CharLimit = 2048

	prompt := textinput.New()
	prompt.CharLimit = 256

	m := Model{
		cfg:         d.Config,
		browser:     d.Browser,
		resolver:    d.Resolver,
		indexer:     d.Indexer,
		exporter:    d.Exporter,
		host:        d.Host,
		logger:      d.Logger,
		search:      search,
		tile:        -1,
		address:     addr,
		suggestIdx:  -1,
		prompt:      prompt,
		finder:      highlight.NewFinder(func(s string) string { return findMatchStyle.Render(s) }),
		list:        l,
		viewport:    vp,
		help:        h,
		keys:        defaultKeys(),
		landingKeys: defaultLandingKeys(),
		rendered:    make(map[string]string),
	}
	if d.Config.Start == config.StartBrowser {
		m.screen = screenBrowser
	}
	m.address.SetValue(m.browser.CurrentURL())
	return m
}

func initialQuery(cfg config.AppConfig) string {
	if cfg.Search != "" {
		return cfg.Search
	}
	if cfg.Location != "" {
		return landing.QueryFromLocation(cfg.Location)
	}
	return ""
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.syncIndexCmd(m.indexGen))
}

// syncIndexCmd snapshots browser state now and replaces the index with it
// off the event loop. generation orders snapshots that commit out of order.
func (m Model) syncIndexCmd(generation uint64) tea.Cmd {
	if m.indexer == nil {
		return nil
	}
	entries := index.EntriesFrom(m.browser.Bookmarks(), m.browser.History())
	idx := m.indexer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return indexedMsg{generation: generation, err: idx.Replace(ctx, generation, entries)}
	}
}

func (m Model) searchIndexCmd(query string) tea.Cmd {
	if m.indexer == nil {
		return nil
	}
	idx := m.indexer
	return func() tea.Msg {
		entries, err := idx.Search(query, 100)
		return searchMsg{query: query, entries: entries, err: err}
	}
}

func (m Model) openCmd(url string) tea.Cmd {
	host := m.host
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return openMsg{url: url, err: host.Open(ctx, url)}
	}
}

func (m Model) copyCmd(url string) tea.Cmd {
	host := m.host
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return copyMsg{url: url, err: host.Copy(ctx, url)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	if m.exporter == nil {
		return nil
	}
	exp := m.exporter
	bookmarks := m.browser.Bookmarks()
	history := m.browser.History()
	return func() tea.Msg {
		path, err := exp.Export(bookmarks, history)
		return exportMsg{path: path, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.screen == screenBrowser {
			cmds = append(cmds, m.renderCurrent())
		}

	case renderMsg:
		if msg.nonce != m.renderNonce {
			break
		}
		m.rendering = false
		if msg.err != nil {
			m.err = msg.err
			m.notice = browser.Notice{Title: "Render failed", Description: msg.err.Error()}
		}
		m.rendered[msg.cacheKey] = msg.rendered
		if msg.cacheKey == m.pageKey {
			m.setPage(msg.rendered, true)
		}

	case openMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("open url failed", zap.String("url", msg.url), zap.Error(msg.err))
			if errors.Is(msg.err, hostcmd.ErrToolNotFound) {
				m.notice = browser.Notice{Title: "Could not open", Description: "no browser launcher found for " + msg.url}
			} else {
				m.notice = browser.Notice{Title: "Could not open", Description: msg.err.Error()}
			}
		} else {
			m.err = nil
			m.notice = browser.Notice{Title: "Opened", Description: msg.url}
		}

	case copyMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("copy url failed", zap.Error(msg.err))
			if errors.Is(msg.err, hostcmd.ErrToolNotFound) {
				m.notice = browser.Notice{Title: "Could not copy", Description: "clipboard tool not found"}
			} else {
				m.notice = browser.Notice{Title: "Could not copy", Description: msg.err.Error()}
			}
		} else {
			m.notice = browser.Notice{Title: "Copied", Description: msg.url}
		}

	case exportMsg:
		if msg.err != nil {
			m.err = msg.err
			m.notice = browser.Notice{Title: "Export failed", Description: msg.err.Error()}
		} else {
			m.notice = browser.Notice{Title: "Exported", Description: msg.path}
		}

	case indexedMsg:
		if errors.Is(msg.err, index.ErrStale) {
			m.logger.Debug("stale index snapshot dropped", zap.Uint64("generation", msg.generation))
			break
		}
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("index sync failed", zap.Error(msg.err))
		}

	case searchMsg:
		if msg.err != nil {
			m.err = msg.err
			m.notice = browser.Notice{Title: "Search failed", Description: msg.err.Error()}
			break
		}
		m.showEntries(msg.query, msg.entries)

	case tea.KeyMsg:
		if m.screen == screenLanding {
			return m.updateLanding(msg)
		}
		return m.updateBrowser(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.screen == screenLanding:
		m.search, cmd = m.search.Update(msg)
	case m.editing:
		m.address, cmd = m.address.Update(msg)
	case m.promptMode != promptNone:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateAddress(msg)
	}
	if m.promptMode != promptNone {
		return m.updatePrompt(msg)
	}
	if m.panel != panelNone {
		return m.updatePanel(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Address):
		m.editing = true
		m.address.SetValue("")
		m.refreshSuggestions()
		cmd := m.address.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		_, n := m.browser.Back()
		m.notice = n
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.Forward):
		_, n := m.browser.Forward()
		m.notice = n
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		m.notice = m.browser.Refresh()
		delete(m.rendered, m.pageKey)
		cmd := m.renderCurrent()
		return m, cmd
	case key.Matches(msg, m.keys.Home):
		cmd := m.afterChange(m.browser.Home())
		return m, cmd
	case key.Matches(msg, m.keys.NewTab):
		m.browser.NewTab()
		m.notice = browser.Notice{}
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.CloseTab):
		if !m.browser.CloseTab(m.browser.ActiveTab().ID) {
			m.notice = browser.Notice{Title: "Last tab", Description: "At least one tab stays open"}
			return m, nil
		}
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.NextTab):
		m.browser.NextTab()
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		m.browser.PrevTab()
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.SelectTab):
		tabs := m.browser.Tabs()
		n := int(msg.Runes[0] - '1')
		if n >= len(tabs) || !m.browser.SwitchTab(tabs[n].ID) {
			return m, nil
		}
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.Bookmark):
		_, ok, n := m.browser.AddBookmark()
		m.notice = n
		if !ok {
			return m, nil
		}
		cmd := m.afterChange(false)
		return m, cmd
	case key.Matches(msg, m.keys.Bookmarks):
		m.showBookmarks()
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory()
		return m, nil
	case key.Matches(msg, m.keys.SearchIndex):
		if m.indexer == nil {
			m.notice = browser.Notice{Title: "Search unavailable", Description: "the visit index failed to start"}
			return m, nil
		}
		cmd := m.openPrompt(promptIndex, "search visits: ", "")
		return m, cmd
	case key.Matches(msg, m.keys.Find):
		cmd := m.openPrompt(promptFind, "find: ", m.finder.Query())
		return m, cmd
	case key.Matches(msg, m.keys.NextMatch):
		m.jumpToMatch(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevMatch):
		m.jumpToMatch(-1)
		return m, nil
	case key.Matches(msg, m.keys.OpenHost):
		url := m.browser.CurrentURL()
		if browser.IsBlank(url) {
			m.notice = browser.Notice{Title: "Nothing to open", Description: "Open a page first"}
			return m, nil
		}
		return m, m.openCmd(url)
	case key.Matches(msg, m.keys.Copy):
		url := m.browser.CurrentURL()
		if browser.IsBlank(url) {
			m.notice = browser.Notice{Title: "Nothing to copy", Description: "Open a page first"}
			return m, nil
		}
		return m, m.copyCmd(url)
	case key.Matches(msg, m.keys.Export):
		if m.exporter == nil {
			m.notice = browser.Notice{Title: "Export unavailable"}
			return m, nil
		}
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Landing):
		m.screen = screenLanding
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil
	}

	// Digits open the numbered catalogue entries of the new tab page.
	if browser.IsBlank(m.browser.CurrentURL()) && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			sites := content.Sites()
			if n := int(r - '1'); n < len(sites) {
				cmd := m.afterChange(m.browser.Navigate(sites[n].URL))
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m Model) updateAddress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		raw := m.address.Value()
		if m.suggestIdx >= 0 && m.suggestIdx < len(m.suggestions) {
			raw = m.suggestions[m.suggestIdx].URL
		}
		m.stopEditing()
		ok, n := m.browser.Submit(raw)
		m.notice = n
		cmd := m.afterChange(ok)
		return m, cmd
	case "up", "ctrl+p":
		if len(m.suggestions) > 0 {
			m.suggestIdx--
			if m.suggestIdx < -1 {
				m.suggestIdx = len(m.suggestions) - 1
			}
		}
		return m, nil
	case "down", "ctrl+n":
		if len(m.suggestions) > 0 {
			m.suggestIdx++
			if m.suggestIdx >= len(m.suggestions) {
				m.suggestIdx = -1
			}
		}
		return m, nil
	}

	before := m.address.Value()
	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	if m.address.Value() != before {
		m.refreshSuggestions()
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.address.Blur()
	m.address.SetValue(m.browser.CurrentURL())
	m.suggestions = nil
	m.suggestIdx = -1
}

func (m *Model) refreshSuggestions() {
	pool := suggest.Build(m.browser.Bookmarks(), m.browser.History(), content.Sites())
	m.suggestions = suggest.Rank(m.address.Value(), pool, maxSuggestions)
	m.suggestIdx = -1
}

func (m *Model) openPrompt(mode promptMode, label, value string) tea.Cmd {
	m.promptMode = mode
	m.prompt.Prompt = label
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.promptMode = promptNone
	m.prompt.Blur()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.promptMode == promptFind {
			m.finder.Reset()
			m.setPage(m.pageText, false)
		}
		m.closePrompt()
		return m, nil
	case "enter":
		mode := m.promptMode
		query := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if mode == promptIndex {
			return m, m.searchIndexCmd(query)
		}
		m.applyFind(query)
		return m, nil
	}

	before := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.promptMode == promptFind && m.prompt.Value() != before {
		m.applyFind(m.prompt.Value())
	}
	return m, cmd
}

func (m Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Quit):
		m.panel = panelNone
		return m, nil
	case msg.String() == "enter":
		item, ok := m.list.SelectedItem().(entryItem)
		m.panel = panelNone
		if !ok {
			return m, nil
		}
		cmd := m.afterChange(m.browser.Navigate(item.url))
		return m, cmd
	case key.Matches(msg, m.keys.Remove) && m.panel == panelBookmarks:
		item, ok := m.list.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		if m.browser.RemoveBookmark(item.ref) {
			m.notice = browser.Notice{Title: "Bookmark Removed", Description: item.title}
			m.showBookmarks()
			cmd := m.afterChange(false)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// afterChange resyncs everything derived from browser state. navigated
// reports whether a new page was visited.
func (m *Model) afterChange(navigated bool) tea.Cmd {
	m.version++
	if !m.editing {
		m.address.SetValue(m.browser.CurrentURL())
	}
	m.indexGen++
	cmds := []tea.Cmd{m.renderCurrent(), m.syncIndexCmd(m.indexGen)}
	if navigated {
		m.finder.Reset()
		if m.cfg.OpenExternal {
			cmds = append(cmds, m.openCmd(m.browser.CurrentURL()))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) showBookmarks() {
	bms := m.browser.Bookmarks()
	items := make([]list.Item, 0, len(bms))
	for _, b := range bms {
		items = append(items, entryItem{title: b.Title, url: b.URL, ref: b.ID, meta: b.Category + " | " + b.URL})
	}
	m.openPanel(panelBookmarks, fmt.Sprintf("Bookmarks (%d)", len(bms)), items)
}

func (m *Model) showHistory() {
	hist := m.browser.History()
	items := make([]list.Item, 0, len(hist))
	for _, h := range hist {
		items = append(items, entryItem{title: h.Title, url: h.URL, ref: h.ID, meta: h.Timestamp.Format("15:04:05")})
	}
	title := fmt.Sprintf("History (%d)", len(hist))
	if len(hist) == 0 {
		title = "History - No browsing history yet"
	}
	m.openPanel(panelHistory, title, items)
}

func (m *Model) showEntries(query string, entries []index.Entry) {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		meta := e.Kind + " | " + e.URL
		if e.Kind == index.KindVisit {
			meta = e.Kind + " " + time.Unix(e.TS, 0).Format("15:04:05") + " | " + e.URL
		}
		items = append(items, entryItem{title: e.Title, url: e.URL, ref: e.Ref, meta: meta})
	}
	title := fmt.Sprintf("Results for %q (%d)", query, len(entries))
	if query == "" {
		title = fmt.Sprintf("Bookmarks and visits (%d)", len(entries))
	}
	m.openPanel(panelSearch, title, items)
}

func (m *Model) openPanel(kind panelKind, title string, items []list.Item) {
	m.panel = kind
	m.list.Title = title
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(0)
	}
}

func (m *Model) renderCurrent() tea.Cmd {
	url := m.browser.CurrentURL()
	page := m.resolver.Resolve(url, content.Snapshot{
		Bookmarks: m.browser.Bookmarks(),
		History:   m.browser.History(),
	})

	cacheKey := m.renderCacheKey(url)
	m.pageKey = cacheKey
	if rendered, ok := m.rendered[cacheKey]; ok {
		m.setPage(rendered, false)
		return nil
	}

	m.rendering = true
	m.renderNonce++
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}
	return renderPageCmd(cacheKey, page.Markdown, m.cfg.GlamourStyle, wrap, m.renderNonce)
}

func renderPageCmd(cacheKey, md, style string, wrap, nonce int) tea.Cmd {
	if style == "" {
		style = config.DefaultGlamourStyle
	}
	return func() tea.Msg {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return renderMsg{cacheKey: cacheKey, rendered: md, nonce: nonce, err: err}
		}
		out, err := r.Render(md)
		if err != nil {
			return renderMsg{cacheKey: cacheKey, rendered: md, nonce: nonce, err: err}
		}
		return renderMsg{cacheKey: cacheKey, rendered: out, nonce: nonce}
	}
}

// renderCacheKey changes whenever the rendered page could. The new tab page
// lists bookmarks and history, so it is keyed on the state version too.
func (m Model) renderCacheKey(url string) string {
	k := fmt.Sprintf("%s|w=%d", url, m.viewport.Width)
	if browser.IsBlank(url) {
		k += fmt.Sprintf("|v=%d", m.version)
	}
	return k
}

func (m *Model) setPage(rendered string, gotoTop bool) {
	m.pageText = rendered
	text := rendered
	if q := m.finder.Query(); q != "" {
		text = m.finder.Apply(rendered, q)
	}
	m.viewport.SetContent(text)
	if gotoTop {
		m.viewport.GotoTop()
	}
}

func (m *Model) applyFind(query string) {
	text := m.finder.Apply(m.pageText, query)
	m.viewport.SetContent(text)
	if line, ok := m.finder.Line(); ok {
		m.viewport.SetYOffset(m.clampViewportOffset(line))
	}
}

func (m *Model) jumpToMatch(delta int) {
	line, ok := m.finder.Step(delta)
	if !ok {
		m.notice = browser.Notice{Title: "No matches on this page"}
		return
	}
	m.viewport.SetYOffset(m.clampViewportOffset(line))
	m.notice = browser.Notice{Title: fmt.Sprintf("Match %d/%d", m.finder.Current(), m.finder.Count())}
}

func (m *Model) clampViewportOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.height - 5
	if bodyHeight < 6 {
		bodyHeight = 6
	}
	m.viewport.Width = m.width - 4
	m.viewport.Height = bodyHeight - 2
	m.list.SetSize(m.width-4, bodyHeight-2)
	m.address.Width = m.width - 24
	m.search.Width = min(60, m.width-8)
}
