package browser

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultHomeURL  = "https://islamqa.info"
	DefaultTabTitle = "Islamic Web Browser"
)

type Options struct {
	HomeURL      string
	SearchEngine string
	Bookmarks    []Bookmark
	Logger       *zap.Logger
	Now          func() time.Time
}

// Browser is the session state behind the browser shell: tabs with their
// back/forward stacks, bookmarks and the visit log. It is not safe for
// concurrent use; callers mutate it from a single event loop.
type Browser struct {
	tabs      *TabManager
	bookmarks *BookmarkStore
	log       *HistoryLog

	home   string
	engine string
	logger *zap.Logger
	now    func() time.Time
}

func New(opts Options) *Browser {
	if opts.HomeURL == "" {
		opts.HomeURL = DefaultHomeURL
	}
	if opts.SearchEngine == "" {
		opts.SearchEngine = DefaultSearchEngine
	}
	if opts.Bookmarks == nil {
		opts.Bookmarks = DefaultBookmarks()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Browser{
		tabs:      NewTabManager(DefaultTabTitle, opts.HomeURL),
		bookmarks: NewBookmarkStore(opts.Bookmarks...),
		log:       NewHistoryLog(),
		home:      opts.HomeURL,
		engine:    opts.SearchEngine,
		logger:    opts.Logger,
		now:       opts.Now,
	}
}

// Navigate loads url into the active tab. Empty and blank URLs leave every
// piece of state untouched.
func (b *Browser) Navigate(url string) bool {
	if IsBlank(url) {
		return false
	}
	b.log.Record(url, url, b.now())
	tab := b.tabs.Active()
	tab.URL = url
	tab.Title = Domain(url)
	tab.History().Visit(url)
	b.logger.Debug("navigate", zap.String("tab", tab.ID), zap.String("url", url))
	return true
}

// Submit resolves address bar input and navigates to it.
func (b *Browser) Submit(raw string) (bool, Notice) {
	if strings.TrimSpace(raw) == "" {
		return false, Notice{Title: "Nothing to open", Description: "Type a URL or a search"}
	}
	return b.Navigate(Resolve(raw, b.engine)), Notice{}
}

func (b *Browser) Back() (bool, Notice) {
	tab := b.tabs.Active()
	url, ok := tab.History().Back()
	if !ok {
		return false, Notice{Title: "Can't go back", Description: "No previous page in this tab"}
	}
	b.load(tab, url)
	return true, Notice{Title: "Going Back", Description: "Navigating to previous page"}
}

func (b *Browser) Forward() (bool, Notice) {
	tab := b.tabs.Active()
	url, ok := tab.History().Forward()
	if !ok {
		return false, Notice{Title: "Can't go forward", Description: "No next page in this tab"}
	}
	b.load(tab, url)
	return true, Notice{Title: "Going Forward", Description: "Navigating to next page"}
}

func (b *Browser) load(tab *Tab, url string) {
	tab.URL = url
	tab.Title = Domain(url)
	b.logger.Debug("load", zap.String("tab", tab.ID), zap.String("url", url), zap.Int("cursor", tab.History().Cursor()))
}

func (b *Browser) Refresh() Notice {
	return Notice{Title: "Refreshing", Description: "Reloading current page"}
}

func (b *Browser) Home() bool {
	return b.Navigate(b.home)
}

func (b *Browser) NewTab() Tab {
	t := b.tabs.Add()
	b.logger.Debug("new tab", zap.String("tab", t.ID), zap.Int("tabs", b.tabs.Len()))
	return t
}

func (b *Browser) CloseTab(id string) bool {
	ok := b.tabs.Close(id)
	if ok {
		b.logger.Debug("close tab", zap.String("tab", id), zap.Int("tabs", b.tabs.Len()))
	}
	return ok
}

func (b *Browser) SwitchTab(id string) bool {
	return b.tabs.Switch(id)
}

func (b *Browser) NextTab() Tab {
	return b.tabs.Next()
}

func (b *Browser) PrevTab() Tab {
	return b.tabs.Prev()
}

func (b *Browser) AddBookmark() (Bookmark, bool, Notice) {
	bm, ok := b.bookmarks.Add(*b.tabs.Active())
	if !ok {
		return Bookmark{}, false, Notice{Title: "Nothing to bookmark", Description: "Open a page first"}
	}
	b.logger.Debug("bookmark", zap.String("url", bm.URL))
	return bm, true, Notice{Title: "Bookmark Added", Description: bm.Title + " has been bookmarked"}
}

func (b *Browser) RemoveBookmark(id string) bool {
	return b.bookmarks.Remove(id)
}

func (b *Browser) ActiveTab() Tab {
	return *b.tabs.Active()
}

func (b *Browser) CurrentURL() string {
	return b.tabs.Active().URL
}

func (b *Browser) CanGoBack() bool {
	return b.tabs.Active().History().CanGoBack()
}

func (b *Browser) CanGoForward() bool {
	return b.tabs.Active().History().CanGoForward()
}

func (b *Browser) Tabs() []Tab {
	return b.tabs.Tabs()
}

func (b *Browser) Bookmarks() []Bookmark {
	return b.bookmarks.All()
}

func (b *Browser) History() []HistoryItem {
	return b.log.Items()
}

func (b *Browser) HomeURL() string {
	return b.home
}

func (b *Browser) SearchEngine() string {
	return b.engine
}
