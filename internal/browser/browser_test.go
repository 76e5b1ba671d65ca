package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrowser() *Browser {
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return New(Options{
		HomeURL: "https://islamqa.info",
		Now:     func() time.Time { return at },
	})
}

func TestBrowserStartsOnHome(t *testing.T) {
	b := newTestBrowser()
	require.Len(t, b.Tabs(), 1)
	assert.Equal(t, DefaultTabTitle, b.ActiveTab().Title)
	assert.Equal(t, "https://islamqa.info", b.CurrentURL())
	assert.Len(t, b.Bookmarks(), 5)
	assert.Empty(t, b.History())
	assert.False(t, b.CanGoBack())
	assert.False(t, b.CanGoForward())
}

func TestBrowserNavigateUpdatesTabAndLog(t *testing.T) {
	b := newTestBrowser()
	require.True(t, b.Navigate("https://www.sunnah.com/bukhari"))

	tab := b.ActiveTab()
	assert.Equal(t, "https://www.sunnah.com/bukhari", tab.URL)
	assert.Equal(t, "sunnah.com", tab.Title)
	require.Len(t, b.History(), 1)
	assert.Equal(t, "https://www.sunnah.com/bukhari", b.History()[0].Title)
	assert.True(t, b.CanGoBack())
	assert.False(t, b.CanGoForward())
}

func TestBrowserNavigateBlankIsNoOp(t *testing.T) {
	b := newTestBrowser()
	before := b.ActiveTab()

	assert.False(t, b.Navigate(""))
	assert.False(t, b.Navigate(BlankURL))
	assert.Equal(t, before.URL, b.CurrentURL())
	assert.Equal(t, before.Title, b.ActiveTab().Title)
	assert.Empty(t, b.History())
	assert.Equal(t, 1, b.tabs.Active().History().Len())
}

func TestBrowserBackForward(t *testing.T) {
	b := newTestBrowser()
	b.Navigate("https://quran.com")

	ok, n := b.Back()
	require.True(t, ok)
	assert.Equal(t, "Going Back", n.Title)
	assert.Equal(t, "https://islamqa.info", b.CurrentURL())
	assert.Equal(t, "islamqa.info", b.ActiveTab().Title)
	assert.False(t, b.CanGoBack())
	assert.True(t, b.CanGoForward())
	assert.Len(t, b.History(), 1, "moving through history does not log a visit")

	ok, n = b.Back()
	assert.False(t, ok)
	assert.False(t, n.Empty())

	ok, _ = b.Forward()
	require.True(t, ok)
	assert.Equal(t, "https://quran.com", b.CurrentURL())
	assert.False(t, b.CanGoForward())
}

func TestBrowserHistoryIsPerTab(t *testing.T) {
	b := newTestBrowser()
	b.Navigate("https://quran.com")
	b.NewTab()
	assert.False(t, b.CanGoBack())

	b.Navigate("https://sunnah.com")
	assert.False(t, b.CanGoBack(), "first page of a blank tab has nothing behind it")

	b.PrevTab()
	assert.Equal(t, "https://quran.com", b.CurrentURL())
	assert.True(t, b.CanGoBack())
}

func TestBrowserSubmit(t *testing.T) {
	b := newTestBrowser()

	ok, n := b.Submit("   ")
	assert.False(t, ok)
	assert.False(t, n.Empty())

	ok, _ = b.Submit("quran.com")
	require.True(t, ok)
	assert.Equal(t, "https://quran.com", b.CurrentURL())

	ok, _ = b.Submit("how to pray")
	require.True(t, ok)
	assert.Equal(t, DefaultSearchEngine+"how%20to%20pray", b.CurrentURL())
	assert.Equal(t, "google.com", b.ActiveTab().Title)
}

func TestBrowserAddBookmark(t *testing.T) {
	b := newTestBrowser()
	b.Navigate("https://quran.com")

	bm, ok, n := b.AddBookmark()
	require.True(t, ok)
	assert.Equal(t, "quran.com", bm.Title)
	assert.Equal(t, "Bookmark Added", n.Title)
	assert.Equal(t, "quran.com has been bookmarked", n.Description)
	assert.Equal(t, bm, b.Bookmarks()[0])

	b.NewTab()
	_, ok, _ = b.AddBookmark()
	assert.False(t, ok)
	assert.Len(t, b.Bookmarks(), 6)

	assert.True(t, b.RemoveBookmark(bm.ID))
	assert.Len(t, b.Bookmarks(), 5)
}

func TestBrowserCloseTabSyncsCurrentURL(t *testing.T) {
	b := newTestBrowser()
	home := b.ActiveTab().ID
	blank := b.NewTab()
	assert.Equal(t, BlankURL, b.CurrentURL())

	require.True(t, b.CloseTab(blank.ID))
	assert.Equal(t, home, b.ActiveTab().ID)
	assert.Equal(t, "https://islamqa.info", b.CurrentURL())
	assert.False(t, b.CloseTab(home))
}

func TestBrowserHome(t *testing.T) {
	b := newTestBrowser()
	b.NewTab()
	require.True(t, b.Home())
	assert.Equal(t, "https://islamqa.info", b.CurrentURL())
	assert.Equal(t, "Refreshing", b.Refresh().Title)
}
