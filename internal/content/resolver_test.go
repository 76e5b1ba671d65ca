package content

import (
	"strings"
	"testing"
	"time"

	"minaret/internal/browser"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownSite(t *testing.T) {
	r := NewResolver()
	p := r.Resolve("https://quran.com/2/255", Snapshot{})
	assert.True(t, p.Known)
	assert.Equal(t, "Quran.com", p.Title)
	assert.Contains(t, p.Markdown, "https://quran.com/2/255")
}

func TestResolveOrderPrefersSearch(t *testing.T) {
	r := NewResolver()
	p := r.Resolve(browser.SearchURL("", "quran.com tafsir", false), Snapshot{})
	assert.Equal(t, "Search: quran.com tafsir", p.Title)
	assert.Contains(t, p.Markdown, "Search results for \"quran.com tafsir\"")
}

func TestResolveFallsBackToGeneric(t *testing.T) {
	r := NewResolver()
	p := r.Resolve("https://www.example.org/page", Snapshot{})
	assert.False(t, p.Known)
	assert.Equal(t, "example.org", p.Title)
	assert.Contains(t, p.Markdown, "Website Content: example.org")
}

func TestResolveBlankShowsNewTabPage(t *testing.T) {
	r := NewResolver()
	empty := r.Resolve(browser.BlankURL, Snapshot{})
	assert.Contains(t, empty.Markdown, "No browsing history yet")
	assert.Contains(t, empty.Markdown, "Quran 65:3")
	for _, s := range Sites() {
		assert.Contains(t, empty.Markdown, s.Name)
	}

	snap := Snapshot{
		Bookmarks: []browser.Bookmark{{Title: "Sunnah.com", URL: "https://sunnah.com", Category: "Hadith"}},
		History:   []browser.HistoryItem{{URL: "https://quran.com", Timestamp: time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)}},
	}
	full := r.Resolve("", snap)
	assert.NotContains(t, full.Markdown, "No browsing history yet")
	assert.True(t, strings.Contains(full.Markdown, "09:30:00 https://quran.com"))
	assert.Contains(t, full.Markdown, "`Hadith`")
}
