package browser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkStoreAddPrependsGeneral(t *testing.T) {
	s := NewBookmarkStore(DefaultBookmarks()...)
	require.Equal(t, 5, s.Len())

	b, ok := s.Add(Tab{Title: "quran.com", URL: "https://quran.com/1"})
	require.True(t, ok)
	assert.Equal(t, DefaultCategory, b.Category)
	assert.NotEmpty(t, b.ID)

	all := s.All()
	assert.Equal(t, b, all[0])
	assert.Equal(t, 6, len(all))
}

func TestBookmarkStoreSkipsBlankAndAllowsDuplicates(t *testing.T) {
	s := NewBookmarkStore()
	_, ok := s.Add(Tab{Title: NewTabTitle, URL: BlankURL})
	assert.False(t, ok)

	tab := Tab{Title: "a.test", URL: "https://a.test"}
	first, _ := s.Add(tab)
	second, _ := s.Add(tab)
	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, first.ID, second.ID)

	assert.True(t, s.Remove(first.ID))
	assert.False(t, s.Remove(first.ID))
	assert.Equal(t, []Bookmark{second}, s.All())
}

func TestHistoryLogCapsAtLimitNewestFirst(t *testing.T) {
	l := NewHistoryLog()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < MaxHistoryItems+25; i++ {
		url := fmt.Sprintf("https://site%d.test", i)
		l.Record(url, url, start.Add(time.Duration(i)*time.Minute))
		require.LessOrEqual(t, l.Len(), MaxHistoryItems)
	}

	items := l.Items()
	require.Len(t, items, MaxHistoryItems)
	assert.Equal(t, fmt.Sprintf("https://site%d.test", MaxHistoryItems+24), items[0].URL)
	assert.Equal(t, "https://site25.test", items[len(items)-1].URL, "oldest entries dropped first")

	l.Clear()
	assert.Equal(t, 0, l.Len())
}
