package index

import "minaret/internal/browser"

const (
	KindBookmark = "bookmark"
	KindVisit    = "visit"
)

// Entry is one searchable row: a bookmark or a visit from the history log.
type Entry struct {
	Ref      string
	Kind     string
	Title    string
	URL      string
	Category string
	TS       int64
}

// EntriesFrom flattens the session lists into index rows, bookmarks first.
func EntriesFrom(bookmarks []browser.Bookmark, history []browser.HistoryItem) []Entry {
	out := make([]Entry, 0, len(bookmarks)+len(history))
	for _, b := range bookmarks {
		out = append(out, Entry{Ref: b.ID, Kind: KindBookmark, Title: b.Title, URL: b.URL, Category: b.Category})
	}
	for _, h := range history {
		out = append(out, Entry{Ref: h.ID, Kind: KindVisit, Title: h.Title, URL: h.URL, TS: h.Timestamp.Unix()})
	}
	return out
}
