package browser

import "github.com/google/uuid"

type BookmarkStore struct {
	items []Bookmark
}

func NewBookmarkStore(seed ...Bookmark) *BookmarkStore {
	s := &BookmarkStore{items: make([]Bookmark, 0, len(seed))}
	for _, b := range seed {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		s.items = append(s.items, b)
	}
	return s
}

// DefaultBookmarks is the bookmark bar a fresh session starts with.
func DefaultBookmarks() []Bookmark {
	return []Bookmark{
		{Title: "IslamQA", URL: "https://islamqa.info", Category: "Islamic Knowledge"},
		{Title: "Quran.com", URL: "https://quran.com", Category: "Quran"},
		{Title: "Sunnah.com", URL: "https://sunnah.com", Category: "Hadith"},
		{Title: "IslamicFinder", URL: "https://islamicfinder.org", Category: "Prayer Times"},
		{Title: "Bayyinah TV", URL: "https://bayyinah.tv", Category: "Education"},
	}
}

// Add prepends a bookmark for the tab's current page. Blank tabs are not
// bookmarked. Duplicates are allowed.
func (s *BookmarkStore) Add(tab Tab) (Bookmark, bool) {
	if IsBlank(tab.URL) {
		return Bookmark{}, false
	}
	b := Bookmark{
		ID:       uuid.NewString(),
		Title:    tab.Title,
		URL:      tab.URL,
		Category: DefaultCategory,
	}
	s.items = append([]Bookmark{b}, s.items...)
	return b, true
}

func (s *BookmarkStore) Remove(id string) bool {
	for i, b := range s.items {
		if b.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *BookmarkStore) All() []Bookmark {
	out := make([]Bookmark, len(s.items))
	copy(out, s.items)
	return out
}

func (s *BookmarkStore) Len() int {
	return len(s.items)
}
