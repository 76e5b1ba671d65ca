// Package suggest ranks address bar completions from bookmarks, visited
// pages and the curated catalogue.
package suggest

import (
	"strings"

	"minaret/internal/browser"
	"minaret/internal/content"

	"github.com/sahilm/fuzzy"
)

type Source string

const (
	SourceBookmark Source = "bookmark"
	SourceHistory  Source = "history"
	SourceSite     Source = "site"
)

type Suggestion struct {
	Title  string
	URL    string
	Source Source
}

type candidates []Suggestion

func (c candidates) String(i int) string {
	return c[i].Title + " " + c[i].URL
}

func (c candidates) Len() int {
	return len(c)
}

// Build collects candidates, dropping repeated URLs. Earlier sources win.
func Build(bookmarks []browser.Bookmark, history []browser.HistoryItem, sites []content.Site) []Suggestion {
	seen := make(map[string]struct{})
	out := make([]Suggestion, 0, len(bookmarks)+len(history)+len(sites))
	add := func(s Suggestion) {
		if _, ok := seen[s.URL]; ok {
			return
		}
		seen[s.URL] = struct{}{}
		out = append(out, s)
	}
	for _, b := range bookmarks {
		add(Suggestion{Title: b.Title, URL: b.URL, Source: SourceBookmark})
	}
	for _, h := range history {
		add(Suggestion{Title: browser.Domain(h.URL), URL: h.URL, Source: SourceHistory})
	}
	for _, s := range sites {
		add(Suggestion{Title: s.Name, URL: s.URL, Source: SourceSite})
	}
	return out
}

// Rank returns at most limit suggestions for input, best first. Input that
// already looks like a full URL yields nothing.
func Rank(input string, pool []Suggestion, limit int) []Suggestion {
	input = strings.TrimSpace(input)
	if input == "" || strings.Contains(input, "://") {
		return nil
	}
	matches := fuzzy.FindFrom(input, candidates(pool))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, pool[m.Index])
	}
	return out
}
