// Package highlight implements find-in-page over rendered, ANSI-styled page
// text.
package highlight

import (
	"regexp"
	"strings"
)

var ansiCSI = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// Result is rendered text with every match wrapped. LineIndex holds the line
// of each match in order, so a line with two matches appears twice.
type Result struct {
	Text      string
	Count     int
	LineIndex []int
}

// Finder tracks a find-in-page query and the current match.
type Finder struct {
	query   string
	wrap    func(string) string
	result  Result
	current int
}

func NewFinder(wrap func(string) string) *Finder {
	if wrap == nil {
		wrap = func(s string) string { return s }
	}
	return &Finder{wrap: wrap, current: -1}
}

// Apply highlights query in text and resets the current match to the first.
// An empty query clears the finder and returns text unchanged.
func (f *Finder) Apply(text, query string) string {
	f.query = strings.TrimSpace(query)
	if f.query == "" {
		f.Reset()
		return text
	}
	f.result = Find(text, f.query, f.wrap)
	f.current = -1
	if f.result.Count > 0 {
		f.current = 0
	}
	return f.result.Text
}

func (f *Finder) Reset() {
	f.query = ""
	f.result = Result{}
	f.current = -1
}

func (f *Finder) Query() string {
	return f.query
}

func (f *Finder) Count() int {
	return f.result.Count
}

// Current is the 1-based position of the current match, or 0.
func (f *Finder) Current() int {
	return f.current + 1
}

// Line returns the line of the current match.
func (f *Finder) Line() (int, bool) {
	if f.current < 0 || f.current >= len(f.result.LineIndex) {
		return 0, false
	}
	return f.result.LineIndex[f.current], true
}

// Step moves to the next (delta > 0) or previous match, wrapping around, and
// returns its line number.
func (f *Finder) Step(delta int) (int, bool) {
	n := len(f.result.LineIndex)
	if n == 0 {
		return 0, false
	}
	switch {
	case f.current < 0 || f.current >= n:
		f.current = 0
	case delta > 0:
		f.current = (f.current + 1) % n
	case delta < 0:
		f.current = (f.current - 1 + n) % n
	}
	return f.result.LineIndex[f.current], true
}

// Find wraps every case-insensitive occurrence of query in input without
// touching ANSI escape sequences. Matches never span an escape sequence.
func Find(input, query string, wrap func(string) string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Text: input}
	}

	var out strings.Builder
	lineMatches := make([]int, 0, 16)
	total := 0
	for lineNo, line := range strings.SplitAfter(input, "\n") {
		core := strings.TrimSuffix(line, "\n")
		rendered, count := findInANSI(core, query, wrap)
		out.WriteString(rendered)
		if len(core) != len(line) {
			out.WriteByte('\n')
		}
		for i := 0; i < count; i++ {
			lineMatches = append(lineMatches, lineNo)
		}
		total += count
	}
	return Result{Text: out.String(), Count: total, LineIndex: lineMatches}
}

func findInANSI(s, query string, wrap func(string) string) (string, int) {
	var out strings.Builder
	total := 0
	pos := 0
	for _, idx := range ansiCSI.FindAllStringIndex(s, -1) {
		plain, count := findInPlain(s[pos:idx[0]], query, wrap)
		out.WriteString(plain)
		out.WriteString(s[idx[0]:idx[1]])
		total += count
		pos = idx[1]
	}
	plain, count := findInPlain(s[pos:], query, wrap)
	out.WriteString(plain)
	return out.String(), total + count
}

func findInPlain(s, query string, wrap func(string) string) (string, int) {
	if s == "" {
		return s, 0
	}
	lower := strings.ToLower(s)
	q := strings.ToLower(query)
	if len(lower) != len(s) || !strings.Contains(lower, q) {
		return s, 0
	}

	var out strings.Builder
	count := 0
	start := 0
	for {
		rel := strings.Index(lower[start:], q)
		if rel < 0 {
			out.WriteString(s[start:])
			break
		}
		idx := start + rel
		end := idx + len(q)
		out.WriteString(s[start:idx])
		out.WriteString(wrap(s[idx:end]))
		count++
		start = end
	}
	return out.String(), count
}
