package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"minaret/internal/browser"
)

// Exporter writes the session's bookmarks and history to a markdown file. It
// is an on-demand snapshot; nothing reads it back.
type Exporter struct {
	overrideDir string
	cwd         string
	now         func() time.Time
}

func New(overrideDir string) (*Exporter, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve cwd: %w", err)
	}
	return &Exporter{overrideDir: strings.TrimSpace(overrideDir), cwd: cwd, now: time.Now}, nil
}

// Export writes a new file and returns its path. Exports within the same
// second get a numeric suffix instead of overwriting each other.
func (e *Exporter) Export(bookmarks []browser.Bookmark, history []browser.HistoryItem) (string, error) {
	now := e.now().UTC()
	base := e.outputPath(now)
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	md := BuildSessionMarkdown(bookmarks, history, now)

	for n := 1; ; n++ {
		path := numberedPath(base, n)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create export file: %w", err)
		}
		if _, err := f.WriteString(md); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write export file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close export file: %w", err)
		}
		return path, nil
	}
}

func numberedPath(base string, n int) string {
	if n <= 1 {
		return base
	}
	return strings.TrimSuffix(base, ".md") + fmt.Sprintf("-%d.md", n)
}

func BuildSessionMarkdown(bookmarks []browser.Bookmark, history []browser.HistoryItem, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Browsing session\n\n")
	b.WriteString("Exported: " + now.Format(time.RFC3339) + "\n\n")

	b.WriteString("## Bookmarks\n\n")
	if len(bookmarks) == 0 {
		b.WriteString("_none_\n")
	}
	for _, bm := range groupByCategory(bookmarks) {
		b.WriteString("### " + safeValue(bm.category) + "\n\n")
		for _, item := range bm.items {
			b.WriteString("- [" + escapeLinkText(safeValue(item.Title)) + "](" + escapeLinkURL(item.URL) + ")\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## History\n\n")
	if len(history) == 0 {
		b.WriteString("_none_\n")
	}
	for _, h := range history {
		b.WriteString(fmt.Sprintf("- %s %s\n", h.Timestamp.UTC().Format(time.RFC3339), h.URL))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

type categoryGroup struct {
	category string
	items    []browser.Bookmark
}

// groupByCategory keeps categories in order of first appearance.
func groupByCategory(bookmarks []browser.Bookmark) []categoryGroup {
	var groups []categoryGroup
	pos := map[string]int{}
	for _, bm := range bookmarks {
		i, ok := pos[bm.Category]
		if !ok {
			i = len(groups)
			pos[bm.Category] = i
			groups = append(groups, categoryGroup{category: bm.Category})
		}
		groups[i].items = append(groups[i].items, bm)
	}
	return groups
}

func (e *Exporter) outputPath(now time.Time) string {
	name := "session-" + now.Format("20060102-150405") + ".md"
	if e.overrideDir != "" {
		dir := e.overrideDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(e.cwd, dir)
		}
		return filepath.Join(dir, name)
	}
	return filepath.Join(e.cwd, "minaret-export", name)
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}

// escapeLinkURL keeps a URL inside a markdown link destination.
func escapeLinkURL(s string) string {
	return strings.NewReplacer("(", "%28", ")", "%29", " ", "%20", "<", "%3C", ">", "%3E").Replace(s)
}

func safeValue(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "n/a"
	}
	return s
}
