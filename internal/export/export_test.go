package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"minaret/internal/browser"
)

var exportTime = time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC)

func TestBuildSessionMarkdown_GroupsBookmarksByCategory(t *testing.T) {
	bms := []browser.Bookmark{
		{Title: "quran.com", URL: "https://quran.com/1", Category: "General"},
		{Title: "Sunnah.com", URL: "https://sunnah.com", Category: "Hadith"},
		{Title: "islamqa.info", URL: "https://islamqa.info", Category: "General"},
	}
	out := BuildSessionMarkdown(bms, nil, exportTime)

	general := strings.Index(out, "### General")
	hadith := strings.Index(out, "### Hadith")
	if general < 0 || hadith < 0 || general > hadith {
		t.Fatalf("expected General before Hadith, got:\n%s", out)
	}
	if strings.Count(out, "### General") != 1 {
		t.Fatalf("expected one General heading, got:\n%s", out)
	}
	if !strings.Contains(out, "- [islamqa.info](https://islamqa.info)") {
		t.Fatalf("expected bookmark link, got:\n%s", out)
	}
	if !strings.Contains(out, "## History\n\n_none_") {
		t.Fatalf("expected empty history marker, got:\n%s", out)
	}
}

func TestBuildSessionMarkdown_EscapesTitles(t *testing.T) {
	bms := []browser.Bookmark{{Title: "[draft] notes", URL: "https://a.test", Category: "General"}}
	out := BuildSessionMarkdown(bms, nil, exportTime)
	if !strings.Contains(out, `- [\[draft\] notes](https://a.test)`) {
		t.Fatalf("expected escaped title, got:\n%s", out)
	}
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{overrideDir: dir, cwd: "/nonexistent", now: func() time.Time { return exportTime }}
	hist := []browser.HistoryItem{{URL: "https://quran.com", Timestamp: exportTime}}

	path, err := e.Export(nil, hist)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := filepath.Join(dir, "session-20261018-083000.md"); path != want {
		t.Fatalf("unexpected path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "- 2026-10-18T08:30:00Z https://quran.com") {
		t.Fatalf("expected history line, got:\n%s", data)
	}
}

func TestBuildSessionMarkdown_EscapesLinkURLs(t *testing.T) {
	bms := []browser.Bookmark{{Title: "Fasting", URL: "https://en.wikipedia.org/wiki/Sawm_(fasting)", Category: "General"}}
	out := BuildSessionMarkdown(bms, nil, exportTime)
	if !strings.Contains(out, "- [Fasting](https://en.wikipedia.org/wiki/Sawm_%28fasting%29)") {
		t.Fatalf("expected escaped link url, got:\n%s", out)
	}
}

func TestExportSameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{overrideDir: dir, cwd: "/nonexistent", now: func() time.Time { return exportTime }}

	first, err := e.Export(nil, []browser.HistoryItem{{URL: "https://quran.com", Timestamp: exportTime}})
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := e.Export(nil, []browser.HistoryItem{{URL: "https://sunnah.com", Timestamp: exportTime}})
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if want := filepath.Join(dir, "session-20261018-083000-2.md"); second != want {
		t.Fatalf("unexpected second path: %s", second)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first export: %v", err)
	}
	if !strings.Contains(string(data), "https://quran.com") {
		t.Fatalf("first export was overwritten:\n%s", data)
	}
}
