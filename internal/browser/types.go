package browser

import "time"

const (
	BlankURL        = "about:blank"
	NewTabTitle     = "New Tab"
	DefaultCategory = "General"
	MaxHistoryItems = 100
)

type Tab struct {
	ID     string
	Title  string
	URL    string
	Active bool

	history *NavigationHistory
}

type Bookmark struct {
	ID       string
	Title    string
	URL      string
	Category string
}

type HistoryItem struct {
	ID        string
	Title     string
	URL       string
	Timestamp time.Time
}

// Notice is a transient, informational message for the status line. It is
// never an error.
type Notice struct {
	Title       string
	Description string
}

func (n Notice) Empty() bool {
	return n.Title == "" && n.Description == ""
}

func (n Notice) String() string {
	switch {
	case n.Title == "":
		return n.Description
	case n.Description == "":
		return n.Title
	default:
		return n.Title + ": " + n.Description
	}
}

// IsBlank reports whether url is empty or the blank sentinel.
func IsBlank(url string) bool {
	return url == "" || url == BlankURL
}
