package browser

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLog is the newest-first list of visited pages, capped at
// MaxHistoryItems.
type HistoryLog struct {
	items []HistoryItem
	limit int
}

func NewHistoryLog() *HistoryLog {
	return &HistoryLog{limit: MaxHistoryItems}
}

func (l *HistoryLog) Record(title, url string, at time.Time) HistoryItem {
	item := HistoryItem{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		Timestamp: at,
	}
	keep := l.items
	if len(keep) > l.limit-1 {
		keep = keep[:l.limit-1]
	}
	next := make([]HistoryItem, 0, len(keep)+1)
	next = append(next, item)
	next = append(next, keep...)
	l.items = next
	return item
}

func (l *HistoryLog) Items() []HistoryItem {
	out := make([]HistoryItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *HistoryLog) Len() int {
	return len(l.items)
}

func (l *HistoryLog) Clear() {
	l.items = nil
}
