package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrStale is returned by Replace for a snapshot older than the one already
// stored.
var ErrStale = errors.New("stale index snapshot")

// Indexer is a searchable mirror of the session's bookmarks and visits. It
// lives in an in-memory database and is gone when the process exits.
type Indexer struct {
	db         *sql.DB
	ftsEnabled bool
	mu         sync.Mutex
	generation uint64
}

func New() (*Indexer, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every new connection to :memory: is a fresh, empty database.
	db.SetMaxOpenConns(1)

	i := &Indexer{db: db}
	if err := i.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return i, nil
}

func (i *Indexer) Close() error {
	return i.db.Close()
}

func (i *Indexer) FTSEnabled() bool {
	return i.ftsEnabled
}

func (i *Indexer) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			ref TEXT,
			kind TEXT,
			title TEXT,
			url TEXT,
			category TEXT,
			ts INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_kind_ts ON entries(kind, ts);`,
	}
	for _, stmt := range stmts {
		if _, err := i.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return i.ensureFTSTable()
}

func (i *Indexer) ensureFTSTable() error {
	var sqlDef string
	err := i.db.QueryRow(`SELECT sql FROM sqlite_master WHERE name = 'entries_fts'`).Scan(&sqlDef)
	if err == nil {
		lower := strings.ToLower(sqlDef)
		i.ftsEnabled = strings.Contains(lower, "virtual table") && strings.Contains(lower, "fts5")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("inspect entries_fts table: %w", err)
	}

	_, err = i.db.Exec(`CREATE VIRTUAL TABLE entries_fts USING fts5(
		kind UNINDEXED,
		content
	);`)
	if err == nil {
		i.ftsEnabled = true
		return nil
	}
	if !strings.Contains(strings.ToLower(err.Error()), "no such module: fts5") {
		return fmt.Errorf("create entries_fts: %w", err)
	}
	// sqlite builds without FTS5 search entries with LIKE instead.
	i.ftsEnabled = false
	return nil
}

// Replace swaps the whole index for entries in one transaction. Snapshots
// carry a generation; one older than the stored generation is dropped with
// ErrStale, so snapshots taken in order win regardless of commit order.
func (i *Indexer) Replace(ctx context.Context, generation uint64, entries []Entry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if generation < i.generation {
		return fmt.Errorf("replace generation %d after %d: %w", generation, i.generation, ErrStale)
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if i.ftsEnabled {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries_fts`); err != nil {
			return fmt.Errorf("clear entries_fts: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO entries(ref, kind, title, url, category, ts) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res, err := insert.ExecContext(ctx, e.Ref, e.Kind, e.Title, e.URL, e.Category, e.TS)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", e.Ref, err)
		}
		if !i.ftsEnabled {
			continue
		}
		rowID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("entry rowid: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO entries_fts(rowid, kind, content) VALUES (?, ?, ?)`,
			rowID, e.Kind, searchableText(e)); err != nil {
			return fmt.Errorf("insert fts entry %s: %w", e.Ref, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	i.generation = generation
	return nil
}

func searchableText(e Entry) string {
	return strings.Join([]string{e.Title, e.URL, e.Category, strings.Join(urlWords(e.URL), " ")}, " ")
}

// urlWords splits a URL into host and path words so "quran" finds
// "https://quran.com/2".
func urlWords(u string) []string {
	return strings.FieldsFunc(strings.ToLower(u), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// Search returns matching entries, bookmarks before visits, newest visits
// first. An empty query lists everything.
func (i *Indexer) Search(query string, limit int) ([]Entry, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}
	query = strings.TrimSpace(query)

	var rows *sql.Rows
	var err error
	if query != "" && len(tokenizeSearchTerms(query)) == 0 {
		// Punctuation only: nothing can match.
		return []Entry{}, nil
	}
	if query == "" {
		rows, err = i.db.Query(`
			SELECT ref, kind, title, url, category, ts FROM entries
			ORDER BY kind = 'visit', ts DESC, rowid
			LIMIT ?
		`, limit)
	} else {
		rows, err = i.searchRows(query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, 32)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Ref, &e.Kind, &e.Title, &e.URL, &e.Category, &e.TS); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry rows: %w", err)
	}
	return out, nil
}

func (i *Indexer) searchRows(query string, limit int) (*sql.Rows, error) {
	if i.ftsEnabled {
		rows, err := i.searchRowsFTS(query, limit)
		if err == nil {
			return rows, nil
		}
		fallback, fbErr := i.searchRowsLike(query, limit)
		if fbErr != nil {
			return nil, fmt.Errorf("fts and fallback failed: fts=%w, fallback=%v", err, fbErr)
		}
		return fallback, nil
	}
	return i.searchRowsLike(query, limit)
}

func (i *Indexer) searchRowsFTS(query string, limit int) (*sql.Rows, error) {
	ftsQuery := buildFTSQuery(query)
	if ftsQuery == "" {
		return nil, errors.New("empty fts query")
	}
	return i.db.Query(`
		SELECT e.ref, e.kind, e.title, e.url, e.category, e.ts
		FROM entries_fts f
		JOIN entries e ON e.rowid = f.rowid
		WHERE entries_fts MATCH ?
		ORDER BY e.kind = 'visit', e.ts DESC, e.rowid
		LIMIT ?
	`, ftsQuery, limit)
}

func (i *Indexer) searchRowsLike(query string, limit int) (*sql.Rows, error) {
	terms := tokenizeSearchTerms(query)
	if len(terms) == 0 {
		return nil, errors.New("empty search query")
	}
	where := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)+1)
	for _, term := range terms {
		where = append(where, `LOWER(title || ' ' || url || ' ' || category) LIKE ?`)
		args = append(args, "%"+term+"%")
	}
	args = append(args, limit)
	return i.db.Query(`
		SELECT ref, kind, title, url, category, ts FROM entries
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY kind = 'visit', ts DESC, rowid
		LIMIT ?
	`, args...)
}

func buildFTSQuery(raw string) string {
	parts := tokenizeSearchTerms(raw)
	if len(parts) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, `"`, "")
		if p == "" {
			continue
		}
		quoted = append(quoted, fmt.Sprintf(`"%s"*`, p))
	}
	return strings.Join(quoted, " AND ")
}

func tokenizeSearchTerms(raw string) []string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "`\"'.,:;!?()[]{}<>|")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
