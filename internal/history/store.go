// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite log of completed lookups. The log is
// write-only from the client's point of view: lookups always go to the
// network and never read from it.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/entity-lookup/pkg/types"
)

const (
	dbFile = "history.db"

	// DefaultDir is used when HistoryConfig.Dir is empty.
	DefaultDir = ".entity-lookup"
)

// ErrNotFound is returned by Get when no lookup has the requested id.
var ErrNotFound = errors.New("lookup not found")

// Store manages the history database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates <cfg.Dir>/history.db and its schema.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action TEXT NOT NULL,
			term TEXT NOT NULL,
			language TEXT NOT NULL,
			url TEXT NOT NULL,
			body TEXT NOT NULL,
			received_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_received_at ON lookups(received_at)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_term ON lookups(term)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores l and returns its new id. l.ID is ignored.
func (s *Store) Record(ctx context.Context, l types.Lookup) (int64, error) {
	ts := l.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO lookups (action, term, language, url, body, received_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(l.Action), l.Term, l.Language, l.URL, l.Body, ts.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting lookup: %w", err)
	}
	return res.LastInsertId()
}

// ListOptions filters List results.
type ListOptions struct {
	// Query is a literal substring of the term, case-insensitive for ASCII.
	// Empty matches all.
	Query string
	// Limit caps the number of rows. Zero uses the store default.
	Limit int
}

// List returns recorded lookups, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.Lookup, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		query string
		args  []any
	)
	if q := strings.TrimSpace(opts.Query); q != "" {
		query = `SELECT id, action, term, language, url, body, received_at
			FROM lookups WHERE term LIKE ? ESCAPE '\'
			ORDER BY id DESC LIMIT ?`
		args = []any{"%" + likeEscape(q) + "%", limit}
	} else {
		query = `SELECT id, action, term, language, url, body, received_at
			FROM lookups ORDER BY id DESC LIMIT ?`
		args = []any{limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying lookups: %w", err)
	}
	defer rows.Close()

	var out []types.Lookup
	for rows.Next() {
		l, err := scanLookup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Get returns the lookup with the given id.
func (s *Store) Get(ctx context.Context, id int64) (types.Lookup, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, action, term, language, url, body, received_at FROM lookups WHERE id = ?`, id)
	l, err := scanLookup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Lookup{}, fmt.Errorf("lookup %d: %w", id, ErrNotFound)
	}
	return l, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLookup(sc scanner) (types.Lookup, error) {
	var (
		l        types.Lookup
		action   string
		received string
	)
	if err := sc.Scan(&l.ID, &action, &l.Term, &l.Language, &l.URL, &l.Body, &received); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return l, err
		}
		return l, fmt.Errorf("scanning lookup: %w", err)
	}
	l.Action = types.Action(action)
	if t, err := time.Parse(time.RFC3339Nano, received); err == nil {
		l.Timestamp = t
	}
	return l, nil
}

// likeEscape escapes LIKE wildcards in q so user input matches literally.
func likeEscape(q string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(q)
}
