// Package store persists shell entries and the command journal in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/log"
	"github.com/footprint-tools/clik/internal/store/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const timeFormat = time.RFC3339Nano

// Store wraps a SQLite connection. It implements domain.EntryStore and
// domain.Journal.
type Store struct {
	db     *sql.DB
	path   string
	logger domain.Logger
}

// New opens the database at path, creating its directory, and runs any
// pending migrations. A nil logger discards messages.
func New(ctx context.Context, path string, logger domain.Logger) (*Store, error) {
	if logger == nil {
		logger = log.NopLogger{}
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	logger.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == MemoryPath {
		// every pooled connection would otherwise get its own database
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(ctx, db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	version, err := migrations.CurrentVersion(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	logger.Debug("store: database ready, schema version %d", version)
	return &Store{db: db, path: path, logger: logger}, nil
}

// NewWithDB creates a Store from an already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, logger: log.NopLogger{}}
}

func configureSQLite(ctx context.Context, db *sql.DB, path string) error {
	pragmas := []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == MemoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Path returns the database file path, empty for NewWithDB stores.
func (s *Store) Path() string {
	return s.path
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put creates or replaces an entry.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put entry %q: %w", key, err)
	}
	return nil
}

// Get returns the value of key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get entry %q: %w", key, err)
	}
	return value, true, nil
}

// Delete removes key and reports whether it existed.
func (s *Store) Delete(key string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM entries WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("delete entry %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete entry %q: %w", key, err)
	}
	return n > 0, nil
}

// Keys returns all entry keys in ascending order.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Record appends a journal entry. A zero CreatedAt is stamped with now.
func (s *Store) Record(entry domain.JournalEntry) error {
	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO journal (session_id, line, command, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Line,
		entry.Command,
		entry.Error,
		entry.Duration.Milliseconds(),
		created.UTC().Format(timeFormat),
	)
	if err != nil {
		s.logger.Warn("store: journal write failed: %v", err)
		return fmt.Errorf("record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit journal entries, newest first. A limit of
// zero or less returns everything.
func (s *Store) Recent(limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, line, command, error, duration_ms, created_at
		 FROM journal ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var (
			e          domain.JournalEntry
			durationMs int64
			createdAt  string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.Command, &e.Error, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		created, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse journal time %q: %w", createdAt, err)
		}
		e.CreatedAt = created.Local()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var (
	_ domain.EntryStore = (*Store)(nil)
	_ domain.Journal    = (*Store)(nil)
)
