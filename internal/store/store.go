// Package store persists scan results in a SQLite database so repeated
// scans can skip files whose content has not changed.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mvp-joe/csift/internal/extract"
)

// Store wraps the scan database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the scan database at the given path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	version, err := getSchemaVersion(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}
	if version == "0" {
		if err := createSchema(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// HasFile reports whether a summary is already stored for this exact file
// content.
func (s *Store) HasFile(path, hash string) bool {
	var stored string
	err := s.db.QueryRow("SELECT hash FROM files WHERE path = ?", path).Scan(&stored)
	return err == nil && stored == hash
}

// BeginSession records the start of a scan and returns its id.
func (s *Store) BeginSession(root string, fileCount int) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		"INSERT INTO scan_sessions (id, root, started_at, file_count) VALUES (?, ?, ?, ?)",
		id, root, now, fileCount,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record scan session: %w", err)
	}
	return id, nil
}

// SaveSummary upserts the summary for a file.
func (s *Store) SaveSummary(sessionID, path, hash string, summary *extract.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary for %s: %w", path, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO files (path, hash, strategy, summary, session_id, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			strategy = excluded.strategy,
			summary = excluded.summary,
			session_id = excluded.session_id,
			extracted_at = excluded.extracted_at
	`, path, hash, summary.Strategy, string(payload), sessionID, now)
	if err != nil {
		return fmt.Errorf("failed to save summary for %s: %w", path, err)
	}
	return nil
}

// LoadSummary returns the stored summary for a file, or sql.ErrNoRows
// wrapped when none exists.
func (s *Store) LoadSummary(path string) (*extract.Summary, error) {
	var payload string
	err := s.db.QueryRow("SELECT summary FROM files WHERE path = ?", path).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("no stored summary for %s: %w", path, err)
	}

	var summary extract.Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, fmt.Errorf("corrupt stored summary for %s: %w", path, err)
	}
	return &summary, nil
}

// FileCount returns the number of files with stored summaries.
func (s *Store) FileCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}
