package store

import (
	"database/sql"
	"fmt"
	"time"
)

const schemaVersion = "1.0"

const createSessionsTable = `
CREATE TABLE scan_sessions (
	id TEXT PRIMARY KEY,
	root TEXT NOT NULL,
	started_at TEXT NOT NULL,
	file_count INTEGER NOT NULL DEFAULT 0
)`

const createFilesTable = `
CREATE TABLE files (
	path TEXT PRIMARY KEY,
	hash TEXT NOT NULL,
	strategy TEXT NOT NULL,
	summary TEXT NOT NULL,
	session_id TEXT REFERENCES scan_sessions(id),
	extracted_at TEXT NOT NULL
)`

const createMetadataTable = `
CREATE TABLE scan_metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// createSchema creates all tables inside one transaction so schema
// creation succeeds or fails as a whole.
func createSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	tables := []struct {
		name string
		ddl  string
	}{
		{"scan_sessions", createSessionsTable},
		{"files", createFilesTable},
		{"scan_metadata", createMetadataTable},
	}
	for _, table := range tables {
		if _, err := tx.Exec(table.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
	}

	if _, err := tx.Exec("CREATE INDEX idx_files_session ON files(session_id)"); err != nil {
		return fmt.Errorf("failed to create session index: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT INTO scan_metadata (key, value, updated_at) VALUES ('schema_version', ?, ?)",
		schemaVersion, now,
	); err != nil {
		return fmt.Errorf("failed to bootstrap scan_metadata: %w", err)
	}

	return tx.Commit()
}

// getSchemaVersion retrieves the schema version from scan_metadata.
// Returns "0" if the table doesn't exist (new database).
func getSchemaVersion(db *sql.DB) (string, error) {
	var tableExists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='scan_metadata'").Scan(&tableExists)
	if err != nil {
		return "", fmt.Errorf("failed to check scan_metadata existence: %w", err)
	}
	if tableExists == 0 {
		return "0", nil
	}

	var version string
	err = db.QueryRow("SELECT value FROM scan_metadata WHERE key = 'schema_version'").Scan(&version)
	if err == sql.ErrNoRows {
		return "0", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
