package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		session_id       TEXT NOT NULL DEFAULT '',
		project_root     TEXT NOT NULL,
		checklist_path   TEXT NOT NULL DEFAULT '',
		level            TEXT NOT NULL
		                 CHECK(level IN ('full','normal','light','minimal')),
		usage            INTEGER NOT NULL,
		transcript_lines INTEGER NOT NULL DEFAULT 0,
		change_source    TEXT NOT NULL
		                 CHECK(change_source IN ('vcs','filesystem','none')),
		changed_count    INTEGER NOT NULL DEFAULT 0,
		applied_count    INTEGER NOT NULL DEFAULT 0,
		percent          INTEGER NOT NULL DEFAULT 0,
		skip_reason      TEXT NOT NULL DEFAULT '',
		started_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_project_started ON runs(project_root, started_at)`,

	`CREATE TABLE IF NOT EXISTS run_files (
		run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		path     TEXT NOT NULL,
		name     TEXT NOT NULL,
		mutation TEXT NOT NULL
		         CHECK(mutation IN ('checked','appended','pending','unchanged','failed')),
		error    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, position)
	)`,
}
