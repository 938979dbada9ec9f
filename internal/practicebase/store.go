// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package practicebase persists extracted practice records and builds the
// retrieval index. Implements: prd004-practice-base (R1-R4);
//
//	docs/ARCHITECTURE § Practice Base.
package practicebase

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/standards-engine/pkg/types"
)

const dbFile = "practices.db"

// Store manages the practice base SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
	minScore   float64
}

// NewStore opens or creates the practice base SQLite database at
// indexDir/practices.db. It creates the schema if it does not exist (R1.1, R1.2).
func NewStore(cfg types.PracticeBaseConfig) (*Store, error) {
	indexDir := cfg.IndexDir
	if indexDir == "" {
		indexDir = "index"
	}
	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(indexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   indexDir,
		maxResults: maxResults,
		minScore:   cfg.MinScore,
	}

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
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			source TEXT NOT NULL,
			path TEXT NOT NULL,
			practice_id TEXT,
			title TEXT,
			content TEXT NOT NULL,
			category TEXT,
			severity TEXT,
			language TEXT,
			framework TEXT,
			tags TEXT,
			lint_rules TEXT,
			has_good_example INTEGER NOT NULL DEFAULT 0,
			has_bad_example INTEGER NOT NULL DEFAULT 0,
			practice_count INTEGER,
			categories TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_source_path ON records(source, path)`,
		`CREATE INDEX IF NOT EXISTS idx_records_category ON records(category)`,
		`CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE records_fts USING fts5(title, content, content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO records_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// PutFile replaces every record for one source file in a single transaction,
// preserving the extractor's record order (R1.3, R1.4).
func (s *Store) PutFile(ctx context.Context, sourceName, relPath string, records []types.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM records WHERE source = ? AND path = ?`, sourceName, relPath,
	); err != nil {
		return fmt.Errorf("deleting old records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, kind, source, path, practice_id, title, content,
			category, severity, language, framework, tags, lint_rules,
			has_good_example, has_bad_example, practice_count, categories)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		tagsJSON, _ := json.Marshal(r.Meta.Tags)
		rulesJSON, _ := json.Marshal(r.Meta.LintRules)
		categoriesJSON, _ := json.Marshal(r.Meta.Categories)

		_, err := stmt.ExecContext(ctx,
			r.ID, string(r.Kind), r.Meta.Source, r.Meta.Path, r.Meta.PracticeID,
			r.Title, r.Content,
			string(r.Meta.Category), string(r.Meta.Severity),
			r.Meta.Language, r.Meta.Framework,
			string(tagsJSON), string(rulesJSON),
			boolInt(r.Meta.HasGoodExample), boolInt(r.Meta.HasBadExample),
			r.Meta.PracticeCount, string(categoriesJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
