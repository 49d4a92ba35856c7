// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extraction results (keyphrases and summaries) in
// SQLite and supports full-text and keyphrase lookups. Ranking graphs are
// never stored.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/textrank/pkg/types"
)

const dbFile = "textrank.db"

// ErrNotFound is returned by Get for unknown document IDs.
var ErrNotFound = errors.New("document not found")

// Store manages the result database.
type Store struct {
	db  *sql.DB
	dir string
}

// Open opens or creates the database at cfg.Dir/textrank.db and creates
// the schema if needed.
func Open(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "index"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
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

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			run_id TEXT REFERENCES runs(id),
			summary TEXT NOT NULL,
			word_candidates INTEGER,
			sentence_candidates INTEGER,
			converged INTEGER,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS keyphrases (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			phrase TEXT NOT NULL,
			PRIMARY KEY (document_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_keyphrases_phrase ON keyphrases(phrase)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts4(id, summary)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// StartRun records a new batch run and returns its ID.
func (s *Store) StartRun(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// Put inserts or replaces doc under runID in a single transaction. An
// empty runID stores the document without a run.
func (s *Store) Put(ctx context.Context, runID string, doc types.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var run any
	if runID != "" {
		run = runID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, run_id, summary, word_candidates, sentence_candidates, converged, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			run_id=excluded.run_id, summary=excluded.summary,
			word_candidates=excluded.word_candidates,
			sentence_candidates=excluded.sentence_candidates,
			converged=excluded.converged, updated_at=excluded.updated_at`,
		doc.ID, run, doc.Summary, doc.WordCandidates, doc.SentenceCandidates,
		doc.Converged, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting document %s: %w", doc.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM keyphrases WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("deleting old keyphrases: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO keyphrases (document_id, position, phrase) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range doc.Keyphrases {
		if _, err := stmt.ExecContext(ctx, doc.ID, i, p); err != nil {
			return fmt.Errorf("inserting keyphrase %q: %w", p, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents_fts WHERE id = ?`, doc.ID); err != nil {
		return fmt.Errorf("clearing search index: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents_fts (id, summary) VALUES (?, ?)`, doc.ID, doc.Summary,
	); err != nil {
		return fmt.Errorf("indexing summary: %w", err)
	}

	return tx.Commit()
}

// Get returns the stored document with the given ID.
func (s *Store) Get(ctx context.Context, id string) (types.Document, error) {
	doc := types.Document{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT summary, word_candidates, sentence_candidates, converged FROM documents WHERE id = ?`, id,
	).Scan(&doc.Summary, &doc.WordCandidates, &doc.SentenceCandidates, &doc.Converged)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return types.Document{}, fmt.Errorf("looking up document: %w", err)
	}

	doc.Keyphrases, err = s.keyphrases(ctx, id)
	if err != nil {
		return types.Document{}, err
	}
	return doc, nil
}

func (s *Store) keyphrases(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT phrase FROM keyphrases WHERE document_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying keyphrases: %w", err)
	}
	defer rows.Close()

	phrases := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning keyphrase: %w", err)
		}
		phrases = append(phrases, p)
	}
	return phrases, rows.Err()
}
