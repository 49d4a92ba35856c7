// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/textrank/pkg/types"
)

const defaultLimit = 20

// Query holds search parameters. Empty fields do not filter.
type Query struct {
	// Text is a full-text query over summaries.
	Text string

	// Keyphrase matches documents with this keyphrase, either as a whole
	// entry or as one word of a two-word phrase.
	Keyphrase string

	// Limit caps the number of results (default 20).
	Limit int
}

// IsEmpty reports whether the query has no filters.
func (q Query) IsEmpty() bool {
	return q.Text == "" && q.Keyphrase == ""
}

// Hit is a stored document returned by Search.
type Hit struct {
	types.Document `yaml:",inline"`
	RunID          string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	UpdatedAt      string `json:"updated_at" yaml:"updated_at"`
}

// Search returns stored documents matching q, ordered by document ID.
// An empty query returns every document up to the limit.
func (s *Store) Search(ctx context.Context, q Query) ([]Hit, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT d.id, COALESCE(d.run_id, ''), d.summary, d.word_candidates,
			d.sentence_candidates, d.converged, COALESCE(d.updated_at, '')
		FROM documents d
		WHERE 1=1`)

	if q.Text != "" {
		qb.WriteString(` AND d.id IN (SELECT id FROM documents_fts WHERE summary MATCH ?)`)
		args = append(args, q.Text)
	}
	if q.Keyphrase != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM keyphrases k WHERE k.document_id = d.id
			AND (k.phrase = ? OR k.phrase LIKE ? OR k.phrase LIKE ?))`)
		args = append(args, q.Keyphrase, q.Keyphrase+" %", "% "+q.Keyphrase)
	}

	qb.WriteString(` ORDER BY d.id LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.RunID, &h.Summary, &h.WordCandidates,
			&h.SentenceCandidates, &h.Converged, &h.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range hits {
		phrases, err := s.keyphrases(ctx, hits[i].ID)
		if err != nil {
			return nil, err
		}
		hits[i].Keyphrases = phrases
	}
	return hits, nil
}
