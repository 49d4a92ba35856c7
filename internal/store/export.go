// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes matching documents to <dir>/export.yaml and returns the
// path written.
func (s *Store) ExportYAML(ctx context.Context, q Query) (string, error) {
	hits, err := s.exportHits(ctx, q)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(hits)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes matching documents to <dir>/export.json and returns the
// path written.
func (s *Store) ExportJSON(ctx context.Context, q Query) (string, error) {
	hits, err := s.exportHits(ctx, q)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportHits(ctx context.Context, q Query) ([]Hit, error) {
	if q.Limit <= 0 {
		q.Limit = exportLimit
	}
	hits, err := s.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if hits == nil {
		hits = []Hit{}
	}
	return hits, nil
}
