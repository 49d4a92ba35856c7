// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/textrank/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Dir: filepath.Join(t.TempDir(), "index")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var (
	dinoDoc = types.Document{
		ID:                 "dino.txt",
		Keyphrases:         []string{"thumb spikes", "iguanodon", "predator"},
		Summary:            "The iguanodon whips out her stiletto thumb spikes.",
		WordCandidates:     42,
		SentenceCandidates: 11,
		Converged:          true,
	}
	spaceDoc = types.Document{
		ID:                 "space.txt",
		Keyphrases:         []string{"quantum chromodynamics", "gluons"},
		Summary:            "Quantum chromodynamics describes strong interactions between quarks and gluons.",
		WordCandidates:     7,
		SentenceCandidates: 2,
	}
)

func TestPutGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	runID, err := s.StartRun(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, runID, dinoDoc))

	got, err := s.Get(ctx, "dino.txt")
	require.NoError(t, err)
	assert.Equal(t, dinoDoc, got)
}

func TestPut_Replaces(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "", dinoDoc))

	updated := dinoDoc
	updated.Keyphrases = []string{"blood"}
	updated.Summary = "Blood and jelly."
	require.NoError(t, s.Put(ctx, "", updated))

	got, err := s.Get(ctx, "dino.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"blood"}, got.Keyphrases)
	assert.Equal(t, "Blood and jelly.", got.Summary)

	hits, err := s.Search(ctx, Query{Text: "stiletto"})
	require.NoError(t, err)
	assert.Empty(t, hits, "stale summary must leave the search index")
}

func TestGet_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "missing.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPut_UnknownRun(t *testing.T) {
	s := testStore(t)
	err := s.Put(context.Background(), "no-such-run", dinoDoc)
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "", dinoDoc))
	require.NoError(t, s.Put(ctx, "", spaceDoc))

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "all", query: Query{}, want: []string{"dino.txt", "space.txt"}},
		{name: "full text", query: Query{Text: "quarks"}, want: []string{"space.txt"}},
		{name: "full text no match", query: Query{Text: "velociraptor"}, want: nil},
		{name: "exact keyphrase", query: Query{Keyphrase: "iguanodon"}, want: []string{"dino.txt"}},
		{name: "word of a phrase", query: Query{Keyphrase: "quantum"}, want: []string{"space.txt"}},
		{name: "second word of a phrase", query: Query{Keyphrase: "spikes"}, want: []string{"dino.txt"}},
		{name: "combined filters", query: Query{Text: "iguanodon", Keyphrase: "gluons"}, want: nil},
		{name: "limit", query: Query{Limit: 1}, want: []string{"dino.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := s.Search(ctx, tt.query)
			require.NoError(t, err)
			var ids []string
			for _, h := range hits {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearch_IncludesKeyphrases(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "", spaceDoc))

	hits, err := s.Search(ctx, Query{Keyphrase: "gluons"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, spaceDoc.Keyphrases, hits[0].Keyphrases)
	assert.NotEmpty(t, hits[0].UpdatedAt)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "", dinoDoc))
	require.NoError(t, s.Put(ctx, "", spaceDoc))

	yamlPath, err := s.ExportYAML(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "export.yaml"), yamlPath)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []Hit
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, dinoDoc.Keyphrases, fromYAML[0].Keyphrases)

	jsonPath, err := s.ExportJSON(ctx, Query{Keyphrase: "gluons"})
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []Hit
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "space.txt", fromJSON[0].ID)
}

func TestExport_Empty(t *testing.T) {
	s := testStore(t)
	path, err := s.ExportJSON(context.Background(), Query{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
