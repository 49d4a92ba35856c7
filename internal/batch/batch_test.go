// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textrank/pkg/types"
)

// fakeExtractor returns the first two words as keyphrases and the text
// upper-cased as the summary.
type fakeExtractor struct {
	calls atomic.Int32
}

func (f *fakeExtractor) Extract(id, text string) types.Document {
	f.calls.Add(1)
	words := strings.Fields(text)
	if len(words) > 2 {
		words = words[:2]
	}
	return types.Document{ID: id, Keyphrases: words, Summary: strings.ToUpper(text)}
}

func setupDirs(t *testing.T, articles map[string]string) types.BatchConfig {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := types.BatchConfig{
		ArticlesDir:  filepath.Join(tmpDir, "articles"),
		KeywordsDir:  filepath.Join(tmpDir, "keywords"),
		SummariesDir: filepath.Join(tmpDir, "summaries"),
		Workers:      2,
	}
	require.NoError(t, os.MkdirAll(cfg.ArticlesDir, 0o755))
	for name, text := range articles {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.ArticlesDir, name), []byte(text), 0o644))
	}
	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun(t *testing.T) {
	cfg := setupDirs(t, map[string]string{
		"dino.txt":  "iguanodon thumb spikes",
		"space.txt": "quantum chromodynamics",
		".hidden":   "ignored",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ArticlesDir, "subdir"), 0o755))

	var out bytes.Buffer
	ex := &fakeExtractor{}
	result, err := Run(context.Background(), ex, cfg, &out, Options{})
	require.NoError(t, err)

	assert.Equal(t, Result{Processed: 2}, result)
	assert.False(t, result.HasFailures())
	assert.Equal(t, int32(2), ex.calls.Load())

	assert.Equal(t, "iguanodon\nthumb\n", readFile(t, filepath.Join(cfg.KeywordsDir, "dino.txt")))
	assert.Equal(t, "IGUANODON THUMB SPIKES", readFile(t, filepath.Join(cfg.SummariesDir, "dino.txt")))
	assert.Equal(t, "quantum\nchromodynamics\n", readFile(t, filepath.Join(cfg.KeywordsDir, "space.txt")))

	assert.Contains(t, out.String(), "processed: dino.txt (2 keyphrases)")
	assert.Contains(t, out.String(), "Batch summary: 2 processed, 0 skipped, 0 failed (total: 2)")
	assert.NoFileExists(t, filepath.Join(cfg.KeywordsDir, ".hidden"))
}

func TestRun_SkipsExisting(t *testing.T) {
	cfg := setupDirs(t, map[string]string{"dino.txt": "iguanodon thumb"})
	ex := &fakeExtractor{}

	_, err := Run(context.Background(), ex, cfg, &bytes.Buffer{}, Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	result, err := Run(context.Background(), ex, cfg, &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, result)
	assert.Contains(t, out.String(), "skipped:   dino.txt")
	assert.Equal(t, int32(1), ex.calls.Load())

	cfg.Force = true
	result, err = Run(context.Background(), ex, cfg, &bytes.Buffer{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Processed: 1}, result)
	assert.Equal(t, int32(2), ex.calls.Load())
}

func TestRun_SinkFailureCounted(t *testing.T) {
	cfg := setupDirs(t, map[string]string{"a.txt": "alpha", "b.txt": "beta"})

	var stored []string
	sink := func(_ context.Context, doc types.Document) error {
		if doc.ID == "b.txt" {
			return errors.New("disk full")
		}
		stored = append(stored, doc.ID)
		return nil
	}

	cfg.Workers = 1
	var out bytes.Buffer
	result, err := Run(context.Background(), &fakeExtractor{}, cfg, &out, Options{Sink: sink})
	require.NoError(t, err)

	assert.Equal(t, Result{Processed: 1, Failed: 1}, result)
	assert.True(t, result.HasFailures())
	assert.Equal(t, []string{"a.txt"}, stored)
	assert.Contains(t, out.String(), "failed:    b.txt (storing result: disk full)")
}

func TestRun_MissingArticlesDir(t *testing.T) {
	cfg := types.BatchConfig{ArticlesDir: filepath.Join(t.TempDir(), "nope")}
	_, err := Run(context.Background(), &fakeExtractor{}, cfg, &bytes.Buffer{}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading articles directory")
}

func TestRun_Cancelled(t *testing.T) {
	cfg := setupDirs(t, map[string]string{"a.txt": "alpha", "b.txt": "beta"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := &fakeExtractor{}
	result, err := Run(ctx, ex, cfg, &bytes.Buffer{}, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Total())
	assert.Zero(t, ex.calls.Load())
}

func TestFormatKeyphrases(t *testing.T) {
	assert.Equal(t, "", FormatKeyphrases(nil))
	assert.Equal(t, "data science\nanalysis\n", FormatKeyphrases([]string{"data science", "analysis"}))
}

func TestListArticles(t *testing.T) {
	cfg := setupDirs(t, map[string]string{"b.txt": "b", "a.txt": "a", ".DS_Store": ""})
	names, err := ListArticles(cfg.ArticlesDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}
