// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs keyphrase and summary extraction over a directory of
// plain-text articles, writing one keyword file and one summary file per
// article.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/textrank/pkg/types"
)

// Extractor produces the extraction result for one article.
type Extractor interface {
	Extract(id, text string) types.Document
}

// Sink receives every document produced by a batch run.
type Sink func(ctx context.Context, doc types.Document) error

// Options carries optional collaborators for Run.
type Options struct {
	// Sink, when set, is called for every processed article. A sink error
	// marks the article as failed.
	Sink Sink

	// Logger receives per-article failures. Nil disables logging.
	Logger logrus.FieldLogger
}

// Result holds the outcome of a batch run.
type Result struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of articles seen.
func (r Result) Total() int {
	return r.Processed + r.Skipped + r.Failed
}

// HasFailures reports whether any article failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

type status int

const (
	statusProcessed status = iota
	statusSkipped
	statusFailed
	statusCancelled
)

// Run processes every regular, non-hidden file in cfg.ArticlesDir, one
// article per task with at most cfg.Workers tasks in flight. Articles whose
// outputs already exist are skipped unless cfg.Force is set. Per-article
// failures are counted and reported to w; they do not stop the batch.
// Cancelling ctx stops scheduling new articles and Run returns ctx.Err().
func Run(ctx context.Context, ex Extractor, cfg types.BatchConfig, w io.Writer, opts Options) (Result, error) {
	articles, err := ListArticles(cfg.ArticlesDir)
	if err != nil {
		return Result{}, err
	}
	for _, dir := range []string{cfg.KeywordsDir, cfg.SummariesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = types.DefaultWorkers
	}

	var (
		mu     sync.Mutex
		result Result
	)
	report := func(st status, line string) {
		mu.Lock()
		defer mu.Unlock()
		switch st {
		case statusProcessed:
			result.Processed++
		case statusSkipped:
			result.Skipped++
		case statusFailed:
			result.Failed++
		case statusCancelled:
			return
		}
		fmt.Fprintln(w, line)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range articles {
		if gctx.Err() != nil {
			break
		}
		name := name
		g.Go(func() error {
			st, line := processArticle(gctx, ex, cfg, name, opts)
			report(st, line)
			return nil
		})
	}
	g.Wait()

	fmt.Fprintf(w, "\nBatch summary: %d processed, %d skipped, %d failed (total: %d)\n",
		result.Processed, result.Skipped, result.Failed, result.Total())

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func processArticle(ctx context.Context, ex Extractor, cfg types.BatchConfig, name string, opts Options) (status, string) {
	if ctx.Err() != nil {
		return statusCancelled, ""
	}

	kwPath := filepath.Join(cfg.KeywordsDir, name)
	sumPath := filepath.Join(cfg.SummariesDir, name)

	if !cfg.Force && exists(kwPath) && exists(sumPath) {
		return statusSkipped, fmt.Sprintf("skipped:   %s (already exists)", name)
	}

	fail := func(err error) (status, string) {
		if opts.Logger != nil {
			opts.Logger.WithError(err).WithField("article", name).Error("article failed")
		}
		return statusFailed, fmt.Sprintf("failed:    %s (%v)", name, err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.ArticlesDir, name))
	if err != nil {
		return fail(fmt.Errorf("reading article: %w", err))
	}

	doc := ex.Extract(name, string(data))

	if err := os.WriteFile(kwPath, []byte(FormatKeyphrases(doc.Keyphrases)), 0o644); err != nil {
		return fail(fmt.Errorf("writing keyphrases: %w", err))
	}
	if err := os.WriteFile(sumPath, []byte(doc.Summary), 0o644); err != nil {
		return fail(fmt.Errorf("writing summary: %w", err))
	}

	if opts.Sink != nil {
		if err := opts.Sink(ctx, doc); err != nil {
			return fail(fmt.Errorf("storing result: %w", err))
		}
	}

	return statusProcessed, fmt.Sprintf("processed: %s (%d keyphrases)", name, len(doc.Keyphrases))
}

// FormatKeyphrases renders keyphrases one per line, each line terminated
// by a newline.
func FormatKeyphrases(phrases []string) string {
	var b strings.Builder
	for _, p := range phrases {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// ListArticles returns the names of the regular, non-hidden files in dir in
// lexical order.
func ListArticles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading articles directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
