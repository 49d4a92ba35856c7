// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textrank/internal/batch"
	"github.com/pdiddy/textrank/internal/store"
	"github.com/pdiddy/textrank/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract keyphrases and summaries for every article in a directory",
	Long: `Batch reads each plain-text file in --articles-dir and writes a
newline-delimited keyphrase list to --keywords-dir and a summary to
--summaries-dir under the same file name. Articles with existing outputs are
skipped unless --force is given. With --store, results are also saved to the
SQLite result store for later search and export.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := types.BatchConfig{
		ArticlesDir:  viper.GetString("batch.articles_dir"),
		KeywordsDir:  viper.GetString("batch.keywords_dir"),
		SummariesDir: viper.GetString("batch.summaries_dir"),
		Workers:      viper.GetInt("batch.workers"),
		Force:        viper.GetBool("batch.force"),
	}

	var opts batch.Options
	opts.Logger = log

	if useStore, _ := cmd.Flags().GetBool("store"); useStore {
		st, err := store.Open(storeConfig())
		if err != nil {
			return err
		}
		defer st.Close()

		runID, err := st.StartRun(ctx)
		if err != nil {
			return err
		}
		log.WithField("run_id", runID).Info("storing results")
		opts.Sink = func(ctx context.Context, doc types.Document) error {
			return st.Put(ctx, runID, doc)
		}
	}

	result, err := batch.Run(ctx, newExtractor(), cfg, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d article(s) failed", result.Failed)
	}
	return nil
}

func init() {
	f := batchCmd.Flags()
	f.String("articles-dir", "articles", "directory of plain-text articles")
	f.String("keywords-dir", "keywords", "output directory for keyphrase lists")
	f.String("summaries-dir", "summaries", "output directory for summaries")
	f.Int("workers", types.DefaultWorkers, "articles processed concurrently")
	f.Bool("force", false, "regenerate outputs that already exist")
	f.Bool("store", false, "also save results to the result store")

	bindFlags(f, map[string]string{
		"batch.articles_dir":  "articles-dir",
		"batch.keywords_dir":  "keywords-dir",
		"batch.summaries_dir": "summaries-dir",
		"batch.workers":       "workers",
		"batch.force":         "force",
	})

	rootCmd.AddCommand(batchCmd)
}
