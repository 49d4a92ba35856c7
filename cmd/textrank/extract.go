// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/textrank/internal/batch"
	"github.com/pdiddy/textrank/internal/textrank"
	"github.com/pdiddy/textrank/pkg/types"
)

// --- keyphrases ---

var keyphrasesCmd = &cobra.Command{
	Use:   "keyphrases [files...]",
	Short: "Print the keyphrases of each file (or stdin), one per line",
	Long: `Keyphrases tags the text, keeps nouns, proper nouns, and adjectives as
candidates, ranks them, and prints the top third. Adjacent top-ranked words
are merged into two-word phrases.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex := newExtractor()
		return forEachInput(cmd, args, func(id, text string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), batch.FormatKeyphrases(ex.ExtractKeyphrases(text)))
			return err
		})
	},
}

// --- summarize ---

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Print a ranked extractive summary of each file (or stdin)",
	Long: `Summarize splits the text into sentences, ranks them, and prints the
ranked sentences truncated to --summary-words words. Sentences appear in
rank order, not document order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex := newExtractor()
		return forEachInput(cmd, args, func(id, text string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ex.ExtractSentences(text))
			return err
		})
	},
}

// --- extract ---

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Print keyphrases, summary, and ranking diagnostics as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "yaml" && format != "json" {
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}

		ex := newExtractor()
		var docs []types.Document
		err := forEachInput(cmd, args, func(id, text string) error {
			docs = append(docs, ex.Extract(id, text))
			return nil
		})
		if err != nil {
			return err
		}
		return writeDocuments(cmd.OutOrStdout(), docs, format)
	},
}

func newExtractor() *textrank.Extractor {
	return textrank.New(textRankConfig(), textrank.Deps{Logger: log})
}

// forEachInput calls fn with the contents of each file in args, or of stdin
// when args is empty.
func forEachInput(cmd *cobra.Command, args []string, fn func(id, text string) error) error {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return fn("stdin", string(data))
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := fn(filepath.Base(path), string(data)); err != nil {
			return err
		}
	}
	return nil
}

func writeDocuments(w io.Writer, docs []types.Document, format string) error {
	if docs == nil {
		docs = []types.Document{}
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(docs)
}

func init() {
	extractCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(keyphrasesCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(extractCmd)
}
