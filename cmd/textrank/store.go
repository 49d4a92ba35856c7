// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/textrank/internal/batch"
	"github.com/pdiddy/textrank/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query the result store (search, show, export)",
	Long: `Store reads the SQLite result store written by batch --store. Use
subcommands to search summaries and keyphrases, show one document, or export.`,
}

// --- search subcommand ---

var storeSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored summaries (full text) and keyphrases",
	RunE:  runStoreSearch,
}

func runStoreSearch(cmd *cobra.Command, args []string) error {
	q := queryFromFlags(cmd, args)
	if q.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query or --keyphrase")
	}

	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	hits, err := st.Search(context.Background(), q)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), hits, jsonOutput)
}

func formatSearchOutput(w io.Writer, hits []store.Hit, jsonOutput bool) error {
	if jsonOutput {
		if hits == nil {
			hits = []store.Hit{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-40s  %s\n", "Rank", "Document", "Keyphrases", "Updated")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for i, h := range hits {
		fmt.Fprintf(w, "%-4d  %-24s  %-40s  %s\n",
			i+1, truncate(h.ID, 24), truncate(strings.Join(h.Keyphrases, ", "), 40), h.UpdatedAt)
	}

	fmt.Fprintf(w, "\n%d results\n", len(hits))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- show subcommand ---

var storeShowCmd = &cobra.Command{
	Use:   "show <document-id>",
	Short: "Print the stored keyphrases and summary of one document",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreShow,
}

func runStoreShow(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := st.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Document: %s\n\nKeyphrases:\n", doc.ID)
	io.WriteString(w, batch.FormatKeyphrases(doc.Keyphrases))
	fmt.Fprintf(w, "\nSummary:\n%s\n", doc.Summary)
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored results to YAML or JSON",
	Long: `Export writes every stored document (or a filtered subset) to
<store-dir>/export.yaml or export.json. Supports the same filter flags as
search for partial exports.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	q := queryFromFlags(cmd, args)

	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	var path string
	switch format {
	case "yaml":
		path, err = st.ExportYAML(context.Background(), q)
	case "json":
		path, err = st.ExportJSON(context.Background(), q)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

func queryFromFlags(cmd *cobra.Command, args []string) store.Query {
	var q store.Query
	if len(args) > 0 {
		q.Text = strings.Join(args, " ")
	}
	q.Keyphrase, _ = cmd.Flags().GetString("keyphrase")
	q.Limit, _ = cmd.Flags().GetInt("limit")
	return q
}

func init() {
	for _, c := range []*cobra.Command{storeSearchCmd, storeExportCmd} {
		c.Flags().String("keyphrase", "", "filter by keyphrase or keyphrase word")
	}
	storeSearchCmd.Flags().Int("limit", 20, "maximum results")
	storeSearchCmd.Flags().Bool("json", false, "output as JSON")
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeExportCmd)
	rootCmd.AddCommand(storeCmd)
}
