// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/standards-engine/internal/practicebase"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the practice base with full-text relevance and filters",
	Long: `Search queries the practice base using FTS5 full-text search, metadata
filters (category, severity, language, source, tag, kind), or a combination
of both. Full-text results are ranked by relevance and cut off below the
configured minimum score.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	q := queryFromFlags(cmd, args)
	if q.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --category, --severity, --language, --source, or --tag")
	}

	results, err := store.Search(context.Background(), q)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []practicebase.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-22s  %-10s  %-10s  %s\n",
		"Rank", "ID", "Title", "Category", "Severity", "Score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		id := r.ID
		if len(id) > 40 {
			id = id[:37] + "..."
		}
		title := r.Title
		if len(title) > 22 {
			title = title[:19] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-22s  %-10s  %-10s  %.2f\n",
			i+1, id, title, r.Meta.Category, r.Meta.Severity, r.Score)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	addFilterFlags(searchCmd)
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
