// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/standards-engine/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records in document order, with optional filters",
	Long: `List walks the practice base in source, path, and document order. Unlike
search it never ranks; use it to browse a source or audit what a file
produced.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	q := queryFromFlags(cmd, nil)
	records, err := store.All(context.Background(), q.Filter)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	for _, r := range records {
		line := fmt.Sprintf("%-9s %s", r.Kind, r.ID)
		if r.Kind == types.KindPractice {
			line += fmt.Sprintf("  [%s/%s]", r.Meta.Category, r.Meta.Severity)
		} else if r.Meta.PracticeCount > 0 {
			line += fmt.Sprintf("  (%d practices: %s)",
				r.Meta.PracticeCount, strings.Join(r.Meta.Categories, ", "))
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%d records\n", len(records))
	return nil
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(listCmd)
}
