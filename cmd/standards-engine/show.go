// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one record by its global identifier",
	Long: `Show prints a single record's canonical content and metadata. Practice
identifiers take the form "<source>:<path>#<slug>"; overview identifiers
drop the fragment.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Println(record.Content)
	fmt.Printf("\n--\nid:       %s\nkind:     %s\ncategory: %s\nseverity: %s\nlanguage: %s\n",
		record.ID, record.Kind, record.Meta.Category, record.Meta.Severity, record.Meta.Language)
	if len(record.Meta.Tags) > 0 {
		fmt.Printf("tags:     %s\n", strings.Join(record.Meta.Tags, ", "))
	}
	if len(record.Meta.LintRules) > 0 {
		fmt.Printf("rules:    %s\n", strings.Join(record.Meta.LintRules, ", "))
	}
	return nil
}

func init() {
	showCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(showCmd)
}
