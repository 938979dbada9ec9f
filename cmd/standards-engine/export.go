// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the practice base to YAML or JSON",
	Long: `Export writes the full practice base (or a filtered subset) to
export.yaml or export.json in the index directory. Supports the same filter
flags as search for partial exports.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	q := queryFromFlags(cmd, nil)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), q)
	case "json":
		path, err = store.ExportJSON(context.Background(), q)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	addFilterFlags(exportCmd)

	rootCmd.AddCommand(exportCmd)
}
