// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/standards-engine/internal/ingest"
	"github.com/pdiddy/standards-engine/internal/practicebase"
	"github.com/pdiddy/standards-engine/pkg/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [source]",
	Short: "Extract practices from registered sources into the practice base",
	Long: `Ingest scans every registered source for coding-standard documents,
runs the markdown practice extractor (or the structured rule-list parser)
over each file, and indexes the resulting records into the local SQLite
practice base with FTS5 full-text search.

With a source name argument, only that registration is ingested. Files that
cannot be read and sources whose roots are missing are reported per item;
the rest of the batch continues.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources registered: add a sources list to the config file")
	}

	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Ingest.Workers = workers
	}

	if len(args) == 1 {
		picked, err := pickSource(cfg.Sources, args[0])
		if err != nil {
			return err
		}
		cfg.Sources = []types.SourceConfig{picked}
	}

	store, err := practicebase.NewStore(cfg.PracticeBase)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := ingest.Run(context.Background(), store, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed ingestion", summary.Failed)
	}
	return nil
}

func pickSource(sources []types.SourceConfig, name string) (types.SourceConfig, error) {
	for _, src := range sources {
		if src.Name == name {
			return src, nil
		}
	}
	return types.SourceConfig{}, fmt.Errorf("source %q is not registered", name)
}

func init() {
	ingestCmd.Flags().Int("workers", 0, "concurrent file extractions (0 = default)")

	rootCmd.AddCommand(ingestCmd)
}
