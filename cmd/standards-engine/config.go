// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/standards-engine/internal/practicebase"
	"github.com/pdiddy/standards-engine/pkg/types"
)

// engineConfig resolves the full engine configuration from the config file,
// environment, and flags. Flags win over the file.
func engineConfig(cmd *cobra.Command) (types.EngineConfig, error) {
	var cfg types.EngineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.EngineConfig{}, fmt.Errorf("reading configuration: %w", err)
	}

	if indexDir, _ := cmd.Flags().GetString("index-dir"); indexDir != "" {
		cfg.PracticeBase.IndexDir = indexDir
	}
	if cfg.PracticeBase.IndexDir == "" {
		cfg.PracticeBase.IndexDir = "index"
	}

	return cfg, nil
}

// openStore opens the practice base for a query-side command.
func openStore(cmd *cobra.Command) (*practicebase.Store, error) {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return nil, err
	}
	return practicebase.NewStore(cfg.PracticeBase)
}

// queryFromFlags builds a practice base query from the shared filter flags.
func queryFromFlags(cmd *cobra.Command, args []string) practicebase.Query {
	text, _ := cmd.Flags().GetString("query")
	if text == "" && len(args) > 0 {
		text = args[0]
	}

	category, _ := cmd.Flags().GetString("category")
	severity, _ := cmd.Flags().GetString("severity")
	language, _ := cmd.Flags().GetString("language")
	sourceName, _ := cmd.Flags().GetString("source")
	tag, _ := cmd.Flags().GetString("tag")
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")
	minScore, _ := cmd.Flags().GetFloat64("min-score")

	return practicebase.Query{
		Text: text,
		Filter: practicebase.Filter{
			Source:   sourceName,
			Kind:     types.RecordKind(kind),
			Category: types.Category(category),
			Severity: types.Severity(severity),
			Language: language,
			Tag:      tag,
		},
		MaxResults: limit,
		MinScore:   minScore,
	}
}

// addFilterFlags registers the shared retrieval filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "full-text search query")
	cmd.Flags().String("category", "", "filter by category (naming, formatting, ...)")
	cmd.Flags().String("severity", "", "filter by severity: error, warning, suggestion, info")
	cmd.Flags().String("language", "", "filter by language label")
	cmd.Flags().String("source", "", "filter by source registration name")
	cmd.Flags().String("tag", "", "filter by tag")
	cmd.Flags().String("kind", "", "filter by record kind: practice or overview")
	cmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	cmd.Flags().Float64("min-score", 0, "minimum relevance score for full-text matches")
}
