// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package practicebase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// ExportYAML writes the practice base to indexDir/export.yaml. It supports
// the same filters as Search for partial exports (R4.1, R4.3).
func (s *Store) ExportYAML(ctx context.Context, q Query) (string, error) {
	records, err := s.exportRecords(ctx, q)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.yaml")
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the practice base to indexDir/export.json (R4.2, R4.3).
func (s *Store) ExportJSON(ctx context.Context, q Query) (string, error) {
	records, err := s.exportRecords(ctx, q)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context, q Query) ([]types.Record, error) {
	if q.MaxResults <= 0 {
		q.MaxResults = allLimit
	}
	results, err := s.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	records := make([]types.Record, len(results))
	for i, r := range results {
		records[i] = r.Record
	}
	return records, nil
}
