// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest drives the batch pipeline: enumerate files per source,
// extract records, and index them into the practice base. The batch is
// partial-failure tolerant: one bad file or one bad source never aborts the
// rest. Implements: prd005-ingestion (R1-R3);
//
//	docs/ARCHITECTURE § Ingestion.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"

	"github.com/pdiddy/standards-engine/internal/extract"
	"github.com/pdiddy/standards-engine/internal/practicebase"
	"github.com/pdiddy/standards-engine/internal/source"
	"github.com/pdiddy/standards-engine/internal/structured"
	"github.com/pdiddy/standards-engine/pkg/types"
)

const defaultWorkers = 4

// Summary holds counts from an ingestion run (R3.1).
type Summary struct {
	Files     int
	Practices int
	Skipped   int
	Failed    int
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Files + s.Skipped + s.Failed
}

// add folds another summary into this one.
func (s *Summary) add(o Summary) {
	s.Files += o.Files
	s.Practices += o.Practices
	s.Skipped += o.Skipped
	s.Failed += o.Failed
}

// Run ingests every configured source. A source whose root is missing is
// reported and counted failed; the remaining sources still run (R1.2).
func Run(ctx context.Context, store *practicebase.Store, cfg types.EngineConfig, w io.Writer) (Summary, error) {
	var summary Summary

	for _, src := range cfg.Sources {
		srcSummary, err := RunSource(ctx, store, src, cfg.Ingest.Workers, w)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			fmt.Fprintf(w, "failed  source %s: %v\n", src.Name, err)
			summary.Failed++
			continue
		}
		summary.add(srcSummary)
	}

	fmt.Fprintf(w, "\nindexed: %d files (%d practices), skipped: %d, failed: %d\n",
		summary.Files, summary.Practices, summary.Skipped, summary.Failed)

	return summary, nil
}

// fileResult carries one file's extraction outcome from a worker back to the
// sequential indexing loop.
type fileResult struct {
	relPath  string
	records  []types.Record
	warnings []string
	skip     error
	err      error
}

// RunSource scans one source and extracts its files on a bounded worker
// pool. Files are independent work units; record order within each file is
// preserved because a file is always one task (R2.1-R2.3). Store writes
// happen sequentially afterwards, in scan order.
func RunSource(ctx context.Context, store *practicebase.Store, src types.SourceConfig, workers int, w io.Writer) (Summary, error) {
	paths, err := source.Scan(src)
	if err != nil {
		return Summary{}, err
	}

	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]fileResult, len(paths))
	p := pool.New().WithMaxGoroutines(workers)
	for i, relPath := range paths {
		i, relPath := i, relPath
		p.Go(func() {
			results[i] = processFile(src, relPath)
		})
	}
	p.Wait()

	var summary Summary

	for _, res := range results {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := src.Name + ":" + res.relPath

		for _, warning := range res.warnings {
			fmt.Fprintf(w, "warning %s: %s\n", name, warning)
		}

		switch {
		case res.skip != nil:
			fmt.Fprintf(w, "skipped %s: %v\n", name, res.skip)
			summary.Skipped++
		case res.err != nil:
			fmt.Fprintf(w, "failed  %s: %v\n", name, res.err)
			summary.Failed++
		default:
			if err := store.PutFile(ctx, src.Name, res.relPath, res.records); err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", name, err)
				summary.Failed++
				continue
			}
			count := practiceCount(res.records)
			fmt.Fprintf(w, "indexed %s (%d practices)\n", name, count)
			summary.Files++
			summary.Practices += count
		}
	}

	return summary, nil
}

// processFile reads and extracts one file. Markdown takes the heuristic
// extractor, which never fails; structured files take the validating parser,
// whose unrecognized-shape result is a skip, not a failure (R1.3).
func processFile(src types.SourceConfig, relPath string) fileResult {
	res := fileResult{relPath: relPath}

	data, err := os.ReadFile(filepath.Join(src.Root, filepath.FromSlash(relPath)))
	if err != nil {
		res.err = fmt.Errorf("reading file: %w", err)
		return res
	}

	if source.IsMarkdown(relPath) {
		res.records = extract.ExtractDocument(src, relPath, string(data))
		return res
	}

	records, warnings, err := structured.ParseFile(src, relPath, data)
	if err != nil {
		if errors.Is(err, structured.ErrUnrecognizedShape) {
			res.skip = err
		} else {
			res.err = err
		}
		return res
	}
	res.records = records
	res.warnings = warnings
	return res
}

func practiceCount(records []types.Record) int {
	count := 0
	for _, r := range records {
		if r.Kind == types.KindPractice {
			count++
		}
	}
	return count
}
