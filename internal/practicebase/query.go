// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package practicebase

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// Filter narrows retrieval by record metadata (R3.1-R3.3).
type Filter struct {
	Source   string
	Kind     types.RecordKind
	Category types.Category
	Severity types.Severity
	Language string
	Tag      string
}

// Query holds parameters for practice base searches (R3).
type Query struct {
	// Text is the FTS5 full-text search string. Empty means filter-only listing.
	Text string

	Filter

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int

	// MinScore overrides the store's relevance threshold when positive.
	MinScore float64
}

// IsEmpty reports whether the query has no search terms or filters.
func (q Query) IsEmpty() bool {
	return q.Text == "" && q.Source == "" && q.Kind == "" && q.Category == "" &&
		q.Severity == "" && q.Language == "" && q.Tag == ""
}

// SearchResult is a record with its full-text relevance score. Score is zero
// for filter-only listings.
type SearchResult struct {
	types.Record
	Score float64 `json:"score" yaml:"score"`
}

// Get returns one record by its global identifier (R2.3).
func (s *Store) Get(ctx context.Context, id string) (types.Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+`, 0.0 AS rank FROM records r WHERE r.id = ?`, id)

	r, _, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return types.Record{}, fmt.Errorf("record %s not found", id)
	}
	if err != nil {
		return types.Record{}, fmt.Errorf("looking up record: %w", err)
	}
	return r, nil
}

// All lists records matching the filter, ordered by source, path, and
// insertion order — the extractor's document order (R3.5).
func (s *Store) All(ctx context.Context, f Filter) ([]types.Record, error) {
	results, err := s.Search(ctx, Query{Filter: f, MaxResults: allLimit})
	if err != nil {
		return nil, err
	}
	records := make([]types.Record, len(results))
	for i, res := range results {
		records[i] = res.Record
	}
	return records, nil
}

const allLimit = 100000

// Search queries the practice base with optional full-text search and
// metadata filters. Full-text results are ranked by bm25 relevance and cut
// off below the minimum score; filter-only queries preserve document order
// (R3.1-R3.6).
func (s *Store) Search(ctx context.Context, q Query) ([]SearchResult, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}
	minScore := q.MinScore
	if minScore <= 0 {
		minScore = s.minScore
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = q.Text != ""
	)

	if useFTS {
		qb.WriteString(selectColumns + `, records_fts.rank
			FROM records_fts
			JOIN records r ON r.rowid = records_fts.rowid
			WHERE records_fts MATCH ?`)
		args = append(args, q.Text)
	} else {
		qb.WriteString(selectColumns + `, 0.0 AS rank
			FROM records r
			WHERE 1=1`)
	}

	if q.Source != "" {
		qb.WriteString(` AND r.source = ?`)
		args = append(args, q.Source)
	}
	if q.Kind != "" {
		qb.WriteString(` AND r.kind = ?`)
		args = append(args, string(q.Kind))
	}
	if q.Category != "" {
		qb.WriteString(` AND r.category = ?`)
		args = append(args, string(q.Category))
	}
	if q.Severity != "" {
		qb.WriteString(` AND r.severity = ?`)
		args = append(args, string(q.Severity))
	}
	if q.Language != "" {
		qb.WriteString(` AND r.language = ?`)
		args = append(args, q.Language)
	}
	if q.Tag != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(r.tags) WHERE value = ?)`)
		args = append(args, strings.ToLower(q.Tag))
	}

	if useFTS {
		qb.WriteString(` ORDER BY records_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.source, r.path, r.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying practice base: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		r, rank, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		// FTS5 rank is negated bm25: more relevant is more negative.
		score := -rank
		if useFTS && minScore > 0 && score < minScore {
			continue
		}

		results = append(results, SearchResult{Record: r, Score: score})
	}

	return results, rows.Err()
}

const selectColumns = `SELECT r.id, r.kind, r.source, r.path, r.practice_id,
	r.title, r.content, r.category, r.severity, r.language, r.framework,
	r.tags, r.lint_rules, r.has_good_example, r.has_bad_example,
	r.practice_count, r.categories`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (types.Record, float64, error) {
	var (
		r          types.Record
		kind       string
		practiceID sql.NullString
		title      sql.NullString
		category   sql.NullString
		severity   sql.NullString
		language   sql.NullString
		framework  sql.NullString
		tagsJSON   sql.NullString
		rulesJSON  sql.NullString
		hasGood    int
		hasBad     int
		count      sql.NullInt64
		catsJSON   sql.NullString
		rank       float64
	)

	if err := row.Scan(
		&r.ID, &kind, &r.Meta.Source, &r.Meta.Path, &practiceID,
		&title, &r.Content, &category, &severity, &language, &framework,
		&tagsJSON, &rulesJSON, &hasGood, &hasBad, &count, &catsJSON,
		&rank,
	); err != nil {
		return types.Record{}, 0, err
	}

	r.Kind = types.RecordKind(kind)
	r.Meta.PracticeID = practiceID.String
	r.Title = title.String
	r.Meta.Category = types.Category(category.String)
	r.Meta.Severity = types.Severity(severity.String)
	r.Meta.Language = language.String
	r.Meta.Framework = framework.String
	r.Meta.HasGoodExample = hasGood != 0
	r.Meta.HasBadExample = hasBad != 0
	r.Meta.PracticeCount = int(count.Int64)

	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &r.Meta.Tags)
	}
	if rulesJSON.Valid {
		json.Unmarshal([]byte(rulesJSON.String), &r.Meta.LintRules)
	}
	if catsJSON.Valid {
		json.Unmarshal([]byte(catsJSON.String), &r.Meta.Categories)
	}

	return r, rank, nil
}
