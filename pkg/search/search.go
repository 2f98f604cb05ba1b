// Package search exposes similarity and full-text lookup over stored
// memories. The rest of the relay only depends on the Client
// interface; when search is disabled or unreachable every lookup
// degrades to an empty result instead of an error the caller must
// handle.
package search

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// Match is one search hit from either implementation.
type Match struct {
	MemoryID    string
	Content     string
	Type        string
	SourceAgent string
	Visibility  string
	Similarity  float64
}

// Client is the narrow search contract the memory store and context
// assembler depend on.
type Client interface {
	// SearchSimilar returns up to k memories whose content resembles
	// query with similarity >= threshold, best first.
	SearchSimilar(ctx context.Context, query string, threshold float64, k int) ([]Match, error)

	// SearchText returns up to k memories by full-text relevance.
	// filters narrows by column equality (type, visibility).
	SearchText(ctx context.Context, query string, filters map[string]string, k int) ([]Match, error)
}

// PostgresClient implements Client over the match_memory RPC and a
// tsvector query against memory_records.
type PostgresClient struct {
	db     *stdsql.DB
	logger *slog.Logger
}

// NewPostgresClient creates a search client over the shared pool.
func NewPostgresClient(db *stdsql.DB) *PostgresClient {
	return &PostgresClient{
		db:     db,
		logger: slog.Default().With("component", "search"),
	}
}

func (c *PostgresClient) SearchSimilar(ctx context.Context, query string, threshold float64, k int) ([]Match, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT memory_id, content, type, source_agent, visibility, similarity
		 FROM match_memory($1, $2, $3)`,
		query, threshold, k)
	if err != nil {
		return nil, fmt.Errorf("match_memory query failed: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func (c *PostgresClient) SearchText(ctx context.Context, query string, filters map[string]string, k int) ([]Match, error) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT memory_id, content, type, source_agent, visibility,
		        ts_rank(to_tsvector('english', content), plainto_tsquery('english', $1)) AS rank
		 FROM memory_records
		 WHERE to_tsvector('english', content) @@ plainto_tsquery('english', $1)`)

	args := []any{query}
	for _, col := range []string{"type", "visibility", "source_agent"} {
		if v, ok := filters[col]; ok {
			args = append(args, v)
			fmt.Fprintf(&sb, " AND %s = $%d", col, len(args))
		}
	}
	args = append(args, k)
	fmt.Fprintf(&sb, " ORDER BY rank DESC LIMIT $%d", len(args))

	rows, err := c.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("full-text query failed: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func scanMatches(rows *stdsql.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.MemoryID, &m.Content, &m.Type, &m.SourceAgent, &m.Visibility, &m.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Disabled is the no-op implementation used when search is turned off.
// Every lookup returns no matches.
type Disabled struct{}

func (Disabled) SearchSimilar(context.Context, string, float64, int) ([]Match, error) {
	return nil, nil
}

func (Disabled) SearchText(context.Context, string, map[string]string, int) ([]Match, error) {
	return nil, nil
}
