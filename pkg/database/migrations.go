package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchArtifacts creates the full-text GIN index on memory
// content and the match_memory similarity RPC. The similarity function
// ranks by trigram similarity so the relay works without a vector
// extension; deployments with pgvector replace the function body with
// an embedding distance query (same signature) and the server-side
// trigger regenerates embeddings whenever the column is null.
func CreateSearchArtifacts(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	if err != nil {
		return fmt.Errorf("failed to create pg_trgm extension: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_content_gin
		ON memory_records USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create memory content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_content_trgm
		ON memory_records USING gin(content gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create memory trigram index: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE OR REPLACE FUNCTION match_memory(query_text text, match_threshold real, match_count int)
		RETURNS TABLE(memory_id varchar, content text, type varchar, source_agent varchar, visibility varchar, similarity real)
		LANGUAGE sql STABLE AS $$
			SELECT m.memory_id, m.content, m.type, m.source_agent, m.visibility,
			       similarity(m.content, query_text) AS similarity
			FROM memory_records m
			WHERE similarity(m.content, query_text) >= match_threshold
			ORDER BY similarity DESC
			LIMIT match_count
		$$`)
	if err != nil {
		return fmt.Errorf("failed to create match_memory function: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates partial unique indexes Ent cannot
// express. The agent-session index is what enforces the "exactly one
// active session per channel" invariant at the database level.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_sessions_one_active_per_channel
		ON agent_sessions (channel)
		WHERE state = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create active agent session index: %w", err)
	}

	return nil
}
