package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryRecord holds the schema definition for the MemoryRecord entity.
// Facts, goals, and summaries extracted from model output and
// consolidated conversations. Embeddings are regenerated server-side
// whenever the embedding column is null.
type MemoryRecord struct {
	ent.Schema
}

// Fields of the MemoryRecord.
func (MemoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("fact", "goal", "action_item", "summary", "completed_goal"),
		field.Text("content"),
		field.String("source_agent").
			Default("general"),
		field.Enum("visibility").
			Values("private", "shared", "global").
			Default("shared"),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("alt_sources, corroboration_count, needs_review, conflict_info"),
		field.Bytes("embedding").
			Optional().
			Nillable().
			Comment("Null signals server-side regeneration"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MemoryRecord.
func (MemoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type", "source_agent"),
		index.Fields("type", "completed_at"),
	}
}
