package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncQueueItem holds the schema definition for the SyncQueueItem entity.
// Durable FIFO of best-effort project-tracker updates. Workers claim
// rows with FOR UPDATE SKIP LOCKED ordered by next_retry_at; exhausted
// rows are dead-lettered as failed and kept for audit.
type SyncQueueItem struct {
	ent.Schema
}

// Fields of the SyncQueueItem.
func (SyncQueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.Enum("action").
			Values("state_change", "add_comment", "create_issue", "update_issue"),
		field.String("target_id").
			Optional().
			Comment("Tracker-side id; late-bound resolutions are cached back here"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("next_retry_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SyncQueueItem.
func (SyncQueueItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_retry_at"),
	}
}
