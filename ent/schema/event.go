package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Transient persisted copy of websocket events so reconnecting browser
// clients can catch up on anything published while they were away.
// Rows are purged by the retention service once past their TTL.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Comment("NOTIFY channel name the payload was broadcast on"),
		field.Text("payload").
			Comment("JSON payload as broadcast"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
		index.Fields("created_at"),
	}
}
