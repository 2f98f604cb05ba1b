package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// Attributes a window of channel activity to an agent. At most one
// session per channel is in the active state at a time; sessions idle
// for two hours are expired by the retention service.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_session_id").
			Unique().
			Immutable(),
		field.String("channel"),
		field.String("agent"),
		field.Enum("state").
			Values("active", "completed", "expired").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "state"),
		index.Fields("state", "last_activity"),
	}
}
