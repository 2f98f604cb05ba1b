package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// A conversation is a closed block of contiguous same-channel messages;
// once ended it is terminal and never reopened.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("channel"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("message_count").
			Default(0),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Written once by the consolidator on successful extraction"),
		field.String("agent").
			Optional().
			Comment("Attributed agent for the block, defaults to general"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "ended_at"),
	}
}
