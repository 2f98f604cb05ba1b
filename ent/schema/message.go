package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// One row per user or assistant turn on a channel. Rows are immutable
// except for the summarized/conversation_id flip performed by the
// consolidator after successful summary extraction.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.String("channel").
			Comment("Logical user-facing stream (telegram, web, voice, slack, assistant)"),
		field.String("conversation_id").
			Optional().
			Nillable().
			Comment("Set exactly once by the consolidator"),
		field.Bool("summarized").
			Default(false).
			Comment("True only after successful summary extraction"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Delivery record, transport ids, attachments"),
		field.String("delivery_status").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
		index.Fields("summarized", "created_at"),
	}
}
