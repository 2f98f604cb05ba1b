package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionPlan holds the schema definition for the ExecutionPlan entity.
// Records multi-step orchestrated runs (pipeline, fan-out, critic loop)
// so partial progress survives a failure and can be reported to the user.
type ExecutionPlan struct {
	ent.Schema
}

// Fields of the ExecutionPlan.
func (ExecutionPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("channel"),
		field.Enum("mode").
			Values("pipeline", "fanout", "critic_loop"),
		field.JSON("steps", []map[string]interface{}{}).
			Comment("Ordered step specs: agent, instruction, status, output"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Text("partial_output").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ExecutionPlan.
func (ExecutionPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
	}
}
