package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity — a single tool
// invocation within a phase.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("phase_id").
			Comment("1-based phase this step belongs to"),
		field.Int("sequence").
			Comment("Total order of steps within the run"),
		field.String("tool_name"),
		field.JSON("tool_input", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_output", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped", "cancelled").
			Default("pending"),
		field.String("idempotency_key").
			Comment("hash(run_id, sequence, tool_name); dedup key for replay"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("credits_consumed").
			Default(0),
		field.Int("tokens_input").
			Default(0),
		field.Int("tokens_output").
			Default(0),
		field.JSON("error", map[string]interface{}{}).
			Optional(),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "sequence").
			Unique(),
		// Replay lookups after lease re-acquisition.
		index.Fields("run_id", "idempotency_key").
			Unique(),
		index.Fields("status"),
	}
}
