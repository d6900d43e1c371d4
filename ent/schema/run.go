package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity — the unit of work
// progressing through planning and execution to a terminal state.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Optional().
			Nillable().
			Comment("Caller-chosen idempotency token for create dedup"),
		field.String("tenant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "queued", "planning", "executing", "paused",
				"waiting_user", "completed", "failed", "cancelled", "timeout").
			Default("pending"),
		field.Text("prompt").
			Comment("Natural-language goal (full-text searchable)"),
		field.String("prompt_hash").
			Comment("SHA-256 of the prompt, for dedup and audit"),
		field.JSON("config", map[string]interface{}{}).
			Comment("Caller-supplied RunConfig bounds"),
		field.JSON("plan", map[string]interface{}{}).
			Optional().
			Comment("Synthesized plan document; immutable once accepted"),
		field.Int("current_phase_id").
			Optional().
			Nillable(),
		field.String("current_step_id").
			Optional().
			Nillable(),
		field.Int("step_count").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Int("priority").
			Default(0).
			Comment("Dispatcher ordering: higher first, then created_at"),
		field.Int("credits_reserved").
			Default(0),
		field.Int("credits_consumed").
			Default(0),
		field.JSON("error", map[string]interface{}{}).
			Optional().
			Comment("Structured terminal error {code, message, recoverable}"),
		field.Int64("version").
			Default(1).
			Comment("Monotonic; optimistic concurrency key"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Lease holder for multi-replica coordination"),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Visibility timeout; reaper returns expired leases to queued"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("timeout_at").
			Optional().
			Nillable().
			Comment("Run-wide deadline derived from config.max_duration_seconds"),
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

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reservations", CreditReservation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usages", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "lease_expires_at"),
		index.Fields("status", "timeout_at"),

		// Create dedup: one run per caller-chosen token within a tenant.
		index.Fields("tenant_id", "external_id").
			Unique().
			Annotations(entsql.IndexWhere("external_id IS NOT NULL")),
	}
}
