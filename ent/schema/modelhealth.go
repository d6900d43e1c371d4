package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ModelHealth holds the schema definition for the ModelHealth entity — a
// best-effort snapshot of the LLM router's in-memory health table, persisted
// so restarts and dashboards see provider state.
type ModelHealth struct {
	ent.Schema
}

// Annotations of the ModelHealth.
func (ModelHealth) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "model_health"},
	}
}

// Fields of the ModelHealth.
func (ModelHealth) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_name").
			Unique().
			Comment("Model identifier, e.g. gemini-2.0-flash"),
		field.String("provider"),
		field.Enum("status").
			Values("healthy", "degraded", "unhealthy").
			Default("healthy"),
		field.Int("latency_ms").
			Default(0),
		field.Int("failure_count").
			Default(0),
		field.Int("consecutive_failures").
			Default(0),
		field.Time("last_success_at").
			Optional().
			Nillable(),
		field.Time("last_failure_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
