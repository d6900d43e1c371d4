package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditReservation holds the schema definition for the CreditReservation
// entity — a pre-authorization of credits bounded by config.max_credits.
type CreditReservation struct {
	ent.Schema
}

// Fields of the CreditReservation.
func (CreditReservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reservation_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Int("amount").
			Comment("Credits reserved up front"),
		field.Int("consumed").
			Default(0).
			Comment("Running total; never exceeds amount"),
		field.Enum("status").
			Values("active", "consumed", "released").
			Default("active"),
		field.String("reason").
			Optional().
			Comment("Finalize/release reason code"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finalized_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CreditReservation.
func (CreditReservation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("reservations").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CreditReservation.
func (CreditReservation) Indexes() []ent.Index {
	return []ent.Index{
		// A run has at most one active reservation.
		index.Fields("run_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")),
		index.Fields("tenant_id", "created_at"),
	}
}
