package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BillingEntry holds the schema definition for the BillingEntry entity — the
// append-only ledger written when a reservation is finalized or released.
type BillingEntry struct {
	ent.Schema
}

// Fields of the BillingEntry.
func (BillingEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("reservation_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("entry_type").
			Values("debit", "refund").
			Immutable(),
		field.Int("amount").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BillingEntry.
func (BillingEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("tenant_id", "created_at"),
	}
}
