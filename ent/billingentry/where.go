// Code generated by ent, DO NOT EDIT.

package billingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldRunID, v))
}

// ReservationID applies equality check predicate on the "reservation_id" field. It's identical to ReservationIDEQ.
func ReservationID(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldReservationID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldTenantID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldAmount, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContainsFold(FieldRunID, v))
}

// ReservationIDEQ applies the EQ predicate on the "reservation_id" field.
func ReservationIDEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldReservationID, v))
}

// ReservationIDNEQ applies the NEQ predicate on the "reservation_id" field.
func ReservationIDNEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldReservationID, v))
}

// ReservationIDIn applies the In predicate on the "reservation_id" field.
func ReservationIDIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldReservationID, vs...))
}

// ReservationIDNotIn applies the NotIn predicate on the "reservation_id" field.
func ReservationIDNotIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldReservationID, vs...))
}

// ReservationIDGT applies the GT predicate on the "reservation_id" field.
func ReservationIDGT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldReservationID, v))
}

// ReservationIDGTE applies the GTE predicate on the "reservation_id" field.
func ReservationIDGTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldReservationID, v))
}

// ReservationIDLT applies the LT predicate on the "reservation_id" field.
func ReservationIDLT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldReservationID, v))
}

// ReservationIDLTE applies the LTE predicate on the "reservation_id" field.
func ReservationIDLTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldReservationID, v))
}

// ReservationIDContains applies the Contains predicate on the "reservation_id" field.
func ReservationIDContains(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContains(FieldReservationID, v))
}

// ReservationIDHasPrefix applies the HasPrefix predicate on the "reservation_id" field.
func ReservationIDHasPrefix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasPrefix(FieldReservationID, v))
}

// ReservationIDHasSuffix applies the HasSuffix predicate on the "reservation_id" field.
func ReservationIDHasSuffix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasSuffix(FieldReservationID, v))
}

// ReservationIDEqualFold applies the EqualFold predicate on the "reservation_id" field.
func ReservationIDEqualFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEqualFold(FieldReservationID, v))
}

// ReservationIDContainsFold applies the ContainsFold predicate on the "reservation_id" field.
func ReservationIDContainsFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContainsFold(FieldReservationID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContainsFold(FieldTenantID, v))
}

// EntryTypeEQ applies the EQ predicate on the "entry_type" field.
func EntryTypeEQ(v EntryType) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldEntryType, v))
}

// EntryTypeNEQ applies the NEQ predicate on the "entry_type" field.
func EntryTypeNEQ(v EntryType) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldEntryType, v))
}

// EntryTypeIn applies the In predicate on the "entry_type" field.
func EntryTypeIn(vs ...EntryType) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldEntryType, vs...))
}

// EntryTypeNotIn applies the NotIn predicate on the "entry_type" field.
func EntryTypeNotIn(vs ...EntryType) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldEntryType, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldAmount, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BillingEntry {
	return predicate.BillingEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillingEntry) predicate.BillingEntry {
	return predicate.BillingEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillingEntry) predicate.BillingEntry {
	return predicate.BillingEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillingEntry) predicate.BillingEntry {
	return predicate.BillingEntry(sql.NotPredicates(p))
}
