// Code generated by ent, DO NOT EDIT.

package modelhealth

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldContainsFold(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldProvider, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLatencyMs, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldFailureCount, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastFailureAt applies equality check predicate on the "last_failure_at" field. It's identical to LastFailureAtEQ.
func LastFailureAt(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLastFailureAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldContainsFold(FieldProvider, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldStatus, vs...))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldLatencyMs, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldFailureCount, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotNull(FieldLastSuccessAt))
}

// LastFailureAtEQ applies the EQ predicate on the "last_failure_at" field.
func LastFailureAtEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldLastFailureAt, v))
}

// LastFailureAtNEQ applies the NEQ predicate on the "last_failure_at" field.
func LastFailureAtNEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldLastFailureAt, v))
}

// LastFailureAtIn applies the In predicate on the "last_failure_at" field.
func LastFailureAtIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldLastFailureAt, vs...))
}

// LastFailureAtNotIn applies the NotIn predicate on the "last_failure_at" field.
func LastFailureAtNotIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldLastFailureAt, vs...))
}

// LastFailureAtGT applies the GT predicate on the "last_failure_at" field.
func LastFailureAtGT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldLastFailureAt, v))
}

// LastFailureAtGTE applies the GTE predicate on the "last_failure_at" field.
func LastFailureAtGTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldLastFailureAt, v))
}

// LastFailureAtLT applies the LT predicate on the "last_failure_at" field.
func LastFailureAtLT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldLastFailureAt, v))
}

// LastFailureAtLTE applies the LTE predicate on the "last_failure_at" field.
func LastFailureAtLTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldLastFailureAt, v))
}

// LastFailureAtIsNil applies the IsNil predicate on the "last_failure_at" field.
func LastFailureAtIsNil() predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIsNull(FieldLastFailureAt))
}

// LastFailureAtNotNil applies the NotNil predicate on the "last_failure_at" field.
func LastFailureAtNotNil() predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotNull(FieldLastFailureAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelHealth {
	return predicate.ModelHealth(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelHealth) predicate.ModelHealth {
	return predicate.ModelHealth(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelHealth) predicate.ModelHealth {
	return predicate.ModelHealth(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelHealth) predicate.ModelHealth {
	return predicate.ModelHealth(sql.NotPredicates(p))
}
