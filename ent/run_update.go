// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/event"
	"github.com/taskfleet/maestro/ent/predicate"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/ent/tokenusage"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *RunUpdate) SetExternalID(v string) *RunUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableExternalID(v *string) *RunUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *RunUpdate) ClearExternalID() *RunUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RunUpdate) SetPrompt(v string) *RunUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePrompt(v *string) *RunUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPromptHash sets the "prompt_hash" field.
func (_u *RunUpdate) SetPromptHash(v string) *RunUpdate {
	_u.mutation.SetPromptHash(v)
	return _u
}

// SetNillablePromptHash sets the "prompt_hash" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePromptHash(v *string) *RunUpdate {
	if v != nil {
		_u.SetPromptHash(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *RunUpdate) SetConfig(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *RunUpdate) SetPlan(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *RunUpdate) ClearPlan() *RunUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (_u *RunUpdate) SetCurrentPhaseID(v int) *RunUpdate {
	_u.mutation.ResetCurrentPhaseID()
	_u.mutation.SetCurrentPhaseID(v)
	return _u
}

// SetNillableCurrentPhaseID sets the "current_phase_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCurrentPhaseID(v *int) *RunUpdate {
	if v != nil {
		_u.SetCurrentPhaseID(*v)
	}
	return _u
}

// AddCurrentPhaseID adds value to the "current_phase_id" field.
func (_u *RunUpdate) AddCurrentPhaseID(v int) *RunUpdate {
	_u.mutation.AddCurrentPhaseID(v)
	return _u
}

// ClearCurrentPhaseID clears the value of the "current_phase_id" field.
func (_u *RunUpdate) ClearCurrentPhaseID() *RunUpdate {
	_u.mutation.ClearCurrentPhaseID()
	return _u
}

// SetCurrentStepID sets the "current_step_id" field.
func (_u *RunUpdate) SetCurrentStepID(v string) *RunUpdate {
	_u.mutation.SetCurrentStepID(v)
	return _u
}

// SetNillableCurrentStepID sets the "current_step_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCurrentStepID(v *string) *RunUpdate {
	if v != nil {
		_u.SetCurrentStepID(*v)
	}
	return _u
}

// ClearCurrentStepID clears the value of the "current_step_id" field.
func (_u *RunUpdate) ClearCurrentStepID() *RunUpdate {
	_u.mutation.ClearCurrentStepID()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *RunUpdate) SetStepCount(v int) *RunUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStepCount(v *int) *RunUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *RunUpdate) AddStepCount(v int) *RunUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RunUpdate) SetRetryCount(v int) *RunUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRetryCount(v *int) *RunUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RunUpdate) AddRetryCount(v int) *RunUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *RunUpdate) SetMaxRetries(v int) *RunUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *RunUpdate) SetNillableMaxRetries(v *int) *RunUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *RunUpdate) AddMaxRetries(v int) *RunUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RunUpdate) SetPriority(v int) *RunUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePriority(v *int) *RunUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RunUpdate) AddPriority(v int) *RunUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreditsReserved sets the "credits_reserved" field.
func (_u *RunUpdate) SetCreditsReserved(v int) *RunUpdate {
	_u.mutation.ResetCreditsReserved()
	_u.mutation.SetCreditsReserved(v)
	return _u
}

// SetNillableCreditsReserved sets the "credits_reserved" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreditsReserved(v *int) *RunUpdate {
	if v != nil {
		_u.SetCreditsReserved(*v)
	}
	return _u
}

// AddCreditsReserved adds value to the "credits_reserved" field.
func (_u *RunUpdate) AddCreditsReserved(v int) *RunUpdate {
	_u.mutation.AddCreditsReserved(v)
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *RunUpdate) SetCreditsConsumed(v int) *RunUpdate {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreditsConsumed(v *int) *RunUpdate {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *RunUpdate) AddCreditsConsumed(v int) *RunUpdate {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetError sets the "error" field.
func (_u *RunUpdate) SetError(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunUpdate) ClearError() *RunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RunUpdate) SetVersion(v int64) *RunUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RunUpdate) SetNillableVersion(v *int64) *RunUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RunUpdate) AddVersion(v int64) *RunUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *RunUpdate) SetWorkerID(v string) *RunUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableWorkerID(v *string) *RunUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *RunUpdate) ClearWorkerID() *RunUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RunUpdate) SetLeaseExpiresAt(v time.Time) *RunUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLeaseExpiresAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RunUpdate) ClearLeaseExpiresAt() *RunUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdate) SetLastHeartbeatAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdate) ClearLastHeartbeatAt() *RunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *RunUpdate) SetTimeoutAt(v time.Time) *RunUpdate {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTimeoutAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (_u *RunUpdate) ClearTimeoutAt() *RunUpdate {
	_u.mutation.ClearTimeoutAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *RunUpdate) AddStepIDs(ids ...string) *RunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *RunUpdate) AddSteps(v ...*Step) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the CreditReservation entity by IDs.
func (_u *RunUpdate) AddReservationIDs(ids ...string) *RunUpdate {
	_u.mutation.AddReservationIDs(ids...)
	return _u
}

// AddReservations adds the "reservations" edges to the CreditReservation entity.
func (_u *RunUpdate) AddReservations(v ...*CreditReservation) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReservationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RunUpdate) AddEventIDs(ids ...int64) *RunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RunUpdate) AddEvents(v ...*Event) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *RunUpdate) AddTokenUsageIDs(ids ...string) *RunUpdate {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *RunUpdate) AddTokenUsages(v ...*TokenUsage) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *RunUpdate) ClearSteps() *RunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *RunUpdate) RemoveStepIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *RunUpdate) RemoveSteps(v ...*Step) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearReservations clears all "reservations" edges to the CreditReservation entity.
func (_u *RunUpdate) ClearReservations() *RunUpdate {
	_u.mutation.ClearReservations()
	return _u
}

// RemoveReservationIDs removes the "reservations" edge to CreditReservation entities by IDs.
func (_u *RunUpdate) RemoveReservationIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveReservationIDs(ids...)
	return _u
}

// RemoveReservations removes "reservations" edges to CreditReservation entities.
func (_u *RunUpdate) RemoveReservations(v ...*CreditReservation) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReservationIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RunUpdate) ClearEvents() *RunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RunUpdate) RemoveEventIDs(ids ...int64) *RunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RunUpdate) RemoveEvents(v ...*Event) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *RunUpdate) ClearTokenUsages() *RunUpdate {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *RunUpdate) RemoveTokenUsageIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *RunUpdate) RemoveTokenUsages(v ...*TokenUsage) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(run.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(run.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(run.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptHash(); ok {
		_spec.SetField(run.FieldPromptHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(run.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(run.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentPhaseID(); ok {
		_spec.SetField(run.FieldCurrentPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhaseID(); ok {
		_spec.AddField(run.FieldCurrentPhaseID, field.TypeInt, value)
	}
	if _u.mutation.CurrentPhaseIDCleared() {
		_spec.ClearField(run.FieldCurrentPhaseID, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStepID(); ok {
		_spec.SetField(run.FieldCurrentStepID, field.TypeString, value)
	}
	if _u.mutation.CurrentStepIDCleared() {
		_spec.ClearField(run.FieldCurrentStepID, field.TypeString)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(run.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(run.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(run.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(run.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsReserved(); ok {
		_spec.SetField(run.FieldCreditsReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsReserved(); ok {
		_spec.AddField(run.FieldCreditsReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(run.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(run.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(run.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(run.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(run.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(run.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(run.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(run.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(run.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(run.FieldTimeoutAt, field.TypeTime, value)
	}
	if _u.mutation.TimeoutAtCleared() {
		_spec.ClearField(run.FieldTimeoutAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReservationsIDs(); len(nodes) > 0 && !_u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetExternalID sets the "external_id" field.
func (_u *RunUpdateOne) SetExternalID(v string) *RunUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableExternalID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *RunUpdateOne) ClearExternalID() *RunUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RunUpdateOne) SetPrompt(v string) *RunUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePrompt(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPromptHash sets the "prompt_hash" field.
func (_u *RunUpdateOne) SetPromptHash(v string) *RunUpdateOne {
	_u.mutation.SetPromptHash(v)
	return _u
}

// SetNillablePromptHash sets the "prompt_hash" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePromptHash(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPromptHash(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *RunUpdateOne) SetConfig(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *RunUpdateOne) SetPlan(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *RunUpdateOne) ClearPlan() *RunUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (_u *RunUpdateOne) SetCurrentPhaseID(v int) *RunUpdateOne {
	_u.mutation.ResetCurrentPhaseID()
	_u.mutation.SetCurrentPhaseID(v)
	return _u
}

// SetNillableCurrentPhaseID sets the "current_phase_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCurrentPhaseID(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCurrentPhaseID(*v)
	}
	return _u
}

// AddCurrentPhaseID adds value to the "current_phase_id" field.
func (_u *RunUpdateOne) AddCurrentPhaseID(v int) *RunUpdateOne {
	_u.mutation.AddCurrentPhaseID(v)
	return _u
}

// ClearCurrentPhaseID clears the value of the "current_phase_id" field.
func (_u *RunUpdateOne) ClearCurrentPhaseID() *RunUpdateOne {
	_u.mutation.ClearCurrentPhaseID()
	return _u
}

// SetCurrentStepID sets the "current_step_id" field.
func (_u *RunUpdateOne) SetCurrentStepID(v string) *RunUpdateOne {
	_u.mutation.SetCurrentStepID(v)
	return _u
}

// SetNillableCurrentStepID sets the "current_step_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCurrentStepID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCurrentStepID(*v)
	}
	return _u
}

// ClearCurrentStepID clears the value of the "current_step_id" field.
func (_u *RunUpdateOne) ClearCurrentStepID() *RunUpdateOne {
	_u.mutation.ClearCurrentStepID()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *RunUpdateOne) SetStepCount(v int) *RunUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStepCount(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *RunUpdateOne) AddStepCount(v int) *RunUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RunUpdateOne) SetRetryCount(v int) *RunUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRetryCount(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RunUpdateOne) AddRetryCount(v int) *RunUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *RunUpdateOne) SetMaxRetries(v int) *RunUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableMaxRetries(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *RunUpdateOne) AddMaxRetries(v int) *RunUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RunUpdateOne) SetPriority(v int) *RunUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePriority(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RunUpdateOne) AddPriority(v int) *RunUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreditsReserved sets the "credits_reserved" field.
func (_u *RunUpdateOne) SetCreditsReserved(v int) *RunUpdateOne {
	_u.mutation.ResetCreditsReserved()
	_u.mutation.SetCreditsReserved(v)
	return _u
}

// SetNillableCreditsReserved sets the "credits_reserved" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreditsReserved(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCreditsReserved(*v)
	}
	return _u
}

// AddCreditsReserved adds value to the "credits_reserved" field.
func (_u *RunUpdateOne) AddCreditsReserved(v int) *RunUpdateOne {
	_u.mutation.AddCreditsReserved(v)
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *RunUpdateOne) SetCreditsConsumed(v int) *RunUpdateOne {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreditsConsumed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *RunUpdateOne) AddCreditsConsumed(v int) *RunUpdateOne {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetError sets the "error" field.
func (_u *RunUpdateOne) SetError(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunUpdateOne) ClearError() *RunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RunUpdateOne) SetVersion(v int64) *RunUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableVersion(v *int64) *RunUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RunUpdateOne) AddVersion(v int64) *RunUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *RunUpdateOne) SetWorkerID(v string) *RunUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableWorkerID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *RunUpdateOne) ClearWorkerID() *RunUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RunUpdateOne) SetLeaseExpiresAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RunUpdateOne) ClearLeaseExpiresAt() *RunUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdateOne) SetLastHeartbeatAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdateOne) ClearLastHeartbeatAt() *RunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *RunUpdateOne) SetTimeoutAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTimeoutAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (_u *RunUpdateOne) ClearTimeoutAt() *RunUpdateOne {
	_u.mutation.ClearTimeoutAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *RunUpdateOne) AddStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *RunUpdateOne) AddSteps(v ...*Step) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the CreditReservation entity by IDs.
func (_u *RunUpdateOne) AddReservationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddReservationIDs(ids...)
	return _u
}

// AddReservations adds the "reservations" edges to the CreditReservation entity.
func (_u *RunUpdateOne) AddReservations(v ...*CreditReservation) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReservationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RunUpdateOne) AddEventIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RunUpdateOne) AddEvents(v ...*Event) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *RunUpdateOne) AddTokenUsageIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *RunUpdateOne) AddTokenUsages(v ...*TokenUsage) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *RunUpdateOne) ClearSteps() *RunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *RunUpdateOne) RemoveStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *RunUpdateOne) RemoveSteps(v ...*Step) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearReservations clears all "reservations" edges to the CreditReservation entity.
func (_u *RunUpdateOne) ClearReservations() *RunUpdateOne {
	_u.mutation.ClearReservations()
	return _u
}

// RemoveReservationIDs removes the "reservations" edge to CreditReservation entities by IDs.
func (_u *RunUpdateOne) RemoveReservationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveReservationIDs(ids...)
	return _u
}

// RemoveReservations removes "reservations" edges to CreditReservation entities.
func (_u *RunUpdateOne) RemoveReservations(v ...*CreditReservation) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReservationIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RunUpdateOne) ClearEvents() *RunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RunUpdateOne) RemoveEventIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RunUpdateOne) RemoveEvents(v ...*Event) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *RunUpdateOne) ClearTokenUsages() *RunUpdateOne {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *RunUpdateOne) RemoveTokenUsageIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *RunUpdateOne) RemoveTokenUsages(v ...*TokenUsage) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(run.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(run.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(run.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptHash(); ok {
		_spec.SetField(run.FieldPromptHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(run.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(run.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentPhaseID(); ok {
		_spec.SetField(run.FieldCurrentPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhaseID(); ok {
		_spec.AddField(run.FieldCurrentPhaseID, field.TypeInt, value)
	}
	if _u.mutation.CurrentPhaseIDCleared() {
		_spec.ClearField(run.FieldCurrentPhaseID, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStepID(); ok {
		_spec.SetField(run.FieldCurrentStepID, field.TypeString, value)
	}
	if _u.mutation.CurrentStepIDCleared() {
		_spec.ClearField(run.FieldCurrentStepID, field.TypeString)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(run.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(run.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(run.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(run.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsReserved(); ok {
		_spec.SetField(run.FieldCreditsReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsReserved(); ok {
		_spec.AddField(run.FieldCreditsReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(run.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(run.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(run.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(run.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(run.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(run.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(run.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(run.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(run.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(run.FieldTimeoutAt, field.TypeTime, value)
	}
	if _u.mutation.TimeoutAtCleared() {
		_spec.ClearField(run.FieldTimeoutAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReservationsIDs(); len(nodes) > 0 && !_u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ReservationsTable,
			Columns: []string{run.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TokenUsagesTable,
			Columns: []string{run.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
