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
	"github.com/taskfleet/maestro/ent/predicate"
	"github.com/taskfleet/maestro/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *StepUpdate) SetPhaseID(v int) *StepUpdate {
	_u.mutation.ResetPhaseID()
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillablePhaseID(v *int) *StepUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// AddPhaseID adds value to the "phase_id" field.
func (_u *StepUpdate) AddPhaseID(v int) *StepUpdate {
	_u.mutation.AddPhaseID(v)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StepUpdate) SetSequence(v int) *StepUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StepUpdate) SetNillableSequence(v *int) *StepUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StepUpdate) AddSequence(v int) *StepUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *StepUpdate) SetToolName(v string) *StepUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *StepUpdate) SetNillableToolName(v *string) *StepUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolInput sets the "tool_input" field.
func (_u *StepUpdate) SetToolInput(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetToolInput(v)
	return _u
}

// ClearToolInput clears the value of the "tool_input" field.
func (_u *StepUpdate) ClearToolInput() *StepUpdate {
	_u.mutation.ClearToolInput()
	return _u
}

// SetToolOutput sets the "tool_output" field.
func (_u *StepUpdate) SetToolOutput(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetToolOutput(v)
	return _u
}

// ClearToolOutput clears the value of the "tool_output" field.
func (_u *StepUpdate) ClearToolOutput() *StepUpdate {
	_u.mutation.ClearToolOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdate) SetStatus(v step.Status) *StepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStatus(v *step.Status) *StepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *StepUpdate) SetIdempotencyKey(v string) *StepUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *StepUpdate) SetNillableIdempotencyKey(v *string) *StepUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepUpdate) SetDurationMs(v int) *StepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepUpdate) SetNillableDurationMs(v *int) *StepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepUpdate) AddDurationMs(v int) *StepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepUpdate) ClearDurationMs() *StepUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *StepUpdate) SetCreditsConsumed(v int) *StepUpdate {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCreditsConsumed(v *int) *StepUpdate {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *StepUpdate) AddCreditsConsumed(v int) *StepUpdate {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *StepUpdate) SetTokensInput(v int) *StepUpdate {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTokensInput(v *int) *StepUpdate {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *StepUpdate) AddTokensInput(v int) *StepUpdate {
	_u.mutation.AddTokensInput(v)
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *StepUpdate) SetTokensOutput(v int) *StepUpdate {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTokensOutput(v *int) *StepUpdate {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *StepUpdate) AddTokensOutput(v int) *StepUpdate {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdate) SetError(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdate) ClearError() *StepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StepUpdate) SetRetryCount(v int) *StepUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StepUpdate) SetNillableRetryCount(v *int) *StepUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StepUpdate) AddRetryCount(v int) *StepUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.run"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(step.FieldPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseID(); ok {
		_spec.AddField(step.FieldPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(step.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(step.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(step.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolInput(); ok {
		_spec.SetField(step.FieldToolInput, field.TypeJSON, value)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(step.FieldToolInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolOutput(); ok {
		_spec.SetField(step.FieldToolOutput, field.TypeJSON, value)
	}
	if _u.mutation.ToolOutputCleared() {
		_spec.ClearField(step.FieldToolOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(step.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(step.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(step.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(step.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(step.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(step.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(step.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(step.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(step.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(step.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(step.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(step.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetPhaseID sets the "phase_id" field.
func (_u *StepUpdateOne) SetPhaseID(v int) *StepUpdateOne {
	_u.mutation.ResetPhaseID()
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillablePhaseID(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// AddPhaseID adds value to the "phase_id" field.
func (_u *StepUpdateOne) AddPhaseID(v int) *StepUpdateOne {
	_u.mutation.AddPhaseID(v)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *StepUpdateOne) SetSequence(v int) *StepUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableSequence(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *StepUpdateOne) AddSequence(v int) *StepUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *StepUpdateOne) SetToolName(v string) *StepUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableToolName(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolInput sets the "tool_input" field.
func (_u *StepUpdateOne) SetToolInput(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetToolInput(v)
	return _u
}

// ClearToolInput clears the value of the "tool_input" field.
func (_u *StepUpdateOne) ClearToolInput() *StepUpdateOne {
	_u.mutation.ClearToolInput()
	return _u
}

// SetToolOutput sets the "tool_output" field.
func (_u *StepUpdateOne) SetToolOutput(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetToolOutput(v)
	return _u
}

// ClearToolOutput clears the value of the "tool_output" field.
func (_u *StepUpdateOne) ClearToolOutput() *StepUpdateOne {
	_u.mutation.ClearToolOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdateOne) SetStatus(v step.Status) *StepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStatus(v *step.Status) *StepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *StepUpdateOne) SetIdempotencyKey(v string) *StepUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableIdempotencyKey(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepUpdateOne) SetDurationMs(v int) *StepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableDurationMs(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepUpdateOne) AddDurationMs(v int) *StepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepUpdateOne) ClearDurationMs() *StepUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *StepUpdateOne) SetCreditsConsumed(v int) *StepUpdateOne {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCreditsConsumed(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *StepUpdateOne) AddCreditsConsumed(v int) *StepUpdateOne {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *StepUpdateOne) SetTokensInput(v int) *StepUpdateOne {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTokensInput(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *StepUpdateOne) AddTokensInput(v int) *StepUpdateOne {
	_u.mutation.AddTokensInput(v)
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *StepUpdateOne) SetTokensOutput(v int) *StepUpdateOne {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTokensOutput(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *StepUpdateOne) AddTokensOutput(v int) *StepUpdateOne {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdateOne) SetError(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdateOne) ClearError() *StepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StepUpdateOne) SetRetryCount(v int) *StepUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableRetryCount(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StepUpdateOne) AddRetryCount(v int) *StepUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.run"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(step.FieldPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseID(); ok {
		_spec.AddField(step.FieldPhaseID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(step.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(step.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(step.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolInput(); ok {
		_spec.SetField(step.FieldToolInput, field.TypeJSON, value)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(step.FieldToolInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolOutput(); ok {
		_spec.SetField(step.FieldToolOutput, field.TypeJSON, value)
	}
	if _u.mutation.ToolOutputCleared() {
		_spec.ClearField(step.FieldToolOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(step.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(step.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(step.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(step.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(step.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(step.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(step.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(step.FieldTokensInput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(step.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(step.FieldTokensOutput, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(step.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(step.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
