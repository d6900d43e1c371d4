// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/ent/step"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *StepCreate) SetRunID(v string) *StepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *StepCreate) SetPhaseID(v int) *StepCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *StepCreate) SetSequence(v int) *StepCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *StepCreate) SetToolName(v string) *StepCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolInput sets the "tool_input" field.
func (_c *StepCreate) SetToolInput(v map[string]interface{}) *StepCreate {
	_c.mutation.SetToolInput(v)
	return _c
}

// SetToolOutput sets the "tool_output" field.
func (_c *StepCreate) SetToolOutput(v map[string]interface{}) *StepCreate {
	_c.mutation.SetToolOutput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepCreate) SetStatus(v step.Status) *StepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepCreate) SetNillableStatus(v *step.Status) *StepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *StepCreate) SetIdempotencyKey(v string) *StepCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StepCreate) SetDurationMs(v int) *StepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StepCreate) SetNillableDurationMs(v *int) *StepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_c *StepCreate) SetCreditsConsumed(v int) *StepCreate {
	_c.mutation.SetCreditsConsumed(v)
	return _c
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreditsConsumed(v *int) *StepCreate {
	if v != nil {
		_c.SetCreditsConsumed(*v)
	}
	return _c
}

// SetTokensInput sets the "tokens_input" field.
func (_c *StepCreate) SetTokensInput(v int) *StepCreate {
	_c.mutation.SetTokensInput(v)
	return _c
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_c *StepCreate) SetNillableTokensInput(v *int) *StepCreate {
	if v != nil {
		_c.SetTokensInput(*v)
	}
	return _c
}

// SetTokensOutput sets the "tokens_output" field.
func (_c *StepCreate) SetTokensOutput(v int) *StepCreate {
	_c.mutation.SetTokensOutput(v)
	return _c
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_c *StepCreate) SetNillableTokensOutput(v *int) *StepCreate {
	if v != nil {
		_c.SetTokensOutput(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *StepCreate) SetError(v map[string]interface{}) *StepCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *StepCreate) SetRetryCount(v int) *StepCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *StepCreate) SetNillableRetryCount(v *int) *StepCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *StepCreate) SetRun(v *Run) *StepCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := step.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		v := step.DefaultCreditsConsumed
		_c.mutation.SetCreditsConsumed(v)
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		v := step.DefaultTokensInput
		_c.mutation.SetTokensInput(v)
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		v := step.DefaultTokensOutput
		_c.mutation.SetTokensOutput(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := step.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Step.run_id"`)}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "Step.phase_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Step.sequence"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "Step.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Step.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "Step.idempotency_key"`)}
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		return &ValidationError{Name: "credits_consumed", err: errors.New(`ent: missing required field "Step.credits_consumed"`)}
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		return &ValidationError{Name: "tokens_input", err: errors.New(`ent: missing required field "Step.tokens_input"`)}
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		return &ValidationError{Name: "tokens_output", err: errors.New(`ent: missing required field "Step.tokens_output"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Step.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Step.run"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(step.FieldPhaseID, field.TypeInt, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(step.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(step.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolInput(); ok {
		_spec.SetField(step.FieldToolInput, field.TypeJSON, value)
		_node.ToolInput = value
	}
	if value, ok := _c.mutation.ToolOutput(); ok {
		_spec.SetField(step.FieldToolOutput, field.TypeJSON, value)
		_node.ToolOutput = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(step.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(step.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreditsConsumed(); ok {
		_spec.SetField(step.FieldCreditsConsumed, field.TypeInt, value)
		_node.CreditsConsumed = value
	}
	if value, ok := _c.mutation.TokensInput(); ok {
		_spec.SetField(step.FieldTokensInput, field.TypeInt, value)
		_node.TokensInput = value
	}
	if value, ok := _c.mutation.TokensOutput(); ok {
		_spec.SetField(step.FieldTokensOutput, field.TypeInt, value)
		_node.TokensOutput = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(step.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.RunTable,
			Columns: []string{step.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreate) OnConflict(opts ...sql.ConflictOption) *StepUpsertOne {
	_c.conflict = opts
	return &StepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreate) OnConflictColumns(columns ...string) *StepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertOne{
		create: _c,
	}
}

type (
	// StepUpsertOne is the builder for "upsert"-ing
	//  one Step node.
	StepUpsertOne struct {
		create *StepCreate
	}

	// StepUpsert is the "OnConflict" setter.
	StepUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhaseID sets the "phase_id" field.
func (u *StepUpsert) SetPhaseID(v int) *StepUpsert {
	u.Set(step.FieldPhaseID, v)
	return u
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *StepUpsert) UpdatePhaseID() *StepUpsert {
	u.SetExcluded(step.FieldPhaseID)
	return u
}

// AddPhaseID adds v to the "phase_id" field.
func (u *StepUpsert) AddPhaseID(v int) *StepUpsert {
	u.Add(step.FieldPhaseID, v)
	return u
}

// SetSequence sets the "sequence" field.
func (u *StepUpsert) SetSequence(v int) *StepUpsert {
	u.Set(step.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *StepUpsert) UpdateSequence() *StepUpsert {
	u.SetExcluded(step.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *StepUpsert) AddSequence(v int) *StepUpsert {
	u.Add(step.FieldSequence, v)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *StepUpsert) SetToolName(v string) *StepUpsert {
	u.Set(step.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *StepUpsert) UpdateToolName() *StepUpsert {
	u.SetExcluded(step.FieldToolName)
	return u
}

// SetToolInput sets the "tool_input" field.
func (u *StepUpsert) SetToolInput(v map[string]interface{}) *StepUpsert {
	u.Set(step.FieldToolInput, v)
	return u
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *StepUpsert) UpdateToolInput() *StepUpsert {
	u.SetExcluded(step.FieldToolInput)
	return u
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *StepUpsert) ClearToolInput() *StepUpsert {
	u.SetNull(step.FieldToolInput)
	return u
}

// SetToolOutput sets the "tool_output" field.
func (u *StepUpsert) SetToolOutput(v map[string]interface{}) *StepUpsert {
	u.Set(step.FieldToolOutput, v)
	return u
}

// UpdateToolOutput sets the "tool_output" field to the value that was provided on create.
func (u *StepUpsert) UpdateToolOutput() *StepUpsert {
	u.SetExcluded(step.FieldToolOutput)
	return u
}

// ClearToolOutput clears the value of the "tool_output" field.
func (u *StepUpsert) ClearToolOutput() *StepUpsert {
	u.SetNull(step.FieldToolOutput)
	return u
}

// SetStatus sets the "status" field.
func (u *StepUpsert) SetStatus(v step.Status) *StepUpsert {
	u.Set(step.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsert) UpdateStatus() *StepUpsert {
	u.SetExcluded(step.FieldStatus)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *StepUpsert) SetIdempotencyKey(v string) *StepUpsert {
	u.Set(step.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *StepUpsert) UpdateIdempotencyKey() *StepUpsert {
	u.SetExcluded(step.FieldIdempotencyKey)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepUpsert) SetDurationMs(v int) *StepUpsert {
	u.Set(step.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepUpsert) UpdateDurationMs() *StepUpsert {
	u.SetExcluded(step.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepUpsert) AddDurationMs(v int) *StepUpsert {
	u.Add(step.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepUpsert) ClearDurationMs() *StepUpsert {
	u.SetNull(step.FieldDurationMs)
	return u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *StepUpsert) SetCreditsConsumed(v int) *StepUpsert {
	u.Set(step.FieldCreditsConsumed, v)
	return u
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *StepUpsert) UpdateCreditsConsumed() *StepUpsert {
	u.SetExcluded(step.FieldCreditsConsumed)
	return u
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *StepUpsert) AddCreditsConsumed(v int) *StepUpsert {
	u.Add(step.FieldCreditsConsumed, v)
	return u
}

// SetTokensInput sets the "tokens_input" field.
func (u *StepUpsert) SetTokensInput(v int) *StepUpsert {
	u.Set(step.FieldTokensInput, v)
	return u
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *StepUpsert) UpdateTokensInput() *StepUpsert {
	u.SetExcluded(step.FieldTokensInput)
	return u
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *StepUpsert) AddTokensInput(v int) *StepUpsert {
	u.Add(step.FieldTokensInput, v)
	return u
}

// SetTokensOutput sets the "tokens_output" field.
func (u *StepUpsert) SetTokensOutput(v int) *StepUpsert {
	u.Set(step.FieldTokensOutput, v)
	return u
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *StepUpsert) UpdateTokensOutput() *StepUpsert {
	u.SetExcluded(step.FieldTokensOutput)
	return u
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *StepUpsert) AddTokensOutput(v int) *StepUpsert {
	u.Add(step.FieldTokensOutput, v)
	return u
}

// SetError sets the "error" field.
func (u *StepUpsert) SetError(v map[string]interface{}) *StepUpsert {
	u.Set(step.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsert) UpdateError() *StepUpsert {
	u.SetExcluded(step.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *StepUpsert) ClearError() *StepUpsert {
	u.SetNull(step.FieldError)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *StepUpsert) SetRetryCount(v int) *StepUpsert {
	u.Set(step.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *StepUpsert) UpdateRetryCount() *StepUpsert {
	u.SetExcluded(step.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *StepUpsert) AddRetryCount(v int) *StepUpsert {
	u.Add(step.FieldRetryCount, v)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsert) SetStartedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateStartedAt() *StepUpsert {
	u.SetExcluded(step.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsert) ClearStartedAt() *StepUpsert {
	u.SetNull(step.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsert) SetCompletedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateCompletedAt() *StepUpsert {
	u.SetExcluded(step.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsert) ClearCompletedAt() *StepUpsert {
	u.SetNull(step.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertOne) UpdateNewValues() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(step.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(step.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(step.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepUpsertOne) Ignore() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertOne) DoNothing() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreate.OnConflict
// documentation for more info.
func (u *StepUpsertOne) Update(set func(*StepUpsert)) *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *StepUpsertOne) SetPhaseID(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetPhaseID(v)
	})
}

// AddPhaseID adds v to the "phase_id" field.
func (u *StepUpsertOne) AddPhaseID(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdatePhaseID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePhaseID()
	})
}

// SetSequence sets the "sequence" field.
func (u *StepUpsertOne) SetSequence(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *StepUpsertOne) AddSequence(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateSequence() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateSequence()
	})
}

// SetToolName sets the "tool_name" field.
func (u *StepUpsertOne) SetToolName(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateToolName() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolName()
	})
}

// SetToolInput sets the "tool_input" field.
func (u *StepUpsertOne) SetToolInput(v map[string]interface{}) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetToolInput(v)
	})
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateToolInput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolInput()
	})
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *StepUpsertOne) ClearToolInput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearToolInput()
	})
}

// SetToolOutput sets the "tool_output" field.
func (u *StepUpsertOne) SetToolOutput(v map[string]interface{}) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetToolOutput(v)
	})
}

// UpdateToolOutput sets the "tool_output" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateToolOutput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolOutput()
	})
}

// ClearToolOutput clears the value of the "tool_output" field.
func (u *StepUpsertOne) ClearToolOutput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearToolOutput()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertOne) SetStatus(v step.Status) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStatus() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *StepUpsertOne) SetIdempotencyKey(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateIdempotencyKey() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepUpsertOne) SetDurationMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepUpsertOne) AddDurationMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateDurationMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepUpsertOne) ClearDurationMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearDurationMs()
	})
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *StepUpsertOne) SetCreditsConsumed(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCreditsConsumed(v)
	})
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *StepUpsertOne) AddCreditsConsumed(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddCreditsConsumed(v)
	})
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCreditsConsumed() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCreditsConsumed()
	})
}

// SetTokensInput sets the "tokens_input" field.
func (u *StepUpsertOne) SetTokensInput(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensInput(v)
	})
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *StepUpsertOne) AddTokensInput(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensInput(v)
	})
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTokensInput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensInput()
	})
}

// SetTokensOutput sets the "tokens_output" field.
func (u *StepUpsertOne) SetTokensOutput(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensOutput(v)
	})
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *StepUpsertOne) AddTokensOutput(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensOutput(v)
	})
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTokensOutput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensOutput()
	})
}

// SetError sets the "error" field.
func (u *StepUpsertOne) SetError(v map[string]interface{}) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateError() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *StepUpsertOne) ClearError() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearError()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *StepUpsertOne) SetRetryCount(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *StepUpsertOne) AddRetryCount(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateRetryCount() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateRetryCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertOne) SetStartedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertOne) ClearStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertOne) SetCompletedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertOne) ClearCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepUpsertOne.ID is not supported by MySQL driver. Use StepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
	conflict []sql.ConflictOption
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepUpsertBulk {
	_c.conflict = opts
	return &StepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflictColumns(columns ...string) *StepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertBulk{
		create: _c,
	}
}

// StepUpsertBulk is the builder for "upsert"-ing
// a bulk of Step nodes.
type StepUpsertBulk struct {
	create *StepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertBulk) UpdateNewValues() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(step.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(step.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(step.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepUpsertBulk) Ignore() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertBulk) DoNothing() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreateBulk.OnConflict
// documentation for more info.
func (u *StepUpsertBulk) Update(set func(*StepUpsert)) *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *StepUpsertBulk) SetPhaseID(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetPhaseID(v)
	})
}

// AddPhaseID adds v to the "phase_id" field.
func (u *StepUpsertBulk) AddPhaseID(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdatePhaseID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePhaseID()
	})
}

// SetSequence sets the "sequence" field.
func (u *StepUpsertBulk) SetSequence(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *StepUpsertBulk) AddSequence(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateSequence() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateSequence()
	})
}

// SetToolName sets the "tool_name" field.
func (u *StepUpsertBulk) SetToolName(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateToolName() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolName()
	})
}

// SetToolInput sets the "tool_input" field.
func (u *StepUpsertBulk) SetToolInput(v map[string]interface{}) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetToolInput(v)
	})
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateToolInput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolInput()
	})
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *StepUpsertBulk) ClearToolInput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearToolInput()
	})
}

// SetToolOutput sets the "tool_output" field.
func (u *StepUpsertBulk) SetToolOutput(v map[string]interface{}) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetToolOutput(v)
	})
}

// UpdateToolOutput sets the "tool_output" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateToolOutput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateToolOutput()
	})
}

// ClearToolOutput clears the value of the "tool_output" field.
func (u *StepUpsertBulk) ClearToolOutput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearToolOutput()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertBulk) SetStatus(v step.Status) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStatus() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *StepUpsertBulk) SetIdempotencyKey(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateIdempotencyKey() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepUpsertBulk) SetDurationMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepUpsertBulk) AddDurationMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateDurationMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepUpsertBulk) ClearDurationMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearDurationMs()
	})
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *StepUpsertBulk) SetCreditsConsumed(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCreditsConsumed(v)
	})
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *StepUpsertBulk) AddCreditsConsumed(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddCreditsConsumed(v)
	})
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCreditsConsumed() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCreditsConsumed()
	})
}

// SetTokensInput sets the "tokens_input" field.
func (u *StepUpsertBulk) SetTokensInput(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensInput(v)
	})
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *StepUpsertBulk) AddTokensInput(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensInput(v)
	})
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTokensInput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensInput()
	})
}

// SetTokensOutput sets the "tokens_output" field.
func (u *StepUpsertBulk) SetTokensOutput(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensOutput(v)
	})
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *StepUpsertBulk) AddTokensOutput(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensOutput(v)
	})
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTokensOutput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensOutput()
	})
}

// SetError sets the "error" field.
func (u *StepUpsertBulk) SetError(v map[string]interface{}) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateError() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *StepUpsertBulk) ClearError() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearError()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *StepUpsertBulk) SetRetryCount(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *StepUpsertBulk) AddRetryCount(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateRetryCount() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateRetryCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertBulk) SetStartedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertBulk) ClearStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertBulk) SetCompletedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertBulk) ClearCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
