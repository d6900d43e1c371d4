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
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/event"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/ent/tokenusage"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExternalID sets the "external_id" field.
func (_c *RunCreate) SetExternalID(v string) *RunCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableExternalID(v *string) *RunCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCreate) SetTenantID(v string) *RunCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RunCreate) SetUserID(v string) *RunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *RunCreate) SetPrompt(v string) *RunCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetPromptHash sets the "prompt_hash" field.
func (_c *RunCreate) SetPromptHash(v string) *RunCreate {
	_c.mutation.SetPromptHash(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *RunCreate) SetConfig(v map[string]interface{}) *RunCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *RunCreate) SetPlan(v map[string]interface{}) *RunCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (_c *RunCreate) SetCurrentPhaseID(v int) *RunCreate {
	_c.mutation.SetCurrentPhaseID(v)
	return _c
}

// SetNillableCurrentPhaseID sets the "current_phase_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableCurrentPhaseID(v *int) *RunCreate {
	if v != nil {
		_c.SetCurrentPhaseID(*v)
	}
	return _c
}

// SetCurrentStepID sets the "current_step_id" field.
func (_c *RunCreate) SetCurrentStepID(v string) *RunCreate {
	_c.mutation.SetCurrentStepID(v)
	return _c
}

// SetNillableCurrentStepID sets the "current_step_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableCurrentStepID(v *string) *RunCreate {
	if v != nil {
		_c.SetCurrentStepID(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *RunCreate) SetStepCount(v int) *RunCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *RunCreate) SetNillableStepCount(v *int) *RunCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *RunCreate) SetRetryCount(v int) *RunCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *RunCreate) SetNillableRetryCount(v *int) *RunCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *RunCreate) SetMaxRetries(v int) *RunCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *RunCreate) SetNillableMaxRetries(v *int) *RunCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RunCreate) SetPriority(v int) *RunCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RunCreate) SetNillablePriority(v *int) *RunCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreditsReserved sets the "credits_reserved" field.
func (_c *RunCreate) SetCreditsReserved(v int) *RunCreate {
	_c.mutation.SetCreditsReserved(v)
	return _c
}

// SetNillableCreditsReserved sets the "credits_reserved" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreditsReserved(v *int) *RunCreate {
	if v != nil {
		_c.SetCreditsReserved(*v)
	}
	return _c
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_c *RunCreate) SetCreditsConsumed(v int) *RunCreate {
	_c.mutation.SetCreditsConsumed(v)
	return _c
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreditsConsumed(v *int) *RunCreate {
	if v != nil {
		_c.SetCreditsConsumed(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *RunCreate) SetError(v map[string]interface{}) *RunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RunCreate) SetVersion(v int64) *RunCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *RunCreate) SetNillableVersion(v *int64) *RunCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *RunCreate) SetWorkerID(v string) *RunCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableWorkerID(v *string) *RunCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *RunCreate) SetLeaseExpiresAt(v time.Time) *RunCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLeaseExpiresAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RunCreate) SetLastHeartbeatAt(v time.Time) *RunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastHeartbeatAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetTimeoutAt sets the "timeout_at" field.
func (_c *RunCreate) SetTimeoutAt(v time.Time) *RunCreate {
	_c.mutation.SetTimeoutAt(v)
	return _c
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableTimeoutAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetTimeoutAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *RunCreate) AddStepIDs(ids ...string) *RunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *RunCreate) AddSteps(v ...*Step) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the CreditReservation entity by IDs.
func (_c *RunCreate) AddReservationIDs(ids ...string) *RunCreate {
	_c.mutation.AddReservationIDs(ids...)
	return _c
}

// AddReservations adds the "reservations" edges to the CreditReservation entity.
func (_c *RunCreate) AddReservations(v ...*CreditReservation) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReservationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *RunCreate) AddEventIDs(ids ...int64) *RunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *RunCreate) AddEvents(v ...*Event) *RunCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_c *RunCreate) AddTokenUsageIDs(ids ...string) *RunCreate {
	_c.mutation.AddTokenUsageIDs(ids...)
	return _c
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_c *RunCreate) AddTokenUsages(v ...*TokenUsage) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTokenUsageIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := run.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := run.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := run.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := run.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreditsReserved(); !ok {
		v := run.DefaultCreditsReserved
		_c.mutation.SetCreditsReserved(v)
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		v := run.DefaultCreditsConsumed
		_c.mutation.SetCreditsConsumed(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := run.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Run.tenant_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Run.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Run.prompt"`)}
	}
	if _, ok := _c.mutation.PromptHash(); !ok {
		return &ValidationError{Name: "prompt_hash", err: errors.New(`ent: missing required field "Run.prompt_hash"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Run.config"`)}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "Run.step_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Run.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Run.max_retries"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Run.priority"`)}
	}
	if _, ok := _c.mutation.CreditsReserved(); !ok {
		return &ValidationError{Name: "credits_reserved", err: errors.New(`ent: missing required field "Run.credits_reserved"`)}
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		return &ValidationError{Name: "credits_consumed", err: errors.New(`ent: missing required field "Run.credits_consumed"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Run.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(run.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(run.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(run.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.PromptHash(); ok {
		_spec.SetField(run.FieldPromptHash, field.TypeString, value)
		_node.PromptHash = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(run.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CurrentPhaseID(); ok {
		_spec.SetField(run.FieldCurrentPhaseID, field.TypeInt, value)
		_node.CurrentPhaseID = &value
	}
	if value, ok := _c.mutation.CurrentStepID(); ok {
		_spec.SetField(run.FieldCurrentStepID, field.TypeString, value)
		_node.CurrentStepID = &value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(run.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(run.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreditsReserved(); ok {
		_spec.SetField(run.FieldCreditsReserved, field.TypeInt, value)
		_node.CreditsReserved = value
	}
	if value, ok := _c.mutation.CreditsConsumed(); ok {
		_spec.SetField(run.FieldCreditsConsumed, field.TypeInt, value)
		_node.CreditsConsumed = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(run.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(run.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(run.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.TimeoutAt(); ok {
		_spec.SetField(run.FieldTimeoutAt, field.TypeTime, value)
		_node.TimeoutAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TokenUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.Create().
//		SetExternalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetExternalID sets the "external_id" field.
func (u *RunUpsert) SetExternalID(v string) *RunUpsert {
	u.Set(run.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateExternalID() *RunUpsert {
	u.SetExcluded(run.FieldExternalID)
	return u
}

// ClearExternalID clears the value of the "external_id" field.
func (u *RunUpsert) ClearExternalID() *RunUpsert {
	u.SetNull(run.FieldExternalID)
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsert) SetStatus(v run.Status) *RunUpsert {
	u.Set(run.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsert) UpdateStatus() *RunUpsert {
	u.SetExcluded(run.FieldStatus)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *RunUpsert) SetPrompt(v string) *RunUpsert {
	u.Set(run.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunUpsert) UpdatePrompt() *RunUpsert {
	u.SetExcluded(run.FieldPrompt)
	return u
}

// SetPromptHash sets the "prompt_hash" field.
func (u *RunUpsert) SetPromptHash(v string) *RunUpsert {
	u.Set(run.FieldPromptHash, v)
	return u
}

// UpdatePromptHash sets the "prompt_hash" field to the value that was provided on create.
func (u *RunUpsert) UpdatePromptHash() *RunUpsert {
	u.SetExcluded(run.FieldPromptHash)
	return u
}

// SetConfig sets the "config" field.
func (u *RunUpsert) SetConfig(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *RunUpsert) UpdateConfig() *RunUpsert {
	u.SetExcluded(run.FieldConfig)
	return u
}

// SetPlan sets the "plan" field.
func (u *RunUpsert) SetPlan(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *RunUpsert) UpdatePlan() *RunUpsert {
	u.SetExcluded(run.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *RunUpsert) ClearPlan() *RunUpsert {
	u.SetNull(run.FieldPlan)
	return u
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (u *RunUpsert) SetCurrentPhaseID(v int) *RunUpsert {
	u.Set(run.FieldCurrentPhaseID, v)
	return u
}

// UpdateCurrentPhaseID sets the "current_phase_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateCurrentPhaseID() *RunUpsert {
	u.SetExcluded(run.FieldCurrentPhaseID)
	return u
}

// AddCurrentPhaseID adds v to the "current_phase_id" field.
func (u *RunUpsert) AddCurrentPhaseID(v int) *RunUpsert {
	u.Add(run.FieldCurrentPhaseID, v)
	return u
}

// ClearCurrentPhaseID clears the value of the "current_phase_id" field.
func (u *RunUpsert) ClearCurrentPhaseID() *RunUpsert {
	u.SetNull(run.FieldCurrentPhaseID)
	return u
}

// SetCurrentStepID sets the "current_step_id" field.
func (u *RunUpsert) SetCurrentStepID(v string) *RunUpsert {
	u.Set(run.FieldCurrentStepID, v)
	return u
}

// UpdateCurrentStepID sets the "current_step_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateCurrentStepID() *RunUpsert {
	u.SetExcluded(run.FieldCurrentStepID)
	return u
}

// ClearCurrentStepID clears the value of the "current_step_id" field.
func (u *RunUpsert) ClearCurrentStepID() *RunUpsert {
	u.SetNull(run.FieldCurrentStepID)
	return u
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsert) SetStepCount(v int) *RunUpsert {
	u.Set(run.FieldStepCount, v)
	return u
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsert) UpdateStepCount() *RunUpsert {
	u.SetExcluded(run.FieldStepCount)
	return u
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsert) AddStepCount(v int) *RunUpsert {
	u.Add(run.FieldStepCount, v)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsert) SetRetryCount(v int) *RunUpsert {
	u.Set(run.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsert) UpdateRetryCount() *RunUpsert {
	u.SetExcluded(run.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsert) AddRetryCount(v int) *RunUpsert {
	u.Add(run.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *RunUpsert) SetMaxRetries(v int) *RunUpsert {
	u.Set(run.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *RunUpsert) UpdateMaxRetries() *RunUpsert {
	u.SetExcluded(run.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *RunUpsert) AddMaxRetries(v int) *RunUpsert {
	u.Add(run.FieldMaxRetries, v)
	return u
}

// SetPriority sets the "priority" field.
func (u *RunUpsert) SetPriority(v int) *RunUpsert {
	u.Set(run.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RunUpsert) UpdatePriority() *RunUpsert {
	u.SetExcluded(run.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *RunUpsert) AddPriority(v int) *RunUpsert {
	u.Add(run.FieldPriority, v)
	return u
}

// SetCreditsReserved sets the "credits_reserved" field.
func (u *RunUpsert) SetCreditsReserved(v int) *RunUpsert {
	u.Set(run.FieldCreditsReserved, v)
	return u
}

// UpdateCreditsReserved sets the "credits_reserved" field to the value that was provided on create.
func (u *RunUpsert) UpdateCreditsReserved() *RunUpsert {
	u.SetExcluded(run.FieldCreditsReserved)
	return u
}

// AddCreditsReserved adds v to the "credits_reserved" field.
func (u *RunUpsert) AddCreditsReserved(v int) *RunUpsert {
	u.Add(run.FieldCreditsReserved, v)
	return u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *RunUpsert) SetCreditsConsumed(v int) *RunUpsert {
	u.Set(run.FieldCreditsConsumed, v)
	return u
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *RunUpsert) UpdateCreditsConsumed() *RunUpsert {
	u.SetExcluded(run.FieldCreditsConsumed)
	return u
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *RunUpsert) AddCreditsConsumed(v int) *RunUpsert {
	u.Add(run.FieldCreditsConsumed, v)
	return u
}

// SetError sets the "error" field.
func (u *RunUpsert) SetError(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *RunUpsert) UpdateError() *RunUpsert {
	u.SetExcluded(run.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *RunUpsert) ClearError() *RunUpsert {
	u.SetNull(run.FieldError)
	return u
}

// SetVersion sets the "version" field.
func (u *RunUpsert) SetVersion(v int64) *RunUpsert {
	u.Set(run.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsert) UpdateVersion() *RunUpsert {
	u.SetExcluded(run.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *RunUpsert) AddVersion(v int64) *RunUpsert {
	u.Add(run.FieldVersion, v)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *RunUpsert) SetWorkerID(v string) *RunUpsert {
	u.Set(run.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateWorkerID() *RunUpsert {
	u.SetExcluded(run.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *RunUpsert) ClearWorkerID() *RunUpsert {
	u.SetNull(run.FieldWorkerID)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunUpsert) SetLeaseExpiresAt(v time.Time) *RunUpsert {
	u.Set(run.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateLeaseExpiresAt() *RunUpsert {
	u.SetExcluded(run.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunUpsert) ClearLeaseExpiresAt() *RunUpsert {
	u.SetNull(run.FieldLeaseExpiresAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RunUpsert) SetLastHeartbeatAt(v time.Time) *RunUpsert {
	u.Set(run.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateLastHeartbeatAt() *RunUpsert {
	u.SetExcluded(run.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RunUpsert) ClearLastHeartbeatAt() *RunUpsert {
	u.SetNull(run.FieldLastHeartbeatAt)
	return u
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *RunUpsert) SetTimeoutAt(v time.Time) *RunUpsert {
	u.Set(run.FieldTimeoutAt, v)
	return u
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateTimeoutAt() *RunUpsert {
	u.SetExcluded(run.FieldTimeoutAt)
	return u
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (u *RunUpsert) ClearTimeoutAt() *RunUpsert {
	u.SetNull(run.FieldTimeoutAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsert) SetCompletedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCompletedAt() *RunUpsert {
	u.SetExcluded(run.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsert) ClearCompletedAt() *RunUpsert {
	u.SetNull(run.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(run.FieldTenantID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(run.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(run.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *RunUpsertOne) SetExternalID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateExternalID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *RunUpsertOne) ClearExternalID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearExternalID()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertOne) SetStatus(v run.Status) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStatus() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetPrompt sets the "prompt" field.
func (u *RunUpsertOne) SetPrompt(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePrompt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePrompt()
	})
}

// SetPromptHash sets the "prompt_hash" field.
func (u *RunUpsertOne) SetPromptHash(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPromptHash(v)
	})
}

// UpdatePromptHash sets the "prompt_hash" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePromptHash() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePromptHash()
	})
}

// SetConfig sets the "config" field.
func (u *RunUpsertOne) SetConfig(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateConfig() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateConfig()
	})
}

// SetPlan sets the "plan" field.
func (u *RunUpsertOne) SetPlan(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePlan() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *RunUpsertOne) ClearPlan() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearPlan()
	})
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (u *RunUpsertOne) SetCurrentPhaseID(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentPhaseID(v)
	})
}

// AddCurrentPhaseID adds v to the "current_phase_id" field.
func (u *RunUpsertOne) AddCurrentPhaseID(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddCurrentPhaseID(v)
	})
}

// UpdateCurrentPhaseID sets the "current_phase_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCurrentPhaseID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentPhaseID()
	})
}

// ClearCurrentPhaseID clears the value of the "current_phase_id" field.
func (u *RunUpsertOne) ClearCurrentPhaseID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentPhaseID()
	})
}

// SetCurrentStepID sets the "current_step_id" field.
func (u *RunUpsertOne) SetCurrentStepID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentStepID(v)
	})
}

// UpdateCurrentStepID sets the "current_step_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCurrentStepID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentStepID()
	})
}

// ClearCurrentStepID clears the value of the "current_step_id" field.
func (u *RunUpsertOne) ClearCurrentStepID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentStepID()
	})
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsertOne) SetStepCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsertOne) AddStepCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStepCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStepCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsertOne) SetRetryCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsertOne) AddRetryCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateRetryCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *RunUpsertOne) SetMaxRetries(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *RunUpsertOne) AddMaxRetries(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateMaxRetries() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetPriority sets the "priority" field.
func (u *RunUpsertOne) SetPriority(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *RunUpsertOne) AddPriority(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePriority() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePriority()
	})
}

// SetCreditsReserved sets the "credits_reserved" field.
func (u *RunUpsertOne) SetCreditsReserved(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCreditsReserved(v)
	})
}

// AddCreditsReserved adds v to the "credits_reserved" field.
func (u *RunUpsertOne) AddCreditsReserved(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddCreditsReserved(v)
	})
}

// UpdateCreditsReserved sets the "credits_reserved" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCreditsReserved() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreditsReserved()
	})
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *RunUpsertOne) SetCreditsConsumed(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCreditsConsumed(v)
	})
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *RunUpsertOne) AddCreditsConsumed(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddCreditsConsumed(v)
	})
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCreditsConsumed() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreditsConsumed()
	})
}

// SetError sets the "error" field.
func (u *RunUpsertOne) SetError(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateError() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *RunUpsertOne) ClearError() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearError()
	})
}

// SetVersion sets the "version" field.
func (u *RunUpsertOne) SetVersion(v int64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *RunUpsertOne) AddVersion(v int64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateVersion() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateVersion()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *RunUpsertOne) SetWorkerID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateWorkerID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *RunUpsertOne) ClearWorkerID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearWorkerID()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunUpsertOne) SetLeaseExpiresAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLeaseExpiresAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunUpsertOne) ClearLeaseExpiresAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RunUpsertOne) SetLastHeartbeatAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLastHeartbeatAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RunUpsertOne) ClearLastHeartbeatAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *RunUpsertOne) SetTimeoutAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTimeoutAt(v)
	})
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTimeoutAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTimeoutAt()
	})
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (u *RunUpsertOne) ClearTimeoutAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearTimeoutAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertOne) SetCompletedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertOne) ClearCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(run.FieldTenantID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(run.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(run.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *RunUpsertBulk) SetExternalID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateExternalID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *RunUpsertBulk) ClearExternalID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearExternalID()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertBulk) SetStatus(v run.Status) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStatus() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetPrompt sets the "prompt" field.
func (u *RunUpsertBulk) SetPrompt(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePrompt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePrompt()
	})
}

// SetPromptHash sets the "prompt_hash" field.
func (u *RunUpsertBulk) SetPromptHash(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPromptHash(v)
	})
}

// UpdatePromptHash sets the "prompt_hash" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePromptHash() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePromptHash()
	})
}

// SetConfig sets the "config" field.
func (u *RunUpsertBulk) SetConfig(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateConfig() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateConfig()
	})
}

// SetPlan sets the "plan" field.
func (u *RunUpsertBulk) SetPlan(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePlan() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *RunUpsertBulk) ClearPlan() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearPlan()
	})
}

// SetCurrentPhaseID sets the "current_phase_id" field.
func (u *RunUpsertBulk) SetCurrentPhaseID(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentPhaseID(v)
	})
}

// AddCurrentPhaseID adds v to the "current_phase_id" field.
func (u *RunUpsertBulk) AddCurrentPhaseID(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddCurrentPhaseID(v)
	})
}

// UpdateCurrentPhaseID sets the "current_phase_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCurrentPhaseID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentPhaseID()
	})
}

// ClearCurrentPhaseID clears the value of the "current_phase_id" field.
func (u *RunUpsertBulk) ClearCurrentPhaseID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentPhaseID()
	})
}

// SetCurrentStepID sets the "current_step_id" field.
func (u *RunUpsertBulk) SetCurrentStepID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentStepID(v)
	})
}

// UpdateCurrentStepID sets the "current_step_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCurrentStepID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentStepID()
	})
}

// ClearCurrentStepID clears the value of the "current_step_id" field.
func (u *RunUpsertBulk) ClearCurrentStepID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentStepID()
	})
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsertBulk) SetStepCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsertBulk) AddStepCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStepCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStepCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsertBulk) SetRetryCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsertBulk) AddRetryCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateRetryCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *RunUpsertBulk) SetMaxRetries(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *RunUpsertBulk) AddMaxRetries(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateMaxRetries() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetPriority sets the "priority" field.
func (u *RunUpsertBulk) SetPriority(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *RunUpsertBulk) AddPriority(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePriority() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePriority()
	})
}

// SetCreditsReserved sets the "credits_reserved" field.
func (u *RunUpsertBulk) SetCreditsReserved(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCreditsReserved(v)
	})
}

// AddCreditsReserved adds v to the "credits_reserved" field.
func (u *RunUpsertBulk) AddCreditsReserved(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddCreditsReserved(v)
	})
}

// UpdateCreditsReserved sets the "credits_reserved" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCreditsReserved() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreditsReserved()
	})
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (u *RunUpsertBulk) SetCreditsConsumed(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCreditsConsumed(v)
	})
}

// AddCreditsConsumed adds v to the "credits_consumed" field.
func (u *RunUpsertBulk) AddCreditsConsumed(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddCreditsConsumed(v)
	})
}

// UpdateCreditsConsumed sets the "credits_consumed" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCreditsConsumed() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreditsConsumed()
	})
}

// SetError sets the "error" field.
func (u *RunUpsertBulk) SetError(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateError() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *RunUpsertBulk) ClearError() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearError()
	})
}

// SetVersion sets the "version" field.
func (u *RunUpsertBulk) SetVersion(v int64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *RunUpsertBulk) AddVersion(v int64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateVersion() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateVersion()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *RunUpsertBulk) SetWorkerID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateWorkerID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *RunUpsertBulk) ClearWorkerID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearWorkerID()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunUpsertBulk) SetLeaseExpiresAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLeaseExpiresAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunUpsertBulk) ClearLeaseExpiresAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RunUpsertBulk) SetLastHeartbeatAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLastHeartbeatAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RunUpsertBulk) ClearLastHeartbeatAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *RunUpsertBulk) SetTimeoutAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTimeoutAt(v)
	})
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTimeoutAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTimeoutAt()
	})
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (u *RunUpsertBulk) ClearTimeoutAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearTimeoutAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertBulk) SetCompletedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertBulk) ClearCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
