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
	"github.com/taskfleet/maestro/ent/modelhealth"
	"github.com/taskfleet/maestro/ent/predicate"
)

// ModelHealthUpdate is the builder for updating ModelHealth entities.
type ModelHealthUpdate struct {
	config
	hooks    []Hook
	mutation *ModelHealthMutation
}

// Where appends a list predicates to the ModelHealthUpdate builder.
func (_u *ModelHealthUpdate) Where(ps ...predicate.ModelHealth) *ModelHealthUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelHealthUpdate) SetProvider(v string) *ModelHealthUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableProvider(v *string) *ModelHealthUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelHealthUpdate) SetStatus(v modelhealth.Status) *ModelHealthUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableStatus(v *modelhealth.Status) *ModelHealthUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelHealthUpdate) SetLatencyMs(v int) *ModelHealthUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableLatencyMs(v *int) *ModelHealthUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelHealthUpdate) AddLatencyMs(v int) *ModelHealthUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ModelHealthUpdate) SetFailureCount(v int) *ModelHealthUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableFailureCount(v *int) *ModelHealthUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ModelHealthUpdate) AddFailureCount(v int) *ModelHealthUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ModelHealthUpdate) SetConsecutiveFailures(v int) *ModelHealthUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableConsecutiveFailures(v *int) *ModelHealthUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ModelHealthUpdate) AddConsecutiveFailures(v int) *ModelHealthUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *ModelHealthUpdate) SetLastSuccessAt(v time.Time) *ModelHealthUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableLastSuccessAt(v *time.Time) *ModelHealthUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *ModelHealthUpdate) ClearLastSuccessAt() *ModelHealthUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *ModelHealthUpdate) SetLastFailureAt(v time.Time) *ModelHealthUpdate {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *ModelHealthUpdate) SetNillableLastFailureAt(v *time.Time) *ModelHealthUpdate {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *ModelHealthUpdate) ClearLastFailureAt() *ModelHealthUpdate {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelHealthUpdate) SetUpdatedAt(v time.Time) *ModelHealthUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelHealthMutation object of the builder.
func (_u *ModelHealthUpdate) Mutation() *ModelHealthMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelHealthUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelHealthUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelHealthUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelHealthUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelHealthUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelhealth.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelHealthUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := modelhealth.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelHealth.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelHealthUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelhealth.Table, modelhealth.Columns, sqlgraph.NewFieldSpec(modelhealth.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelhealth.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelhealth.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelhealth.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelhealth.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(modelhealth.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(modelhealth.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(modelhealth.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(modelhealth.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(modelhealth.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(modelhealth.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(modelhealth.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(modelhealth.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelhealth.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelhealth.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelHealthUpdateOne is the builder for updating a single ModelHealth entity.
type ModelHealthUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelHealthMutation
}

// SetProvider sets the "provider" field.
func (_u *ModelHealthUpdateOne) SetProvider(v string) *ModelHealthUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableProvider(v *string) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelHealthUpdateOne) SetStatus(v modelhealth.Status) *ModelHealthUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableStatus(v *modelhealth.Status) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelHealthUpdateOne) SetLatencyMs(v int) *ModelHealthUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableLatencyMs(v *int) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelHealthUpdateOne) AddLatencyMs(v int) *ModelHealthUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ModelHealthUpdateOne) SetFailureCount(v int) *ModelHealthUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableFailureCount(v *int) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ModelHealthUpdateOne) AddFailureCount(v int) *ModelHealthUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ModelHealthUpdateOne) SetConsecutiveFailures(v int) *ModelHealthUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableConsecutiveFailures(v *int) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ModelHealthUpdateOne) AddConsecutiveFailures(v int) *ModelHealthUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *ModelHealthUpdateOne) SetLastSuccessAt(v time.Time) *ModelHealthUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableLastSuccessAt(v *time.Time) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *ModelHealthUpdateOne) ClearLastSuccessAt() *ModelHealthUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *ModelHealthUpdateOne) SetLastFailureAt(v time.Time) *ModelHealthUpdateOne {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *ModelHealthUpdateOne) SetNillableLastFailureAt(v *time.Time) *ModelHealthUpdateOne {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *ModelHealthUpdateOne) ClearLastFailureAt() *ModelHealthUpdateOne {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelHealthUpdateOne) SetUpdatedAt(v time.Time) *ModelHealthUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelHealthMutation object of the builder.
func (_u *ModelHealthUpdateOne) Mutation() *ModelHealthMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelHealthUpdate builder.
func (_u *ModelHealthUpdateOne) Where(ps ...predicate.ModelHealth) *ModelHealthUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelHealthUpdateOne) Select(field string, fields ...string) *ModelHealthUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelHealth entity.
func (_u *ModelHealthUpdateOne) Save(ctx context.Context) (*ModelHealth, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelHealthUpdateOne) SaveX(ctx context.Context) *ModelHealth {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelHealthUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelHealthUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelHealthUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelhealth.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelHealthUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := modelhealth.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelHealth.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelHealthUpdateOne) sqlSave(ctx context.Context) (_node *ModelHealth, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelhealth.Table, modelhealth.Columns, sqlgraph.NewFieldSpec(modelhealth.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelHealth.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelhealth.FieldID)
		for _, f := range fields {
			if !modelhealth.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelhealth.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelhealth.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelhealth.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelhealth.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelhealth.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(modelhealth.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(modelhealth.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(modelhealth.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(modelhealth.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(modelhealth.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(modelhealth.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(modelhealth.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(modelhealth.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelhealth.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelHealth{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelhealth.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
