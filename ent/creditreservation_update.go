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
	"github.com/taskfleet/maestro/ent/predicate"
)

// CreditReservationUpdate is the builder for updating CreditReservation entities.
type CreditReservationUpdate struct {
	config
	hooks    []Hook
	mutation *CreditReservationMutation
}

// Where appends a list predicates to the CreditReservationUpdate builder.
func (_u *CreditReservationUpdate) Where(ps ...predicate.CreditReservation) *CreditReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CreditReservationUpdate) SetAmount(v int) *CreditReservationUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CreditReservationUpdate) SetNillableAmount(v *int) *CreditReservationUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CreditReservationUpdate) AddAmount(v int) *CreditReservationUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *CreditReservationUpdate) SetConsumed(v int) *CreditReservationUpdate {
	_u.mutation.ResetConsumed()
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *CreditReservationUpdate) SetNillableConsumed(v *int) *CreditReservationUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// AddConsumed adds value to the "consumed" field.
func (_u *CreditReservationUpdate) AddConsumed(v int) *CreditReservationUpdate {
	_u.mutation.AddConsumed(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreditReservationUpdate) SetStatus(v creditreservation.Status) *CreditReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreditReservationUpdate) SetNillableStatus(v *creditreservation.Status) *CreditReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditReservationUpdate) SetReason(v string) *CreditReservationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditReservationUpdate) SetNillableReason(v *string) *CreditReservationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *CreditReservationUpdate) ClearReason() *CreditReservationUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *CreditReservationUpdate) SetFinalizedAt(v time.Time) *CreditReservationUpdate {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *CreditReservationUpdate) SetNillableFinalizedAt(v *time.Time) *CreditReservationUpdate {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (_u *CreditReservationUpdate) ClearFinalizedAt() *CreditReservationUpdate {
	_u.mutation.ClearFinalizedAt()
	return _u
}

// Mutation returns the CreditReservationMutation object of the builder.
func (_u *CreditReservationUpdate) Mutation() *CreditReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditReservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditReservationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := creditreservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CreditReservation.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditReservation.run"`)
	}
	return nil
}

func (_u *CreditReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditreservation.Table, creditreservation.Columns, sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(creditreservation.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(creditreservation.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(creditreservation.FieldConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsumed(); ok {
		_spec.AddField(creditreservation.FieldConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(creditreservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(creditreservation.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(creditreservation.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(creditreservation.FieldFinalizedAt, field.TypeTime, value)
	}
	if _u.mutation.FinalizedAtCleared() {
		_spec.ClearField(creditreservation.FieldFinalizedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditreservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditReservationUpdateOne is the builder for updating a single CreditReservation entity.
type CreditReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditReservationMutation
}

// SetAmount sets the "amount" field.
func (_u *CreditReservationUpdateOne) SetAmount(v int) *CreditReservationUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CreditReservationUpdateOne) SetNillableAmount(v *int) *CreditReservationUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CreditReservationUpdateOne) AddAmount(v int) *CreditReservationUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *CreditReservationUpdateOne) SetConsumed(v int) *CreditReservationUpdateOne {
	_u.mutation.ResetConsumed()
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *CreditReservationUpdateOne) SetNillableConsumed(v *int) *CreditReservationUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// AddConsumed adds value to the "consumed" field.
func (_u *CreditReservationUpdateOne) AddConsumed(v int) *CreditReservationUpdateOne {
	_u.mutation.AddConsumed(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreditReservationUpdateOne) SetStatus(v creditreservation.Status) *CreditReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreditReservationUpdateOne) SetNillableStatus(v *creditreservation.Status) *CreditReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditReservationUpdateOne) SetReason(v string) *CreditReservationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditReservationUpdateOne) SetNillableReason(v *string) *CreditReservationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *CreditReservationUpdateOne) ClearReason() *CreditReservationUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetFinalizedAt sets the "finalized_at" field.
func (_u *CreditReservationUpdateOne) SetFinalizedAt(v time.Time) *CreditReservationUpdateOne {
	_u.mutation.SetFinalizedAt(v)
	return _u
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_u *CreditReservationUpdateOne) SetNillableFinalizedAt(v *time.Time) *CreditReservationUpdateOne {
	if v != nil {
		_u.SetFinalizedAt(*v)
	}
	return _u
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (_u *CreditReservationUpdateOne) ClearFinalizedAt() *CreditReservationUpdateOne {
	_u.mutation.ClearFinalizedAt()
	return _u
}

// Mutation returns the CreditReservationMutation object of the builder.
func (_u *CreditReservationUpdateOne) Mutation() *CreditReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreditReservationUpdate builder.
func (_u *CreditReservationUpdateOne) Where(ps ...predicate.CreditReservation) *CreditReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditReservationUpdateOne) Select(field string, fields ...string) *CreditReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditReservation entity.
func (_u *CreditReservationUpdateOne) Save(ctx context.Context) (*CreditReservation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditReservationUpdateOne) SaveX(ctx context.Context) *CreditReservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditReservationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := creditreservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CreditReservation.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditReservation.run"`)
	}
	return nil
}

func (_u *CreditReservationUpdateOne) sqlSave(ctx context.Context) (_node *CreditReservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditreservation.Table, creditreservation.Columns, sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditReservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditreservation.FieldID)
		for _, f := range fields {
			if !creditreservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditreservation.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(creditreservation.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(creditreservation.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(creditreservation.FieldConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsumed(); ok {
		_spec.AddField(creditreservation.FieldConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(creditreservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(creditreservation.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(creditreservation.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.FinalizedAt(); ok {
		_spec.SetField(creditreservation.FieldFinalizedAt, field.TypeTime, value)
	}
	if _u.mutation.FinalizedAtCleared() {
		_spec.ClearField(creditreservation.FieldFinalizedAt, field.TypeTime)
	}
	_node = &CreditReservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditreservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
