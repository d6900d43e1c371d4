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
	"github.com/taskfleet/maestro/ent/run"
)

// CreditReservationCreate is the builder for creating a CreditReservation entity.
type CreditReservationCreate struct {
	config
	mutation *CreditReservationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *CreditReservationCreate) SetRunID(v string) *CreditReservationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *CreditReservationCreate) SetTenantID(v string) *CreditReservationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CreditReservationCreate) SetAmount(v int) *CreditReservationCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *CreditReservationCreate) SetConsumed(v int) *CreditReservationCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *CreditReservationCreate) SetNillableConsumed(v *int) *CreditReservationCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CreditReservationCreate) SetStatus(v creditreservation.Status) *CreditReservationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CreditReservationCreate) SetNillableStatus(v *creditreservation.Status) *CreditReservationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *CreditReservationCreate) SetReason(v string) *CreditReservationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *CreditReservationCreate) SetNillableReason(v *string) *CreditReservationCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditReservationCreate) SetCreatedAt(v time.Time) *CreditReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditReservationCreate) SetNillableCreatedAt(v *time.Time) *CreditReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinalizedAt sets the "finalized_at" field.
func (_c *CreditReservationCreate) SetFinalizedAt(v time.Time) *CreditReservationCreate {
	_c.mutation.SetFinalizedAt(v)
	return _c
}

// SetNillableFinalizedAt sets the "finalized_at" field if the given value is not nil.
func (_c *CreditReservationCreate) SetNillableFinalizedAt(v *time.Time) *CreditReservationCreate {
	if v != nil {
		_c.SetFinalizedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditReservationCreate) SetID(v string) *CreditReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *CreditReservationCreate) SetRun(v *Run) *CreditReservationCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CreditReservationMutation object of the builder.
func (_c *CreditReservationCreate) Mutation() *CreditReservationMutation {
	return _c.mutation
}

// Save creates the CreditReservation in the database.
func (_c *CreditReservationCreate) Save(ctx context.Context) (*CreditReservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditReservationCreate) SaveX(ctx context.Context) *CreditReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditReservationCreate) defaults() {
	if _, ok := _c.mutation.Consumed(); !ok {
		v := creditreservation.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := creditreservation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creditreservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditReservationCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CreditReservation.run_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CreditReservation.tenant_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CreditReservation.amount"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "CreditReservation.consumed"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditReservation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := creditreservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CreditReservation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditReservation.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CreditReservation.run"`)}
	}
	return nil
}

func (_c *CreditReservationCreate) sqlSave(ctx context.Context) (*CreditReservation, error) {
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
			return nil, fmt.Errorf("unexpected CreditReservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditReservationCreate) createSpec() (*CreditReservation, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditReservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditreservation.Table, sqlgraph.NewFieldSpec(creditreservation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(creditreservation.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(creditreservation.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(creditreservation.FieldConsumed, field.TypeInt, value)
		_node.Consumed = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(creditreservation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(creditreservation.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creditreservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinalizedAt(); ok {
		_spec.SetField(creditreservation.FieldFinalizedAt, field.TypeTime, value)
		_node.FinalizedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditreservation.RunTable,
			Columns: []string{creditreservation.RunColumn},
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
//	client.CreditReservation.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditReservationUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *CreditReservationCreate) OnConflict(opts ...sql.ConflictOption) *CreditReservationUpsertOne {
	_c.conflict = opts
	return &CreditReservationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CreditReservationCreate) OnConflictColumns(columns ...string) *CreditReservationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CreditReservationUpsertOne{
		create: _c,
	}
}

type (
	// CreditReservationUpsertOne is the builder for "upsert"-ing
	//  one CreditReservation node.
	CreditReservationUpsertOne struct {
		create *CreditReservationCreate
	}

	// CreditReservationUpsert is the "OnConflict" setter.
	CreditReservationUpsert struct {
		*sql.UpdateSet
	}
)

// SetAmount sets the "amount" field.
func (u *CreditReservationUpsert) SetAmount(v int) *CreditReservationUpsert {
	u.Set(creditreservation.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditReservationUpsert) UpdateAmount() *CreditReservationUpsert {
	u.SetExcluded(creditreservation.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *CreditReservationUpsert) AddAmount(v int) *CreditReservationUpsert {
	u.Add(creditreservation.FieldAmount, v)
	return u
}

// SetConsumed sets the "consumed" field.
func (u *CreditReservationUpsert) SetConsumed(v int) *CreditReservationUpsert {
	u.Set(creditreservation.FieldConsumed, v)
	return u
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *CreditReservationUpsert) UpdateConsumed() *CreditReservationUpsert {
	u.SetExcluded(creditreservation.FieldConsumed)
	return u
}

// AddConsumed adds v to the "consumed" field.
func (u *CreditReservationUpsert) AddConsumed(v int) *CreditReservationUpsert {
	u.Add(creditreservation.FieldConsumed, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CreditReservationUpsert) SetStatus(v creditreservation.Status) *CreditReservationUpsert {
	u.Set(creditreservation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditReservationUpsert) UpdateStatus() *CreditReservationUpsert {
	u.SetExcluded(creditreservation.FieldStatus)
	return u
}

// SetReason sets the "reason" field.
func (u *CreditReservationUpsert) SetReason(v string) *CreditReservationUpsert {
	u.Set(creditreservation.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *CreditReservationUpsert) UpdateReason() *CreditReservationUpsert {
	u.SetExcluded(creditreservation.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *CreditReservationUpsert) ClearReason() *CreditReservationUpsert {
	u.SetNull(creditreservation.FieldReason)
	return u
}

// SetFinalizedAt sets the "finalized_at" field.
func (u *CreditReservationUpsert) SetFinalizedAt(v time.Time) *CreditReservationUpsert {
	u.Set(creditreservation.FieldFinalizedAt, v)
	return u
}

// UpdateFinalizedAt sets the "finalized_at" field to the value that was provided on create.
func (u *CreditReservationUpsert) UpdateFinalizedAt() *CreditReservationUpsert {
	u.SetExcluded(creditreservation.FieldFinalizedAt)
	return u
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (u *CreditReservationUpsert) ClearFinalizedAt() *CreditReservationUpsert {
	u.SetNull(creditreservation.FieldFinalizedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditreservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditReservationUpsertOne) UpdateNewValues() *CreditReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(creditreservation.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(creditreservation.FieldRunID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(creditreservation.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(creditreservation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditReservationUpsertOne) Ignore() *CreditReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditReservationUpsertOne) DoNothing() *CreditReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditReservationCreate.OnConflict
// documentation for more info.
func (u *CreditReservationUpsertOne) Update(set func(*CreditReservationUpsert)) *CreditReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAmount sets the "amount" field.
func (u *CreditReservationUpsertOne) SetAmount(v int) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *CreditReservationUpsertOne) AddAmount(v int) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditReservationUpsertOne) UpdateAmount() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateAmount()
	})
}

// SetConsumed sets the "consumed" field.
func (u *CreditReservationUpsertOne) SetConsumed(v int) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetConsumed(v)
	})
}

// AddConsumed adds v to the "consumed" field.
func (u *CreditReservationUpsertOne) AddConsumed(v int) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.AddConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *CreditReservationUpsertOne) UpdateConsumed() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateConsumed()
	})
}

// SetStatus sets the "status" field.
func (u *CreditReservationUpsertOne) SetStatus(v creditreservation.Status) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditReservationUpsertOne) UpdateStatus() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *CreditReservationUpsertOne) SetReason(v string) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *CreditReservationUpsertOne) UpdateReason() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *CreditReservationUpsertOne) ClearReason() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.ClearReason()
	})
}

// SetFinalizedAt sets the "finalized_at" field.
func (u *CreditReservationUpsertOne) SetFinalizedAt(v time.Time) *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetFinalizedAt(v)
	})
}

// UpdateFinalizedAt sets the "finalized_at" field to the value that was provided on create.
func (u *CreditReservationUpsertOne) UpdateFinalizedAt() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateFinalizedAt()
	})
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (u *CreditReservationUpsertOne) ClearFinalizedAt() *CreditReservationUpsertOne {
	return u.Update(func(s *CreditReservationUpsert) {
		s.ClearFinalizedAt()
	})
}

// Exec executes the query.
func (u *CreditReservationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditReservationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditReservationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditReservationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditReservationUpsertOne.ID is not supported by MySQL driver. Use CreditReservationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditReservationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditReservationCreateBulk is the builder for creating many CreditReservation entities in bulk.
type CreditReservationCreateBulk struct {
	config
	err      error
	builders []*CreditReservationCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditReservation entities in the database.
func (_c *CreditReservationCreateBulk) Save(ctx context.Context) ([]*CreditReservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditReservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditReservationMutation)
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
func (_c *CreditReservationCreateBulk) SaveX(ctx context.Context) []*CreditReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditReservation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditReservationUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *CreditReservationCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditReservationUpsertBulk {
	_c.conflict = opts
	return &CreditReservationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CreditReservationCreateBulk) OnConflictColumns(columns ...string) *CreditReservationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CreditReservationUpsertBulk{
		create: _c,
	}
}

// CreditReservationUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditReservation nodes.
type CreditReservationUpsertBulk struct {
	create *CreditReservationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditreservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditReservationUpsertBulk) UpdateNewValues() *CreditReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(creditreservation.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(creditreservation.FieldRunID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(creditreservation.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(creditreservation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditReservation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditReservationUpsertBulk) Ignore() *CreditReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditReservationUpsertBulk) DoNothing() *CreditReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditReservationCreateBulk.OnConflict
// documentation for more info.
func (u *CreditReservationUpsertBulk) Update(set func(*CreditReservationUpsert)) *CreditReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAmount sets the "amount" field.
func (u *CreditReservationUpsertBulk) SetAmount(v int) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *CreditReservationUpsertBulk) AddAmount(v int) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditReservationUpsertBulk) UpdateAmount() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateAmount()
	})
}

// SetConsumed sets the "consumed" field.
func (u *CreditReservationUpsertBulk) SetConsumed(v int) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetConsumed(v)
	})
}

// AddConsumed adds v to the "consumed" field.
func (u *CreditReservationUpsertBulk) AddConsumed(v int) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.AddConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *CreditReservationUpsertBulk) UpdateConsumed() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateConsumed()
	})
}

// SetStatus sets the "status" field.
func (u *CreditReservationUpsertBulk) SetStatus(v creditreservation.Status) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditReservationUpsertBulk) UpdateStatus() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *CreditReservationUpsertBulk) SetReason(v string) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *CreditReservationUpsertBulk) UpdateReason() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *CreditReservationUpsertBulk) ClearReason() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.ClearReason()
	})
}

// SetFinalizedAt sets the "finalized_at" field.
func (u *CreditReservationUpsertBulk) SetFinalizedAt(v time.Time) *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.SetFinalizedAt(v)
	})
}

// UpdateFinalizedAt sets the "finalized_at" field to the value that was provided on create.
func (u *CreditReservationUpsertBulk) UpdateFinalizedAt() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.UpdateFinalizedAt()
	})
}

// ClearFinalizedAt clears the value of the "finalized_at" field.
func (u *CreditReservationUpsertBulk) ClearFinalizedAt() *CreditReservationUpsertBulk {
	return u.Update(func(s *CreditReservationUpsert) {
		s.ClearFinalizedAt()
	})
}

// Exec executes the query.
func (u *CreditReservationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditReservationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditReservationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditReservationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
