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
	"github.com/taskfleet/maestro/ent/billingentry"
)

// BillingEntryCreate is the builder for creating a BillingEntry entity.
type BillingEntryCreate struct {
	config
	mutation *BillingEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *BillingEntryCreate) SetRunID(v string) *BillingEntryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetReservationID sets the "reservation_id" field.
func (_c *BillingEntryCreate) SetReservationID(v string) *BillingEntryCreate {
	_c.mutation.SetReservationID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *BillingEntryCreate) SetTenantID(v string) *BillingEntryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEntryType sets the "entry_type" field.
func (_c *BillingEntryCreate) SetEntryType(v billingentry.EntryType) *BillingEntryCreate {
	_c.mutation.SetEntryType(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillingEntryCreate) SetAmount(v int) *BillingEntryCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BillingEntryCreate) SetReason(v string) *BillingEntryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingEntryCreate) SetCreatedAt(v time.Time) *BillingEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingEntryCreate) SetNillableCreatedAt(v *time.Time) *BillingEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingEntryCreate) SetID(v string) *BillingEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BillingEntryMutation object of the builder.
func (_c *BillingEntryCreate) Mutation() *BillingEntryMutation {
	return _c.mutation
}

// Save creates the BillingEntry in the database.
func (_c *BillingEntryCreate) Save(ctx context.Context) (*BillingEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingEntryCreate) SaveX(ctx context.Context) *BillingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billingentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingEntryCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "BillingEntry.run_id"`)}
	}
	if _, ok := _c.mutation.ReservationID(); !ok {
		return &ValidationError{Name: "reservation_id", err: errors.New(`ent: missing required field "BillingEntry.reservation_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "BillingEntry.tenant_id"`)}
	}
	if _, ok := _c.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`ent: missing required field "BillingEntry.entry_type"`)}
	}
	if v, ok := _c.mutation.EntryType(); ok {
		if err := billingentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "BillingEntry.entry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "BillingEntry.amount"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "BillingEntry.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingEntry.created_at"`)}
	}
	return nil
}

func (_c *BillingEntryCreate) sqlSave(ctx context.Context) (*BillingEntry, error) {
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
			return nil, fmt.Errorf("unexpected BillingEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillingEntryCreate) createSpec() (*BillingEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingentry.Table, sqlgraph.NewFieldSpec(billingentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(billingentry.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ReservationID(); ok {
		_spec.SetField(billingentry.FieldReservationID, field.TypeString, value)
		_node.ReservationID = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(billingentry.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.EntryType(); ok {
		_spec.SetField(billingentry.FieldEntryType, field.TypeEnum, value)
		_node.EntryType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(billingentry.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(billingentry.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billingentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillingEntry.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingEntryUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *BillingEntryCreate) OnConflict(opts ...sql.ConflictOption) *BillingEntryUpsertOne {
	_c.conflict = opts
	return &BillingEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillingEntryCreate) OnConflictColumns(columns ...string) *BillingEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillingEntryUpsertOne{
		create: _c,
	}
}

type (
	// BillingEntryUpsertOne is the builder for "upsert"-ing
	//  one BillingEntry node.
	BillingEntryUpsertOne struct {
		create *BillingEntryCreate
	}

	// BillingEntryUpsert is the "OnConflict" setter.
	BillingEntryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billingentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillingEntryUpsertOne) UpdateNewValues() *BillingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(billingentry.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(billingentry.FieldRunID)
		}
		if _, exists := u.create.mutation.ReservationID(); exists {
			s.SetIgnore(billingentry.FieldReservationID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(billingentry.FieldTenantID)
		}
		if _, exists := u.create.mutation.EntryType(); exists {
			s.SetIgnore(billingentry.FieldEntryType)
		}
		if _, exists := u.create.mutation.Amount(); exists {
			s.SetIgnore(billingentry.FieldAmount)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(billingentry.FieldReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(billingentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BillingEntryUpsertOne) Ignore() *BillingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingEntryUpsertOne) DoNothing() *BillingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingEntryCreate.OnConflict
// documentation for more info.
func (u *BillingEntryUpsertOne) Update(set func(*BillingEntryUpsert)) *BillingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *BillingEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillingEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BillingEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BillingEntryUpsertOne.ID is not supported by MySQL driver. Use BillingEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BillingEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BillingEntryCreateBulk is the builder for creating many BillingEntry entities in bulk.
type BillingEntryCreateBulk struct {
	config
	err      error
	builders []*BillingEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the BillingEntry entities in the database.
func (_c *BillingEntryCreateBulk) Save(ctx context.Context) ([]*BillingEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingEntryMutation)
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
func (_c *BillingEntryCreateBulk) SaveX(ctx context.Context) []*BillingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillingEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingEntryUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *BillingEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *BillingEntryUpsertBulk {
	_c.conflict = opts
	return &BillingEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillingEntryCreateBulk) OnConflictColumns(columns ...string) *BillingEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillingEntryUpsertBulk{
		create: _c,
	}
}

// BillingEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of BillingEntry nodes.
type BillingEntryUpsertBulk struct {
	create *BillingEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billingentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillingEntryUpsertBulk) UpdateNewValues() *BillingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(billingentry.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(billingentry.FieldRunID)
			}
			if _, exists := b.mutation.ReservationID(); exists {
				s.SetIgnore(billingentry.FieldReservationID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(billingentry.FieldTenantID)
			}
			if _, exists := b.mutation.EntryType(); exists {
				s.SetIgnore(billingentry.FieldEntryType)
			}
			if _, exists := b.mutation.Amount(); exists {
				s.SetIgnore(billingentry.FieldAmount)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(billingentry.FieldReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(billingentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillingEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BillingEntryUpsertBulk) Ignore() *BillingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingEntryUpsertBulk) DoNothing() *BillingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingEntryCreateBulk.OnConflict
// documentation for more info.
func (u *BillingEntryUpsertBulk) Update(set func(*BillingEntryUpsert)) *BillingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *BillingEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BillingEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillingEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
