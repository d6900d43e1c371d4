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
	"github.com/taskfleet/maestro/ent/modelhealth"
)

// ModelHealthCreate is the builder for creating a ModelHealth entity.
type ModelHealthCreate struct {
	config
	mutation *ModelHealthMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *ModelHealthCreate) SetProvider(v string) *ModelHealthCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModelHealthCreate) SetStatus(v modelhealth.Status) *ModelHealthCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableStatus(v *modelhealth.Status) *ModelHealthCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ModelHealthCreate) SetLatencyMs(v int) *ModelHealthCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableLatencyMs(v *int) *ModelHealthCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *ModelHealthCreate) SetFailureCount(v int) *ModelHealthCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableFailureCount(v *int) *ModelHealthCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *ModelHealthCreate) SetConsecutiveFailures(v int) *ModelHealthCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableConsecutiveFailures(v *int) *ModelHealthCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *ModelHealthCreate) SetLastSuccessAt(v time.Time) *ModelHealthCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableLastSuccessAt(v *time.Time) *ModelHealthCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_c *ModelHealthCreate) SetLastFailureAt(v time.Time) *ModelHealthCreate {
	_c.mutation.SetLastFailureAt(v)
	return _c
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableLastFailureAt(v *time.Time) *ModelHealthCreate {
	if v != nil {
		_c.SetLastFailureAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelHealthCreate) SetUpdatedAt(v time.Time) *ModelHealthCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelHealthCreate) SetNillableUpdatedAt(v *time.Time) *ModelHealthCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelHealthCreate) SetID(v string) *ModelHealthCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelHealthMutation object of the builder.
func (_c *ModelHealthCreate) Mutation() *ModelHealthMutation {
	return _c.mutation
}

// Save creates the ModelHealth in the database.
func (_c *ModelHealthCreate) Save(ctx context.Context) (*ModelHealth, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelHealthCreate) SaveX(ctx context.Context) *ModelHealth {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelHealthCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelHealthCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelHealthCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := modelhealth.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := modelhealth.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := modelhealth.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := modelhealth.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelhealth.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelHealthCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelHealth.provider"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModelHealth.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := modelhealth.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelHealth.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ModelHealth.latency_ms"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "ModelHealth.failure_count"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "ModelHealth.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelHealth.updated_at"`)}
	}
	return nil
}

func (_c *ModelHealthCreate) sqlSave(ctx context.Context) (*ModelHealth, error) {
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
			return nil, fmt.Errorf("unexpected ModelHealth.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelHealthCreate) createSpec() (*ModelHealth, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelHealth{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelhealth.Table, sqlgraph.NewFieldSpec(modelhealth.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelhealth.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(modelhealth.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(modelhealth.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(modelhealth.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(modelhealth.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(modelhealth.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	if value, ok := _c.mutation.LastFailureAt(); ok {
		_spec.SetField(modelhealth.FieldLastFailureAt, field.TypeTime, value)
		_node.LastFailureAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelhealth.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelHealth.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelHealthUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelHealthCreate) OnConflict(opts ...sql.ConflictOption) *ModelHealthUpsertOne {
	_c.conflict = opts
	return &ModelHealthUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelHealthCreate) OnConflictColumns(columns ...string) *ModelHealthUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelHealthUpsertOne{
		create: _c,
	}
}

type (
	// ModelHealthUpsertOne is the builder for "upsert"-ing
	//  one ModelHealth node.
	ModelHealthUpsertOne struct {
		create *ModelHealthCreate
	}

	// ModelHealthUpsert is the "OnConflict" setter.
	ModelHealthUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *ModelHealthUpsert) SetProvider(v string) *ModelHealthUpsert {
	u.Set(modelhealth.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateProvider() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldProvider)
	return u
}

// SetStatus sets the "status" field.
func (u *ModelHealthUpsert) SetStatus(v modelhealth.Status) *ModelHealthUpsert {
	u.Set(modelhealth.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateStatus() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldStatus)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelHealthUpsert) SetLatencyMs(v int) *ModelHealthUpsert {
	u.Set(modelhealth.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateLatencyMs() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelHealthUpsert) AddLatencyMs(v int) *ModelHealthUpsert {
	u.Add(modelhealth.FieldLatencyMs, v)
	return u
}

// SetFailureCount sets the "failure_count" field.
func (u *ModelHealthUpsert) SetFailureCount(v int) *ModelHealthUpsert {
	u.Set(modelhealth.FieldFailureCount, v)
	return u
}

// UpdateFailureCount sets the "failure_count" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateFailureCount() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldFailureCount)
	return u
}

// AddFailureCount adds v to the "failure_count" field.
func (u *ModelHealthUpsert) AddFailureCount(v int) *ModelHealthUpsert {
	u.Add(modelhealth.FieldFailureCount, v)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ModelHealthUpsert) SetConsecutiveFailures(v int) *ModelHealthUpsert {
	u.Set(modelhealth.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateConsecutiveFailures() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ModelHealthUpsert) AddConsecutiveFailures(v int) *ModelHealthUpsert {
	u.Add(modelhealth.FieldConsecutiveFailures, v)
	return u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (u *ModelHealthUpsert) SetLastSuccessAt(v time.Time) *ModelHealthUpsert {
	u.Set(modelhealth.FieldLastSuccessAt, v)
	return u
}

// UpdateLastSuccessAt sets the "last_success_at" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateLastSuccessAt() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldLastSuccessAt)
	return u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (u *ModelHealthUpsert) ClearLastSuccessAt() *ModelHealthUpsert {
	u.SetNull(modelhealth.FieldLastSuccessAt)
	return u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (u *ModelHealthUpsert) SetLastFailureAt(v time.Time) *ModelHealthUpsert {
	u.Set(modelhealth.FieldLastFailureAt, v)
	return u
}

// UpdateLastFailureAt sets the "last_failure_at" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateLastFailureAt() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldLastFailureAt)
	return u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (u *ModelHealthUpsert) ClearLastFailureAt() *ModelHealthUpsert {
	u.SetNull(modelhealth.FieldLastFailureAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelHealthUpsert) SetUpdatedAt(v time.Time) *ModelHealthUpsert {
	u.Set(modelhealth.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelHealthUpsert) UpdateUpdatedAt() *ModelHealthUpsert {
	u.SetExcluded(modelhealth.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelhealth.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelHealthUpsertOne) UpdateNewValues() *ModelHealthUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelhealth.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelHealthUpsertOne) Ignore() *ModelHealthUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelHealthUpsertOne) DoNothing() *ModelHealthUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelHealthCreate.OnConflict
// documentation for more info.
func (u *ModelHealthUpsertOne) Update(set func(*ModelHealthUpsert)) *ModelHealthUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelHealthUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ModelHealthUpsertOne) SetProvider(v string) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateProvider() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateProvider()
	})
}

// SetStatus sets the "status" field.
func (u *ModelHealthUpsertOne) SetStatus(v modelhealth.Status) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateStatus() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateStatus()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelHealthUpsertOne) SetLatencyMs(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelHealthUpsertOne) AddLatencyMs(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateLatencyMs() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetFailureCount sets the "failure_count" field.
func (u *ModelHealthUpsertOne) SetFailureCount(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetFailureCount(v)
	})
}

// AddFailureCount adds v to the "failure_count" field.
func (u *ModelHealthUpsertOne) AddFailureCount(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddFailureCount(v)
	})
}

// UpdateFailureCount sets the "failure_count" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateFailureCount() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateFailureCount()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ModelHealthUpsertOne) SetConsecutiveFailures(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ModelHealthUpsertOne) AddConsecutiveFailures(v int) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateConsecutiveFailures() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetLastSuccessAt sets the "last_success_at" field.
func (u *ModelHealthUpsertOne) SetLastSuccessAt(v time.Time) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLastSuccessAt(v)
	})
}

// UpdateLastSuccessAt sets the "last_success_at" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateLastSuccessAt() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLastSuccessAt()
	})
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (u *ModelHealthUpsertOne) ClearLastSuccessAt() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.ClearLastSuccessAt()
	})
}

// SetLastFailureAt sets the "last_failure_at" field.
func (u *ModelHealthUpsertOne) SetLastFailureAt(v time.Time) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLastFailureAt(v)
	})
}

// UpdateLastFailureAt sets the "last_failure_at" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateLastFailureAt() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLastFailureAt()
	})
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (u *ModelHealthUpsertOne) ClearLastFailureAt() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.ClearLastFailureAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelHealthUpsertOne) SetUpdatedAt(v time.Time) *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelHealthUpsertOne) UpdateUpdatedAt() *ModelHealthUpsertOne {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelHealthUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelHealthCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelHealthUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelHealthUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelHealthUpsertOne.ID is not supported by MySQL driver. Use ModelHealthUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelHealthUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelHealthCreateBulk is the builder for creating many ModelHealth entities in bulk.
type ModelHealthCreateBulk struct {
	config
	err      error
	builders []*ModelHealthCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelHealth entities in the database.
func (_c *ModelHealthCreateBulk) Save(ctx context.Context) ([]*ModelHealth, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelHealth, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelHealthMutation)
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
func (_c *ModelHealthCreateBulk) SaveX(ctx context.Context) []*ModelHealth {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelHealthCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelHealthCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelHealth.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelHealthUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelHealthCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelHealthUpsertBulk {
	_c.conflict = opts
	return &ModelHealthUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelHealthCreateBulk) OnConflictColumns(columns ...string) *ModelHealthUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelHealthUpsertBulk{
		create: _c,
	}
}

// ModelHealthUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelHealth nodes.
type ModelHealthUpsertBulk struct {
	create *ModelHealthCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelhealth.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelHealthUpsertBulk) UpdateNewValues() *ModelHealthUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelhealth.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelHealth.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelHealthUpsertBulk) Ignore() *ModelHealthUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelHealthUpsertBulk) DoNothing() *ModelHealthUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelHealthCreateBulk.OnConflict
// documentation for more info.
func (u *ModelHealthUpsertBulk) Update(set func(*ModelHealthUpsert)) *ModelHealthUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelHealthUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ModelHealthUpsertBulk) SetProvider(v string) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateProvider() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateProvider()
	})
}

// SetStatus sets the "status" field.
func (u *ModelHealthUpsertBulk) SetStatus(v modelhealth.Status) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateStatus() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateStatus()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelHealthUpsertBulk) SetLatencyMs(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelHealthUpsertBulk) AddLatencyMs(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateLatencyMs() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetFailureCount sets the "failure_count" field.
func (u *ModelHealthUpsertBulk) SetFailureCount(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetFailureCount(v)
	})
}

// AddFailureCount adds v to the "failure_count" field.
func (u *ModelHealthUpsertBulk) AddFailureCount(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddFailureCount(v)
	})
}

// UpdateFailureCount sets the "failure_count" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateFailureCount() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateFailureCount()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ModelHealthUpsertBulk) SetConsecutiveFailures(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ModelHealthUpsertBulk) AddConsecutiveFailures(v int) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateConsecutiveFailures() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetLastSuccessAt sets the "last_success_at" field.
func (u *ModelHealthUpsertBulk) SetLastSuccessAt(v time.Time) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLastSuccessAt(v)
	})
}

// UpdateLastSuccessAt sets the "last_success_at" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateLastSuccessAt() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLastSuccessAt()
	})
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (u *ModelHealthUpsertBulk) ClearLastSuccessAt() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.ClearLastSuccessAt()
	})
}

// SetLastFailureAt sets the "last_failure_at" field.
func (u *ModelHealthUpsertBulk) SetLastFailureAt(v time.Time) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetLastFailureAt(v)
	})
}

// UpdateLastFailureAt sets the "last_failure_at" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateLastFailureAt() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateLastFailureAt()
	})
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (u *ModelHealthUpsertBulk) ClearLastFailureAt() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.ClearLastFailureAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelHealthUpsertBulk) SetUpdatedAt(v time.Time) *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelHealthUpsertBulk) UpdateUpdatedAt() *ModelHealthUpsertBulk {
	return u.Update(func(s *ModelHealthUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelHealthUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelHealthCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelHealthCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelHealthUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
