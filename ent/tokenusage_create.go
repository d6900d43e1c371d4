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
	"github.com/taskfleet/maestro/ent/tokenusage"
)

// TokenUsageCreate is the builder for creating a TokenUsage entity.
type TokenUsageCreate struct {
	config
	mutation *TokenUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *TokenUsageCreate) SetRunID(v string) *TokenUsageCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *TokenUsageCreate) SetStepID(v string) *TokenUsageCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableStepID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenUsageCreate) SetModel(v string) *TokenUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TokenUsageCreate) SetProvider(v string) *TokenUsageCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *TokenUsageCreate) SetPromptTokens(v int) *TokenUsageCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillablePromptTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *TokenUsageCreate) SetCompletionTokens(v int) *TokenUsageCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCompletionTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TokenUsageCreate) SetTotalTokens(v int) *TokenUsageCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableTotalTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *TokenUsageCreate) SetLatencyMs(v int) *TokenUsageCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableLatencyMs(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageCreate) SetCreatedAt(v time.Time) *TokenUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCreatedAt(v *time.Time) *TokenUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageCreate) SetID(v string) *TokenUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *TokenUsageCreate) SetRun(v *Run) *TokenUsageCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_c *TokenUsageCreate) Mutation() *TokenUsageMutation {
	return _c.mutation
}

// Save creates the TokenUsage in the database.
func (_c *TokenUsageCreate) Save(ctx context.Context) (*TokenUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageCreate) SaveX(ctx context.Context) *TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := tokenusage.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := tokenusage.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := tokenusage.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := tokenusage.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TokenUsage.run_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenUsage.model"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TokenUsage.provider"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "TokenUsage.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "TokenUsage.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "TokenUsage.total_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "TokenUsage.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsage.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TokenUsage.run"`)}
	}
	return nil
}

func (_c *TokenUsageCreate) sqlSave(ctx context.Context) (*TokenUsage, error) {
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
			return nil, fmt.Errorf("unexpected TokenUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenUsageCreate) createSpec() (*TokenUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusage.Table, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(tokenusage.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(tokenusage.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(tokenusage.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.RunTable,
			Columns: []string{tokenusage.RunColumn},
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
//	client.TokenUsage.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageCreate) OnConflict(opts ...sql.ConflictOption) *TokenUsageUpsertOne {
	_c.conflict = opts
	return &TokenUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageCreate) OnConflictColumns(columns ...string) *TokenUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageUpsertOne{
		create: _c,
	}
}

type (
	// TokenUsageUpsertOne is the builder for "upsert"-ing
	//  one TokenUsage node.
	TokenUsageUpsertOne struct {
		create *TokenUsageCreate
	}

	// TokenUsageUpsert is the "OnConflict" setter.
	TokenUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *TokenUsageUpsert) SetStepID(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateStepID() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *TokenUsageUpsert) ClearStepID() *TokenUsageUpsert {
	u.SetNull(tokenusage.FieldStepID)
	return u
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsert) SetModel(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateModel() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldModel)
	return u
}

// SetProvider sets the "provider" field.
func (u *TokenUsageUpsert) SetProvider(v string) *TokenUsageUpsert {
	u.Set(tokenusage.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateProvider() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldProvider)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageUpsert) SetPromptTokens(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdatePromptTokens() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageUpsert) AddPromptTokens(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldPromptTokens, v)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageUpsert) SetCompletionTokens(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateCompletionTokens() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageUpsert) AddCompletionTokens(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldCompletionTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageUpsert) SetTotalTokens(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateTotalTokens() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageUpsert) AddTotalTokens(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldTotalTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *TokenUsageUpsert) SetLatencyMs(v int) *TokenUsageUpsert {
	u.Set(tokenusage.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *TokenUsageUpsert) UpdateLatencyMs() *TokenUsageUpsert {
	u.SetExcluded(tokenusage.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *TokenUsageUpsert) AddLatencyMs(v int) *TokenUsageUpsert {
	u.Add(tokenusage.FieldLatencyMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageUpsertOne) UpdateNewValues() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tokenusage.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(tokenusage.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tokenusage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TokenUsageUpsertOne) Ignore() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageUpsertOne) DoNothing() *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageCreate.OnConflict
// documentation for more info.
func (u *TokenUsageUpsertOne) Update(set func(*TokenUsageUpsert)) *TokenUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *TokenUsageUpsertOne) SetStepID(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateStepID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *TokenUsageUpsertOne) ClearStepID() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearStepID()
	})
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsertOne) SetModel(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateModel() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateModel()
	})
}

// SetProvider sets the "provider" field.
func (u *TokenUsageUpsertOne) SetProvider(v string) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateProvider() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateProvider()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageUpsertOne) SetPromptTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageUpsertOne) AddPromptTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdatePromptTokens() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageUpsertOne) SetCompletionTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageUpsertOne) AddCompletionTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateCompletionTokens() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageUpsertOne) SetTotalTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageUpsertOne) AddTotalTokens(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateTotalTokens() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *TokenUsageUpsertOne) SetLatencyMs(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *TokenUsageUpsertOne) AddLatencyMs(v int) *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *TokenUsageUpsertOne) UpdateLatencyMs() *TokenUsageUpsertOne {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateLatencyMs()
	})
}

// Exec executes the query.
func (u *TokenUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TokenUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TokenUsageUpsertOne.ID is not supported by MySQL driver. Use TokenUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TokenUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TokenUsageCreateBulk is the builder for creating many TokenUsage entities in bulk.
type TokenUsageCreateBulk struct {
	config
	err      error
	builders []*TokenUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the TokenUsage entities in the database.
func (_c *TokenUsageCreateBulk) Save(ctx context.Context) ([]*TokenUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageMutation)
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
func (_c *TokenUsageCreateBulk) SaveX(ctx context.Context) []*TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenUsageUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *TokenUsageUpsertBulk {
	_c.conflict = opts
	return &TokenUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenUsageCreateBulk) OnConflictColumns(columns ...string) *TokenUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenUsageUpsertBulk{
		create: _c,
	}
}

// TokenUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of TokenUsage nodes.
type TokenUsageUpsertBulk struct {
	create *TokenUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokenusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenUsageUpsertBulk) UpdateNewValues() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tokenusage.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(tokenusage.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tokenusage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TokenUsageUpsertBulk) Ignore() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenUsageUpsertBulk) DoNothing() *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenUsageCreateBulk.OnConflict
// documentation for more info.
func (u *TokenUsageUpsertBulk) Update(set func(*TokenUsageUpsert)) *TokenUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *TokenUsageUpsertBulk) SetStepID(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateStepID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *TokenUsageUpsertBulk) ClearStepID() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.ClearStepID()
	})
}

// SetModel sets the "model" field.
func (u *TokenUsageUpsertBulk) SetModel(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateModel() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateModel()
	})
}

// SetProvider sets the "provider" field.
func (u *TokenUsageUpsertBulk) SetProvider(v string) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateProvider() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateProvider()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *TokenUsageUpsertBulk) SetPromptTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *TokenUsageUpsertBulk) AddPromptTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdatePromptTokens() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *TokenUsageUpsertBulk) SetCompletionTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *TokenUsageUpsertBulk) AddCompletionTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateCompletionTokens() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TokenUsageUpsertBulk) SetTotalTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TokenUsageUpsertBulk) AddTotalTokens(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateTotalTokens() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *TokenUsageUpsertBulk) SetLatencyMs(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *TokenUsageUpsertBulk) AddLatencyMs(v int) *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *TokenUsageUpsertBulk) UpdateLatencyMs() *TokenUsageUpsertBulk {
	return u.Update(func(s *TokenUsageUpsert) {
		s.UpdateLatencyMs()
	})
}

// Exec executes the query.
func (u *TokenUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TokenUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TokenUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
