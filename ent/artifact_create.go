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
	"github.com/taskfleet/maestro/ent/artifact"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContentHash sets the "content_hash" field.
func (_c *ArtifactCreate) SetContentHash(v string) *ArtifactCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *ArtifactCreate) SetArtifactType(v string) *ArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ArtifactCreate) SetMimeType(v string) *ArtifactCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ArtifactCreate) SetFileName(v string) *ArtifactCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableFileName(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *ArtifactCreate) SetSize(v int64) *ArtifactCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *ArtifactCreate) SetStoragePath(v string) *ArtifactCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetCreatedByRun sets the "created_by_run" field.
func (_c *ArtifactCreate) SetCreatedByRun(v string) *ArtifactCreate {
	_c.mutation.SetCreatedByRun(v)
	return _c
}

// SetNillableCreatedByRun sets the "created_by_run" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedByRun(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedByRun(*v)
	}
	return _c
}

// SetCreatedByStep sets the "created_by_step" field.
func (_c *ArtifactCreate) SetCreatedByStep(v string) *ArtifactCreate {
	_c.mutation.SetCreatedByStep(v)
	return _c
}

// SetNillableCreatedByStep sets the "created_by_step" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedByStep(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedByStep(*v)
	}
	return _c
}

// SetCreatedByTool sets the "created_by_tool" field.
func (_c *ArtifactCreate) SetCreatedByTool(v string) *ArtifactCreate {
	_c.mutation.SetCreatedByTool(v)
	return _c
}

// SetNillableCreatedByTool sets the "created_by_tool" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedByTool(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedByTool(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ArtifactCreate) SetMetadata(v map[string]interface{}) *ArtifactCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (_c *ArtifactCreate) SetParentArtifacts(v []string) *ArtifactCreate {
	_c.mutation.SetParentArtifacts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Artifact.content_hash"`)}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "Artifact.artifact_type"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Artifact.mime_type"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Artifact.size"`)}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Artifact.storage_path"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(artifact.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeString, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(artifact.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(artifact.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.CreatedByRun(); ok {
		_spec.SetField(artifact.FieldCreatedByRun, field.TypeString, value)
		_node.CreatedByRun = value
	}
	if value, ok := _c.mutation.CreatedByStep(); ok {
		_spec.SetField(artifact.FieldCreatedByStep, field.TypeString, value)
		_node.CreatedByStep = value
	}
	if value, ok := _c.mutation.CreatedByTool(); ok {
		_spec.SetField(artifact.FieldCreatedByTool, field.TypeString, value)
		_node.CreatedByTool = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.ParentArtifacts(); ok {
		_spec.SetField(artifact.FieldParentArtifacts, field.TypeJSON, value)
		_node.ParentArtifacts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.Create().
//		SetContentHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetContentHash(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertOne {
	_c.conflict = opts
	return &ArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflictColumns(columns ...string) *ArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertOne{
		create: _c,
	}
}

type (
	// ArtifactUpsertOne is the builder for "upsert"-ing
	//  one Artifact node.
	ArtifactUpsertOne struct {
		create *ArtifactCreate
	}

	// ArtifactUpsert is the "OnConflict" setter.
	ArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsert) SetArtifactType(v string) *ArtifactUpsert {
	u.Set(artifact.FieldArtifactType, v)
	return u
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateArtifactType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldArtifactType)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *ArtifactUpsert) SetMimeType(v string) *ArtifactUpsert {
	u.Set(artifact.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateMimeType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldMimeType)
	return u
}

// SetFileName sets the "file_name" field.
func (u *ArtifactUpsert) SetFileName(v string) *ArtifactUpsert {
	u.Set(artifact.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateFileName() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldFileName)
	return u
}

// ClearFileName clears the value of the "file_name" field.
func (u *ArtifactUpsert) ClearFileName() *ArtifactUpsert {
	u.SetNull(artifact.FieldFileName)
	return u
}

// SetSize sets the "size" field.
func (u *ArtifactUpsert) SetSize(v int64) *ArtifactUpsert {
	u.Set(artifact.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSize() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *ArtifactUpsert) AddSize(v int64) *ArtifactUpsert {
	u.Add(artifact.FieldSize, v)
	return u
}

// SetStoragePath sets the "storage_path" field.
func (u *ArtifactUpsert) SetStoragePath(v string) *ArtifactUpsert {
	u.Set(artifact.FieldStoragePath, v)
	return u
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateStoragePath() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldStoragePath)
	return u
}

// SetCreatedByRun sets the "created_by_run" field.
func (u *ArtifactUpsert) SetCreatedByRun(v string) *ArtifactUpsert {
	u.Set(artifact.FieldCreatedByRun, v)
	return u
}

// UpdateCreatedByRun sets the "created_by_run" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCreatedByRun() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCreatedByRun)
	return u
}

// ClearCreatedByRun clears the value of the "created_by_run" field.
func (u *ArtifactUpsert) ClearCreatedByRun() *ArtifactUpsert {
	u.SetNull(artifact.FieldCreatedByRun)
	return u
}

// SetCreatedByStep sets the "created_by_step" field.
func (u *ArtifactUpsert) SetCreatedByStep(v string) *ArtifactUpsert {
	u.Set(artifact.FieldCreatedByStep, v)
	return u
}

// UpdateCreatedByStep sets the "created_by_step" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCreatedByStep() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCreatedByStep)
	return u
}

// ClearCreatedByStep clears the value of the "created_by_step" field.
func (u *ArtifactUpsert) ClearCreatedByStep() *ArtifactUpsert {
	u.SetNull(artifact.FieldCreatedByStep)
	return u
}

// SetCreatedByTool sets the "created_by_tool" field.
func (u *ArtifactUpsert) SetCreatedByTool(v string) *ArtifactUpsert {
	u.Set(artifact.FieldCreatedByTool, v)
	return u
}

// UpdateCreatedByTool sets the "created_by_tool" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCreatedByTool() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCreatedByTool)
	return u
}

// ClearCreatedByTool clears the value of the "created_by_tool" field.
func (u *ArtifactUpsert) ClearCreatedByTool() *ArtifactUpsert {
	u.SetNull(artifact.FieldCreatedByTool)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsert) SetMetadata(v map[string]interface{}) *ArtifactUpsert {
	u.Set(artifact.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateMetadata() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsert) ClearMetadata() *ArtifactUpsert {
	u.SetNull(artifact.FieldMetadata)
	return u
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (u *ArtifactUpsert) SetParentArtifacts(v []string) *ArtifactUpsert {
	u.Set(artifact.FieldParentArtifacts, v)
	return u
}

// UpdateParentArtifacts sets the "parent_artifacts" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateParentArtifacts() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldParentArtifacts)
	return u
}

// ClearParentArtifacts clears the value of the "parent_artifacts" field.
func (u *ArtifactUpsert) ClearParentArtifacts() *ArtifactUpsert {
	u.SetNull(artifact.FieldParentArtifacts)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertOne) UpdateNewValues() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(artifact.FieldID)
		}
		if _, exists := u.create.mutation.ContentHash(); exists {
			s.SetIgnore(artifact.FieldContentHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(artifact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArtifactUpsertOne) Ignore() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertOne) DoNothing() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreate.OnConflict
// documentation for more info.
func (u *ArtifactUpsertOne) Update(set func(*ArtifactUpsert)) *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertOne) SetArtifactType(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateArtifactType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *ArtifactUpsertOne) SetMimeType(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateMimeType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMimeType()
	})
}

// SetFileName sets the "file_name" field.
func (u *ArtifactUpsertOne) SetFileName(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateFileName() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *ArtifactUpsertOne) ClearFileName() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearFileName()
	})
}

// SetSize sets the "size" field.
func (u *ArtifactUpsertOne) SetSize(v int64) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ArtifactUpsertOne) AddSize(v int64) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSize() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSize()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *ArtifactUpsertOne) SetStoragePath(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateStoragePath() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateStoragePath()
	})
}

// SetCreatedByRun sets the "created_by_run" field.
func (u *ArtifactUpsertOne) SetCreatedByRun(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByRun(v)
	})
}

// UpdateCreatedByRun sets the "created_by_run" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCreatedByRun() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByRun()
	})
}

// ClearCreatedByRun clears the value of the "created_by_run" field.
func (u *ArtifactUpsertOne) ClearCreatedByRun() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByRun()
	})
}

// SetCreatedByStep sets the "created_by_step" field.
func (u *ArtifactUpsertOne) SetCreatedByStep(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByStep(v)
	})
}

// UpdateCreatedByStep sets the "created_by_step" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCreatedByStep() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByStep()
	})
}

// ClearCreatedByStep clears the value of the "created_by_step" field.
func (u *ArtifactUpsertOne) ClearCreatedByStep() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByStep()
	})
}

// SetCreatedByTool sets the "created_by_tool" field.
func (u *ArtifactUpsertOne) SetCreatedByTool(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByTool(v)
	})
}

// UpdateCreatedByTool sets the "created_by_tool" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCreatedByTool() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByTool()
	})
}

// ClearCreatedByTool clears the value of the "created_by_tool" field.
func (u *ArtifactUpsertOne) ClearCreatedByTool() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByTool()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsertOne) SetMetadata(v map[string]interface{}) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateMetadata() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsertOne) ClearMetadata() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMetadata()
	})
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (u *ArtifactUpsertOne) SetParentArtifacts(v []string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetParentArtifacts(v)
	})
}

// UpdateParentArtifacts sets the "parent_artifacts" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateParentArtifacts() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateParentArtifacts()
	})
}

// ClearParentArtifacts clears the value of the "parent_artifacts" field.
func (u *ArtifactUpsertOne) ClearParentArtifacts() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearParentArtifacts()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArtifactUpsertOne.ID is not supported by MySQL driver. Use ArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetContentHash(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertBulk {
	_c.conflict = opts
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflictColumns(columns ...string) *ArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// ArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of Artifact nodes.
type ArtifactUpsertBulk struct {
	create *ArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) UpdateNewValues() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(artifact.FieldID)
			}
			if _, exists := b.mutation.ContentHash(); exists {
				s.SetIgnore(artifact.FieldContentHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(artifact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) Ignore() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertBulk) DoNothing() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *ArtifactUpsertBulk) Update(set func(*ArtifactUpsert)) *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertBulk) SetArtifactType(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateArtifactType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *ArtifactUpsertBulk) SetMimeType(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateMimeType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMimeType()
	})
}

// SetFileName sets the "file_name" field.
func (u *ArtifactUpsertBulk) SetFileName(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateFileName() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *ArtifactUpsertBulk) ClearFileName() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearFileName()
	})
}

// SetSize sets the "size" field.
func (u *ArtifactUpsertBulk) SetSize(v int64) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ArtifactUpsertBulk) AddSize(v int64) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSize() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSize()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *ArtifactUpsertBulk) SetStoragePath(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateStoragePath() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateStoragePath()
	})
}

// SetCreatedByRun sets the "created_by_run" field.
func (u *ArtifactUpsertBulk) SetCreatedByRun(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByRun(v)
	})
}

// UpdateCreatedByRun sets the "created_by_run" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCreatedByRun() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByRun()
	})
}

// ClearCreatedByRun clears the value of the "created_by_run" field.
func (u *ArtifactUpsertBulk) ClearCreatedByRun() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByRun()
	})
}

// SetCreatedByStep sets the "created_by_step" field.
func (u *ArtifactUpsertBulk) SetCreatedByStep(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByStep(v)
	})
}

// UpdateCreatedByStep sets the "created_by_step" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCreatedByStep() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByStep()
	})
}

// ClearCreatedByStep clears the value of the "created_by_step" field.
func (u *ArtifactUpsertBulk) ClearCreatedByStep() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByStep()
	})
}

// SetCreatedByTool sets the "created_by_tool" field.
func (u *ArtifactUpsertBulk) SetCreatedByTool(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByTool(v)
	})
}

// UpdateCreatedByTool sets the "created_by_tool" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCreatedByTool() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByTool()
	})
}

// ClearCreatedByTool clears the value of the "created_by_tool" field.
func (u *ArtifactUpsertBulk) ClearCreatedByTool() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByTool()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsertBulk) SetMetadata(v map[string]interface{}) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateMetadata() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsertBulk) ClearMetadata() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMetadata()
	})
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (u *ArtifactUpsertBulk) SetParentArtifacts(v []string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetParentArtifacts(v)
	})
}

// UpdateParentArtifacts sets the "parent_artifacts" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateParentArtifacts() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateParentArtifacts()
	})
}

// ClearParentArtifacts clears the value of the "parent_artifacts" field.
func (u *ArtifactUpsertBulk) ClearParentArtifacts() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearParentArtifacts()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
