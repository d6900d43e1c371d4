// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/maestro/ent/artifact"
	"github.com/taskfleet/maestro/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdate) SetArtifactType(v string) *ArtifactUpdate {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableArtifactType(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdate) SetMimeType(v string) *ArtifactUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableMimeType(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ArtifactUpdate) SetFileName(v string) *ArtifactUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableFileName(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ArtifactUpdate) ClearFileName() *ArtifactUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetSize sets the "size" field.
func (_u *ArtifactUpdate) SetSize(v int64) *ArtifactUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSize(v *int64) *ArtifactUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *ArtifactUpdate) AddSize(v int64) *ArtifactUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ArtifactUpdate) SetStoragePath(v string) *ArtifactUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableStoragePath(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetCreatedByRun sets the "created_by_run" field.
func (_u *ArtifactUpdate) SetCreatedByRun(v string) *ArtifactUpdate {
	_u.mutation.SetCreatedByRun(v)
	return _u
}

// SetNillableCreatedByRun sets the "created_by_run" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedByRun(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedByRun(*v)
	}
	return _u
}

// ClearCreatedByRun clears the value of the "created_by_run" field.
func (_u *ArtifactUpdate) ClearCreatedByRun() *ArtifactUpdate {
	_u.mutation.ClearCreatedByRun()
	return _u
}

// SetCreatedByStep sets the "created_by_step" field.
func (_u *ArtifactUpdate) SetCreatedByStep(v string) *ArtifactUpdate {
	_u.mutation.SetCreatedByStep(v)
	return _u
}

// SetNillableCreatedByStep sets the "created_by_step" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedByStep(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedByStep(*v)
	}
	return _u
}

// ClearCreatedByStep clears the value of the "created_by_step" field.
func (_u *ArtifactUpdate) ClearCreatedByStep() *ArtifactUpdate {
	_u.mutation.ClearCreatedByStep()
	return _u
}

// SetCreatedByTool sets the "created_by_tool" field.
func (_u *ArtifactUpdate) SetCreatedByTool(v string) *ArtifactUpdate {
	_u.mutation.SetCreatedByTool(v)
	return _u
}

// SetNillableCreatedByTool sets the "created_by_tool" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedByTool(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedByTool(*v)
	}
	return _u
}

// ClearCreatedByTool clears the value of the "created_by_tool" field.
func (_u *ArtifactUpdate) ClearCreatedByTool() *ArtifactUpdate {
	_u.mutation.ClearCreatedByTool()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArtifactUpdate) SetMetadata(v map[string]interface{}) *ArtifactUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArtifactUpdate) ClearMetadata() *ArtifactUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (_u *ArtifactUpdate) SetParentArtifacts(v []string) *ArtifactUpdate {
	_u.mutation.SetParentArtifacts(v)
	return _u
}

// AppendParentArtifacts appends value to the "parent_artifacts" field.
func (_u *ArtifactUpdate) AppendParentArtifacts(v []string) *ArtifactUpdate {
	_u.mutation.AppendParentArtifacts(v)
	return _u
}

// ClearParentArtifacts clears the value of the "parent_artifacts" field.
func (_u *ArtifactUpdate) ClearParentArtifacts() *ArtifactUpdate {
	_u.mutation.ClearParentArtifacts()
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(artifact.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(artifact.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(artifact.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(artifact.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedByRun(); ok {
		_spec.SetField(artifact.FieldCreatedByRun, field.TypeString, value)
	}
	if _u.mutation.CreatedByRunCleared() {
		_spec.ClearField(artifact.FieldCreatedByRun, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByStep(); ok {
		_spec.SetField(artifact.FieldCreatedByStep, field.TypeString, value)
	}
	if _u.mutation.CreatedByStepCleared() {
		_spec.ClearField(artifact.FieldCreatedByStep, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByTool(); ok {
		_spec.SetField(artifact.FieldCreatedByTool, field.TypeString, value)
	}
	if _u.mutation.CreatedByToolCleared() {
		_spec.ClearField(artifact.FieldCreatedByTool, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(artifact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentArtifacts(); ok {
		_spec.SetField(artifact.FieldParentArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParentArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, artifact.FieldParentArtifacts, value)
		})
	}
	if _u.mutation.ParentArtifactsCleared() {
		_spec.ClearField(artifact.FieldParentArtifacts, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdateOne) SetArtifactType(v string) *ArtifactUpdateOne {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableArtifactType(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdateOne) SetMimeType(v string) *ArtifactUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableMimeType(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ArtifactUpdateOne) SetFileName(v string) *ArtifactUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableFileName(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ArtifactUpdateOne) ClearFileName() *ArtifactUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetSize sets the "size" field.
func (_u *ArtifactUpdateOne) SetSize(v int64) *ArtifactUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSize(v *int64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *ArtifactUpdateOne) AddSize(v int64) *ArtifactUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ArtifactUpdateOne) SetStoragePath(v string) *ArtifactUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableStoragePath(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetCreatedByRun sets the "created_by_run" field.
func (_u *ArtifactUpdateOne) SetCreatedByRun(v string) *ArtifactUpdateOne {
	_u.mutation.SetCreatedByRun(v)
	return _u
}

// SetNillableCreatedByRun sets the "created_by_run" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedByRun(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedByRun(*v)
	}
	return _u
}

// ClearCreatedByRun clears the value of the "created_by_run" field.
func (_u *ArtifactUpdateOne) ClearCreatedByRun() *ArtifactUpdateOne {
	_u.mutation.ClearCreatedByRun()
	return _u
}

// SetCreatedByStep sets the "created_by_step" field.
func (_u *ArtifactUpdateOne) SetCreatedByStep(v string) *ArtifactUpdateOne {
	_u.mutation.SetCreatedByStep(v)
	return _u
}

// SetNillableCreatedByStep sets the "created_by_step" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedByStep(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedByStep(*v)
	}
	return _u
}

// ClearCreatedByStep clears the value of the "created_by_step" field.
func (_u *ArtifactUpdateOne) ClearCreatedByStep() *ArtifactUpdateOne {
	_u.mutation.ClearCreatedByStep()
	return _u
}

// SetCreatedByTool sets the "created_by_tool" field.
func (_u *ArtifactUpdateOne) SetCreatedByTool(v string) *ArtifactUpdateOne {
	_u.mutation.SetCreatedByTool(v)
	return _u
}

// SetNillableCreatedByTool sets the "created_by_tool" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedByTool(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedByTool(*v)
	}
	return _u
}

// ClearCreatedByTool clears the value of the "created_by_tool" field.
func (_u *ArtifactUpdateOne) ClearCreatedByTool() *ArtifactUpdateOne {
	_u.mutation.ClearCreatedByTool()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArtifactUpdateOne) SetMetadata(v map[string]interface{}) *ArtifactUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArtifactUpdateOne) ClearMetadata() *ArtifactUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetParentArtifacts sets the "parent_artifacts" field.
func (_u *ArtifactUpdateOne) SetParentArtifacts(v []string) *ArtifactUpdateOne {
	_u.mutation.SetParentArtifacts(v)
	return _u
}

// AppendParentArtifacts appends value to the "parent_artifacts" field.
func (_u *ArtifactUpdateOne) AppendParentArtifacts(v []string) *ArtifactUpdateOne {
	_u.mutation.AppendParentArtifacts(v)
	return _u
}

// ClearParentArtifacts clears the value of the "parent_artifacts" field.
func (_u *ArtifactUpdateOne) ClearParentArtifacts() *ArtifactUpdateOne {
	_u.mutation.ClearParentArtifacts()
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
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
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(artifact.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(artifact.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(artifact.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(artifact.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(artifact.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedByRun(); ok {
		_spec.SetField(artifact.FieldCreatedByRun, field.TypeString, value)
	}
	if _u.mutation.CreatedByRunCleared() {
		_spec.ClearField(artifact.FieldCreatedByRun, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByStep(); ok {
		_spec.SetField(artifact.FieldCreatedByStep, field.TypeString, value)
	}
	if _u.mutation.CreatedByStepCleared() {
		_spec.ClearField(artifact.FieldCreatedByStep, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByTool(); ok {
		_spec.SetField(artifact.FieldCreatedByTool, field.TypeString, value)
	}
	if _u.mutation.CreatedByToolCleared() {
		_spec.ClearField(artifact.FieldCreatedByTool, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(artifact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentArtifacts(); ok {
		_spec.SetField(artifact.FieldParentArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParentArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, artifact.FieldParentArtifacts, value)
		})
	}
	if _u.mutation.ParentArtifactsCleared() {
		_spec.ClearField(artifact.FieldParentArtifacts, field.TypeJSON)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
