// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContentHash, v))
}

// ArtifactType applies equality check predicate on the "artifact_type" field. It's identical to ArtifactTypeEQ.
func ArtifactType(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldArtifactType, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldMimeType, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldFileName, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSize, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldStoragePath, v))
}

// CreatedByRun applies equality check predicate on the "created_by_run" field. It's identical to CreatedByRunEQ.
func CreatedByRun(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByRun, v))
}

// CreatedByStep applies equality check predicate on the "created_by_step" field. It's identical to CreatedByStepEQ.
func CreatedByStep(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByStep, v))
}

// CreatedByTool applies equality check predicate on the "created_by_tool" field. It's identical to CreatedByToolEQ.
func CreatedByTool(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByTool, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldContentHash, v))
}

// ArtifactTypeEQ applies the EQ predicate on the "artifact_type" field.
func ArtifactTypeEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldArtifactType, v))
}

// ArtifactTypeNEQ applies the NEQ predicate on the "artifact_type" field.
func ArtifactTypeNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldArtifactType, v))
}

// ArtifactTypeIn applies the In predicate on the "artifact_type" field.
func ArtifactTypeIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldArtifactType, vs...))
}

// ArtifactTypeNotIn applies the NotIn predicate on the "artifact_type" field.
func ArtifactTypeNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldArtifactType, vs...))
}

// ArtifactTypeGT applies the GT predicate on the "artifact_type" field.
func ArtifactTypeGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldArtifactType, v))
}

// ArtifactTypeGTE applies the GTE predicate on the "artifact_type" field.
func ArtifactTypeGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldArtifactType, v))
}

// ArtifactTypeLT applies the LT predicate on the "artifact_type" field.
func ArtifactTypeLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldArtifactType, v))
}

// ArtifactTypeLTE applies the LTE predicate on the "artifact_type" field.
func ArtifactTypeLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldArtifactType, v))
}

// ArtifactTypeContains applies the Contains predicate on the "artifact_type" field.
func ArtifactTypeContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldArtifactType, v))
}

// ArtifactTypeHasPrefix applies the HasPrefix predicate on the "artifact_type" field.
func ArtifactTypeHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldArtifactType, v))
}

// ArtifactTypeHasSuffix applies the HasSuffix predicate on the "artifact_type" field.
func ArtifactTypeHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldArtifactType, v))
}

// ArtifactTypeEqualFold applies the EqualFold predicate on the "artifact_type" field.
func ArtifactTypeEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldArtifactType, v))
}

// ArtifactTypeContainsFold applies the ContainsFold predicate on the "artifact_type" field.
func ArtifactTypeContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldArtifactType, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldMimeType, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldFileName, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldSize, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldStoragePath, v))
}

// CreatedByRunEQ applies the EQ predicate on the "created_by_run" field.
func CreatedByRunEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByRun, v))
}

// CreatedByRunNEQ applies the NEQ predicate on the "created_by_run" field.
func CreatedByRunNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedByRun, v))
}

// CreatedByRunIn applies the In predicate on the "created_by_run" field.
func CreatedByRunIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedByRun, vs...))
}

// CreatedByRunNotIn applies the NotIn predicate on the "created_by_run" field.
func CreatedByRunNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedByRun, vs...))
}

// CreatedByRunGT applies the GT predicate on the "created_by_run" field.
func CreatedByRunGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedByRun, v))
}

// CreatedByRunGTE applies the GTE predicate on the "created_by_run" field.
func CreatedByRunGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedByRun, v))
}

// CreatedByRunLT applies the LT predicate on the "created_by_run" field.
func CreatedByRunLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedByRun, v))
}

// CreatedByRunLTE applies the LTE predicate on the "created_by_run" field.
func CreatedByRunLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedByRun, v))
}

// CreatedByRunContains applies the Contains predicate on the "created_by_run" field.
func CreatedByRunContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldCreatedByRun, v))
}

// CreatedByRunHasPrefix applies the HasPrefix predicate on the "created_by_run" field.
func CreatedByRunHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldCreatedByRun, v))
}

// CreatedByRunHasSuffix applies the HasSuffix predicate on the "created_by_run" field.
func CreatedByRunHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldCreatedByRun, v))
}

// CreatedByRunIsNil applies the IsNil predicate on the "created_by_run" field.
func CreatedByRunIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldCreatedByRun))
}

// CreatedByRunNotNil applies the NotNil predicate on the "created_by_run" field.
func CreatedByRunNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldCreatedByRun))
}

// CreatedByRunEqualFold applies the EqualFold predicate on the "created_by_run" field.
func CreatedByRunEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldCreatedByRun, v))
}

// CreatedByRunContainsFold applies the ContainsFold predicate on the "created_by_run" field.
func CreatedByRunContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldCreatedByRun, v))
}

// CreatedByStepEQ applies the EQ predicate on the "created_by_step" field.
func CreatedByStepEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByStep, v))
}

// CreatedByStepNEQ applies the NEQ predicate on the "created_by_step" field.
func CreatedByStepNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedByStep, v))
}

// CreatedByStepIn applies the In predicate on the "created_by_step" field.
func CreatedByStepIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedByStep, vs...))
}

// CreatedByStepNotIn applies the NotIn predicate on the "created_by_step" field.
func CreatedByStepNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedByStep, vs...))
}

// CreatedByStepGT applies the GT predicate on the "created_by_step" field.
func CreatedByStepGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedByStep, v))
}

// CreatedByStepGTE applies the GTE predicate on the "created_by_step" field.
func CreatedByStepGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedByStep, v))
}

// CreatedByStepLT applies the LT predicate on the "created_by_step" field.
func CreatedByStepLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedByStep, v))
}

// CreatedByStepLTE applies the LTE predicate on the "created_by_step" field.
func CreatedByStepLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedByStep, v))
}

// CreatedByStepContains applies the Contains predicate on the "created_by_step" field.
func CreatedByStepContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldCreatedByStep, v))
}

// CreatedByStepHasPrefix applies the HasPrefix predicate on the "created_by_step" field.
func CreatedByStepHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldCreatedByStep, v))
}

// CreatedByStepHasSuffix applies the HasSuffix predicate on the "created_by_step" field.
func CreatedByStepHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldCreatedByStep, v))
}

// CreatedByStepIsNil applies the IsNil predicate on the "created_by_step" field.
func CreatedByStepIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldCreatedByStep))
}

// CreatedByStepNotNil applies the NotNil predicate on the "created_by_step" field.
func CreatedByStepNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldCreatedByStep))
}

// CreatedByStepEqualFold applies the EqualFold predicate on the "created_by_step" field.
func CreatedByStepEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldCreatedByStep, v))
}

// CreatedByStepContainsFold applies the ContainsFold predicate on the "created_by_step" field.
func CreatedByStepContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldCreatedByStep, v))
}

// CreatedByToolEQ applies the EQ predicate on the "created_by_tool" field.
func CreatedByToolEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedByTool, v))
}

// CreatedByToolNEQ applies the NEQ predicate on the "created_by_tool" field.
func CreatedByToolNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedByTool, v))
}

// CreatedByToolIn applies the In predicate on the "created_by_tool" field.
func CreatedByToolIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedByTool, vs...))
}

// CreatedByToolNotIn applies the NotIn predicate on the "created_by_tool" field.
func CreatedByToolNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedByTool, vs...))
}

// CreatedByToolGT applies the GT predicate on the "created_by_tool" field.
func CreatedByToolGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedByTool, v))
}

// CreatedByToolGTE applies the GTE predicate on the "created_by_tool" field.
func CreatedByToolGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedByTool, v))
}

// CreatedByToolLT applies the LT predicate on the "created_by_tool" field.
func CreatedByToolLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedByTool, v))
}

// CreatedByToolLTE applies the LTE predicate on the "created_by_tool" field.
func CreatedByToolLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedByTool, v))
}

// CreatedByToolContains applies the Contains predicate on the "created_by_tool" field.
func CreatedByToolContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldCreatedByTool, v))
}

// CreatedByToolHasPrefix applies the HasPrefix predicate on the "created_by_tool" field.
func CreatedByToolHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldCreatedByTool, v))
}

// CreatedByToolHasSuffix applies the HasSuffix predicate on the "created_by_tool" field.
func CreatedByToolHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldCreatedByTool, v))
}

// CreatedByToolIsNil applies the IsNil predicate on the "created_by_tool" field.
func CreatedByToolIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldCreatedByTool))
}

// CreatedByToolNotNil applies the NotNil predicate on the "created_by_tool" field.
func CreatedByToolNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldCreatedByTool))
}

// CreatedByToolEqualFold applies the EqualFold predicate on the "created_by_tool" field.
func CreatedByToolEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldCreatedByTool, v))
}

// CreatedByToolContainsFold applies the ContainsFold predicate on the "created_by_tool" field.
func CreatedByToolContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldCreatedByTool, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldMetadata))
}

// ParentArtifactsIsNil applies the IsNil predicate on the "parent_artifacts" field.
func ParentArtifactsIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldParentArtifacts))
}

// ParentArtifactsNotNil applies the NotNil predicate on the "parent_artifacts" field.
func ParentArtifactsNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldParentArtifacts))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.NotPredicates(p))
}
