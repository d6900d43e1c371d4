package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Artifacts are content-addressed by SHA-256 and never mutated after creation;
// creating a duplicate hash returns the existing row.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("content_hash").
			Unique().
			Immutable().
			Comment("SHA-256 hex of the content; identity of the artifact"),
		field.String("artifact_type").
			Comment("document, image, dataset, log, ..."),
		field.String("mime_type"),
		field.String("file_name").
			Optional(),
		field.Int64("size"),
		field.String("storage_path").
			Comment("Location in the external object store"),
		field.String("created_by_run").
			Optional(),
		field.String("created_by_step").
			Optional(),
		field.String("created_by_tool").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("parent_artifacts", []string{}).
			Optional().
			Comment("Artifact ids this one was derived from"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_by_run"),
		index.Fields("artifact_type"),
	}
}
