package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/artifact"
	"github.com/taskfleet/maestro/pkg/models"
)

// ArtifactService records content-addressed artifacts. Rows are immutable;
// recording the same content hash twice returns the original row.
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates the artifact service.
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// HashContent returns the SHA-256 hex digest identifying artifact content.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record persists the artifact, deduplicating on content hash. The bool
// reports whether a new row was created.
func (s *ArtifactService) Record(ctx context.Context, req *models.RecordArtifactRequest) (*ent.Artifact, bool, error) {
	if req.ContentHash == "" {
		return nil, false, models.Errorf(models.CodeInvalidRequest, "artifact content hash is required")
	}

	existing, err := s.client.Artifact.Query().
		Where(artifact.ContentHashEQ(req.ContentHash)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check artifact hash: %w", err)
	}

	a, err := s.client.Artifact.Create().
		SetID(uuid.New().String()).
		SetContentHash(req.ContentHash).
		SetArtifactType(req.Type).
		SetMimeType(req.MimeType).
		SetFileName(req.FileName).
		SetSize(req.Size).
		SetStoragePath(req.StoragePath).
		SetCreatedByRun(req.CreatedByRun).
		SetCreatedByStep(req.CreatedByStep).
		SetCreatedByTool(req.CreatedByTool).
		SetMetadata(req.Metadata).
		SetParentArtifacts(req.Parents).
		Save(ctx)
	if err != nil {
		// Concurrent record of the same content; return the winner.
		if ent.IsConstraintError(err) {
			if existing, qerr := s.client.Artifact.Query().
				Where(artifact.ContentHashEQ(req.ContentHash)).
				Only(ctx); qerr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to record artifact: %w", err)
	}
	return a, true, nil
}

// ForRun lists the artifacts a run produced, oldest first.
func (s *ArtifactService) ForRun(ctx context.Context, runID string) ([]*ent.Artifact, error) {
	arts, err := s.client.Artifact.Query().
		Where(artifact.CreatedByRunEQ(runID)).
		Order(ent.Asc(artifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return arts, nil
}
