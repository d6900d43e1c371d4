package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/pkg/models"
	testdb "github.com/taskfleet/maestro/test/database"
)

func TestArtifactService_RecordIdempotentUnderHash(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	content := []byte("# Report\nfindings...")
	req := &models.RecordArtifactRequest{
		ContentHash:  HashContent(content),
		Type:         "document",
		MimeType:     "text/markdown",
		FileName:     "report.md",
		Size:         int64(len(content)),
		StoragePath:  "artifacts/report.md",
		CreatedByRun: "run-1",
	}

	first, created, err := svc.Record(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	// Same content from a different step returns the same artifact id.
	req.CreatedByStep = "step-9"
	second, created, err := svc.Record(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// Different content is a different artifact.
	other := *req
	other.ContentHash = HashContent([]byte("different"))
	third, created, err := svc.Record(ctx, &other)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestArtifactService_ForRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	for _, name := range []string{"a.md", "b.md"} {
		_, _, err := svc.Record(ctx, &models.RecordArtifactRequest{
			ContentHash:  HashContent([]byte(name)),
			Type:         "document",
			MimeType:     "text/markdown",
			FileName:     name,
			Size:         4,
			StoragePath:  "artifacts/" + name,
			CreatedByRun: "run-1",
		})
		require.NoError(t, err)
	}
	_, _, err := svc.Record(ctx, &models.RecordArtifactRequest{
		ContentHash:  HashContent([]byte("other-run")),
		Type:         "document",
		MimeType:     "text/markdown",
		Size:         9,
		StoragePath:  "artifacts/other",
		CreatedByRun: "run-2",
	})
	require.NoError(t, err)

	arts, err := svc.ForRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, arts, 2)
}

func TestArtifactService_RequiresHash(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)

	_, _, err := svc.Record(context.Background(), &models.RecordArtifactRequest{Type: "document"})
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidRequest, models.AsAgentError(err).Code)
}
