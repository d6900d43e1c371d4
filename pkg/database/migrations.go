package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on run prompts.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_prompt_gin
		ON runs USING gin(to_tsvector('english', prompt))`)
	if err != nil {
		return fmt.Errorf("failed to create prompt GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent auto-migration cannot express. These must match the constraints in the
// embedded SQL migrations.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One run per caller-chosen idempotency token within a tenant.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS run_tenant_id_external_id
		ON runs (tenant_id, external_id)
		WHERE external_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create run external_id index: %w", err)
	}

	// At most one active credit reservation per run.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS creditreservation_run_id_active
		ON credit_reservations (run_id)
		WHERE status = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create active reservation index: %w", err)
	}

	return nil
}
