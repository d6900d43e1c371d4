// Package util holds the shared database fixture for integration tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// SetupTestDatabase hands each test its own schema on a shared database:
// CI_DATABASE_URL when set (CI service container), otherwise one
// testcontainer per package. The schema and connections are torn down via
// t.Cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()
	connStr := baseConnString(t)
	schema := freshSchemaName(t)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	// search_path in the conn string applies to every pooled connection.
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	db, err := stdsql.Open("pgx", fmt.Sprintf("%s%ssearch_path=%s", connStr, sep, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(),
			"DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("failed to drop schema %s: %v", schema, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})
	return entClient, db
}

// BaseConnString exposes the raw connection string for tests that need a
// dedicated connection outside the pool (LISTEN/NOTIFY).
func BaseConnString(t *testing.T) string {
	return baseConnString(t)
}

func baseConnString(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	shared.once.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			shared.err = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		shared.connStr, shared.err = container.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, shared.err, "shared test database unavailable")
	return shared.connStr
}

// freshSchemaName derives a postgres-safe schema name from the test name,
// truncated under the 63-char identifier limit and salted against parallel
// runs of the same test.
func freshSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	salt := make([]byte, 4)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("failed to salt schema name: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(salt))
}
