package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string
	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses embedded SQL migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Indexes Ent auto-migration cannot express.
	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)
	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestPromptFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run1, err := client.Run.Create().
		SetID("run-1").
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("Research competitor pricing for cloud storage providers").
		SetPromptHash("hash-1").
		SetConfig(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	run2, err := client.Run.Create().
		SetID("run-2").
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("Generate a quarterly revenue report").
		SetPromptHash("hash-2").
		SetConfig(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', prompt) @@ to_tsquery('english', $1)`,
		"competitor & pricing",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var runID string
		require.NoError(t, rows.Scan(&runID))
		results = append(results, runID)
	}

	require.Len(t, results, 1)
	assert.Equal(t, run1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', prompt) @@ to_tsquery('english', $1)`,
		"revenue",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = results[:0]
	for rows2.Next() {
		var runID string
		require.NoError(t, rows2.Scan(&runID))
		results = append(results, runID)
	}

	require.Len(t, results, 1)
	assert.Equal(t, run2.ID, results[0])
}

func TestExternalIDPartialUnique(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Run.Create().
		SetID("run-a").
		SetExternalID("token-1").
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("first").
		SetPromptHash("h1").
		SetConfig(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	// Same token within the tenant is rejected.
	_, err = client.Run.Create().
		SetID("run-b").
		SetExternalID("token-1").
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("second").
		SetPromptHash("h2").
		SetConfig(map[string]interface{}{}).
		Save(ctx)
	require.Error(t, err)

	// Same token in another tenant is fine.
	_, err = client.Run.Create().
		SetID("run-c").
		SetExternalID("token-1").
		SetTenantID("globex").
		SetUserID("u-2").
		SetPrompt("third").
		SetPromptHash("h3").
		SetConfig(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	// Runs without a token never collide.
	for _, id := range []string{"run-d", "run-e"} {
		_, err = client.Run.Create().
			SetID(id).
			SetTenantID("acme").
			SetUserID("u-1").
			SetPrompt("no token").
			SetPromptHash("h").
			SetConfig(map[string]interface{}{}).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "maestro", cfg.User)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	missingPassword := valid
	missingPassword.Password = ""
	assert.Error(t, missingPassword.Validate())

	idleExceedsOpen := valid
	idleExceedsOpen.MaxIdleConns = 20
	assert.Error(t, idleExceedsOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}
