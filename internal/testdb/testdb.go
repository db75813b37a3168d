// AngelaMos | 2026
// testdb.go

//go:build integration

// Package testdb hands integration tests a migrated Postgres database.
//
// ICFC_TEST_DATABASE_URL points the tests at an existing server; without it
// a throwaway postgres:16-alpine container is started. Every Open call gets
// its own schema so packages can run in parallel against one server.
package testdb

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

const EnvURL = "ICFC_TEST_DATABASE_URL"

func Open(t *testing.T) *core.Database {
	t.Helper()
	ctx := context.Background()

	baseURL := serverURL(ctx, t)
	schema := ids.NewWithModel("test", 10)

	admin, err := sql.Open("pgx", baseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	_, err = admin.ExecContext(ctx, `CREATE SCHEMA `+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), `DROP SCHEMA `+schema+` CASCADE`)
	})

	db, err := core.NewDatabase(ctx, config.DatabaseConfig{
		URL:             withSearchPath(t, baseURL, schema),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

// SeedUser inserts a bare FAN account for rows that need an owner.
func SeedUser(t *testing.T, db *core.Database) string {
	t.Helper()

	id := ids.For("user")
	_, err := db.DB.ExecContext(context.Background(), `
		INSERT INTO users (id, email, password_hash, name)
		VALUES ($1, $2, 'x', 'Test Fan')`,
		id, id+"@example.com",
	)
	require.NoError(t, err)
	return id
}

func serverURL(ctx context.Context, t *testing.T) string {
	t.Helper()

	if u := strings.TrimSpace(os.Getenv(EnvURL)); u != "" {
		return u
	}

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("icfc_test"),
		postgres.WithUsername("icfc"),
		postgres.WithPassword("icfc"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("postgres unavailable (set %s or start docker): %v", EnvURL, err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func withSearchPath(t *testing.T, raw, schema string) string {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String()
}
