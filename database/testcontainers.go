package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	testImage    = "postgres:16-alpine"
	testDatabase = "recruiting_test"
	testUser     = "recruiting"
	testPassword = "recruiting"
)

// quietLogger drops testcontainers' progress output
type quietLogger struct{}

func (quietLogger) Printf(string, ...any) {}

// SetupTestDBContainer starts a disposable Postgres and returns a pool on the
// empty database together with a func that tears both down.
func SetupTestDBContainer(t *testing.T, ctx context.Context) (*pgxpool.Pool, func()) {
	t.Helper()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		postgres.BasicWaitStrategies(),
		tc.WithLogger(quietLogger{}),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	return pool, func() {
		pool.Close()
		tc.CleanupContainer(t, container)
	}
}

// SetupTestDB is SetupTestDBContainer with the schema migrated to the latest version
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	pool, cleanup := SetupTestDBContainer(t, context.Background())
	if err := MigrateUp(pool.Config().ConnString()); err != nil {
		cleanup()
		require.NoError(t, err)
	}
	return pool, cleanup
}
