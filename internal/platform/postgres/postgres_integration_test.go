//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustedform/internal/platform/config"
	"trustedform/pkg/testutil/containers"
)

func TestConnectAndMigrate(t *testing.T) {
	ctx := context.Background()
	pg := containers.NewPostgresContainer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Migrate(pg.URL, logger))
	// A second run is a no-op.
	require.NoError(t, Migrate(pg.URL, logger))

	pool, err := Connect(ctx, config.PostgresConfig{URL: pg.URL, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	var exists bool
	err = pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'flows')`).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}
