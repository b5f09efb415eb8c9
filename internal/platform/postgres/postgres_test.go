package postgres

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustedform/internal/platform/config"
)

func TestConnectWithoutURL(t *testing.T) {
	pool, err := Connect(context.Background(), config.PostgresConfig{})
	require.NoError(t, err)
	assert.Nil(t, pool)
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), config.PostgresConfig{URL: "postgres://u:p@localhost:notaport/db"})
	assert.Error(t, err)
}

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
