package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustedform/internal/trustedform/endpoints"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.TrustedForm.Timeout)
	assert.Equal(t, 5, cfg.TrustedForm.Breaker.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.TrustedForm.Breaker.Cooldown)
	assert.Equal(t, 5*time.Minute, cfg.Account.CacheTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "trustedform.audit", cfg.Kafka.Topic)
	assert.Equal(t, 5*time.Second, cfg.Kafka.DrainTimeout)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, endpoints.Development, cfg.Env())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trustedform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: staging
server:
  addr: ":9090"
trustedform:
  timeout: 3s
  breaker:
    failure_threshold: 0
kafka:
  brokers: ["k1:9092", "k2:9092"]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.TrustedForm.Timeout)
	assert.Equal(t, 0, cfg.TrustedForm.Breaker.FailureThreshold)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, endpoints.Staging, cfg.Env())
	assert.Equal(t, "https://app.staging.trustedform.com/account", cfg.Endpoints().AccountURL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TF_SERVER_ADDR", ":7070")
	t.Setenv("TF_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("TRUSTEDFORM_DATA_SERVICE_TOKEN", "ds-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, endpoints.Production, cfg.Env())
	assert.Equal(t, "ds-token", cfg.TrustedForm.DataServiceToken)
}

func TestLoadPrefixedNameWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TF_ENVIRONMENT", "staging")
	t.Setenv("NODE_ENV", "production")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, endpoints.Staging, cfg.Env())
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trustedform.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
