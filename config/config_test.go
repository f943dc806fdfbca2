package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: coffeeshop
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 3s
loyalty:
  pointsPerDollar: 10
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOYALTY_POINTSPERDOLLAR", "1")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "coffeeshop", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Loyalty)
	assert.InDelta(t, 1, cfg.Loyalty.PointsPerDollar, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.InDelta(t, 10, cfg.Loyalty.PointsPerDollar, 1e-9)
	assert.InDelta(t, 0.01, cfg.Loyalty.PointValue, 1e-9)
	assert.Equal(t, "approve", cfg.Payment.Gateway)
	assert.InDelta(t, 0.95, cfg.Payment.SuccessRate, 1e-9)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 7, cfg.Inventory.ExpiringSoonDays)
	assert.Equal(t, 8081, cfg.Kitchen.Port)
	assert.Equal(t, 8*time.Hour, cfg.Auth.AccessTokenTTL)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("DATABASE_REPLICAS_0_HOST", "replica-0")
	t.Setenv("DATABASE_REPLICAS_0_PORT", "5433")
	t.Setenv("DATABASE_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
