package rdb

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"coffeeshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver: "postgres",
		DBName: "coffeeshop",
		Master: config.ConnectionConfig{
			Host:     "db.internal",
			Port:     "5432",
			UserName: "barista",
			Password: "s3cret",
		},
	}
}

func TestPostgresDSN_Defaults(t *testing.T) {
	cfg := testDatabaseConfig()

	dsn := postgresDSN(cfg, cfg.Master)

	assert.Equal(t,
		"host=db.internal port=5432 user=barista password=s3cret dbname=coffeeshop sslmode=disable TimeZone=UTC",
		dsn)
}

func TestPostgresDSN_UsesConfiguredSSLAndZone(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.SSLMode = "require"
	cfg.TimeZone = "Asia/Taipei"

	dsn := postgresDSN(cfg, config.ConnectionConfig{Host: "replica", Port: "5433", UserName: "ro", Password: "x"})

	assert.Contains(t, dsn, "host=replica port=5433 user=ro")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=Asia/Taipei")
}

func TestMySQLDSN(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.Driver = "mysql"
	cfg.Master.Port = "3306"

	dsn := mysqlDSN(cfg, cfg.Master)

	assert.Contains(t, dsn, "barista:s3cret@tcp(db.internal:3306)/coffeeshop")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	_, err := Open(nil, nil)
	require.Error(t, err)

	cfg := testDatabaseConfig()
	cfg.Driver = "sqlite"

	_, err = Open(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	logPoolWait(ctx, logger, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String(), "no new waits")

	logPoolWait(ctx, logger,
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waitCountDelta=2")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	logPoolWait(ctx, logger,
		sql.DBStats{},
		sql.DBStats{WaitCount: 1, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Database pool wait detected")
}
