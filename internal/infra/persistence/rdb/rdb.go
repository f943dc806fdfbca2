// Package rdb contains the GORM persistence layer. It runs on PostgreSQL or MySQL.
package rdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/lifecycle"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties the pool to the fx lifecycle
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Database, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects GORM to the primary and registers read replicas when configured.
// Implicit per-statement transactions are disabled; multi-step work goes through the TransactionManager.
func Open(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("database configuration is missing")
	}

	primary, err := newDialector(cfg, cfg.Master)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(primary, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s connection", cfg.Driver)
	}

	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, replica := range cfg.Replicas {
			dialector, err := newDialector(cfg, replica)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, dialector)
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas:          replicas,
			Policy:            dbresolver.RandomPolicy{},
			TraceResolverMode: true,
		})
		applyResolverPool(resolver, cfg)

		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	applyPool(sqlDB, cfg)

	return db, nil
}

func newDialector(cfg *config.DatabaseConfig, conn config.ConnectionConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", constants.DatabaseDriverPostgres:
		return postgres.Open(postgresDSN(cfg, conn)), nil
	case constants.DatabaseDriverMySQL:
		return mysql.Open(mysqlDSN(cfg, conn)), nil
	default:
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func postgresDSN(cfg *config.DatabaseConfig, conn config.ConnectionConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timeZone := cfg.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		conn.Host, conn.Port, conn.UserName, conn.Password, cfg.DBName, sslMode, timeZone)
}

func mysqlDSN(cfg *config.DatabaseConfig, conn config.ConnectionConfig) string {
	loc := time.UTC
	if cfg.TimeZone != "" {
		if l, err := time.LoadLocation(cfg.TimeZone); err == nil {
			loc = l
		}
	}

	dsn := mysqldriver.NewConfig()
	dsn.User = conn.UserName
	dsn.Passwd = conn.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(conn.Host, conn.Port)
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true
	dsn.Loc = loc
	dsn.Params = map[string]string{"charset": "utf8mb4"}

	return dsn.FormatDSN()
}

func applyPool(sqlDB *sql.DB, cfg *config.DatabaseConfig) {
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func applyResolverPool(resolver *dbresolver.DBResolver, cfg *config.DatabaseConfig) {
	if cfg.MaxIdleConns > 0 {
		resolver.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		resolver.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		resolver.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	msg := "Database pool wait observed"
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
		msg = "Database pool wait detected"
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}
