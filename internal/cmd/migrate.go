package cmd

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/rdb"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const maintenanceTimeout = 2 * time.Minute

var migrateCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMaintenance(cmd.Context(), func(ctx context.Context, deps maintenanceDeps) error {
			if err := rdb.Migrate(ctx, deps.DB); err != nil {
				return err
			}
			deps.Logger.Info("Schema migrated")

			return nil
		})
	},
}

var seedCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "seed",
	Short: "Load the sample menu, customers and tables into an empty database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMaintenance(cmd.Context(), func(ctx context.Context, deps maintenanceDeps) error {
			if err := rdb.Migrate(ctx, deps.DB); err != nil {
				return err
			}

			seeded, err := rdb.Seed(ctx, deps.TxManager, time.Now())
			if err != nil {
				return err
			}
			if !seeded {
				deps.Logger.Info("Database already has data, nothing seeded")

				return nil
			}
			deps.Logger.Info("Sample data seeded")

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

type maintenanceDeps struct {
	fx.In

	DB        *gorm.DB
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// runMaintenance starts only the database part of the graph, runs task and stops it again.
func runMaintenance(parent context.Context, task func(context.Context, maintenanceDeps) error) error {
	if parent == nil {
		parent = context.Background()
	}

	var deps maintenanceDeps
	app := fx.New(
		injectInfra(),
		injectDatabase(),
		fx.Invoke(func(d maintenanceDeps) { deps = d }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	ctx, cancel := context.WithTimeout(parent, maintenanceTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	taskErr := task(ctx, deps)

	if err := app.Stop(ctx); err != nil && taskErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return taskErr
}
