// Package migrate implements the database migration commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"tally/internal/infrastructure/config"
	"tally/internal/infrastructure/database"
	"tally/internal/infrastructure/migration"
	"tally/internal/shared/constants"
	"tally/internal/shared/logger"
)

// NewCommand creates the migrate command with its subcommands.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.PersistentFlags().StringVar(&env, "env", constants.EnvProduction, "runtime environment (development, staging, production)")

	cmd.AddCommand(newUpCommand(&env))
	cmd.AddCommand(newDownCommand(&env))
	cmd.AddCommand(newStatusCommand(&env))
	cmd.AddCommand(newCreateCommand(&env))

	return cmd
}

func newUpCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, cleanup, err := initGoose(*env)
			if err != nil {
				return err
			}
			defer cleanup()

			return strategy.Migrate(database.Get())
		},
	}
}

func newDownCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, cleanup, err := initGoose(*env)
			if err != nil {
				return err
			}
			defer cleanup()

			return strategy.MigrateDown(database.Get())
		},
	}
}

func newStatusCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, cleanup, err := initGoose(*env)
			if err != nil {
				return err
			}
			defer cleanup()

			version, err := strategy.GetVersion(database.Get())
			if err != nil {
				return err
			}
			fmt.Printf("current migration version: %d\n", version)
			return nil
		},
	}
}

func newCreateCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new SQL migration script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*env)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			scriptsPath, err := filepath.Abs(cfg.Migration.ScriptsPath)
			if err != nil {
				return err
			}
			return goose.Create(nil, scriptsPath, args[0], "sql")
		},
	}
}

// initGoose loads config, initializes the logger and database, and returns
// a goose strategy bound to the configured scripts path. The cleanup closes
// the database connection.
func initGoose(env string) (*migration.GooseStrategy, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.OutputPath); err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to init database: %w", err)
	}

	scriptsPath, err := filepath.Abs(cfg.Migration.ScriptsPath)
	if err != nil {
		return nil, nil, err
	}

	strategy := migration.NewGooseStrategy(cfg.Database.Driver, scriptsPath).(*migration.GooseStrategy)
	cleanup := func() {
		if err := database.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}
	return strategy, cleanup, nil
}
