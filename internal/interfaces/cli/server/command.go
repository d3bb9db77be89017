// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"tally/internal/infrastructure/config"
	"tally/internal/infrastructure/database"
	"tally/internal/infrastructure/migration"
	httprouter "tally/internal/interfaces/http"
	"tally/internal/shared/constants"
	"tally/internal/shared/logger"
)

// NewCommand creates the server command.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the cost allocation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env)
		},
	}

	cmd.Flags().StringVar(&env, "env", constants.EnvDevelopment, "runtime environment (development, staging, production)")

	return cmd
}

func run(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.OutputPath); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	} else if env == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	mgr := migration.NewManager(env, cfg.Database.Driver, cfg.Migration.ScriptsPath)
	if err := mgr.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Infow("migrations applied", "strategy", mgr.GetStrategy().GetName())

	router := httprouter.NewRouter(database.Get(), log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", srv.Addr, "env", env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}
