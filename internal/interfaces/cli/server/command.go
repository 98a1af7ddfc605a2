package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/smmpanel/panel/internal/infrastructure/config"
	"github.com/smmpanel/panel/internal/infrastructure/database"
	"github.com/smmpanel/panel/internal/infrastructure/migration"
	"github.com/smmpanel/panel/internal/infrastructure/permission"
	"github.com/smmpanel/panel/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/smmpanel/panel/internal/interfaces/http"
	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/goroutine"
	"github.com/smmpanel/panel/internal/shared/logger"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the panel admin API server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (refused in production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto-migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cmd.Context(), cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}
	defer container.Shutdown()

	if _, err := permission.SeedProviderPermissions(container.Enforcer()); err != nil {
		return fmt.Errorf("failed to seed provider permissions: %w", err)
	}

	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.Go(log, "http-server", func() {
		defer close(serveErr)
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}, nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if env == constants.EnvProduction {
			return fmt.Errorf("--auto-migrate is not allowed in production, run 'panel migrate up' instead")
		}

		manager := migration.NewManager(env, cfg.Database.Driver)
		log.Infow("running auto-migration", "strategy", manager.GetStrategy().GetName())
		if err := manager.Migrate(ctx, database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	version, err := migration.NewGooseStrategy(cfg.Database.Driver).GetVersion(ctx, database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
