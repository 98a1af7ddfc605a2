package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smmpanel/panel/internal/infrastructure/config"
	"github.com/smmpanel/panel/internal/infrastructure/database"
	"github.com/smmpanel/panel/internal/infrastructure/migration"
	"github.com/smmpanel/panel/internal/infrastructure/permission"
	"github.com/smmpanel/panel/internal/interfaces/cli/bootstrap"
	"github.com/smmpanel/panel/internal/shared/constants"
)

var (
	env        string
	configPath string
	name       string
	root       string
	steps      int
	version    int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, creating new migration files and seeding permissions.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedPermissionsCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().Int64Var(&version, "to", 0, "Migrate up to this version only (default: latest)")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&root, "root", ".", "Repository root the migration directory is relative to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedPermissionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-permissions",
		Short: "Seed provider management permissions",
		Long:  `Grant the admin role read and write access to providers. Existing rules are kept.`,
		RunE:  runSeedPermissions,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	strategy := migration.NewGooseStrategy(cfg.Database.Driver)
	if version > 0 {
		err = strategy.MigrateTo(cmd.Context(), database.Get(), version)
	} else {
		err = strategy.Migrate(cmd.Context(), database.Get())
	}
	if err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy := migration.NewGooseStrategy(cfg.Database.Driver)
	if err := strategy.MigrateDown(cmd.Context(), database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy(cfg.Database.Driver)
	current, err := strategy.GetVersion(cmd.Context(), database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", current)

	if err := strategy.Status(cmd.Context(), database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	// No database connection is needed, only the driver.
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := migration.NewGooseStrategy(cfg.Database.Driver).Create(root, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created for %s\n", name, cfg.Database.Driver)
	return nil
}

func runSeedPermissions(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	enforcer, err := permission.NewEnforcer(database.Get(), log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}

	added, err := permission.SeedProviderPermissions(enforcer)
	if err != nil {
		log.Errorw("failed to seed permissions", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Provider permissions seeded (%d new rules)\n", added)
	return nil
}
