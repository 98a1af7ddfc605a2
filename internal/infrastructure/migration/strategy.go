package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/shared/config"
	"github.com/smmpanel/panel/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// SourceDir is where new migration files are written, relative to the repository root.
const SourceDir = "internal/infrastructure/migration/scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(ctx context.Context, db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
// Each driver has its own script directory.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

// NewGooseStrategy creates a goose strategy for the given database driver.
func NewGooseStrategy(driver string) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) dir() string {
	return "scripts/" + s.driver
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dialect := "mysql"
	if s.driver == config.DriverSQLite {
		dialect = "sqlite3"
	}
	goose.SetBaseFS(scripts)
	if err := goose.SetDialect(dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	return s.MigrateTo(ctx, db, 0)
}

// MigrateTo applies pending migrations up to version; zero means the latest.
func (s *GooseStrategy) MigrateTo(ctx context.Context, db *gorm.DB, version int64) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("current migration status", "version", currentVersion, "driver", s.driver)

	if version > 0 {
		err = goose.UpToContext(ctx, sqlDB, s.dir(), version)
	} else {
		err = goose.UpContext(ctx, sqlDB, s.dir())
	}
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

// MigrateDown rolls back the given number of migrations.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, s.dir()); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

// GetVersion returns the current schema version.
func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status prints the applied and pending migrations through goose's logger.
func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, sqlDB, s.dir()); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new empty SQL migration for this driver under root.
func (s *GooseStrategy) Create(root, name string) error {
	goose.SetBaseFS(nil)
	dir := filepath.Join(root, SourceDir, s.driver)

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// GormAutoMigrateStrategy creates tables straight from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates the development strategy.
func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))

	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
