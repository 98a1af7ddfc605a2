// Package migration keeps the database schema in step with the persistence models.
package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy for the environment. Development builds the schema
// from the models; every other environment runs the versioned scripts.
func NewManager(environment, driver string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(driver)
	}

	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
