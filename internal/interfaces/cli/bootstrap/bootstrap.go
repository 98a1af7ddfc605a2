// Package bootstrap prepares the process-wide state shared by every CLI command.
package bootstrap

import (
	"fmt"

	"github.com/smmpanel/panel/internal/infrastructure/config"
	"github.com/smmpanel/panel/internal/infrastructure/database"
	"github.com/smmpanel/panel/internal/shared/biztime"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// Init loads configuration, then initializes logging, the business timezone and
// the database connection. Callers close the database with database.Close.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}
