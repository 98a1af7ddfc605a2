package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/panel/internal/shared/config"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "data", "panel.db"),
	}

	database, err := Open(cfg)
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.FileExists(t, cfg.Path)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "postgres"})
	assert.ErrorContains(t, err, `unsupported database driver "postgres"`)
}
