package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(&widget{}))
	return database
}

func TestRunInTransaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		database := setupTestDB(t)
		tm := NewTransactionManager(database)

		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			return GetTxFromContext(ctx, database).Create(&widget{Name: "a"}).Error
		})
		require.NoError(t, err)

		var count int64
		database.Model(&widget{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back every write on error", func(t *testing.T) {
		database := setupTestDB(t)
		tm := NewTransactionManager(database)
		boom := errors.New("boom")

		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			tx := GetTxFromContext(ctx, database)
			if err := tx.Create(&widget{Name: "a"}).Error; err != nil {
				return err
			}
			if err := tx.Create(&widget{Name: "b"}).Error; err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int64
		database.Model(&widget{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("nested call joins outer transaction", func(t *testing.T) {
		database := setupTestDB(t)
		tm := NewTransactionManager(database)

		var inner *gorm.DB
		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			outer := GetTxFromContext(ctx, database)
			return tm.RunInTransaction(ctx, func(ctx context.Context) error {
				inner = tm.GetTx(ctx)
				assert.Same(t, outer, inner)
				return nil
			})
		})
		require.NoError(t, err)
		assert.NotNil(t, inner)
	})
}
