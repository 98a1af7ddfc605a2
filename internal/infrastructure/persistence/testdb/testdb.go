// Package testdb opens migrated in-memory SQLite databases and seeds catalog rows for tests.
package testdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
)

// New opens a private in-memory database with every panel table created.
// The pool is pinned to one connection so all statements share the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// Seeder inserts catalog fixtures.
type Seeder struct {
	t  *testing.T
	db *gorm.DB
}

// NewSeeder returns a seeder bound to db.
func NewSeeder(t *testing.T, db *gorm.DB) *Seeder {
	return &Seeder{t: t, db: db}
}

// Provider inserts an inactive provider row directly.
func (s *Seeder) Provider(name string) *models.ProviderModel {
	s.t.Helper()
	m := &models.ProviderModel{Name: name, APIKey: "key-" + name, APIConfig: []byte(`{}`)}
	require.NoError(s.t, s.db.Create(m).Error)
	return m
}

// Category inserts a live category.
func (s *Seeder) Category(name string) *models.CategoryModel {
	s.t.Helper()
	m := &models.CategoryModel{Name: name, Status: "active"}
	require.NoError(s.t, s.db.Create(m).Error)
	return m
}

// ServiceType inserts a live service type.
func (s *Seeder) ServiceType(name string) *models.ServiceTypeModel {
	s.t.Helper()
	m := &models.ServiceTypeModel{Name: name, Status: "active"}
	require.NoError(s.t, s.db.Create(m).Error)
	return m
}

// Service inserts a live active service. A nil providerID makes it self-created.
func (s *Seeder) Service(name string, providerID *uint, categoryID uint, serviceTypeID *uint) *models.ServiceModel {
	s.t.Helper()
	m := &models.ServiceModel{
		Name:          name,
		ProviderID:    providerID,
		CategoryID:    categoryID,
		ServiceTypeID: serviceTypeID,
		Rate:          1.5,
		MinQuantity:   10,
		MaxQuantity:   1000,
		Status:        "active",
	}
	require.NoError(s.t, s.db.Create(m).Error)
	return m
}

// Order inserts an order with one favorite, cancel request and refill request attached.
func (s *Seeder) Order(serviceID uint) *models.OrderModel {
	s.t.Helper()
	o := &models.OrderModel{UserID: 1, ServiceID: serviceID, Link: "https://example.test/p/1", Quantity: 100, Status: "pending"}
	require.NoError(s.t, s.db.Create(o).Error)
	require.NoError(s.t, s.db.Create(&models.CancelRequestModel{OrderID: o.ID, UserID: 1, Reason: "late"}).Error)
	require.NoError(s.t, s.db.Create(&models.RefillRequestModel{OrderID: o.ID, UserID: 1}).Error)
	require.NoError(s.t, s.db.Create(&models.FavoriteServiceModel{UserID: o.ID, ServiceID: serviceID}).Error)
	return o
}

// Trash soft deletes any model row by primary key.
func (s *Seeder) Trash(model any, id uint) {
	s.t.Helper()
	require.NoError(s.t, s.db.Unscoped().Model(model).Where("id = ?", id).UpdateColumn("deleted_at", time.Now().UTC()).Error)
}

// DeletedAt returns the deleted_at of a row, or nil when live. Fails the test when the row is gone.
func (s *Seeder) DeletedAt(model any, id uint) *time.Time {
	s.t.Helper()
	var row struct{ DeletedAt *time.Time }
	res := s.db.Unscoped().Model(model).Select("deleted_at").Where("id = ?", id).Scan(&row)
	require.NoError(s.t, res.Error)
	require.Equal(s.t, int64(1), res.RowsAffected, "row %d missing", id)
	return row.DeletedAt
}

// Exists reports whether the row is still present, trashed or not.
func (s *Seeder) Exists(model any, id uint) bool {
	s.t.Helper()
	var count int64
	require.NoError(s.t, s.db.Unscoped().Model(model).Where("id = ?", id).Count(&count).Error)
	return count > 0
}

// Count counts every row of a table, trashed or not.
func (s *Seeder) Count(model any) int64 {
	s.t.Helper()
	var count int64
	require.NoError(s.t, s.db.Unscoped().Model(model).Count(&count).Error)
	return count
}

// Ptr returns a pointer to id.
func Ptr(id uint) *uint {
	return &id
}
