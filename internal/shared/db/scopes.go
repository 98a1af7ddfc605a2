// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use this scope with Table() queries or Unscoped() models, where GORM does not
// apply soft delete filtering by itself.
//
// Example usage:
//
//	db.Table("services").Scopes(db.NotDeleted()).Where("category_id = ?", id).Count(&count)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// OnlyDeleted keeps soft-deleted records only.
func OnlyDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NOT NULL")
	}
}
