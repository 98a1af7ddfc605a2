// Package db provides database utilities including transaction management.
package db

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
}

// Option configures a TransactionManager.
type Option func(*TransactionManager)

// WithIsolation sets the isolation level used for every transaction started by the manager.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(tm *TransactionManager) {
		tm.isolation = level
	}
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB, opts ...Option) *TransactionManager {
	tm := &TransactionManager{db: db, isolation: sql.LevelDefault}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction will be rolled back.
// If the function completes successfully, the transaction will be committed.
// A context that already carries a transaction joins it instead of opening a new one.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	var txOpts []*sql.TxOptions
	if tm.isolation != sql.LevelDefault {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: tm.isolation})
	}

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	}, txOpts...)
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
