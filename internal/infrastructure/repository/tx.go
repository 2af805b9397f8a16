package repository

import (
	"context"

	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// dbFromContext returns the transaction bound to the context if one is
// present, otherwise the base handle. Every repository method goes through
// this so that work started by TxManager.WithinTransaction shares one
// transaction without the repositories knowing about it.
func dbFromContext(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return base
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager backed by GORM transactions
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
