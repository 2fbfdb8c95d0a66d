package uow

import (
	"context"

	"gorm.io/gorm"
)

// Tx is one open transaction. Repositories join it via their WithTx method
// using the handle returned by DB.
type Tx interface {
	DB() *gorm.DB
	Commit() error
	Rollback() error
}

// Manager begins transactions. Services start one unit of work per
// multi-statement operation so parent and child writes commit or roll back
// together.
type Manager interface {
	Begin(ctx context.Context) (Tx, error)
}

type gormManager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) Manager {
	return &gormManager{db: db}
}

func (m *gormManager) Begin(ctx context.Context) (Tx, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

type gormTx struct {
	tx   *gorm.DB
	done bool
}

func (t *gormTx) DB() *gorm.DB {
	return t.tx
}

func (t *gormTx) Commit() error {
	t.done = true
	return t.tx.Commit().Error
}

// Rollback after Commit is a no-op so services can defer it unconditionally.
func (t *gormTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback().Error
}
