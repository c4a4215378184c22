// Package simpletxmanager is the txmanager variant for a plain *sql.DB,
// used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
)

var (
	// ErrBeginTx is returned when a transaction cannot be opened.
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed.
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")
)

// TransactionManager opens serializable transactions on a raw *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a manager over a plain database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, rolling back
// on any error or panic. The open *sql.Tx satisfies dbmetrics.TxExecutor
// directly, so it travels through context the same way as the
// instrumented variant.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}
