// Package txmanager runs functions inside SERIALIZABLE transactions over
// an instrumented dbmetrics database.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
)

// Postgres SQLSTATE for serialization_failure.
const pqSerializationFailure = "40001"

var (
	// ErrBeginTx is returned when a transaction cannot be opened.
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed.
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization is returned when Postgres aborts the transaction
	// with a serialization failure. The caller decides whether to retry;
	// nothing is retried automatically.
	ErrSerialization = errors.New("txmanager: serialization failure")
)

// TransactionManager opens serializable transactions and propagates them
// through context, so repositories transparently join via
// dbmetrics.GetExecutor.
type TransactionManager struct {
	db dbmetrics.DBExecutor
}

// NewTransactionManager creates a manager over an instrumented database.
func NewTransactionManager(db dbmetrics.DBExecutor) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. Every error
// path (fn error, panic, commit failure) rolls the transaction back
// before returning.
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
		return wrapSerialization(err)
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return wrapSerialization(fmt.Errorf("%w: %w", ErrCommitTx, err))
	}

	return nil
}

// wrapSerialization tags Postgres serialization failures with
// ErrSerialization so callers can recognize them with errors.Is.
func wrapSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return err
}
