package dbmetrics

import (
	"context"
	"database/sql"
)

// Executor is the query surface repositories run against. Both *sql.DB,
// *sql.Tx and the metric wrappers in this package satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is an Executor bound to an open transaction.
type TxExecutor interface {
	Executor
	Commit() error
	Rollback() error
}

// DBExecutor is an Executor that can also open transactions.
// Satisfied by *DB; plain *sql.DB is adapted by transaction managers.
type DBExecutor interface {
	Executor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
