package dbmetrics

import "context"

type txContextKey struct{}

// WithTx returns a context carrying an open transaction. Repositories
// pick it up through GetExecutor, so the same repository code runs both
// inside and outside transactions.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext extracts the transaction stored by WithTx, if any.
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction reports whether ctx carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor returns the transaction from ctx when present, otherwise
// the repository's default executor.
func GetExecutor(ctx context.Context, def Executor) Executor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return def
}
