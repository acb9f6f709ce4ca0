package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// dbExecutor is satisfied by both *sql.DB and *sql.Tx, so repository methods
// transparently join an Atomic transaction when one is on the context.
type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func extractTx(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return nil
}

func (r *Repository) extractTxWrite(ctx context.Context) dbExecutor {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.dbWrite
}

func (r *Repository) extractTxRead(ctx context.Context) dbExecutor {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.dbRead
}
