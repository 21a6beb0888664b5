// Package dbx provides the tiny DB plumbing shared by local stores: a
// minimal interface (DBTX) satisfied by both *sql.DB and *sql.Tx, so a
// repository works unchanged inside and outside a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the stores.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
