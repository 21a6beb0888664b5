// Package session owns the client's only persistent state: the bearer
// token (and any future metadata) kept in a local SQLite database so a
// login survives restarts.
package session

import "context"

// Store is a durable string-keyed blob store. Get reports an absent
// key as common.ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
