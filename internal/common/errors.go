// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized signals that the server rejected the bearer token
	// (or faulted on the authenticated user-info call, which the client
	// treats the same way: implicit logout).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned by local stores when a key is absent.
	ErrNotFound = errors.New("not found")
)
