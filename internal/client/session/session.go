package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifeplan/lifeplan-cli/internal/common"
)

// TokenKey is the store key holding the bearer token.
const TokenKey = "token"

// Session is the single writer for the bearer credential. Every
// component that issues authenticated calls reads the token through a
// Session; only login success and logout write it.
type Session struct {
	store Store
	token string
}

// Load builds a Session and restores any previously persisted token.
// A missing token is the normal signed-out state, not an error.
func Load(ctx context.Context, store Store) (*Session, error) {
	s := &Session{store: store}

	value, err := store.Get(ctx, TokenKey)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	s.token = string(value)
	return s, nil
}

// Token returns the current bearer token; ok is false when there is
// no authenticated session.
func (s *Session) Token() (token string, ok bool) {
	return s.token, s.token != ""
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// SetToken persists the token and caches it for subsequent requests.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	s.token = token
	return nil
}

// Clear drops the token, both the cached copy and the persisted one.
// Used on logout and on authentication failure from the server.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	s.token = ""
	return nil
}
