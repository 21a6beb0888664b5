// Package api is the HTTP boundary of the client: one thin wrapper
// over the life-planning REST API with bearer authorization and
// normalized response decoding.
package api

import (
	"context"

	"github.com/lifeplan/lifeplan-cli/internal/client/models"
)

// Paths consumed by the client. Auth endpoints are looked up through
// the flow table; the rest are fixed.
const (
	PathStartLogin         = "/api/auth/start-login"
	PathStartRegistration  = "/api/auth/start-registration"
	PathStartResetPassword = "/api/auth/start-reset-password"
	PathSignInWithEmail    = "/api/auth/sign-in-with-email"
	PathSignUp             = "/api/auth/sign-up"
	PathResetPassword      = "/api/auth/reset-password"
	PathUser               = "/api/user/"
	PathEvent              = "/api/event/"
)

// TokenSource supplies the bearer credential for authenticated calls.
// *session.Session satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the transport surface the services and the auth flow use.
//
// Start and Complete return the normalized Outcome for the auth
// endpoints; a non-nil error means the request never reached the
// server (transport failure), never an application-level rejection.
type Client interface {
	Start(ctx context.Context, path string, email string) (Outcome, error)
	Complete(ctx context.Context, path string, payload any) (Outcome, error)

	CurrentUser(ctx context.Context) (*models.User, error)
	ListEvents(ctx context.Context, sortKey, order string) ([]models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event) (*models.Event, error)
}
