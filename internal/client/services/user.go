// Package services contains application services for the life-planning
// client: profile retrieval and event CRUD on top of the API client.
package services

import (
	"context"
	"fmt"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
)

// UserService defines profile operations for the CLI.
//
// Contract:
//   - Current: fetch the authenticated user's profile. A
//     common.ErrUnauthorized return means the stored token is no longer
//     accepted and the caller must drop the session.
type UserService interface {
	Current(ctx context.Context) (*models.User, error)
}

type userService struct {
	client api.Client
}

func NewUserService(client api.Client) UserService {
	return &userService{client: client}
}

func (s *userService) Current(ctx context.Context) (*models.User, error) {
	u, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return u, nil
}
