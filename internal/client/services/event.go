package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/events"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
)

var ErrMissingEventID = errors.New("event has no id")

// EventService defines event operations for the CLI.
//
// Contract:
//   - List: fetch the user's events sorted by the given key and order.
//   - Create: create a new event; the returned copy carries the server id.
//   - Update: replace an existing event wholesale.
type EventService interface {
	List(ctx context.Context, key events.SortKey, dir events.Direction) ([]models.Event, error)
	Create(ctx context.Context, e models.Event) (*models.Event, error)
	Update(ctx context.Context, e models.Event) (*models.Event, error)
}

type eventService struct {
	client api.Client
}

func NewEventService(client api.Client) EventService {
	return &eventService{client: client}
}

// List asks the server for an ordered slice and re-sorts it locally with
// the same key, so the displayed order never depends on the backend's
// collation.
func (s *eventService) List(ctx context.Context, key events.SortKey, dir events.Direction) ([]models.Event, error) {
	rows, err := s.client.ListEvents(ctx, string(key), string(dir))
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events.Sort(rows, key, dir), nil
}

func (s *eventService) Create(ctx context.Context, e models.Event) (*models.Event, error) {
	e.ID = 0
	created, err := s.client.CreateEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

func (s *eventService) Update(ctx context.Context, e models.Event) (*models.Event, error) {
	if e.ID == 0 {
		return nil, ErrMissingEventID
	}
	updated, err := s.client.UpdateEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return updated, nil
}
