package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/events"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeAPIClient struct {
	listOut     []models.Event
	listErr     error
	lastSortKey string
	lastOrder   string

	user    *models.User
	userErr error

	created *models.Event
	updated *models.Event
	sendErr error
	lastIn  models.Event
}

func (f *fakeAPIClient) Start(_ context.Context, _ string, _ string) (api.Outcome, error) {
	return api.Outcome{}, nil
}

func (f *fakeAPIClient) Complete(_ context.Context, _ string, _ any) (api.Outcome, error) {
	return api.Outcome{}, nil
}

func (f *fakeAPIClient) CurrentUser(_ context.Context) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeAPIClient) ListEvents(_ context.Context, sortKey, order string) ([]models.Event, error) {
	f.lastSortKey = sortKey
	f.lastOrder = order
	return f.listOut, f.listErr
}

func (f *fakeAPIClient) CreateEvent(_ context.Context, e models.Event) (*models.Event, error) {
	f.lastIn = e
	return f.created, f.sendErr
}

func (f *fakeAPIClient) UpdateEvent(_ context.Context, e models.Event) (*models.Event, error) {
	f.lastIn = e
	return f.updated, f.sendErr
}

func strptr(s string) *string { return &s }

func TestEventServiceList_ResortsServerOrder(t *testing.T) {
	// server claims ascending but returns descending
	c := &fakeAPIClient{listOut: []models.Event{
		{ID: 2, Title: "b", Date: strptr("2025-07-01 10:00:00.000")},
		{ID: 1, Title: "a", Date: strptr("2025-06-01 10:00:00.000")},
	}}
	s := NewEventService(c)

	got, err := s.List(context.Background(), events.SortByDate, events.OrderAsc)
	require.NoError(t, err)
	require.Equal(t, string(events.SortByDate), c.lastSortKey)
	require.Equal(t, string(events.OrderAsc), c.lastOrder)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(2), got[1].ID)
}

func TestEventServiceList_Error(t *testing.T) {
	c := &fakeAPIClient{listErr: common.ErrUnauthorized}
	s := NewEventService(c)

	_, err := s.List(context.Background(), events.SortByTitle, events.OrderDesc)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestEventServiceCreate_StripsID(t *testing.T) {
	c := &fakeAPIClient{created: &models.Event{ID: 42, Title: "Gym"}}
	s := NewEventService(c)

	got, err := s.Create(context.Background(), models.Event{ID: 99, Title: "Gym"})
	require.NoError(t, err)
	require.Zero(t, c.lastIn.ID, "the server assigns ids")
	require.Equal(t, int64(42), got.ID)
}

func TestEventServiceUpdate(t *testing.T) {
	c := &fakeAPIClient{updated: &models.Event{ID: 7, Title: "Gym at 8"}}
	s := NewEventService(c)

	got, err := s.Update(context.Background(), models.Event{ID: 7, Title: "Gym at 8"})
	require.NoError(t, err)
	require.Equal(t, int64(7), c.lastIn.ID)
	require.Equal(t, "Gym at 8", got.Title)
}

func TestEventServiceUpdate_RejectsMissingID(t *testing.T) {
	c := &fakeAPIClient{}
	s := NewEventService(c)

	_, err := s.Update(context.Background(), models.Event{Title: "no id"})
	require.ErrorIs(t, err, ErrMissingEventID)
	require.Empty(t, c.lastIn.Title, "nothing must be sent")
}

func TestEventServiceCreate_Error(t *testing.T) {
	c := &fakeAPIClient{sendErr: errors.New("boom")}
	s := NewEventService(c)

	_, err := s.Create(context.Background(), models.Event{Title: "x"})
	require.Error(t, err)
}

func TestUserServiceCurrent(t *testing.T) {
	s := NewUserService(&fakeAPIClient{user: &models.User{Username: "alice", Email: "a@example.com"}})
	u, err := s.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestUserServiceCurrent_UnauthorizedPassesThrough(t *testing.T) {
	s := NewUserService(&fakeAPIClient{userErr: common.ErrUnauthorized})
	_, err := s.Current(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
