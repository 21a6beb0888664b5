package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/auth"
	"github.com/lifeplan/lifeplan-cli/internal/client/events"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/client/session"
	"github.com/lifeplan/lifeplan-cli/internal/common"
	"github.com/lifeplan/lifeplan-cli/internal/logging"
)

// memStore is an in-memory session.Store for tests.
type memStore struct {
	m map[string][]byte
}

func newMemStore() *memStore { return &memStore{m: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return v, nil
}
func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.m[key] = value
	return nil
}
func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}
func (s *memStore) Clear(_ context.Context) error {
	s.m = map[string][]byte{}
	return nil
}

// fakeVerifier answers the auth endpoints.
type fakeVerifier struct {
	startCalls     int
	lastStartPath  string
	lastStartEmail string
	startOut       api.Outcome
	startErr       error

	completeCalls    int
	lastCompletePath string
	lastPayload      any
	completeOut      api.Outcome
	completeErr      error
}

func (f *fakeVerifier) Start(_ context.Context, path, email string) (api.Outcome, error) {
	f.startCalls++
	f.lastStartPath = path
	f.lastStartEmail = email
	return f.startOut, f.startErr
}

func (f *fakeVerifier) Complete(_ context.Context, path string, payload any) (api.Outcome, error) {
	f.completeCalls++
	f.lastCompletePath = path
	f.lastPayload = payload
	return f.completeOut, f.completeErr
}

// fakeEvents answers the event service calls.
type fakeEvents struct {
	listOut []models.Event
	listErr error
	lastKey events.SortKey
	lastDir events.Direction

	created     *models.Event
	createCalls int
	createErr   error
	updated   *models.Event
	updateErr error
	lastIn    models.Event
}

func (f *fakeEvents) List(_ context.Context, key events.SortKey, dir events.Direction) ([]models.Event, error) {
	f.lastKey = key
	f.lastDir = dir
	return f.listOut, f.listErr
}

func (f *fakeEvents) Create(_ context.Context, e models.Event) (*models.Event, error) {
	f.createCalls++
	f.lastIn = e
	return f.created, f.createErr
}

func (f *fakeEvents) Update(_ context.Context, e models.Event) (*models.Event, error) {
	f.lastIn = e
	return f.updated, f.updateErr
}

type fakeUsers struct {
	user *models.User
	err  error
}

func (f *fakeUsers) Current(_ context.Context) (*models.User, error) { return f.user, f.err }

// newTestApp wires an App around fakes. input feeds the shell's reader.
func newTestApp(t *testing.T, input string) (*App, *fakeVerifier, *fakeEvents, *fakeUsers, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	sess, err := session.Load(context.Background(), newMemStore())
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	v := &fakeVerifier{}
	fe := &fakeEvents{}
	fu := &fakeUsers{}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := &App{
		session:      sess,
		eventService: fe,
		userService:  fu,
		log:          log,
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          out,
		sortKey:      events.SortByDate,
		sortDir:      events.OrderAsc,
	}
	a.flow = auth.NewFlow(v, sess, &consoleNotifier{out: out}, log)
	return a, v, fe, fu, out
}

var userFixture = models.User{
	Username:  "alice",
	FirstName: "Alice",
	Surname:   "Liddell",
	Email:     "alice@example.com",
}

// stubInputs queues answers for getSimpleText and a fixed password for
// getPassword. The returned func restores the originals.
func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}
