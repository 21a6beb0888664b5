package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/lifeplan/lifeplan-cli/internal/client/api"
	"github.com/lifeplan/lifeplan-cli/internal/client/auth"
	"github.com/lifeplan/lifeplan-cli/internal/client/config"
	"github.com/lifeplan/lifeplan-cli/internal/client/events"
	"github.com/lifeplan/lifeplan-cli/internal/client/services"
	"github.com/lifeplan/lifeplan-cli/internal/client/session"
	"github.com/lifeplan/lifeplan-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config       *config.Config
	db           *sql.DB
	session      *session.Session
	flow         *auth.Flow
	eventService services.EventService
	userService  services.UserService
	log          logging.Logger

	reader *bufio.Reader
	out    io.Writer

	userName string
	sortKey  events.SortKey
	sortDir  events.Direction
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	sess, err := session.Load(ctx, session.NewSQLiteRepository(db))
	if err != nil {
		db.Close()
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, sess, log)

	a := &App{
		config:       c,
		db:           db,
		session:      sess,
		eventService: services.NewEventService(apiClient),
		userService:  services.NewUserService(apiClient),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		sortKey:      events.SortByDate,
		sortDir:      events.OrderAsc,
	}
	a.flow = auth.NewFlow(apiClient, sess, &consoleNotifier{out: a.out}, log)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}
