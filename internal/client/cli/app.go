package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/config"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
	"github.com/dmitrijs2005/snoozer/internal/client/session"
	"github.com/dmitrijs2005/snoozer/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the state of the interactive client: the services it talks
// through, the current user (nil when logged out), and the last fetched
// story collection.
type App struct {
	config       *config.Config
	authService  services.AuthService
	storyService services.StoryService
	user         *models.User
	stories      *models.StoryList
	reader       *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.Default())
	apiClient := api.NewHTTPClient(c.APIEndpointAddr, c.RequestTimeout, logger)

	as := services.NewAuthService(apiClient, db, logger)
	ss := services.NewStoryService(apiClient, logger)

	return &App{
		config:       c,
		authService:  as,
		storyService: ss,
		stories:      models.NewStoryList(nil),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
