// Package services contains the application services of the snoozer client:
// authentication/session lifecycle and story collection operations. Local
// state is mutated strictly after the corresponding remote call succeeds.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/client/session"
	"github.com/dmitrijs2005/snoozer/internal/dbx"
	"github.com/dmitrijs2005/snoozer/internal/logging"
)

var (
	// ErrAuthInProgress is returned when a second signup/login/resume is
	// attempted while one is already in flight.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// ErrNotAuthenticated is returned by operations that need a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthService defines the session lifecycle and the favorite mutations that
// belong to the authenticated user.
//
// Contract:
//   - Signup/Login: authenticate against the service and persist the session
//     pair (token, username); the persisted record is untouched on failure.
//   - Resume: re-establish a user from the saved pair; any failure — missing
//     record, expired token, unreachable service — yields (nil, nil), never a
//     fatal error.
//   - Logout: drop the persisted pair; no remote call is involved.
//   - AddFavorite/RemoveFavorite: remote call first, local set only on success.
//   - Close: release the API client and the local database.
type AuthService interface {
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Resume(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	AddFavorite(ctx context.Context, user *models.User, story *models.Story) error
	RemoveFavorite(ctx context.Context, user *models.User, story *models.Story) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	db     *sql.DB
	logger logging.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewAuthService constructs an AuthService bound to the given API client and
// client database.
func NewAuthService(client api.Client, db *sql.DB, logger logging.Logger) AuthService {
	return &authService{client: client, db: db, logger: logger}
}

func (a *authService) getSessionRepo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

// beginAuth marks an authentication attempt as in flight. Two concurrent
// attempts must not race to set the session, so the second one fails fast.
func (a *authService) beginAuth() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight {
		return ErrAuthInProgress
	}
	a.inFlight = true
	return nil
}

func (a *authService) endAuth() {
	a.mu.Lock()
	a.inFlight = false
	a.mu.Unlock()
}

func (a *authService) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	if err := a.beginAuth(); err != nil {
		return nil, err
	}
	defer a.endAuth()

	user, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}

	if err := a.saveSession(ctx, user.LoginToken, user.Username); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	if err := a.beginAuth(); err != nil {
		return nil, err
	}
	defer a.endAuth()

	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.saveSession(ctx, user.LoginToken, user.Username); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// Resume re-establishes the user from the persisted pair. A missing or
// partial pair, or any remote failure, means "no session" — the caller falls
// back to the logged-out state.
func (a *authService) Resume(ctx context.Context) (*models.User, error) {
	if err := a.beginAuth(); err != nil {
		return nil, err
	}
	defer a.endAuth()

	token, username, err := a.loadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("session loading error: %w", err)
	}
	if token == "" || username == "" {
		return nil, nil
	}

	user, err := a.client.User(ctx, token, username)
	if err != nil {
		a.logger.Warn(ctx, "session resume failed", "username", username, "error", err)
		return nil, nil
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.clearSession(ctx)
}

// AddFavorite marks a story as favorite on the service, then on the user.
// The local set dedupes, so re-adding an existing favorite is harmless even
// though the remote call is re-issued.
func (a *authService) AddFavorite(ctx context.Context, user *models.User, story *models.Story) error {
	if user == nil || user.LoginToken == "" {
		return ErrNotAuthenticated
	}
	if err := a.client.AddFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		return err
	}
	user.AddFavorite(story)
	return nil
}

// RemoveFavorite is symmetric to AddFavorite; removing an absent favorite is
// a local no-op.
func (a *authService) RemoveFavorite(ctx context.Context, user *models.User, story *models.Story) error {
	if user == nil || user.LoginToken == "" {
		return ErrNotAuthenticated
	}
	if err := a.client.RemoveFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		return err
	}
	user.RemoveFavorite(story.StoryID)
	return nil
}

func (a *authService) Close(ctx context.Context) error {
	clientErr := a.client.Close()
	dbErr := a.db.Close()
	return errors.Join(clientErr, dbErr)
}

// saveSession persists token and username as one atomic pair.
func (a *authService) saveSession(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyUsername, username)
	})
}

// loadSession reads the persisted pair. A half-written pair is treated as
// absent.
func (a *authService) loadSession(ctx context.Context) (token, username string, err error) {
	repo := a.getSessionRepo()

	token, err = repo.Get(ctx, session.KeyToken)
	if err != nil {
		return "", "", err
	}
	username, err = repo.Get(ctx, session.KeyUsername)
	if err != nil {
		return "", "", err
	}
	if token == "" || username == "" {
		return "", "", nil
	}
	return token, username, nil
}

func (a *authService) clearSession(ctx context.Context) error {
	return a.getSessionRepo().Clear(ctx)
}
