// Package api implements the HTTP client for the remote stories service.
//
// The wire contract is owned by the service; this package maps its JSON
// payloads onto the domain models and its failure modes onto a small set of
// sentinel errors. Every authenticated call presents the login token as a
// bearer Authorization header — the token never appears in request bodies or
// query strings.
package api

import (
	"context"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// Client is the remote operation surface the services are built on.
// All methods honor context cancellation and the configured request deadline.
type Client interface {
	Close() error

	// Stories fetches the full story collection in server order. An empty or
	// malformed collection body yields an empty slice, not an error.
	Stories(ctx context.Context) ([]*models.Story, error)

	// AddStory submits a draft and returns the created story with its
	// server-assigned id and timestamp.
	AddStory(ctx context.Context, token string, draft models.StoryDraft) (*models.Story, error)

	// DeleteStory removes a story. The server is the authority on ownership.
	DeleteStory(ctx context.Context, token string, storyID string) error

	// Signup creates an account and returns the authenticated user with its
	// fresh login token.
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)

	// Login authenticates existing credentials and returns the populated user.
	Login(ctx context.Context, username string, password []byte) (*models.User, error)

	// User fetches the user record for a saved session; the returned user
	// carries the presented token.
	User(ctx context.Context, token string, username string) (*models.User, error)

	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
