package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/logging"
)

// ErrMissingField is returned when a story draft has an empty title, author
// or url.
var ErrMissingField = errors.New("title, author and url are required")

// StoryService covers the remote story collection. It performs no local list
// mutation: the caller prepends/removes in its own list only after a call
// succeeds, so local state never diverges from the server on failure.
type StoryService interface {
	// FetchAll returns the collection in server order, unique by story id.
	FetchAll(ctx context.Context) (*models.StoryList, error)

	// Add submits a draft on behalf of user and returns the created story
	// with its server-assigned id and timestamp.
	Add(ctx context.Context, user *models.User, draft models.StoryDraft) (*models.Story, error)

	// Delete removes a story by id on behalf of user. Ownership should be
	// checked by the caller first; the server remains the authority.
	Delete(ctx context.Context, user *models.User, storyID string) error
}

type storyService struct {
	client api.Client
	logger logging.Logger
}

func NewStoryService(client api.Client, logger logging.Logger) StoryService {
	return &storyService{client: client, logger: logger}
}

func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewStoryList(stories), nil
}

func (s *storyService) Add(ctx context.Context, user *models.User, draft models.StoryDraft) (*models.Story, error) {
	if user == nil || user.LoginToken == "" {
		return nil, ErrNotAuthenticated
	}
	if draft.Title == "" || draft.Author == "" || draft.URL == "" {
		return nil, ErrMissingField
	}

	story, err := s.client.AddStory(ctx, user.LoginToken, draft)
	if err != nil {
		return nil, err
	}
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, user *models.User, storyID string) error {
	if user == nil || user.LoginToken == "" {
		return ErrNotAuthenticated
	}
	return s.client.DeleteStory(ctx, user.LoginToken, storyID)
}
