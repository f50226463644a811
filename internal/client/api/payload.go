package api

import (
	"time"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// Wire DTOs for the service's JSON payloads. Timestamps arrive as RFC 3339
// strings; an unparseable timestamp degrades to the zero time rather than
// failing the whole response.

type storyPayload struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func (p storyPayload) toModel() *models.Story {
	createdAt, _ := time.Parse(time.RFC3339, p.CreatedAt)
	return &models.Story{
		StoryID:   p.StoryID,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Username:  p.Username,
		CreatedAt: createdAt,
	}
}

func toStories(payloads []storyPayload) []*models.Story {
	stories := make([]*models.Story, 0, len(payloads))
	for _, p := range payloads {
		stories = append(stories, p.toModel())
	}
	return stories
}

// userPayload mirrors the service's user object. The service calls the
// user's authored stories "stories" on the wire.
type userPayload struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"createdAt"`
	Favorites []storyPayload `json:"favorites"`
	Stories   []storyPayload `json:"stories"`
}

func (p userPayload) toModel(token string) *models.User {
	createdAt, _ := time.Parse(time.RFC3339, p.CreatedAt)
	return &models.User{
		Username:   p.Username,
		Name:       p.Name,
		CreatedAt:  createdAt,
		Favorites:  toStories(p.Favorites),
		OwnStories: toStories(p.Stories),
		LoginToken: token,
	}
}

type storiesResponse struct {
	Stories []storyPayload `json:"stories"`
}

type storyResponse struct {
	Story storyPayload `json:"story"`
}

type userResponse struct {
	User userPayload `json:"user"`
}

type authResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type draftPayload struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type addStoryRequest struct {
	Story draftPayload `json:"story"`
}

type signupRequest struct {
	User signupPayload `json:"user"`
}

type signupPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	User loginPayload `json:"user"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorResponse covers the error body shapes the service is known to emit.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
