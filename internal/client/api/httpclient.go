package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/logging"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// HTTPClient talks JSON over HTTP to the stories service. The per-request
// deadline comes from the configured timeout; callers can tighten it further
// through ctx.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// do performs one API round trip. The bearer token, when present, is
// attached here and nowhere else. A nil out skips body decoding.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "api request failed",
			"method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := c.mapStatus(resp)
		c.logger.Warn(ctx, "api request rejected",
			"method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return reqErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

// mapStatus turns a non-2xx response into a RequestError, classifying the
// statuses the services care about.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	e := &RequestError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Err = ErrUnauthorized
	case http.StatusConflict:
		e.Err = ErrConflict
	case http.StatusNotFound:
		e.Err = ErrNotFound
	}
	return e
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error.Message != "" {
			return body.Error.Message
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

func (c *HTTPClient) Stories(ctx context.Context) ([]*models.Story, error) {
	var out storiesResponse
	if err := c.do(ctx, http.MethodGet, "/stories", "", nil, &out); err != nil {
		// "no stories" is valid, not exceptional
		if errors.Is(err, errMalformedBody) {
			return []*models.Story{}, nil
		}
		return nil, err
	}
	return toStories(out.Stories), nil
}

func (c *HTTPClient) AddStory(ctx context.Context, token string, draft models.StoryDraft) (*models.Story, error) {
	req := addStoryRequest{Story: draftPayload{Title: draft.Title, Author: draft.Author, URL: draft.URL}}

	var out storyResponse
	if err := c.do(ctx, http.MethodPost, "/stories", token, req, &out); err != nil {
		return nil, err
	}
	return out.Story.toModel(), nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token string, storyID string) error {
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), token, nil, nil)
}

func (c *HTTPClient) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	req := signupRequest{User: signupPayload{Username: username, Password: string(password), Name: name}}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", "", req, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(out.Token), nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	req := loginRequest{User: loginPayload{Username: username, Password: string(password)}}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(out.Token), nil
}

func (c *HTTPClient) User(ctx context.Context, token string, username string) (*models.User, error) {
	var out userResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), token, nil, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(token), nil
}

func (c *HTTPClient) favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodPost, c.favoritePath(username, storyID), token, nil, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodDelete, c.favoritePath(username, storyID), token, nil, nil)
}
