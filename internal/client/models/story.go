// Package models defines the domain types of the snoozer client: stories,
// the story collection, and the authenticated user.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrMalformedURL is returned by HostName when a story's URL cannot be parsed
// into an absolute URL with a host.
var ErrMalformedURL = errors.New("malformed story url")

// Story is a single posted story as known to the remote service.
type Story struct {
	StoryID   string
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// StoryDraft carries the user-provided fields of a story about to be
// submitted. The service assigns the rest.
type StoryDraft struct {
	Title  string
	Author string
	URL    string
}

// HostName extracts the host part of the story URL, for compact display next
// to the title.
func (s *Story) HostName() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	return u.Host, nil
}
