package models

import "time"

// User is the authenticated account, together with the two story sets the
// service tracks for it and the bearer token obtained at login.
type User struct {
	Username   string
	Name       string
	CreatedAt  time.Time
	Favorites  []*Story
	OwnStories []*Story
	LoginToken string
}

// IsFavorite reports whether the story with the given id is in the user's
// favorites.
func (u *User) IsFavorite(id string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == id {
			return true
		}
	}
	return false
}

// AddFavorite puts s into the favorites set. Adding a story that is already
// a favorite is a no-op.
func (u *User) AddFavorite(s *Story) {
	if s == nil || u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, s)
}

// RemoveFavorite drops the story with the given id from the favorites set.
// Removing an absent story is a no-op.
func (u *User) RemoveFavorite(id string) {
	for i, s := range u.Favorites {
		if s.StoryID == id {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return
		}
	}
}

// Owns reports whether the user posted s.
func (u *User) Owns(s *Story) bool {
	return s != nil && s.Username == u.Username
}

// AddOwnStory records s as posted by the user; duplicates by id are ignored.
func (u *User) AddOwnStory(s *Story) {
	if s == nil {
		return
	}
	for _, own := range u.OwnStories {
		if own.StoryID == s.StoryID {
			return
		}
	}
	u.OwnStories = append(u.OwnStories, s)
}

// RemoveOwnStory drops the story with the given id from the user's own
// stories; absent ids are ignored.
func (u *User) RemoveOwnStory(id string) {
	for i, s := range u.OwnStories {
		if s.StoryID == id {
			u.OwnStories = append(u.OwnStories[:i], u.OwnStories[i+1:]...)
			return
		}
	}
}
