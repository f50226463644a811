package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/cli/colours"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// findStory resolves an id against the cached collection first and the
// user's favorites second, so a story that dropped off the front page can
// still be unfavorited.
func (a *App) findStory(id string) *models.Story {
	if s := a.stories.ByID(id); s != nil {
		return s
	}
	if a.user != nil {
		for _, s := range a.user.Favorites {
			if s.StoryID == id {
				return s
			}
		}
	}
	return nil
}

// Favorite prompts for a story id and marks it as a favorite. The user's
// local set is updated by the AuthService only after the server confirms.
func (a *App) Favorite(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}

	id, err := getSimpleText(a.reader, "Story id to favorite", os.Stdout)
	if err != nil {
		return err
	}

	story := a.findStory(id)
	if story == nil {
		printlnFn(colours.Warning.Sprintf("No story with id %q", id))
		return nil
	}

	if err := a.authService.AddFavorite(ctx, a.user, story); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn(colours.Error.Sprint("Session expired, please log in again"))
		} else {
			printlnFn(colours.Error.Sprintf("Could not add favorite: %s", err.Error()))
		}
		return err
	}

	printlnFn(colours.Success.Sprintf("Added %q to favorites", story.Title))
	return nil
}

// Unfavorite prompts for a story id and removes it from the favorites.
func (a *App) Unfavorite(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}

	id, err := getSimpleText(a.reader, "Story id to unfavorite", os.Stdout)
	if err != nil {
		return err
	}

	story := a.findStory(id)
	if story == nil {
		printlnFn(colours.Warning.Sprintf("No story with id %q", id))
		return nil
	}

	if err := a.authService.RemoveFavorite(ctx, a.user, story); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn(colours.Error.Sprint("Session expired, please log in again"))
		} else {
			printlnFn(colours.Error.Sprintf("Could not remove favorite: %s", err.Error()))
		}
		return err
	}

	printlnFn(colours.Success.Sprintf("Removed %q from favorites", story.Title))
	return nil
}

// Favorites prints the current user's favorite stories.
func (a *App) Favorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}
	a.printStories(a.user.Favorites)
	return nil
}
