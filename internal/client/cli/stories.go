package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/cli/colours"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// refreshStories replaces the cached collection with a fresh fetch.
func (a *App) refreshStories(ctx context.Context) error {
	list, err := a.storyService.FetchAll(ctx)
	if err != nil {
		return err
	}
	a.stories = list
	return nil
}

// formatStory renders one story line: optional favorite marker, title, host
// and author. A story whose URL does not parse falls back to the raw URL.
func (a *App) formatStory(s *models.Story) string {
	star := "  "
	if a.isLoggedIn() && a.user.IsFavorite(s.StoryID) {
		star = "* "
	}

	host, err := s.HostName()
	if err != nil {
		host = s.URL
	}

	return fmt.Sprintf("%s%s %s %s  [%s]",
		star,
		colours.Title.Sprint(s.Title),
		colours.Host.Sprintf("(%s)", host),
		colours.Author.Sprintf("by %s", s.Author),
		s.StoryID,
	)
}

func (a *App) printStories(stories []*models.Story) {
	if len(stories) == 0 {
		printlnFn(colours.Info.Sprint("No stories"))
		return
	}
	for _, s := range stories {
		printlnFn(a.formatStory(s))
	}
}

// List refetches the collection and prints it in server order.
func (a *App) List(ctx context.Context) error {
	if err := a.refreshStories(ctx); err != nil {
		printlnFn(colours.Error.Sprintf("Could not fetch stories: %s", err.Error()))
		return err
	}
	a.printStories(a.stories.Stories)
	return nil
}

// Submit prompts for the story fields, submits the draft, and on success puts
// the server's story at the front of the cached list and into the user's own
// stories.
func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.StoryDraft{Title: title, Author: author, URL: url}

	story, err := a.storyService.Add(ctx, a.user, draft)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn(colours.Error.Sprint("Session expired, please log in again"))
		default:
			printlnFn(colours.Error.Sprintf("Could not submit story: %s", err.Error()))
		}
		return err
	}

	a.stories.Prepend(story)
	a.user.AddOwnStory(story)
	printlnFn(colours.Success.Sprintf("Story submitted: %s", story.StoryID))
	return nil
}

// Delete prompts for a story id and deletes the story if the current user
// owns it. Local state is only touched after the service confirms.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}

	id, err := getSimpleText(a.reader, "Story id to delete", os.Stdout)
	if err != nil {
		return err
	}

	story := a.stories.ByID(id)
	if story == nil {
		printlnFn(colours.Warning.Sprintf("No story with id %q", id))
		return nil
	}
	if !a.user.Owns(story) {
		printlnFn(colours.Warning.Sprint("You can only delete your own stories"))
		return nil
	}

	if err := a.storyService.Delete(ctx, a.user, id); err != nil {
		printlnFn(colours.Error.Sprintf("Could not delete story: %s", err.Error()))
		return err
	}

	a.stories.RemoveByID(id)
	a.user.RemoveOwnStory(id)
	a.user.RemoveFavorite(id)
	printlnFn(colours.Success.Sprint("Story deleted"))
	return nil
}

// Mine prints the current user's own stories.
func (a *App) Mine(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}
	a.printStories(a.user.OwnStories)
	return nil
}
