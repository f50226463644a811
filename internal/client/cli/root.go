package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

// bootstrap restores a saved session, if any, and fetches the current story
// collection. A failed resume just leaves the app logged out.
func (a *App) bootstrap(ctx context.Context) {
	user, err := a.authService.Resume(ctx)
	if err != nil {
		log.Printf("session resume error: %s", err.Error())
	}
	if user != nil {
		a.user = user
		log.Printf("Welcome back, %s", user.Username)
	}

	if err := a.refreshStories(ctx); err != nil {
		log.Printf("could not fetch stories: %s", err.Error())
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to snoozer CLI (type 'help' for commands)")

	a.bootstrap(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
