package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
	Unfavorite(ctx context.Context) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the snoozer CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - list           — list stories
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list stories
//	  - submit         — submit a new story
//	  - delete         — delete one of your stories
//	  - favorite       — mark a story as favorite
//	  - unfavorite     — unmark a favorite
//	  - favorites      — list your favorites
//	  - mine           — list your own stories
//	  - whoami         — show your profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("snoozer %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, submit, delete, favorite, unfavorite, favorites, mine, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, (l)ist, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "favorite":
			_ = a.Favorite(ctx)

		case "unfavorite":
			_ = a.Unfavorite(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
