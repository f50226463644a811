package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/client/api"
	"github.com/dmitrijs2005/snoozer/internal/client/cli/colours"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
	"github.com/dmitrijs2005/snoozer/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, password and display name and attempts to
// create a new account via the AuthService. On success the returned user
// becomes the current one and the session is already persisted.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Signup(ctx, username, password, name)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrConflict):
			printlnFn(colours.Error.Sprintf("Username %q is already taken", username))
		case errors.Is(err, services.ErrAuthInProgress):
			printlnFn(colours.Warning.Sprint("Another signup/login is already in progress"))
		case errors.Is(err, api.ErrUnavailable):
			printlnFn(colours.Error.Sprint("Service unavailable, try again later"))
		default:
			printlnFn(colours.Error.Sprintf("Signup failed: %s", err.Error()))
		}
		return err
	}

	a.user = user
	printlnFn(colours.Success.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// returned user becomes the current one and the session is persisted by the
// AuthService.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn(colours.Error.Sprint("Invalid username or password"))
		case errors.Is(err, services.ErrAuthInProgress):
			printlnFn(colours.Warning.Sprint("Another signup/login is already in progress"))
		case errors.Is(err, api.ErrUnavailable):
			printlnFn(colours.Error.Sprint("Service unavailable, try again later"))
		default:
			printlnFn(colours.Error.Sprintf("Login failed: %s", err.Error()))
		}
		return err
	}

	a.user = user
	printlnFn(colours.Success.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// Logout drops the persisted session and forgets the current user. The
// story collection stays as-is; it does not depend on who is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	printlnFn(colours.Info.Sprint("Logged out"))
	return nil
}

// Whoami prints the current user's profile. The login token is deliberately
// never displayed.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(colours.Warning.Sprint("Not logged in"))
		return nil
	}
	printlnFn(colours.Info.Sprintf("Username: %s", a.user.Username))
	printlnFn(colours.Info.Sprintf("Name:     %s", a.user.Name))
	if !a.user.CreatedAt.IsZero() {
		printlnFn(colours.Info.Sprintf("Member since: %s", a.user.CreatedAt.Format("2006-01-02")))
	}
	return nil
}
