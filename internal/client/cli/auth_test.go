package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// stubOutput silences printlnFn for the duration of a test.
func stubOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// stubInputs replaces the interactive input helpers. Successive getSimpleText
// calls consume texts in order; getPassword always returns password.
func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Signup
	signupUser string
	signupPass []byte
	signupName string
	signupRet  *models.User
	signupErr  error

	// Login
	loginUser string
	loginPass []byte
	loginRet  *models.User
	loginErr  error

	// Resume
	resumeRet *models.User
	resumeErr error

	// Logout
	logoutCalled bool
	logoutErr    error

	// Favorites
	addFavCalls    int
	removeFavCalls int
	favErr         error
}

func (f *fakeAuth) Signup(_ context.Context, user string, pass []byte, name string) (*models.User, error) {
	f.signupUser, f.signupPass, f.signupName = user, append([]byte(nil), pass...), name
	return f.signupRet, f.signupErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*models.User, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginRet, f.loginErr
}
func (f *fakeAuth) Resume(context.Context) (*models.User, error) {
	return f.resumeRet, f.resumeErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) AddFavorite(_ context.Context, user *models.User, story *models.Story) error {
	f.addFavCalls++
	if f.favErr == nil {
		user.AddFavorite(story)
	}
	return f.favErr
}
func (f *fakeAuth) RemoveFavorite(_ context.Context, user *models.User, story *models.Story) error {
	f.removeFavCalls++
	if f.favErr == nil {
		user.RemoveFavorite(story.StoryID)
	}
	return f.favErr
}
func (f *fakeAuth) Close(context.Context) error { return nil }

func TestSignup_Success(t *testing.T) {
	stubOutput(t)
	f := &fakeAuth{signupRet: &models.User{Username: "alice", Name: "Alice", LoginToken: "tok-1"}}
	a := &App{authService: f, stories: models.NewStoryList(nil)}

	restore := stubInputs(t, []string{"alice", "Alice"}, []byte("secret"))
	defer restore()

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.signupUser != "alice" || f.signupName != "Alice" {
		t.Fatalf("Signup args mismatch: %q %q", f.signupUser, f.signupName)
	}
	if string(f.signupPass) != "secret" {
		t.Fatalf("Signup pass mismatch: %q", string(f.signupPass))
	}
	if a.user == nil || a.user.Username != "alice" {
		t.Fatalf("current user not set: %+v", a.user)
	}
}

func TestLogin_Success(t *testing.T) {
	stubOutput(t)
	f := &fakeAuth{loginRet: &models.User{Username: "alice", LoginToken: "tok-1"}}
	a := &App{authService: f, stories: models.NewStoryList(nil)}

	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" || string(f.loginPass) != "secret" {
		t.Fatalf("Login args mismatch: %q %q", f.loginUser, string(f.loginPass))
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state")
	}
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	stubOutput(t)
	f := &fakeAuth{loginErr: errors.New("bad credentials")}
	a := &App{authService: f, stories: models.NewStoryList(nil)}

	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want login error")
	}
	if a.isLoggedIn() {
		t.Fatalf("must stay logged out after failed login")
	}
}

func TestLogout(t *testing.T) {
	stubOutput(t)
	f := &fakeAuth{}
	a := &App{authService: f, user: &models.User{Username: "alice"}, stories: models.NewStoryList(nil)}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("AuthService.Logout not called")
	}
	if a.user != nil {
		t.Fatalf("user not cleared")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	stubOutput(t)
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a := &App{authService: f, user: &models.User{Username: "alice"}, stories: models.NewStoryList(nil)}

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Logout")
	}
	if a.user == nil {
		t.Fatalf("user must be kept when logout fails")
	}
}

func TestWhoami(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	a := &App{user: &models.User{Username: "alice", Name: "Alice", LoginToken: "tok-secret"}, stories: models.NewStoryList(nil)}
	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}

	for _, line := range lines {
		if strings.Contains(line, "tok-secret") {
			t.Fatalf("token leaked to output: %q", line)
		}
	}
}
