// Package session persists the login session between runs in a small sqlite
// database treated as a plain key-value store. Exactly two keys exist: the
// login token and the username. They are written together and cleared
// together; a partial pair must be read as "no session".
package session

import "context"

const (
	KeyToken    = "token"
	KeyUsername = "username"
)

type Repository interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
