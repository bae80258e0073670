package service

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a token does not map to a live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore binds an opaque client-presented token to a server-held user
// identity. A session exists from a successful signup/login until logout or
// expiry.
type SessionStore interface {
	// Create stores a new session for the user and returns its opaque token.
	Create(ctx context.Context, userID int64) (string, error)

	// Resolve returns the user ID bound to the token, or ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (int64, error)

	// Destroy removes the session. Destroying an absent session is not an error.
	Destroy(ctx context.Context, token string) error
}
