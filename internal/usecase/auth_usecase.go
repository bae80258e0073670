// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"noteboard/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username             string `json:"username" validate:"required"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput returns the authenticated user together with the opaque
// session token the delivery layer transports in a cookie.
type SessionOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication and session business
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Signup validates and registers a new user, establishing a session.
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)

	// Login verifies credentials and establishes a fresh session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// CurrentUser resolves a session token to its live user.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)

	// Logout destroys the session behind the token. Absent sessions succeed.
	Logout(ctx context.Context, token string) error
}
