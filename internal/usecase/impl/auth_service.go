// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"noteboard/config"
	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/domain/repository"
	"noteboard/internal/domain/service"
	"noteboard/internal/errors"
	"noteboard/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	sessions          service.SessionStore
	minUsernameLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Sessions  service.SessionStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minUsernameLength := 3
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinUsernameLength > 0 {
		minUsernameLength = params.Config.Auth.MinUsernameLength
	}

	return &authService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		sessions:          params.Sessions,
		minUsernameLength: minUsernameLength,
		logger:            params.Logger,
	}
}

// Signup orchestrates the complete registration flow: validation, hashing,
// persistence and session establishment.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" || input.PasswordConfirmation == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Username, password, and password confirmation are required")
	}
	if input.Password != input.PasswordConfirmation {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if len(input.Username) < srv.minUsernameLength {
		return nil, domainerrors.ErrUsernameTooShort
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return domainerrors.ErrUsernameTaken
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		// The unique index backstops the check above under concurrency; the
		// repository maps that violation to the same conflict error.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.sessions.Create(ctx, newUser.ID)
	if err != nil {
		srv.logger.Error("Failed to create session after signup", slog.Int64("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session after signup")
	}

	srv.logger.Info("User signed up", slog.Int64("userID", newUser.ID))

	return &usecase.SessionOutput{User: newUser, Token: token}, nil
}

// Login verifies credentials and rotates the session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Username and password are required")
	}

	user, err := srv.loadUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		srv.logger.Error("Failed to create session during login", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session during login")
	}

	srv.logger.Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.SessionOutput{User: user, Token: token}, nil
}

// CurrentUser resolves a session token to its user. A token whose user has
// been removed behaves exactly like a missing session.
func (srv *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByID(ctx, userID)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Stale session for a deleted user: drop it.
			if destroyErr := srv.sessions.Destroy(ctx, token); destroyErr != nil {
				srv.logger.Warn("Failed to destroy stale session", slog.Any("error", destroyErr))
			}

			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

// Logout destroys the session unconditionally.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.sessions.Destroy(ctx, token); err != nil {
		srv.logger.Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

func (srv *authService) loadUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User

	// Read from the primary in a short transaction.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByUsername(ctx, username)

		return findErr
	}); err != nil {
		return nil, err
	}

	return user, nil
}
