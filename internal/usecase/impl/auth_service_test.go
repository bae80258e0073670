package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/domain/repository"
	"noteboard/internal/domain/service"
	mockRepo "noteboard/internal/mocks/repository"
	mockSvc "noteboard/internal/mocks/service"
	"noteboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	sessions  *mockSvc.MockSessionStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockSvc.NewMockSessionStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Sessions:  sessions,
		Logger:    logger,
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		sessions:  sessions,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username:             "alice",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.sessions.EXPECT().Create(ctx, int64(42)).Return("session-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "session-token", output.Token)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.SignupInput
	}{
		{"nil input", nil},
		{"missing username", &usecase.SignupInput{Password: "secret123", PasswordConfirmation: "secret123"}},
		{"missing password", &usecase.SignupInput{Username: "alice", PasswordConfirmation: "secret123"}},
		{"missing confirmation", &usecase.SignupInput{Username: "alice", Password: "secret123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := fx.service.Signup(ctx, tc.input)

			assert.Nil(t, output)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, "Username, password, and password confirmation are required", appErr.Message())
		})
	}
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username:             "alice",
		Password:             "secret123",
		PasswordConfirmation: "different",
	}

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_Signup_UsernameTooShort(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username:             "ab",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTooShort))
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username:             "alice",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(&entity.User{ID: 7, Username: input.Username}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUsernameTaken)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "alice", Password: "secret123"}

	user := &entity.User{ID: 42, Username: "alice", PasswordHash: "hashed_password"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.sessions.EXPECT().Create(ctx, user.ID).Return("fresh-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "fresh-token", output.Token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "secret123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "alice", Password: "wrong"}

	user := &entity.User{ID: 42, Username: "alice", PasswordHash: "hashed_password"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	// Same error as an unknown username so the response leaks nothing.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice"})

	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "alice"}

	fx.sessions.EXPECT().Resolve(ctx, "session-token").Return(int64(42), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(42)).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.CurrentUser(ctx, "session-token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessions.EXPECT().Resolve(ctx, "bogus").Return(int64(0), service.ErrSessionNotFound)

	got, err := fx.service.CurrentUser(ctx, "bogus")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_CurrentUser_StaleSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessions.EXPECT().Resolve(ctx, "stale-token").Return(int64(42), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(42)).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrUserNotFound)

	// The session for the deleted user must be destroyed.
	fx.sessions.EXPECT().Destroy(ctx, "stale-token").Return(nil)

	got, err := fx.service.CurrentUser(ctx, "stale-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessions.EXPECT().Destroy(ctx, "session-token").Return(nil)

	err := fx.service.Logout(ctx, "session-token")

	assert.NoError(t, err)
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessions.EXPECT().Destroy(ctx, "session-token").Return(errors.New("redis down"))

	err := fx.service.Logout(ctx, "session-token")

	assert.Error(t, err)
}
