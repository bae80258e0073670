package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"noteboard/config"
	"noteboard/internal/delivery/http/validator"
	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	mockUC "noteboard/internal/mocks/usecase"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "session_token"

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUsecase := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: testCookieName,
			TTL:        24 * time.Hour,
		},
	}

	return NewAuthHandler(authUsecase, logger, cfg), authUsecase
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"username":"alice","password":"secret123","password_confirmation":"secret123"}`)

	authUsecase.EXPECT().
		Signup(mock.Anything, mock.MatchedBy(func(input *usecase.SignupInput) bool {
			return input.Username == "alice" &&
				input.Password == "secret123" &&
				input.PasswordConfirmation == "secret123"
		})).
		Return(&usecase.SessionOutput{
			User:  &entity.User{ID: 42, Username: "alice", PasswordHash: "hashed"},
			Token: "fresh-token",
		}, nil)

	require.NoError(t, handler.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":42,"username":"alice"}`, rec.Body.String())

	cookie := sessionCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Signup_ValidationError(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	// Missing fields are rejected by the handler's validator; the usecase is
	// never reached.
	c, rec := newJSONContext(t, http.MethodPost, "/signup", `{"username":"alice"}`)

	require.NoError(t, handler.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Username, password, and password confirmation are required"]}`, rec.Body.String())
	assert.Nil(t, sessionCookie(rec, testCookieName))
}

func TestAuthHandler_Signup_EmptyBody(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/signup", "")

	require.NoError(t, handler.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Username, password, and password confirmation are required"]}`, rec.Body.String())
}

func TestAuthHandler_Login_EmptyBody(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/login", "")

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Username and password are required"]}`, rec.Body.String())
}

func TestAuthHandler_Signup_UsernameTaken(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"username":"alice","password":"secret123","password_confirmation":"secret123"}`)

	authUsecase.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrUsernameTaken)

	require.NoError(t, handler.Signup(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Username already exists"]}`, rec.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/login",
		`{"username":"alice","password":"secret123"}`)

	authUsecase.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Username == "alice" && input.Password == "secret123"
		})).
		Return(&usecase.SessionOutput{
			User:  &entity.User{ID: 42, Username: "alice"},
			Token: "rotated-token",
		}, nil)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42,"username":"alice"}`, rec.Body.String())

	cookie := sessionCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "rotated-token", cookie.Value)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/login",
		`{"username":"alice","password":"wrong"}`)

	authUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"errors":["Invalid username or password"]}`, rec.Body.String())
}

func TestAuthHandler_CheckSession_Success(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/check_session", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "valid-token"})

	authUsecase.EXPECT().
		CurrentUser(mock.Anything, "valid-token").
		Return(&entity.User{ID: 42, Username: "alice"}, nil)

	require.NoError(t, handler.CheckSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42,"username":"alice"}`, rec.Body.String())
}

func TestAuthHandler_CheckSession_NoCookie(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/check_session", "")

	require.NoError(t, handler.CheckSession(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestAuthHandler_CheckSession_InvalidToken(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/check_session", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "bogus"})

	authUsecase.EXPECT().
		CurrentUser(mock.Anything, "bogus").
		Return(nil, domainerrors.ErrUnauthorized)

	require.NoError(t, handler.CheckSession(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestAuthHandler_Logout_WithSession(t *testing.T) {
	handler, authUsecase := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodDelete, "/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "valid-token"})

	authUsecase.EXPECT().Logout(mock.Anything, "valid-token").Return(nil)

	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := sessionCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	handler, _ := createTestAuthHandler(t)

	c, rec := newJSONContext(t, http.MethodDelete, "/logout", "")

	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
