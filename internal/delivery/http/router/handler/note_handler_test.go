package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"noteboard/internal/delivery/http/middleware"
	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	mockUC "noteboard/internal/mocks/usecase"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNoteHandler(t *testing.T) (*NoteHandler, *mockUC.MockNoteUsecase) {
	noteUsecase := mockUC.NewMockNoteUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNoteHandler(noteUsecase, logger), noteUsecase
}

// asOwner marks the context as authenticated, the way the session middleware
// does for real requests.
func asOwner(c echo.Context, ownerID int64) {
	c.Set(middleware.ContextKeyUserID, ownerID)
}

func TestNoteHandler_List_Success(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes?page=2&per_page=5", "")
	asOwner(c, 42)

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	noteUsecase.EXPECT().
		List(mock.Anything, int64(42), mock.MatchedBy(func(input *usecase.ListNotesInput) bool {
			return input.Page == 2 && input.PerPage == 5
		})).
		Return(&usecase.NotePage{
			Notes: []*entity.Note{
				{ID: 7, Title: "groceries", Content: "milk", UserID: 42, CreatedAt: createdAt},
			},
			Total:   6,
			Page:    2,
			PerPage: 5,
			Pages:   2,
		}, nil)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"notes": [
			{"id":7,"title":"groceries","content":"milk","created_at":"2026-08-30T12:00:00Z","user_id":42}
		],
		"total": 6,
		"page": 2,
		"per_page": 5,
		"pages": 2
	}`, rec.Body.String())
}

func TestNoteHandler_List_MalformedPagination(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes?page=abc&per_page=", "")
	asOwner(c, 42)

	// Unparsable values reach the usecase as zero so its defaults apply.
	noteUsecase.EXPECT().
		List(mock.Anything, int64(42), mock.MatchedBy(func(input *usecase.ListNotesInput) bool {
			return input.Page == 0 && input.PerPage == 0
		})).
		Return(&usecase.NotePage{Notes: []*entity.Note{}, Page: 1, PerPage: 10}, nil)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notes":[],"total":0,"page":1,"per_page":10,"pages":0}`, rec.Body.String())
}

func TestNoteHandler_List_Unauthenticated(t *testing.T) {
	handler, _ := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes", "")

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestNoteHandler_Create_Success(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/notes",
		`{"title":"groceries","content":"milk, eggs"}`)
	asOwner(c, 42)

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	noteUsecase.EXPECT().
		Create(mock.Anything, int64(42), mock.MatchedBy(func(input *usecase.CreateNoteInput) bool {
			return input.Title == "groceries" && input.Content == "milk, eggs"
		})).
		Return(&entity.Note{ID: 7, Title: "groceries", Content: "milk, eggs", UserID: 42, CreatedAt: createdAt}, nil)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"groceries","content":"milk, eggs","created_at":"2026-08-30T12:00:00Z","user_id":42}`, rec.Body.String())
}

func TestNoteHandler_Create_MissingFields(t *testing.T) {
	handler, _ := createTestNoteHandler(t)

	// The handler's validator rejects missing fields before the usecase runs.
	c, rec := newJSONContext(t, http.MethodPost, "/notes", `{"title":"groceries"}`)
	asOwner(c, 42)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title and content are required"}`, rec.Body.String())
}

func TestNoteHandler_Create_EmptyBody(t *testing.T) {
	handler, _ := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/notes", "")
	asOwner(c, 42)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title and content are required"}`, rec.Body.String())
}

func TestNoteHandler_Get_Success(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes/7", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	noteUsecase.EXPECT().
		Get(mock.Anything, int64(42), int64(7)).
		Return(&entity.Note{ID: 7, Title: "groceries", Content: "milk", UserID: 42, CreatedAt: createdAt}, nil)

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"groceries","content":"milk","created_at":"2026-08-30T12:00:00Z","user_id":42}`, rec.Body.String())
}

func TestNoteHandler_Get_NotFound(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes/7", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	noteUsecase.EXPECT().
		Get(mock.Anything, int64(42), int64(7)).
		Return(nil, domainerrors.ErrNoteNotFound)

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rec.Body.String())
}

func TestNoteHandler_Get_MalformedID(t *testing.T) {
	handler, _ := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/notes/abc", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Get(c))

	// A non-numeric id is indistinguishable from a nonexistent note.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rec.Body.String())
}

func TestNoteHandler_Update_Success(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodPatch, "/notes/7", `{"title":"new title"}`)
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	noteUsecase.EXPECT().
		Update(mock.Anything, int64(42), int64(7), mock.MatchedBy(func(input *usecase.UpdateNoteInput) bool {
			return input.Title != nil && *input.Title == "new title" && input.Content == nil
		})).
		Return(&entity.Note{ID: 7, Title: "new title", Content: "milk", UserID: 42, CreatedAt: createdAt}, nil)

	require.NoError(t, handler.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"new title","content":"milk","created_at":"2026-08-30T12:00:00Z","user_id":42}`, rec.Body.String())
}

func TestNoteHandler_Update_EmptyBody(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	// An empty PATCH body is a valid update that changes nothing.
	c, rec := newJSONContext(t, http.MethodPatch, "/notes/7", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	noteUsecase.EXPECT().
		Update(mock.Anything, int64(42), int64(7), mock.MatchedBy(func(input *usecase.UpdateNoteInput) bool {
			return input.Title == nil && input.Content == nil
		})).
		Return(&entity.Note{ID: 7, Title: "groceries", Content: "milk", UserID: 42, CreatedAt: createdAt}, nil)

	require.NoError(t, handler.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"groceries","content":"milk","created_at":"2026-08-30T12:00:00Z","user_id":42}`, rec.Body.String())
}

func TestNoteHandler_Update_EmptyField(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodPatch, "/notes/7", `{"title":""}`)
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	noteUsecase.EXPECT().
		Update(mock.Anything, int64(42), int64(7), mock.AnythingOfType("*usecase.UpdateNoteInput")).
		Return(nil, domainerrors.ErrEmptyField.WithMessage("Title cannot be empty"))

	require.NoError(t, handler.Update(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Title cannot be empty"}`, rec.Body.String())
}

func TestNoteHandler_Delete_Success(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodDelete, "/notes/7", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	noteUsecase.EXPECT().Delete(mock.Anything, int64(42), int64(7)).Return(nil)

	require.NoError(t, handler.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNoteHandler_Delete_NotFound(t *testing.T) {
	handler, noteUsecase := createTestNoteHandler(t)

	c, rec := newJSONContext(t, http.MethodDelete, "/notes/7", "")
	asOwner(c, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	noteUsecase.EXPECT().
		Delete(mock.Anything, int64(42), int64(7)).
		Return(domainerrors.ErrNoteNotFound)

	require.NoError(t, handler.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rec.Body.String())
}
