// Package response renders the flat JSON bodies of the public API.
package response

import (
	"net/http"
	"time"

	"noteboard/internal/domain/entity"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserResponse is the public projection of a user. The password hash is not
// representable here.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// NoteResponse is the public projection of a note.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

// NotePageResponse is the paginated notes listing.
type NotePageResponse struct {
	Notes   []NoteResponse `json:"notes"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Pages   int            `json:"pages"`
}

// NewUserResponse maps a user entity to its public projection.
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// NewNoteResponse maps a note entity to its public projection.
func NewNoteResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UserID:    note.UserID,
	}
}

// NewNotePageResponse maps a usecase page to the listing body. The notes slice
// is always present, even when empty.
func NewNotePageResponse(page *usecase.NotePage) NotePageResponse {
	notes := make([]NoteResponse, 0, len(page.Notes))
	for _, note := range page.Notes {
		notes = append(notes, NewNoteResponse(note))
	}

	return NotePageResponse{
		Notes:   notes,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   page.Pages,
	}
}

// JSON writes any body with the given status.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// ErrorList writes the auth-endpoint failure shape: {"errors": ["..."]}.
func ErrorList(c echo.Context, statusCode int, messages ...string) error {
	if len(messages) == 0 {
		messages = []string{http.StatusText(statusCode)}
	}

	return c.JSON(statusCode, map[string][]string{"errors": messages})
}

// Error writes the note-endpoint failure shape: {"error": "..."}.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}

// Empty writes an empty JSON object. check_session uses this for its 401.
func Empty(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, map[string]string{})
}
