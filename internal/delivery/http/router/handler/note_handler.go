package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"noteboard/internal/delivery/http/middleware"
	"noteboard/internal/delivery/http/response"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoteHandler holds dependencies for the owner-scoped note handlers.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the caller's notes.
func (h *NoteHandler) List(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	input := &usecase.ListNotesInput{
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}

	page, err := h.uc.List(c.Request().Context(), ownerID, input)
	if err != nil {
		return h.renderNoteError(c, err)
	}

	return response.JSON(c, http.StatusOK, response.NewNotePageResponse(page))
}

// Create persists a new note owned by the caller.
func (h *NoteHandler) Create(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var input usecase.CreateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Title and content are required")
	}

	note, err := h.uc.Create(c.Request().Context(), ownerID, &input)
	if err != nil {
		return h.renderNoteError(c, err)
	}

	return response.JSON(c, http.StatusCreated, response.NewNoteResponse(note))
}

// Get returns a single note owned by the caller.
func (h *NoteHandler) Get(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return response.Error(c, http.StatusNotFound, "Note not found")
	}

	note, err := h.uc.Get(c.Request().Context(), ownerID, noteID)
	if err != nil {
		return h.renderNoteError(c, err)
	}

	return response.JSON(c, http.StatusOK, response.NewNoteResponse(note))
}

// Update applies a partial title/content update to the caller's note.
func (h *NoteHandler) Update(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return response.Error(c, http.StatusNotFound, "Note not found")
	}

	// An empty PATCH body binds to a zero struct: a valid update that
	// touches no fields.
	var input usecase.UpdateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid note input")
	}

	note, err := h.uc.Update(c.Request().Context(), ownerID, noteID, &input)
	if err != nil {
		return h.renderNoteError(c, err)
	}

	return response.JSON(c, http.StatusOK, response.NewNoteResponse(note))
}

// Delete removes the caller's note.
func (h *NoteHandler) Delete(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return response.Error(c, http.StatusNotFound, "Note not found")
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, noteID); err != nil {
		return h.renderNoteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// renderNoteError maps usecase errors to the note-endpoint failure shape.
func (h *NoteHandler) renderNoteError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.Message())
	}

	h.logger.Error("Note request failed", slog.Any("error", err))

	return response.Error(c, http.StatusInternalServerError, "Internal server error")
}

func currentUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.ContextKeyUserID).(int64)

	return id, ok
}

// noteIDParam parses the :id path segment. A non-numeric id is treated like a
// nonexistent note.
func noteIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid note id")
	}

	return id, nil
}

// queryInt parses an integer query parameter; absent or malformed values
// return zero so the usecase applies its defaults.
func queryInt(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
