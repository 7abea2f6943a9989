package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/service/todo"
)

//go:generate moq -out todo_service_mock_test.go -pkg rest . todoService

type todoService interface {
	List(ctx context.Context) ([]*domain.ActionItem, error)
	Confirm(ctx context.Context, input todo.ConfirmInput) (*domain.ActionItem, error)
	Update(ctx context.Context, input todo.UpdateInput) (*domain.ActionItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Limit(ctx context.Context) (int, error)
	SetLimit(ctx context.Context, limit int) error
}

// TodoHandler serves the action item list and its limit setting.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type actionItemResponse struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Done           bool      `json:"done"`
	CompletionNote string    `json:"completionNote"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toActionItemResponse(it *domain.ActionItem) actionItemResponse {
	return actionItemResponse{
		ID:             it.ID.String(),
		Text:           it.Text,
		Done:           it.Done,
		CompletionNote: it.CompletionNote,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

type confirmRequest struct {
	Text      string `json:"text"`
	TodoLimit int    `json:"todoLimit"`
}

type updateTodoRequest struct {
	Text           *string `json:"text"`
	Done           *bool   `json:"done"`
	CompletionNote *string `json:"completionNote"`
}

type settingsBody struct {
	TodoLimit int `json:"todoLimit"`
}

// List returns every item, open first.
// GET /api/admin/todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]actionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toActionItemResponse(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Confirm persists a suggested item.
// POST /api/admin/todos/confirm
func (h *TodoHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.Confirm(r.Context(), todo.ConfirmInput{Text: req.Text, Limit: req.TodoLimit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": toActionItemResponse(item)})
}

// Update applies a partial update.
// PATCH /api/admin/todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.Update(r.Context(), todo.UpdateInput{
		ID:             id,
		Text:           req.Text,
		Done:           req.Done,
		CompletionNote: req.CompletionNote,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": toActionItemResponse(item)})
}

// Delete removes an item. Unknown ids succeed.
// DELETE /api/admin/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetSettings returns the open item limit.
// GET /api/admin/settings
func (h *TodoHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	limit, err := h.svc.Limit(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsBody{TodoLimit: limit})
}

// PutSettings stores a new open item limit.
// PUT /api/admin/settings
func (h *TodoHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsBody
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.SetLimit(r.Context(), req.TodoLimit); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// pathID parses the {id} path segment. A malformed id cannot name an
// existing row, so it is reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return uuid.Nil, false
	}
	return id, true
}
