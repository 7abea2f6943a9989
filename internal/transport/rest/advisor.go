package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/service/advisor"
)

//go:generate moq -out advisor_service_mock_test.go -pkg rest . advisorService

type advisorService interface {
	List(ctx context.Context) ([]*domain.Advisor, error)
	Create(ctx context.Context, input advisor.CreateInput) (*domain.Advisor, error)
	Update(ctx context.Context, input advisor.UpdateInput) (*domain.Advisor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Draft(ctx context.Context, input advisor.DraftInput) (*advisor.Draft, error)
}

// AdvisorHandler serves advisor management endpoints.
type AdvisorHandler struct {
	svc advisorService
	log *slog.Logger
}

// NewAdvisorHandler creates an AdvisorHandler.
func NewAdvisorHandler(svc advisorService, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{svc: svc, log: logger.With("handler", "advisor")}
}

type advisorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Enabled      bool      `json:"enabled"`
	TopicPrefs   string    `json:"topicPrefs"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toAdvisorResponse(a *domain.Advisor) advisorResponse {
	return advisorResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Enabled:      a.Enabled,
		TopicPrefs:   a.TopicPrefs,
		Instructions: a.Instructions,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type createAdvisorRequest struct {
	Name         string `json:"name"`
	Enabled      *bool  `json:"enabled"`
	TopicPrefs   string `json:"topicPrefs"`
	Instructions string `json:"instructions"`
}

type draftAdvisorRequest struct {
	GeminiKey string                 `json:"geminiKey"`
	Name      string                 `json:"name"`
	Examples  []advisor.DraftExample `json:"examples"`
}

type updateAdvisorRequest struct {
	Name         *string `json:"name"`
	Enabled      *bool   `json:"enabled"`
	TopicPrefs   *string `json:"topicPrefs"`
	Instructions *string `json:"instructions"`
}

// List returns all advisors, enabled or not.
// GET /api/admin/advisors
func (h *AdvisorHandler) List(w http.ResponseWriter, r *http.Request) {
	advisors, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]advisorResponse, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, toAdvisorResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"advisors": out})
}

// Create adds an advisor. Enabled defaults to true.
// POST /api/admin/advisors
func (h *AdvisorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdvisorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	a, err := h.svc.Create(r.Context(), advisor.CreateInput{
		Name:         req.Name,
		Enabled:      enabled,
		TopicPrefs:   req.TopicPrefs,
		Instructions: req.Instructions,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAdvisorResponse(a))
}

// Update applies a partial update.
// PUT /api/admin/advisors/{id}
func (h *AdvisorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateAdvisorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Update(r.Context(), advisor.UpdateInput{
		ID:           id,
		Name:         req.Name,
		Enabled:      req.Enabled,
		TopicPrefs:   req.TopicPrefs,
		Instructions: req.Instructions,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvisorResponse(a))
}

// Delete removes an advisor.
// DELETE /api/admin/advisors/{id}
func (h *AdvisorHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Draft generates a topic preference and instruction draft for a new
// advisor. Nothing is stored.
// POST /api/admin/advisors/generate
func (h *AdvisorHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req draftAdvisorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Draft(r.Context(), advisor.DraftInput{
		Name:     req.Name,
		APIKey:   req.GeminiKey,
		Examples: req.Examples,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"topicPrefs":   d.TopicPrefs,
		"instructions": d.Instructions,
	})
}
