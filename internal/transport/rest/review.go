package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/service/review"
)

//go:generate moq -out review_service_mock_test.go -pkg rest . reviewService

type reviewService interface {
	Review(ctx context.Context, input review.ReviewInput) (*review.ReviewResult, error)
}

// ReviewHandler runs advisor reviews over a submitted work log.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type reviewRequest struct {
	GeminiKey   string            `json:"geminiKey"`
	Concurrency json.Number       `json:"concurrency"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Entries     []domain.LogEntry `json:"entries"`
	AdvisorIDs  []uuid.UUID       `json:"advisorIds"`
}

type reviewResponse struct {
	Reviews   []domain.Finding `json:"reviews"`
	FinalTodo []string         `json:"finalTodo"`
}

// Review handles POST /api/admin/review.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Review(r.Context(), review.ReviewInput{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Entries:     req.Entries,
		Concurrency: concurrency(req.Concurrency),
		AdvisorIDs:  req.AdvisorIDs,
		APIKey:      req.GeminiKey,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := reviewResponse{Reviews: res.Findings, FinalTodo: res.FinalTodo}
	if resp.Reviews == nil {
		resp.Reviews = []domain.Finding{}
	}
	if resp.FinalTodo == nil {
		resp.FinalTodo = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// concurrency floors a finite number; anything else means "use the default".
func concurrency(n json.Number) *int {
	if n == "" {
		return nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) {
		return nil
	}
	v := int(math.Max(-1e6, math.Min(f, 1e6)))
	return &v
}
