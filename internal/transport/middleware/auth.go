package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/neolog/site-api/internal/auth"
	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/pkg/ctxutil"
)

//go:generate moq -out access_gate_mock_test.go -pkg middleware . accessGate

type accessGate interface {
	Authenticate(ctx context.Context, token string) (domain.VerifiedIdentity, error)
	Authorize(ctx context.Context, token string) (domain.VerifiedIdentity, error)
}

// unauthorizedBody is the single response for every rejected request.
const unauthorizedBody = `{"error":"unauthorized"}` + "\n"

// RequireAccess admits any request carrying a verified assertion in header.
func RequireAccess(gate accessGate, header string, logger *slog.Logger) Middleware {
	return guard(gate.Authenticate, header, logger)
}

type checkFunc func(ctx context.Context, token string) (domain.VerifiedIdentity, error)

func guard(check checkFunc, header string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(header))
			id, err := check(r.Context(), token)
			if err != nil {
				logger.WarnContext(r.Context(), "access denied",
					slog.String("reason", string(auth.ReasonOf(err))),
					slog.String("error", err.Error()),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentity(r.Context(), id)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}
