package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/neolog/site-api/internal/config"
)

// defaultMethods covers every verb the admin API routes.
const defaultMethods = "GET,PUT,POST,PATCH,DELETE,OPTIONS"

// CORS answers preflights and echoes allowed origins. The identity header
// carrying the access assertion is always allowed, whatever the configured
// header list says, so browser clients can reach the admin endpoints.
func CORS(cfg config.CORSConfig, accessHeader string) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	methods := cfg.AllowedMethods
	if strings.TrimSpace(methods) == "" {
		methods = defaultMethods
	}
	headers := allowHeaders(cfg.AllowedHeaders, accessHeader)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && isAllowedOrigin(origin, origins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowHeaders(configured, accessHeader string) string {
	list := splitList(configured)
	if accessHeader != "" {
		found := false
		for _, h := range list {
			if strings.EqualFold(h, accessHeader) {
				found = true
				break
			}
		}
		if !found {
			list = append(list, accessHeader)
		}
	}
	return strings.Join(list, ",")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
