package rest

import (
	"net/http"

	"github.com/neolog/site-api/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Todo    *TodoHandler
	Advisor *AdvisorHandler
	Review  *ReviewHandler
}

// Guards are the access middlewares applied per route. Access only verifies
// the assertion; Admin also applies the owner and service policies.
// ReviewLimit is optional and also covers advisor drafting.
type Guards struct {
	Access      middleware.Middleware
	Admin       middleware.Middleware
	ReviewLimit middleware.Middleware
}

// NewRouter mounts every route on a new ServeMux.
func NewRouter(h Handlers, g Guards) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("GET /api/admin/whoami", g.Access(http.HandlerFunc(WhoAmI)))

	admin := func(f http.HandlerFunc) http.Handler { return g.Admin(f) }

	limited := func(f http.HandlerFunc) http.Handler {
		if g.ReviewLimit == nil {
			return g.Admin(f)
		}
		return g.Admin(g.ReviewLimit(f))
	}

	mux.Handle("POST /api/admin/review", limited(h.Review.Review))

	mux.Handle("GET /api/admin/todos", admin(h.Todo.List))
	mux.Handle("POST /api/admin/todos/confirm", admin(h.Todo.Confirm))
	mux.Handle("PATCH /api/admin/todos/{id}", admin(h.Todo.Update))
	mux.Handle("DELETE /api/admin/todos/{id}", admin(h.Todo.Delete))

	mux.Handle("GET /api/admin/settings", admin(h.Todo.GetSettings))
	mux.Handle("PUT /api/admin/settings", admin(h.Todo.PutSettings))

	mux.Handle("GET /api/admin/advisors", admin(h.Advisor.List))
	mux.Handle("POST /api/admin/advisors", admin(h.Advisor.Create))
	mux.Handle("POST /api/admin/advisors/generate", limited(h.Advisor.Draft))
	mux.Handle("PUT /api/admin/advisors/{id}", admin(h.Advisor.Update))
	mux.Handle("DELETE /api/admin/advisors/{id}", admin(h.Advisor.Delete))

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return mux
}
