package rest

import (
	"net/http"
	"time"

	"github.com/neolog/site-api/pkg/ctxutil"
)

type whoamiResponse struct {
	OK         bool      `json:"ok"`
	Email      *string   `json:"email"`
	Sub        *string   `json:"sub"`
	CommonName *string   `json:"commonName"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// WhoAmI echoes the verified identity of the caller.
// GET /api/admin/whoami
func WhoAmI(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, whoamiResponse{
		OK:         true,
		Email:      id.Email,
		Sub:        id.Subject,
		CommonName: id.CommonName,
		ExpiresAt:  id.ExpiresAt.UTC(),
	})
}
