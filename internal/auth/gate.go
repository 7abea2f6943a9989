package auth

import (
	"context"
	"strings"

	"github.com/neolog/site-api/internal/domain"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error)
}

// Gate decides whether a verified identity may use privileged endpoints.
// Two policies are combined with "any of": the single owner (by email) and
// an allow-list of service identities (by subject, or common name when the
// subject is absent).
type Gate struct {
	verifier   tokenVerifier
	adminEmail string
	services   map[string]struct{}
}

// NewGate creates a Gate. Blank service names are ignored.
func NewGate(verifier tokenVerifier, adminEmail string, services []string) *Gate {
	allowed := make(map[string]struct{}, len(services))
	for _, s := range services {
		if s = strings.TrimSpace(s); s != "" {
			allowed[s] = struct{}{}
		}
	}
	return &Gate{
		verifier:   verifier,
		adminEmail: strings.TrimSpace(adminEmail),
		services:   allowed,
	}
}

// Authenticate verifies the token without applying any policy.
func (g *Gate) Authenticate(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	return g.verifier.Verify(ctx, token)
}

// Authorize verifies the token and requires a matching policy.
func (g *Gate) Authorize(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	id, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return domain.VerifiedIdentity{}, err
	}
	if !g.Allowed(id) {
		return domain.VerifiedIdentity{}, reject(ReasonForbidden, nil)
	}
	return id, nil
}

// Allowed applies the owner and service policies to a verified identity.
func (g *Gate) Allowed(id domain.VerifiedIdentity) bool {
	if g.isOwner(id) {
		return true
	}
	name := id.ServiceName()
	if name == "" {
		return false
	}
	_, ok := g.services[name]
	return ok
}

func (g *Gate) isOwner(id domain.VerifiedIdentity) bool {
	if g.adminEmail == "" || id.Email == nil {
		return false
	}
	return strings.EqualFold(*id.Email, g.adminEmail)
}
