package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/neolog/site-api/internal/domain"
)

// Reason is the diagnostic cause of a rejected request. It is logged, never
// returned to the client.
type Reason string

const (
	ReasonMissingToken     Reason = "missing_token"
	ReasonInvalidToken     Reason = "invalid_token"
	ReasonInvalidSignature Reason = "invalid_signature"
	ReasonExpired          Reason = "expired"
	ReasonAudience         Reason = "audience_mismatch"
	ReasonForbidden        Reason = "forbidden"
)

// RejectError is returned for every authentication or authorization failure.
type RejectError struct {
	Reason Reason
	Err    error
}

func (e *RejectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return "auth: " + string(e.Reason)
}

// Unwrap exposes both the domain class and the underlying cause.
func (e *RejectError) Unwrap() []error {
	class := domain.ErrUnauthorized
	if e.Reason == ReasonForbidden {
		class = domain.ErrForbidden
	}
	if e.Err == nil {
		return []error{class}
	}
	return []error{class, e.Err}
}

func reject(reason Reason, err error) *RejectError {
	return &RejectError{Reason: reason, Err: err}
}

// ReasonOf extracts the rejection reason from err, or "" if err is not a RejectError.
func ReasonOf(err error) Reason {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ""
}

var (
	errMissingKeyID  = errors.New("token header has no kid")
	errSigningMethod = errors.New("signing method is not RS256")
)

// accessClaims is the payload of an access assertion. Audience accepts a
// string or a list of strings.
type accessClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email,omitempty"`
	CommonName string `json:"common_name,omitempty"`
}

// Verifier validates bearer assertions signed with the provider's RS256 keys.
type Verifier struct {
	keys     KeySource
	audience string
	parser   *jwt.Parser
	now      func() time.Time
}

// NewVerifier creates a Verifier that accepts tokens for audience.
func NewVerifier(keys KeySource, audience string) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: audience,
		// The algorithm is checked in the keyfunc, after the key id, and
		// claims are checked by Verify after the signature.
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
		now:    time.Now,
	}
}

// Verify checks structure, key id, signature, expiry and audience, in that
// order. The identity is built only after every check has passed; on any
// failure the zero identity is returned with a *RejectError.
func (v *Verifier) Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	if token == "" {
		return domain.VerifiedIdentity{}, reject(ReasonMissingToken, nil)
	}

	claims := &accessClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errMissingKeyID
		}
		key, err := v.keys.Get(ctx, kid)
		if err != nil {
			return nil, err
		}
		if t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, errSigningMethod
		}
		return key.Key, nil
	})
	if err != nil {
		return domain.VerifiedIdentity{}, classifyParseError(err)
	}

	now := v.now().UTC().Unix()
	if claims.ExpiresAt == nil || claims.ExpiresAt.Unix() < now {
		return domain.VerifiedIdentity{}, reject(ReasonExpired, jwt.ErrTokenExpired)
	}

	if v.audience == "" || !slices.Contains([]string(claims.Audience), v.audience) {
		return domain.VerifiedIdentity{}, reject(ReasonAudience, jwt.ErrTokenInvalidAudience)
	}

	return domain.VerifiedIdentity{
		Subject:    nonEmpty(claims.Subject),
		Email:      nonEmpty(claims.Email),
		CommonName: nonEmpty(claims.CommonName),
		ExpiresAt:  claims.ExpiresAt.Time.UTC(),
	}, nil
}

func classifyParseError(err error) *RejectError {
	switch {
	case errors.Is(err, errSigningMethod):
		return reject(ReasonInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return reject(ReasonInvalidToken, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		// Keyfunc failures: missing kid, unknown kid, key set fetch errors.
		return reject(ReasonInvalidToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return reject(ReasonInvalidSignature, err)
	default:
		return reject(ReasonInvalidToken, err)
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
