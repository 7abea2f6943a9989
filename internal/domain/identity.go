package domain

import "time"

// VerifiedIdentity is the claim set of a bearer assertion that passed every
// verification step. It is produced per request and never stored.
type VerifiedIdentity struct {
	Subject    *string
	Email      *string
	CommonName *string
	ExpiresAt  time.Time
}

// ServiceName returns the subject, or the common name when the subject is absent.
func (v VerifiedIdentity) ServiceName() string {
	if v.Subject != nil && *v.Subject != "" {
		return *v.Subject
	}
	if v.CommonName != nil {
		return *v.CommonName
	}
	return ""
}
