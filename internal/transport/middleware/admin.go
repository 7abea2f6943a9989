package middleware

import "log/slog"

// RequireAdmin admits only the owner or an allow-listed service identity.
// Policy mismatches are indistinguishable from verification failures on the wire.
func RequireAdmin(gate accessGate, header string, logger *slog.Logger) Middleware {
	return guard(gate.Authorize, header, logger)
}
