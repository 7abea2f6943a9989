package provider

// GenerationRequest is one call to the external text-generation service.
// The response is expected to be a single JSON document.
type GenerationRequest struct {
	// APIKey overrides the configured key when non-empty.
	APIKey string
	// System holds the system instruction parts, in order.
	System []string
	// User is the user turn, usually a serialized JSON payload.
	User        string
	Temperature float32
}
