package ai

import "errors"

// Failure taxonomy of the generation backend. The gateway normalizes every
// backend response into generated text or exactly one of these.
var (
	// ErrMissingAPIKey means the backend credential is not configured. Fatal,
	// never retried.
	ErrMissingAPIKey = errors.New("generative backend API key is not configured")
	// ErrRateLimited means the backend signaled throttling. Retried with
	// backoff up to the attempt budget, then surfaced as terminal.
	ErrRateLimited = errors.New("generative backend rate limited the request")
	// ErrUpstream covers any other non-2xx status or malformed response body.
	ErrUpstream = errors.New("generative backend returned an unexpected response")
	// ErrTimeout means the bounded request window elapsed.
	ErrTimeout = errors.New("generative backend request timed out")
	// ErrGenerationFailed is terminal: both the rich path and the gateway
	// fallback were exhausted. It always wraps the underlying cause.
	ErrGenerationFailed = errors.New("generation failed after fallback")
)
