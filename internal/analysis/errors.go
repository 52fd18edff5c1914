package analysis

import "fmt"

// APICallError represents a failure talking to the analysis model.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// RateLimitExhaustedError signals that the model kept rate-limiting past the
// allowed retry budget; the run stops rather than hammering the service.
type RateLimitExhaustedError struct {
	Attempts int
}

func (e *RateLimitExhaustedError) Error() string {
	return fmt.Sprintf("rate limited %d times, giving up", e.Attempts)
}
