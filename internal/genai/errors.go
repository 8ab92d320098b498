package genai

import "fmt"

// FailureKind classifies model call failures.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureUnavailable FailureKind = "unavailable"
	FailureRefused     FailureKind = "refused"
)

// ModelError is a typed failure from the text-generation capability.
// The pipeline recovers from these per chunk rather than aborting.
type ModelError struct {
	Kind FailureKind
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt could plausibly succeed.
// Timeouts already consumed their budget and refusals are
// deterministic, so only unavailability qualifies.
func (e *ModelError) Retryable() bool {
	return e.Kind == FailureUnavailable
}
