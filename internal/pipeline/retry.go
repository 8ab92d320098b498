package pipeline

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/fdemusso/FlashCardIA/internal/genai"
)

// IsRetryable checks if a model error is worth retrying.
func IsRetryable(err error) bool {
	var modelErr *genai.ModelError
	return errors.As(err, &modelErr) && modelErr.Retryable()
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

// MaxRetries bounds model call attempts per chunk: the initial call
// plus this many retries.
const MaxRetries = 1
