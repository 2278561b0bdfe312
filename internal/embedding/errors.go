// Package embedding abstracts the external embedding provider and its
// deterministic degradation paths.
package embedding

import (
	"fmt"
	"time"
)

// UpstreamTimeoutError indicates the embedding call exceeded its bound.
// Callers degrade to the keyword-overlap heuristic instead of blocking.
type UpstreamTimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("embedding %s timed out after %s", e.Operation, e.Timeout)
}
