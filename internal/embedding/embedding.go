// Package embedding abstracts the external embedding provider and its
// deterministic degradation paths.
package embedding

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
)

// DefaultTimeout bounds a single embedding call
const DefaultTimeout = 5 * time.Second

// Provider produces a fixed-length numeric vector for a piece of text.
// Implementations are treated as opaque external services.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// BoundedProvider wraps a Provider with a per-call timeout, converting
// deadline overruns into UpstreamTimeoutError.
type BoundedProvider struct {
	inner   Provider
	timeout time.Duration
}

// NewBounded wraps a provider with a timeout; d <= 0 selects DefaultTimeout.
func NewBounded(inner Provider, d time.Duration) *BoundedProvider {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &BoundedProvider{inner: inner, timeout: d}
}

// Embed calls the wrapped provider under a deadline.
func (b *BoundedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	vec, err := b.inner.Embed(ctx, text)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UpstreamTimeoutError{Operation: "embed", Timeout: b.timeout}
		}
		return nil, err
	}
	return vec, nil
}

// Cosine returns the cosine similarity of two vectors, or 0 when either is
// empty, zero, or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9#+]+`)

// Tokenize lowercases text and splits it into comparable tokens.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range tokenSplit.Split(strings.ToLower(text), -1) {
		if len(tok) > 1 {
			tokens[tok] = true
		}
	}
	return tokens
}

// KeywordSimilarity is the degraded replacement for embedding cosine
// similarity: Jaccard overlap of the token sets of the two texts, in [0,1].
// Deterministic and dependency-free, used when the provider is unavailable
// or times out.
func KeywordSimilarity(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range tokensA {
		if tokensB[tok] {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	return float64(intersection) / float64(union)
}
