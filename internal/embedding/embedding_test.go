package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.25, 0.8}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosine_OppositeVectorsNegative(t *testing.T) {
	sim := Cosine([]float32{1, 1}, []float32{-1, -1})
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosine_MismatchedOrEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{0, 0}))
}

func TestKeywordSimilarity_Overlap(t *testing.T) {
	a := "python pandas machine learning"
	b := "python sql machine learning"

	// Tokens: a={python,pandas,machine,learning}, b={python,sql,machine,learning}
	// Intersection 3, union 5
	assert.InDelta(t, 0.6, KeywordSimilarity(a, b), 1e-9)
}

func TestKeywordSimilarity_NoOverlap(t *testing.T) {
	assert.Equal(t, 0.0, KeywordSimilarity("golang kubernetes", "watercolor painting"))
	assert.Equal(t, 0.0, KeywordSimilarity("", "anything"))
}

func TestKeywordSimilarity_CaseAndPunctuation(t *testing.T) {
	assert.InDelta(t, 1.0, KeywordSimilarity("C++, Python!", "c++ python"), 1e-9)
}

// slowProvider never returns before its context is canceled
type slowProvider struct{}

func (slowProvider) Embed(ctx context.Context, _ string) ([]float32, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestBoundedProvider_TimeoutMapsToUpstreamTimeout(t *testing.T) {
	bounded := NewBounded(slowProvider{}, 10*time.Millisecond)

	_, err := bounded.Embed(context.Background(), "some text")
	var timeoutErr *UpstreamTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, "embed", timeoutErr.Operation)
}

// fixedProvider returns a canned vector
type fixedProvider struct{ vec []float32 }

func (p fixedProvider) Embed(context.Context, string) ([]float32, error) {
	return p.vec, nil
}

func TestBoundedProvider_PassesThrough(t *testing.T) {
	bounded := NewBounded(fixedProvider{vec: []float32{1, 2, 3}}, time.Second)

	vec, err := bounded.Embed(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, vec)
}
