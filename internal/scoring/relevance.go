package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

// computeRelevance scores the semantic fit between the profile text and the
// role. The embedding path is preferred; when the provider is missing,
// times out, or fails, it degrades to the keyword-overlap heuristic and the
// returned warning records that, so the degradation is never hidden.
// Negative cosine similarity clamps to 0.
func (e *Engine) computeRelevance(ctx context.Context, profile *types.Profile, role *types.RoleProfile) (score float64, explanation, warning string) {
	text := profile.FreeText()

	if e.provider == nil || len(role.Embedding) == 0 {
		return keywordRelevance(text, role, "embedding provider unavailable")
	}

	vec, err := e.provider.Embed(ctx, text)
	if err != nil {
		var timeout *embedding.UpstreamTimeoutError
		if errors.As(err, &timeout) {
			return keywordRelevance(text, role, timeout.Error())
		}
		return keywordRelevance(text, role, fmt.Sprintf("embedding failed: %v", err))
	}

	sim := embedding.Cosine(vec, role.Embedding)
	if sim < 0 {
		sim = 0
	}
	score = round1(sim * 100.0)
	explanation = fmt.Sprintf("Relevance %.1f: cosine similarity %.2f between profile text and the %s role embedding", score, sim, role.Name)
	return score, explanation, ""
}

func keywordRelevance(text string, role *types.RoleProfile, reason string) (float64, string, string) {
	sim := embedding.KeywordSimilarity(text, role.Description)
	score := round1(sim * 100.0)
	explanation := fmt.Sprintf("Relevance %.1f: keyword overlap %.2f between profile text and the %s role description (degraded mode)", score, sim, role.Name)
	warning := "relevance degraded to keyword overlap: " + reason
	return score, explanation, warning
}
