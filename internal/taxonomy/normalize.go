package taxonomy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Normalize resolves a raw skill string to a canonical skill id.
// Matching order: exact case-insensitive match against canonical ids and
// labels, then the alias table, then fuzzy edit-distance matching above the
// configured threshold. Ambiguous fuzzy matches (a second candidate within
// the ambiguity margin of the top score) return a NotFoundError so callers
// can surface the skill as unrecognized instead of silently guessing.
//
// Normalize is a pure function over the static taxonomy and is idempotent:
// a canonical id always normalizes to itself.
func (t *Taxonomy) Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &NotFoundError{Raw: raw}
	}
	lower := strings.ToLower(trimmed)

	// 1. Exact match against canonical ids and labels
	if id, ok := t.byName[lower]; ok {
		return id, nil
	}

	// 2. Known-alias lookup
	if id, ok := t.aliases[lower]; ok {
		return id, nil
	}

	// 3. Fuzzy match against every known surface form
	return t.fuzzyMatch(trimmed, lower)
}

// fuzzyCandidate pairs a canonical id with its similarity to the input
type fuzzyCandidate struct {
	id         string
	similarity float64
}

func (t *Taxonomy) fuzzyMatch(raw, lower string) (string, error) {
	best := make(map[string]float64) // canonical id -> best similarity across its surface forms

	consider := func(surface, id string) {
		sim := editSimilarity(lower, surface)
		if sim > best[id] {
			best[id] = sim
		}
	}
	for surface, id := range t.byName {
		consider(surface, id)
	}
	for surface, id := range t.aliases {
		consider(surface, id)
	}

	candidates := make([]fuzzyCandidate, 0, len(best))
	for id, sim := range best {
		if sim >= t.opts.FuzzyThreshold {
			candidates = append(candidates, fuzzyCandidate{id: id, similarity: sim})
		}
	}
	if len(candidates) == 0 {
		return "", &NotFoundError{Raw: raw}
	}

	// Highest similarity first; id ascending for deterministic ordering
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].id < candidates[j].id
	})

	if len(candidates) > 1 && candidates[0].similarity-candidates[1].similarity <= t.opts.AmbiguityMargin {
		ambiguous := []string{candidates[0].id, candidates[1].id}
		return "", &NotFoundError{Raw: raw, Candidates: ambiguous}
	}

	return candidates[0].id, nil
}

// editSimilarity returns normalized edit similarity in [0,1]:
// 1 - distance/maxLen, so identical strings score 1.0.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
