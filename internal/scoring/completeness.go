package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// computeCompleteness measures essential-skill coverage. An empty essential
// set is vacuously complete (100) by policy, not an error. Unrecognized
// profile skills never abort the call; they are excluded from the numerator
// and named in the explanation.
func computeCompleteness(skills *types.NormalizedSkills, role *types.RoleProfile) (float64, string) {
	essential := role.EssentialSkills()
	if len(essential) == 0 {
		return 100.0, fmt.Sprintf("Completeness 100.0: the %s role defines no essential skills", role.Name)
	}

	present := 0
	var missing []string
	for _, id := range essential {
		if skills.Has(id) {
			present++
		} else {
			missing = append(missing, id)
		}
	}

	score := round1(float64(present) / float64(len(essential)) * 100.0)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Completeness %.1f: %d of %d essential skills present", score, present, len(essential))
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "; missing: %s", strings.Join(missing, ", "))
	}
	if len(skills.Unrecognized) > 0 {
		fmt.Fprintf(&sb, "; unrecognized: %s", strings.Join(skills.Unrecognized, ", "))
	}
	return score, sb.String()
}
