// Package roadmap sequences skill gaps into time-boxed milestones between
// a current and target role.
package roadmap

import (
	"fmt"
	"strings"
)

// CyclicDependencyError indicates a prerequisite cycle among the gap
// skills. Cycles mean bad graph data, not a valid input to guess through,
// so roadmap construction fails rather than silently breaking the cycle.
type CyclicDependencyError struct {
	Skills []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("prerequisite cycle among skills: %s", strings.Join(e.Skills, ", "))
}
