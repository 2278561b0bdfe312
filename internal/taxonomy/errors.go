// Package taxonomy maps free-form skill strings to canonical skill identifiers.
package taxonomy

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a raw skill string could not be resolved to a
// canonical identifier. Ambiguous fuzzy matches are reported here too,
// with the competing candidates listed, rather than guessed at.
type NotFoundError struct {
	Raw        string
	Candidates []string
}

func (e *NotFoundError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("skill %q not recognized: ambiguous between %s", e.Raw, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("skill %q not recognized", e.Raw)
}
