package fairness

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	birthYearPattern   = regexp.MustCompile(`\bborn\s+(in\s+)?(19|20)\d{2}\b`)
	explicitAgePattern = regexp.MustCompile(`\b\d{1,2}\s+years\s+old\b|\bage:?\s*\d{1,2}\b`)
)

// detectGender flags gendered pronouns and terms in the free text.
// Score = 100 - penalty per distinct hit, floored at 0.
func (e *Engine) detectGender(profile *types.Profile) types.CategoryAudit {
	tokens := embedding.Tokenize(profile.FreeText())

	var flags []string
	for _, term := range genderedTerms {
		if tokens[term] {
			flags = append(flags, term)
		}
	}

	score := floor0(100.0 - e.cfg.GenderPenalty*float64(len(flags)))
	details := "no gendered language found"
	if len(flags) > 0 {
		details = fmt.Sprintf("gendered terms found: %s", strings.Join(flags, ", "))
	}
	return audit(score, details, flags)
}

// detectAge flags explicit birth year or age statements and graduation
// years older than the configured lookback window.
func (e *Engine) detectAge(profile *types.Profile) types.CategoryAudit {
	text := strings.ToLower(profile.FreeText())

	var flags []string
	if m := birthYearPattern.FindString(text); m != "" {
		flags = append(flags, "explicit birth year ("+m+")")
	}
	if m := explicitAgePattern.FindString(text); m != "" {
		flags = append(flags, "explicit age ("+m+")")
	}

	cutoff := e.now().Year() - e.cfg.GradLookbackYears
	for _, edu := range profile.Education {
		if edu.Year > 0 && edu.Year < cutoff {
			flags = append(flags, fmt.Sprintf("graduation year %d predates the %d-year lookback", edu.Year, e.cfg.GradLookbackYears))
		}
	}

	score := floor0(100.0 - e.cfg.AgePenalty*float64(len(flags)))
	details := "no age signals found"
	if len(flags) > 0 {
		details = fmt.Sprintf("age signals found: %s", strings.Join(flags, "; "))
	}
	return audit(score, details, flags)
}

// detectCultural flags non-inclusive idioms against the maintained list.
func (e *Engine) detectCultural(profile *types.Profile) types.CategoryAudit {
	text := strings.ToLower(profile.FreeText())

	var flags []string
	for _, idiom := range culturalIdioms {
		if strings.Contains(text, idiom) {
			flags = append(flags, idiom)
		}
	}

	score := floor0(100.0 - e.cfg.CulturalPenalty*float64(len(flags)))
	details := "no non-inclusive idioms found"
	if len(flags) > 0 {
		details = fmt.Sprintf("non-inclusive idioms found: %s", strings.Join(flags, ", "))
	}
	return audit(score, details, flags)
}

// detectSocioeconomic compares prestige signals against substance signals
// (recognized skills, certifications). The score falls with the share of
// prestige signals in the total, a ratio-based heuristic rather than a
// learned model.
func (e *Engine) detectSocioeconomic(profile *types.Profile) types.CategoryAudit {
	text := strings.ToLower(profile.FreeText())

	var flags []string
	prestige := 0
	for _, term := range prestigeTerms {
		if count := strings.Count(text, term); count > 0 {
			prestige += count
			flags = append(flags, term)
		}
	}

	if prestige == 0 {
		return audit(100.0, "no prestige-over-substance signals found", nil)
	}

	substance := len(profile.Skills) + len(profile.Certifications)
	ratio := float64(prestige) / float64(prestige+substance)
	score := floor0(round1(100.0 * (1.0 - ratio)))
	details := fmt.Sprintf("%d prestige signals (%s) against %d skill/achievement signals",
		prestige, strings.Join(flags, ", "), substance)
	return audit(score, details, flags)
}

func audit(score float64, details string, flags []string) types.CategoryAudit {
	return types.CategoryAudit{
		Score:   score,
		Status:  statusFor(score),
		Details: details,
		Flags:   flags,
	}
}

// statusFor applies the fixed policy thresholds.
func statusFor(score float64) string {
	switch {
	case score < ThresholdFail:
		return types.StatusFail
	case score < ThresholdPass:
		return types.StatusWarning
	default:
		return types.StatusPass
	}
}

func floor0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
