package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Sub-factor weights for the strength score. They sum to 1.0.
const (
	educationWeight      = 0.20
	experienceWeight     = 0.30
	projectsWeight       = 0.15
	skillsWeight         = 0.25
	certificationsWeight = 0.10
)

// Normalization caps for the strength sub-factors
const (
	maxExperienceYears = 10.0
	maxSkillCount      = 10.0
	maxCertCount       = 3.0
	densityCapWords    = 60.0 // Words per experience description treated as full project evidence
)

// strengthFactors holds the normalized [0,1] sub-factor values
type strengthFactors struct {
	education      float64
	experience     float64
	projects       float64
	skills         float64
	certifications float64

	experienceYears float64
	skillCount      int
	certCount       int
	degree          string
}

// computeStrength returns the strength score (0-100) and its explanation.
func computeStrength(profile *types.Profile, skills *types.NormalizedSkills, now time.Time) (float64, string) {
	factors := strengthFactors{
		education:  educationFactor(profile),
		projects:   projectDensityFactor(profile),
		skillCount: len(skills.Proficiency),
		certCount:  len(profile.Certifications),
		degree:     highestDegree(profile),
	}
	factors.experienceYears = totalExperienceYears(profile, now)
	factors.experience = clamp01(factors.experienceYears / maxExperienceYears)
	factors.skills = clamp01(float64(factors.skillCount) / maxSkillCount)
	factors.certifications = clamp01(float64(factors.certCount) / maxCertCount)

	score := 100.0 * (educationWeight*factors.education +
		experienceWeight*factors.experience +
		projectsWeight*factors.projects +
		skillsWeight*factors.skills +
		certificationsWeight*factors.certifications)
	score = round1(score)

	return score, explainStrength(score, factors)
}

// educationFactor maps the highest claimed degree to [0,1].
func educationFactor(profile *types.Profile) float64 {
	switch highestDegree(profile) {
	case "phd":
		return 1.0
	case "master":
		return 0.85
	case "bachelor":
		return 0.7
	case "other":
		return 0.5
	default:
		return 0.0
	}
}

// highestDegree classifies the best education entry: phd > master > bachelor > other.
func highestDegree(profile *types.Profile) string {
	best := ""
	rank := map[string]int{"phd": 4, "master": 3, "bachelor": 2, "other": 1}
	for _, edu := range profile.Education {
		level := classifyDegree(edu.Degree)
		if rank[level] > rank[best] {
			best = level
		}
	}
	return best
}

func classifyDegree(degree string) string {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd") || strings.Contains(d, "doctor"):
		return "phd"
	case strings.Contains(d, "master") || strings.Contains(d, "msc") || strings.Contains(d, "m.s"):
		return "master"
	case strings.Contains(d, "bachelor") || strings.Contains(d, "bsc") || strings.Contains(d, "b.s") || strings.Contains(d, "ba "):
		return "bachelor"
	case d != "":
		return "other"
	default:
		return ""
	}
}

// totalExperienceYears sums entry durations; open-ended entries run to now.
// Unparseable dates contribute nothing.
func totalExperienceYears(profile *types.Profile, now time.Time) float64 {
	total := 0.0
	for _, exp := range profile.Experience {
		start, err := time.Parse("2006-01", exp.StartDate)
		if err != nil {
			continue
		}
		end := now
		if exp.EndDate != "" {
			if parsed, err := time.Parse("2006-01", exp.EndDate); err == nil {
				end = parsed
			}
		}
		if end.After(start) {
			total += end.Sub(start).Hours() / (24 * 365.25)
		}
	}
	return total
}

// projectDensityFactor treats dense experience descriptions as implied
// project evidence: average description length normalized by a word cap.
func projectDensityFactor(profile *types.Profile) float64 {
	if len(profile.Experience) == 0 {
		return 0.0
	}
	totalWords := 0
	for _, exp := range profile.Experience {
		totalWords += len(strings.Fields(exp.Description))
	}
	avg := float64(totalWords) / float64(len(profile.Experience))
	return clamp01(avg / densityCapWords)
}

// explainStrength names the concrete inputs behind the number, including
// the weakest sub-factor.
func explainStrength(score float64, f strengthFactors) string {
	parts := []string{
		fmt.Sprintf("%.1f yrs experience", f.experienceYears),
		fmt.Sprintf("%d recognized skills", f.skillCount),
	}
	if f.degree != "" {
		parts = append(parts, f.degree+" degree")
	} else {
		parts = append(parts, "no formal education listed")
	}
	if f.certCount > 0 {
		parts = append(parts, fmt.Sprintf("%d certifications", f.certCount))
	}

	weakest := weakestFactor(f)
	return fmt.Sprintf("Strength %.1f: %s; weakest factor: %s", score, strings.Join(parts, ", "), weakest)
}

func weakestFactor(f strengthFactors) string {
	values := map[string]float64{
		"education":      f.education,
		"experience":     f.experience,
		"projects":       f.projects,
		"skills":         f.skills,
		"certifications": f.certifications,
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names) // Stable choice among ties
	weakest := names[0]
	for _, name := range names[1:] {
		if values[name] < values[weakest] {
			weakest = name
		}
	}
	return weakest
}
