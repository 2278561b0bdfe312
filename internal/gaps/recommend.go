package gaps

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// Ranking constants
const (
	DefaultTopNextSteps = 3
	maxRankedProjects   = 5
	maxRankedCourses    = 5

	// Course match blend: skill overlap vs semantic similarity
	courseOverlapWeight  = 0.6
	courseSemanticWeight = 0.4
)

// Ranker ranks micro-projects and courses against a set of skill gaps.
// Stateless per call; safe for concurrent use.
type Ranker struct {
	store     *graph.Store
	tax       *taxonomy.Taxonomy
	predictor Predictor
	topSteps  int
}

// NewRanker creates a Ranker. predictor defaults to HeuristicPredictor,
// topSteps to DefaultTopNextSteps.
func NewRanker(store *graph.Store, tax *taxonomy.Taxonomy, predictor Predictor, topSteps int) *Ranker {
	if predictor == nil {
		predictor = HeuristicPredictor{}
	}
	if topSteps <= 0 {
		topSteps = DefaultTopNextSteps
	}
	return &Ranker{store: store, tax: tax, predictor: predictor, topSteps: topSteps}
}

// Recommend ranks micro-projects and courses that teach the gap skills and
// renders the top gaps as imperative next steps.
func (r *Ranker) Recommend(features Features, gaps []types.SkillGap) *types.Recommendations {
	gapSet := make(map[string]string, len(gaps)) // skill id -> priority
	for _, gap := range gaps {
		gapSet[gap.SkillID] = gap.Priority
	}

	projects := r.rankProjects(features, gapSet)
	courses := r.rankCourses(gapSet)

	return &types.Recommendations{
		MicroProjects: projects,
		Courses:       courses,
		NextSteps:     r.nextSteps(gaps, projects, courses),
	}
}

// rankProjects scores candidate projects by (skill match count) x
// (predicted engagement), breaking ties by shorter estimated time, then id.
func (r *Ranker) rankProjects(features Features, gapSet map[string]string) []types.RankedProject {
	seen := make(map[string]bool)
	var ranked []types.RankedProject

	for _, gapID := range sortedKeys(gapSet) {
		for _, candidateID := range r.store.Incoming(gapID, graph.RelTeaches) {
			node, ok := r.store.Node(candidateID)
			if !ok || node.Type != graph.NodeProject || seen[candidateID] {
				continue
			}
			seen[candidateID] = true

			matched := r.taughtGapSkills(candidateID, gapSet)
			engagement := r.predictor.Predict(Features{
				PriorCompletionRate: features.PriorCompletionRate,
				GapPriority:         bestPriority(matched, gapSet),
			}, node.Attributes.Difficulty)

			ranked = append(ranked, types.RankedProject{
				ProjectID:      candidateID,
				Label:          node.Label,
				Difficulty:     node.Attributes.Difficulty,
				EstimatedHours: node.Attributes.EstimatedHours,
				MatchedSkills:  matched,
				Engagement:     engagement,
				Score:          float64(len(matched)) * engagement,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].EstimatedHours != ranked[j].EstimatedHours {
			return ranked[i].EstimatedHours < ranked[j].EstimatedHours
		}
		return ranked[i].ProjectID < ranked[j].ProjectID
	})
	if len(ranked) > maxRankedProjects {
		ranked = ranked[:maxRankedProjects]
	}
	return ranked
}

// rankCourses scores candidate courses by a weighted blend of gap-skill
// overlap and the semantic similarity between the course description and
// the gap skills' taxonomy descriptions.
func (r *Ranker) rankCourses(gapSet map[string]string) []types.RankedCourse {
	seen := make(map[string]bool)
	var ranked []types.RankedCourse

	for _, gapID := range sortedKeys(gapSet) {
		for _, candidateID := range r.store.Incoming(gapID, graph.RelTeaches) {
			node, ok := r.store.Node(candidateID)
			if !ok || node.Type != graph.NodeCourse || seen[candidateID] {
				continue
			}
			seen[candidateID] = true

			matched := r.taughtGapSkills(candidateID, gapSet)
			overlap := 0.0
			if len(gapSet) > 0 {
				overlap = float64(len(matched)) / float64(len(gapSet))
			}

			semantic := 0.0
			for _, skillID := range matched {
				sim := embedding.KeywordSimilarity(node.Attributes.Description, r.tax.Describe(skillID))
				if sim > semantic {
					semantic = sim
				}
			}

			ranked = append(ranked, types.RankedCourse{
				CourseID:      candidateID,
				Label:         node.Label,
				Provider:      node.Attributes.Provider,
				DurationHours: node.Attributes.DurationHours,
				Level:         node.Attributes.Level,
				MatchedSkills: matched,
				SkillOverlap:  overlap,
				SemanticScore: semantic,
				Score:         courseOverlapWeight*overlap + courseSemanticWeight*semantic,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].DurationHours != ranked[j].DurationHours {
			return ranked[i].DurationHours < ranked[j].DurationHours
		}
		return ranked[i].CourseID < ranked[j].CourseID
	})
	if len(ranked) > maxRankedCourses {
		ranked = ranked[:maxRankedCourses]
	}
	return ranked
}

// nextSteps renders the top gaps as imperative recommendations referencing
// the best-ranked resource that teaches each gap.
func (r *Ranker) nextSteps(gaps []types.SkillGap, projects []types.RankedProject, courses []types.RankedCourse) []string {
	var steps []string
	for _, gap := range gaps {
		if len(steps) >= r.topSteps {
			break
		}
		label := gap.Label
		if label == "" {
			label = r.tax.Label(gap.SkillID)
		}

		if course, ok := topCourseFor(gap.SkillID, courses); ok {
			steps = append(steps, fmt.Sprintf("Close the %s gap (%s priority): take %q%s", label, gap.Priority, course.Label, providerSuffix(course.Provider)))
			continue
		}
		if project, ok := topProjectFor(gap.SkillID, projects); ok {
			steps = append(steps, fmt.Sprintf("Close the %s gap (%s priority): build the %q project", label, gap.Priority, project.Label))
			continue
		}
		steps = append(steps, fmt.Sprintf("Close the %s gap (%s priority) through hands-on practice", label, gap.Priority))
	}
	return steps
}

func providerSuffix(provider string) string {
	if provider == "" {
		return ""
	}
	return " on " + provider
}

func topCourseFor(skillID string, courses []types.RankedCourse) (types.RankedCourse, bool) {
	for _, course := range courses {
		for _, id := range course.MatchedSkills {
			if id == skillID {
				return course, true
			}
		}
	}
	return types.RankedCourse{}, false
}

func topProjectFor(skillID string, projects []types.RankedProject) (types.RankedProject, bool) {
	for _, project := range projects {
		for _, id := range project.MatchedSkills {
			if id == skillID {
				return project, true
			}
		}
	}
	return types.RankedProject{}, false
}

// taughtGapSkills intersects a resource's taught skills with the gap set.
func (r *Ranker) taughtGapSkills(resourceID string, gapSet map[string]string) []string {
	var matched []string
	for _, skillID := range r.store.Neighbors(resourceID, graph.RelTeaches) {
		if _, ok := gapSet[skillID]; ok {
			matched = append(matched, skillID)
		}
	}
	return matched
}

// bestPriority picks the highest priority among the matched gaps
func bestPriority(matched []string, gapSet map[string]string) string {
	best := ""
	bestRank := 3
	for _, id := range matched {
		if rank := priorityRank(gapSet[id]); rank < bestRank {
			bestRank = rank
			best = gapSet[id]
		}
	}
	return best
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
