// Package gaps computes skill gaps against a target role and ranks
// micro-projects and courses that close them.
package gaps

import (
	"sort"

	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/types"
)

// Target proficiency levels by importance
const (
	TargetEssential = 70
	TargetDesirable = 50

	// Essential skills claimed below this proficiency still count as gaps
	lowProficiencyThreshold = 50
)

// Analyze computes the ordered skill gaps of a profile against a role.
// Priority: high for essential-and-absent, medium for essential claimed
// below the proficiency threshold, low for desirable-and-absent. Ordering
// is priority first, then prerequisite centrality (skills that unlock more
// of the role's required skills come first), then skill id — fully
// deterministic for fixed inputs.
//
// A claimed skill with unspecified proficiency (zero) is treated as
// adequate: the candidate said they have it, and there is no evidence
// otherwise.
func Analyze(skills *types.NormalizedSkills, role *types.RoleProfile, store *graph.Store) []types.SkillGap {
	requiredSet := make(map[string]bool, len(role.Skills))
	for _, req := range role.Skills {
		requiredSet[req.ID] = true
	}

	var gaps []types.SkillGap
	for _, req := range role.Skills {
		gap, ok := classify(req, skills)
		if !ok {
			continue
		}
		gap.Centrality = centrality(store, req.ID, requiredSet)
		if node, found := store.Node(req.ID); found {
			gap.Label = node.Label
		}
		gaps = append(gaps, gap)
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if pi, pj := priorityRank(gaps[i].Priority), priorityRank(gaps[j].Priority); pi != pj {
			return pi < pj
		}
		if gaps[i].Centrality != gaps[j].Centrality {
			return gaps[i].Centrality > gaps[j].Centrality
		}
		return gaps[i].SkillID < gaps[j].SkillID
	})
	return gaps
}

func classify(req types.RequiredSkill, skills *types.NormalizedSkills) (types.SkillGap, bool) {
	has := skills.Has(req.ID)
	level := skills.Level(req.ID)

	switch req.Importance {
	case types.ImportanceEssential:
		if !has {
			return types.SkillGap{SkillID: req.ID, Priority: types.PriorityHigh, CurrentLevel: 0, TargetLevel: TargetEssential}, true
		}
		if level > 0 && level < lowProficiencyThreshold {
			return types.SkillGap{SkillID: req.ID, Priority: types.PriorityMedium, CurrentLevel: level, TargetLevel: TargetEssential}, true
		}
	case types.ImportanceDesirable:
		if !has {
			return types.SkillGap{SkillID: req.ID, Priority: types.PriorityLow, CurrentLevel: 0, TargetLevel: TargetDesirable}, true
		}
	}
	return types.SkillGap{}, false
}

func priorityRank(priority string) int {
	switch priority {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// centrality counts how many of the role's other required skills are
// reachable from skillID over prerequisite edges, within the store's hop
// bound. A skill that unlocks more of the role ranks earlier.
func centrality(store *graph.Store, skillID string, requiredSet map[string]bool) int {
	visited := map[string]bool{skillID: true}
	frontier := []string{skillID}
	count := 0

	for hop := 0; hop < store.MaxHops() && len(frontier) > 0; hop++ {
		var next []string
		for _, current := range frontier {
			for _, neighbor := range store.Neighbors(current, graph.RelPrerequisite) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				if requiredSet[neighbor] {
					count++
				}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
	return count
}
