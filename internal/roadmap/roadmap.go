// Package roadmap sequences skill gaps into time-boxed milestones between
// a current and target role.
package roadmap

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/types"
)

// defaultWindows is the fixed milestone template, in months
var defaultWindows = []types.TimeWindow{
	{StartMonth: 0, EndMonth: 3},
	{StartMonth: 3, EndMonth: 6},
	{StartMonth: 6, EndMonth: 12},
	{StartMonth: 12, EndMonth: 18},
}

// Build buckets the gaps into sequential milestones. A gap never appears in
// an earlier milestone than any of its graph prerequisites: gaps are
// leveled by Kahn's algorithm over the prerequisite edges restricted to the
// gap set, and a cycle fails the build with CyclicDependencyError. The
// roadmap is never empty; with no gaps it contains a single maintenance
// milestone.
func Build(currentRole, targetRole string, gaps []types.SkillGap, store *graph.Store) (*types.Roadmap, error) {
	if len(gaps) == 0 {
		return &types.Roadmap{
			CurrentRole: currentRole,
			TargetRole:  targetRole,
			Milestones: []types.Milestone{{
				Title:  "Deepen current skills",
				Window: defaultWindows[0],
				Tasks:  []string{fmt.Sprintf("No skill gaps found for %s; take on stretch work and advanced projects", targetRole)},
			}},
			TotalMonths: defaultWindows[0].EndMonth,
		}, nil
	}

	levels, err := levelByPrerequisite(gaps, store)
	if err != nil {
		return nil, err
	}

	// Bucket gaps by level, clamped into the window template
	buckets := make([][]types.SkillGap, len(defaultWindows))
	for _, gap := range gaps {
		idx := levels[gap.SkillID]
		if idx >= len(defaultWindows) {
			idx = len(defaultWindows) - 1
		}
		buckets[idx] = append(buckets[idx], gap)
	}

	roadmap := &types.Roadmap{CurrentRole: currentRole, TargetRole: targetRole}
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		milestone := types.Milestone{
			Title:  fmt.Sprintf("Months %d-%d", defaultWindows[i].StartMonth, defaultWindows[i].EndMonth),
			Window: defaultWindows[i],
		}
		for _, gap := range bucket {
			milestone.SkillIDs = append(milestone.SkillIDs, gap.SkillID)
			milestone.Tasks = append(milestone.Tasks, taskFor(gap))
		}
		roadmap.Milestones = append(roadmap.Milestones, milestone)
		roadmap.TotalMonths = defaultWindows[i].EndMonth
	}
	return roadmap, nil
}

// levelByPrerequisite assigns each gap skill the length of its longest
// prerequisite chain within the gap set (level 0 = no prerequisites among
// the gaps). Returns CyclicDependencyError if the subgraph has a cycle.
func levelByPrerequisite(gaps []types.SkillGap, store *graph.Store) (map[string]int, error) {
	gapSet := make(map[string]bool, len(gaps))
	ids := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		gapSet[gap.SkillID] = true
		ids = append(ids, gap.SkillID)
	}
	sort.Strings(ids)

	// prereq edges within the gap set: from -> to means from must come first
	successors := make(map[string][]string, len(ids))
	indegree := make(map[string]int, len(ids))
	for _, id := range ids {
		indegree[id] = 0
	}
	for _, id := range ids {
		for _, next := range store.Neighbors(id, graph.RelPrerequisite) {
			if gapSet[next] {
				successors[id] = append(successors[id], next)
				indegree[next]++
			}
		}
	}

	levels := make(map[string]int, len(ids))
	var queue []string
	for _, id := range ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range successors[current] {
			if levels[current]+1 > levels[next] {
				levels[next] = levels[current] + 1
			}
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if processed != len(ids) {
		var cyclic []string
		for _, id := range ids {
			if indegree[id] > 0 {
				cyclic = append(cyclic, id)
			}
		}
		return nil, &CyclicDependencyError{Skills: cyclic}
	}
	return levels, nil
}

func taskFor(gap types.SkillGap) string {
	label := gap.Label
	if label == "" {
		label = gap.SkillID
	}
	if gap.CurrentLevel > 0 {
		return fmt.Sprintf("Raise %s from %d to %d proficiency", label, gap.CurrentLevel, gap.TargetLevel)
	}
	return fmt.Sprintf("Learn %s to %d proficiency (%s priority)", label, gap.TargetLevel, gap.Priority)
}
