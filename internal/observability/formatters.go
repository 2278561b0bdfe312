// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs the per-category scores, the composite, and any
// degradation warnings.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite: %.1f\n\n", breakdown.Composite))

	names := make([]string, 0, len(breakdown.Categories))
	for name := range breakdown.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cat := breakdown.Categories[name]
		sb.WriteString(fmt.Sprintf("%-14s %5.1f  (weight %.0f)\n", name, cat.Score, cat.Weight))
	}

	if len(breakdown.Warnings) > 0 {
		sb.WriteString("\n")
		for _, warning := range breakdown.Warnings {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
		}
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAudit outputs the fairness audit with per-category statuses.
func (p *Printer) PrintAudit(audit *types.AuditResult) {
	if audit == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.1f\n\n", audit.Overall))

	names := make([]string, 0, len(audit.Categories))
	for name := range audit.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cat := audit.Categories[name]
		marker := "✅"
		switch cat.Status {
		case types.StatusWarning:
			marker = "⚠"
		case types.StatusFail:
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %-14s %5.1f (%s)\n", marker, name, cat.Score, cat.Status))
	}

	if len(audit.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range audit.Recommendations {
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("FAIRNESS AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the prioritized skill gaps.
func (p *Printer) PrintGaps(gaps []types.SkillGap) {
	if len(gaps) == 0 {
		p.printBox("SKILL GAPS", "No skill gaps found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	count := min(len(gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := gaps[i]
		label := gap.Label
		if label == "" {
			label = gap.SkillID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    %s priority, %d → %d", gap.Priority, gap.CurrentLevel, gap.TargetLevel))
		if gap.Centrality > 0 {
			sb.WriteString(fmt.Sprintf(", unlocks %d", gap.Centrality))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(gaps)-maxItemsToShow))
	}

	p.printBox("SKILL GAPS", sb.String())
}

// PrintRecommendations outputs the top recommended projects and courses.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}

	var sb strings.Builder

	if len(recs.MicroProjects) > 0 {
		sb.WriteString("Micro-projects:\n")
		count := min(len(recs.MicroProjects), 3)
		for i := 0; i < count; i++ {
			project := recs.MicroProjects[i]
			sb.WriteString(fmt.Sprintf("  • %s (difficulty %d)\n", project.Label, project.Difficulty))
			if len(project.MatchedSkills) > 0 {
				skills := strings.Join(project.MatchedSkills, ", ")
				if len(skills) > 40 {
					skills = skills[:37] + "..."
				}
				sb.WriteString(fmt.Sprintf("    [%s]\n", skills))
			}
		}
		sb.WriteString("\n")
	}

	if len(recs.Courses) > 0 {
		sb.WriteString("Courses:\n")
		count := min(len(recs.Courses), 3)
		for i := 0; i < count; i++ {
			course := recs.Courses[i]
			sb.WriteString(fmt.Sprintf("  • %s", course.Label))
			if course.Provider != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", course.Provider))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(recs.NextSteps) > 0 {
		sb.WriteString("Next steps:\n")
		for i, step := range recs.NextSteps {
			if len(step) > 48 {
				step = step[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the milestone plan.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil || len(roadmap.Milestones) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: %s (%d months)\n\n", roadmap.TargetRole, roadmap.TotalMonths))

	for i, milestone := range roadmap.Milestones {
		sb.WriteString(fmt.Sprintf("%s\n", milestone.Title))
		count := min(len(milestone.Tasks), 3)
		for j := 0; j < count; j++ {
			task := milestone.Tasks[j]
			if len(task) > 50 {
				task = task[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", task))
		}
		if len(milestone.Tasks) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more tasks\n", len(milestone.Tasks)-3))
		}
		if i < len(roadmap.Milestones)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}
