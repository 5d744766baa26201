// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/faloii/resumerecommend/internal/filtering"
	"github.com/faloii/resumerecommend/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate cuts a line to at most limit runes. Resume and posting text is
// Korean, so byte slicing would split characters.
func truncate(line string, limit int) string {
	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}
	return string(runes[:limit-3]) + "..."
}

// PrintProfile outputs a human-readable summary of the extracted candidate
// profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience:  %d years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Category:    %s\n", profile.JobCategory))
	if role := profile.PrimaryRole(); role != "" {
		sb.WriteString(fmt.Sprintf("Role:        %s\n", role))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for _, skill := range profile.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.Companies) > 0 {
		sb.WriteString("\nCompanies:\n")
		for _, c := range profile.Companies {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", c.Name, c.Tier))
		}
	}

	if profile.Education != nil {
		sb.WriteString(fmt.Sprintf("\nEducation:   %s", profile.Education.Level))
		if profile.Education.School != "" {
			sb.WriteString(fmt.Sprintf(", %s", profile.Education.School))
		}
		if profile.Education.Major != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", profile.Education.Major))
		}
		sb.WriteString("\n")
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuality outputs the resume quality breakdown.
func (p *Printer) PrintQuality(q types.ResumeQuality) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quantified achievements:  %2d / 25\n", q.QuantifiedAchievements))
	sb.WriteString(fmt.Sprintf("Tech stack:               %2d / 20\n", q.TechStack))
	sb.WriteString(fmt.Sprintf("Project detail:           %2d / 20\n", q.ProjectDetail))
	sb.WriteString(fmt.Sprintf("Role clarity:             %2d / 20\n", q.RoleClarity))
	sb.WriteString(fmt.Sprintf("Key strengths:            %2d / 15\n", q.KeyStrengths))
	sb.WriteString(fmt.Sprintf("Total:                    %2d / 100", q.Total()))

	p.printBox("RESUME QUALITY", sb.String())
}

// PrintFilterSteps outputs the per-filter pool statistics.
func (p *Printer) PrintFilterSteps(steps []filtering.Step) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for _, step := range steps {
		if step.Skipped {
			sb.WriteString(fmt.Sprintf("%-18s skipped (would empty the pool)\n", step.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-18s %3d -> %3d (dropped %d)\n",
			step.Name, step.Initial, step.Left, step.Dropped))
	}

	p.printBox("FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the final ranked match list.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, m.Posting.Company, m.Posting.Title))
		sb.WriteString(fmt.Sprintf("   score %d (top %d%%), %s\n", m.Score, m.TopPercent, m.SalaryLabel))
		if m.ExperienceWarning != nil {
			sb.WriteString(fmt.Sprintf("   ! %s\n", m.ExperienceWarning.Message))
		}
		for _, km := range m.KeyMatches {
			sb.WriteString(fmt.Sprintf("   • %s\n", km))
		}
	}

	p.printBox(fmt.Sprintf("TOP %d MATCHES", len(matches)), strings.TrimSuffix(sb.String(), "\n"))
}
