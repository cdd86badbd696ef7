// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintJDIntelligence outputs a human-readable summary of the extracted
// job description.
func (p *Printer) PrintJDIntelligence(jd *types.JDIntelligence) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s\n", jd.Role))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", jd.Seniority))
	sb.WriteString("\n")

	writeList(&sb, "Hard Skills", jd.HardSkills, maxItemsToShow)
	writeList(&sb, "Soft Skills", jd.SoftSkills, 3)
	writeList(&sb, "Tools", jd.Tools, 3)
	writeList(&sb, "Primary Keywords", jd.Keywords.Primary, maxItemsToShow)

	p.printBox("JOB DESCRIPTION INTELLIGENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the critical and optional gaps found between a
// resume and a job description.
func (p *Printer) PrintGapReport(gaps *types.GapReport) {
	if gaps == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Missing requirements: %d\n", gaps.MissingCount))
	sb.WriteString("\n")

	writeList(&sb, "Critical Gaps", gaps.Critical, maxItemsToShow)
	writeList(&sb, "Optional Gaps", gaps.Optional, 3)
	writeList(&sb, "Matched Skills", gaps.MatchedSkills, maxItemsToShow)

	if len(gaps.WeakBullets) > 0 {
		sb.WriteString("Weak Bullets:\n")
		count := min(len(gaps.WeakBullets), 3)
		for i := 0; i < count; i++ {
			wb := gaps.WeakBullets[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", wb.Text))
			sb.WriteString(fmt.Sprintf("    issues: %s\n", strings.Join(wb.Issues, ", ")))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the ATS score breakdown.
func (p *Printer) PrintScoreReport(score *types.ScoreReport) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score:  %d/100\n", score.Score))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keywords:     %d\n", score.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Sections:     %d\n", score.Breakdown.Sections))
	sb.WriteString(fmt.Sprintf("Format:       %d\n", score.Breakdown.Format))
	sb.WriteString(fmt.Sprintf("Quality:      %d\n", score.Breakdown.Quality))
	sb.WriteString("\n")

	writeList(&sb, "Improvements", score.Improvements, maxItemsToShow)
	writeList(&sb, "Remaining Gaps", score.RemainingGaps, 3)

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
