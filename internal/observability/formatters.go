// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yassjustice/resumeBuilder-sub001/internal/layout"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
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

// PrintPlan outputs a human-readable summary of a page plan: how many
// pages, and which sections landed on each.
func (p *Printer) PrintPlan(plan *layout.Plan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages: %d\n", plan.PageCount))

	for page := 1; page <= plan.PageCount; page++ {
		sb.WriteString(fmt.Sprintf("\nPage %d:\n", page))
		seen := map[string]bool{}
		units := 0
		for _, placed := range plan.Placements {
			if placed.Page != page {
				continue
			}
			units += len(placed.UnitIDs)
			if placed.SectionKey != "" && !seen[placed.SectionKey] {
				seen[placed.SectionKey] = true
				sb.WriteString(fmt.Sprintf("  • %s\n", placed.SectionKey))
			}
		}
		sb.WriteString(fmt.Sprintf("  (%d units)\n", units))
	}

	p.printBox("Page Plan", strings.TrimRight(sb.String(), "\n"))
}
