// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/application-verifier/internal/posting"
	"github.com/jonathan/application-verifier/internal/types"
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

// PrintResult outputs the verdict, quality score, severity counts, and the
// first issues of a verification result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(result *types.VerificationResult) {
	if result == nil {
		return
	}

	if len(result.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ %s (score %d/100)", result.Status, result.QualityScore))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Report:   %s\n", result.ReportID))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", result.Status))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.QualityScore))
	sb.WriteString(fmt.Sprintf("Issues:   %d high, %d medium, %d low\n",
		result.HighCount, result.MediumCount, result.LowCount))
	sb.WriteString("\n")

	count := min(len(result.Issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := result.Issues[i]
		message := issue.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", issue.Severity, issue.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(result.Issues)-maxItemsToShow))
	}

	p.printBox("VERIFICATION RESULT", sb.String())
}

// PrintSourceMap outputs the per-claim mapping status with match scores.
func (p *Printer) PrintSourceMap(sourceMap []types.MappedClaim) {
	if len(sourceMap) == 0 {
		return
	}

	matched := 0
	for _, mapped := range sourceMap {
		if mapped.Status == types.StatusMatched || mapped.Status == types.StatusStructural {
			matched++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Claims mapped: %d/%d\n\n", matched, len(sourceMap)))

	count := min(len(sourceMap), maxItemsToShow)
	for i := 0; i < count; i++ {
		mapped := sourceMap[i]
		text := mapped.Claim.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}

		marker := "✗"
		if mapped.Status != types.StatusUnmatched {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, text))
		if mapped.Match != nil {
			sb.WriteString(fmt.Sprintf("  %s (%.2f) %s\n",
				mapped.Match.EntryID, mapped.Match.Score, mapped.Match.MatchedField))
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", mapped.Status))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(sourceMap) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more claims", len(sourceMap)-maxItemsToShow))
	}

	p.printBox("SOURCE MAP", sb.String())
}

// PrintLiveness outputs a posting liveness probe.
func (p *Printer) PrintLiveness(result *posting.LivenessResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:      %s\n", result.URL))
	if result.Live {
		sb.WriteString("Status:   ✅ live\n")
	} else {
		sb.WriteString("Status:   ✗ not live\n")
	}
	if result.StatusCode != 0 {
		sb.WriteString(fmt.Sprintf("HTTP:     %d\n", result.StatusCode))
	}
	sb.WriteString(fmt.Sprintf("Notes:    %s", result.Notes))

	p.printBox("POSTING STATUS", sb.String())
}
