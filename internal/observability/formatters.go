// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/statick88/statick88.github.io/internal/render"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

// PrintVariant outputs a human-readable summary of one rendered variant.
func (p *Printer) PrintVariant(lang string, path string, result *render.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:  %s\n", path))
	sb.WriteString(fmt.Sprintf("Pages:   %d\n", result.Pages))
	sb.WriteString(fmt.Sprintf("Links:   %d\n", len(result.Links)))
	sb.WriteString(fmt.Sprintf("Bytes:   %d", len(result.PDF)))

	p.printBox(fmt.Sprintf("CV variant: %s", lang), sb.String())
}

// PrintValidationOK reports a document that passed validation.
func (p *Printer) PrintValidationOK(path string) {
	p.printBox("Validation", fmt.Sprintf("%s: OK", path))
}
