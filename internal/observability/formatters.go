// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/hiring-assistant/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 72

// Printer handles boxed output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are wrapped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(wrapped, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the candidate profile questions are generated for.
func (p *Printer) PrintProfile(profile types.CandidateProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Position:   %s\n", profile.DesiredPosition))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Skills:     %s", profile.SkillStack))

	p.printBox("CANDIDATE", sb.String())
}

// PrintQuestions outputs the generated questions as Q1..Qn.
func (p *Printer) PrintQuestions(questions types.QuestionSet) {
	if len(questions) == 0 {
		return
	}

	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("Q%d: %s", i+1, q))
	}
	p.printBox("INTERVIEW QUESTIONS", strings.Join(lines, "\n\n"))
}

// PrintEvaluation outputs the model's assessment.
func (p *Printer) PrintEvaluation(evaluation string) {
	p.printBox("EVALUATION", strings.TrimRight(evaluation, "\n"))
}

// PrintWarning outputs a recoverable problem the user can fix.
func (p *Printer) PrintWarning(message string) {
	p.printBox("WARNING", message)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap breaks line into pieces no wider than width runes, preferring spaces.
// Single words longer than width are split.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	var out []string
	var current []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(current) > 0 {
				out = append(out, string(current))
				current = nil
			}
			out = append(out, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			out = append(out, string(current))
			current = w
		}
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	return out
}
