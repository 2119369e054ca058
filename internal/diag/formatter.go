package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter renders diagnostics with a source snippet and a caret line.
// Sources are registered in memory; parse input is a string, so there is
// nothing to load from disk.
type Formatter struct {
	out     io.Writer
	sources map[string]string // source text by filename
}

// NewFormatter creates a formatter writing to stderr.
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stderr)
}

// NewFormatterTo creates a formatter writing to the given writer.
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		sources: make(map[string]string),
	}
}

// AddSource registers source text for snippet rendering.
func (f *Formatter) AddSource(filename, src string) {
	f.sources[filename] = src
}

// Format renders a diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, ok := f.sources[d.Span.Filename]
	if !ok || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		}
		f.printHelp(d)
		return
	}

	ctx := ContextAt(src, d.Span.Start)

	lineNum := fmt.Sprintf("%d", d.Span.Line)
	pad := strings.Repeat(" ", len(lineNum))

	fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
	fmt.Fprintf(f.out, " %s |\n", pad)
	fmt.Fprintf(f.out, " %s | %s\n", lineNum, ctx.LineText)
	fmt.Fprintf(f.out, " %s | %s%s\n", pad, strings.Repeat(" ", ctx.Column-1), f.carets(d.Span))
	fmt.Fprintf(f.out, " %s |\n", pad)

	f.printHelp(d)
}

// carets returns the underline for a span, at least one character wide.
func (f *Formatter) carets(s Span) string {
	width := s.End - s.Start
	if width < 1 {
		width = 1
	}
	return strings.Repeat("^", width)
}

func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
