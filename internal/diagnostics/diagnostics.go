// Package diagnostics implements petal's structured error/diagnostic type
// and its pointer-into-source renderer.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/petal-lang/petal/internal/token"
)

// Diagnostic is a rich error record: a stage label, a message, an
// optional hint, and the source position it refers to. It is always
// surfaced as the error half of a (Object, error) return, never thrown
// through a non-error path.
type Diagnostic struct {
	Stage      string
	Message    string
	Hint       string
	SourcePath string
	Source     string
	Span       token.Span
}

// New builds a Diagnostic with no hint.
func New(stage string, span token.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Stage: stage, Message: fmt.Sprintf(format, args...), Span: span}
}

// NewWithHint builds a Diagnostic carrying a remediation hint.
func NewWithHint(stage string, span token.Span, hint string, format string, args ...any) *Diagnostic {
	return &Diagnostic{Stage: stage, Message: fmt.Sprintf(format, args...), Hint: hint, Span: span}
}

// WithSource attaches the source path and full text, used by the
// renderer to print the offending line.
func (d *Diagnostic) WithSource(path, source string) *Diagnostic {
	d.SourcePath = path
	d.Source = source
	return d
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Stage, d.Message)
	if d.Hint != "" {
		fmt.Fprintf(&b, " (hint: %s)", d.Hint)
	}
	if d.SourcePath != "" {
		fmt.Fprintf(&b, " [%s:%d:%d]", d.SourcePath, d.Span.Line, d.Span.Column)
	}
	return b.String()
}

// colorEnabled is overridden in tests; by default it mirrors whether
// stdout is a terminal, matching the teacher's use of go-isatty for the
// same purpose.
var colorEnabled = func() bool {
	return isatty.IsTerminal(uintptr(1))
}

func color(code, text string) string {
	if !colorEnabled() {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

// Render produces a human-readable, pointer-into-source rendering of the
// diagnostic suitable for printing to stderr.
func (d *Diagnostic) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color("1;31", fmt.Sprintf("error: %s", d.Message)))
	fmt.Fprintf(&b, "  %s %s\n", color("2", "stage:"), d.Stage)
	if d.SourcePath != "" {
		fmt.Fprintf(&b, "  %s %s:%d:%d\n", color("2", "at"), d.SourcePath, d.Span.Line, d.Span.Column)
	}
	if d.Source != "" {
		lines := strings.Split(d.Source, "\n")
		idx := d.Span.Line - 1
		if idx >= 0 && idx < len(lines) {
			line := lines[idx]
			fmt.Fprintf(&b, "  %4d | %s\n", d.Span.Line, line)
			pad := strings.Repeat(" ", d.Span.Column-1)
			length := d.Span.Len()
			if length < 1 {
				length = 1
			}
			fmt.Fprintf(&b, "       | %s%s\n", pad, color("1;31", strings.Repeat("^", length)))
		}
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, "  %s %s\n", color("1;36", "hint:"), d.Hint)
	}
	return b.String()
}
