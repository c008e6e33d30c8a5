/*
File   : lilang/report/report.go

Package report carries diagnostics accumulated by the lexer, parser, and
semantic analyzer. Every phase follows the same policy (spec.md §7):
never throw, never stop — each phase appends to its own List and keeps
going over whatever partial result it has.

The "[row:col] KIND: message" rendering mirrors the teacher's own
fmt.Sprintf("[%d:%d] PARSER ERROR: ...", ...) shape (see
parser.Parser.addError / lexer.readStringLiteral in the teacher repo);
this package only promotes that shape from a bare string into a
structured value so a caller can filter, sort, or colorize it before
printing.
*/
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"lilang/token"
)

// Phase identifies which pipeline stage produced a Diagnostic.
type Phase string

const (
	Lexical  Phase = "LEXICAL"
	Syntax   Phase = "SYNTAX"
	Semantic Phase = "SEMANTIC"
)

// Diagnostic is one error record: a phase tag, a source position, and a
// human-readable message.
type Diagnostic struct {
	Phase   Phase
	Pos     token.Position
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Pos, d.Phase, d.Message)
}

// List is an append-only diagnostic accumulator. The zero value is
// ready to use.
type List struct {
	items []Diagnostic
}

// Add appends a new diagnostic at row/col with a formatted message.
func (l *List) Add(phase Phase, pos token.Position, format string, args ...interface{}) {
	l.items = append(l.items, Diagnostic{Phase: phase, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Append merges another list's diagnostics into this one, preserving
// order (lexical errors first, then whatever phase appended next).
func (l *List) Append(other List) {
	l.items = append(l.items, other.items...)
}

// Len reports how many diagnostics have been recorded.
func (l *List) Len() int { return len(l.items) }

// Empty reports whether no diagnostics were recorded — the definition
// of "a successful compile" per spec.md §7 is all three phase lists
// being empty.
func (l *List) Empty() bool { return len(l.items) == 0 }

// Items returns the diagnostics sorted by source position, stable
// across phase boundaries (so a report covering all three phases reads
// top-to-bottom in source order).
func (l *List) Items() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pos.Row != out[j].Pos.Row {
			return out[i].Pos.Row < out[j].Pos.Row
		}
		return out[i].Pos.Col < out[j].Pos.Col
	})
	return out
}

// colorFor mirrors the REPL's existing palette (repl.go's blueColor /
// redColor / ... convention) so diagnostics and interactive output read
// as one system.
func colorFor(phase Phase) *color.Color {
	switch phase {
	case Lexical:
		return color.New(color.FgRed)
	case Syntax:
		return color.New(color.FgYellow)
	case Semantic:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgWhite)
	}
}

// Render formats every diagnostic, colorized by phase, one per line.
func (l *List) Render() string {
	var b strings.Builder
	for _, d := range l.Items() {
		colorFor(d.Phase).Fprintln(&b, d.String())
	}
	return b.String()
}
