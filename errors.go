// errors.go: user-facing error wrapping and caret-snippet rendering.
//
// Sol has two error channels (see spec §7): lexical/parse/evaluator failures
// carried as *SolError, and Result values, which are ordinary data and never
// touch this file. WrapErrorWithSource turns a *SolError into a multi-line,
// Python-style snippet with a caret under the offending column:
//
//	NameError at line 3: undefined name: foo
//
//	   2 | x = 1.
//	   3 | echo foo.
//	     | ^
//	   4 | y = 2.
//
// Grounded on the teacher's errors.go (WrapErrorWithSource /
// prettyErrorStringLabeled), generalized from the teacher's three error
// kinds (LexError/ParseError/RuntimeError) to Sol's eight (§7).
package sol

import (
	"fmt"
	"strings"
)

// ErrKind names one of the eight failure kinds spec §7 enumerates.
type ErrKind string

const (
	NameError    ErrKind = "NameError"
	TypeErrorK   ErrKind = "TypeError"
	ArityError   ErrKind = "ArityError"
	KeyErrorK    ErrKind = "KeyError"
	IndexErrorK  ErrKind = "IndexError"
	DivideByZero ErrKind = "DivideByZero"
	LexErrorKind ErrKind = "LexError"
	ParseErrorK  ErrKind = "ParseError"
)

// SolError is the single error type propagated by the lexer, parser, and
// evaluator. Line is 1-based; Col is 1-based and may be 0 when unknown.
type SolError struct {
	Kind ErrKind
	Line int
	Col  int
	Msg  string
}

func (e *SolError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
}

func newErr(kind ErrKind, line int, format string, args ...any) *SolError {
	return &SolError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// WrapErrorWithSource augments err (if it is a *SolError) with a
// caret-annotated snippet of src. Non-SolError values pass through unchanged.
func WrapErrorWithSource(err error, src string) error {
	se, ok := err.(*SolError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s\n\n%s", se.Error(), snippet(src, se.Line, se.Col))
}

// snippet renders up to one line of context before/after line, with a caret
// under col (1-based; 0 renders the caret at the start of the line).
func snippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s", line+1, lines[line])
	}
	return b.String()
}
