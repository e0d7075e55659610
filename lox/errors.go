// errors.go: diagnostic types and caret-snippet rendering.
//
// Lex and parse errors are collected so a single run can surface several of
// them; runtime errors are fatal to the current top-level statement. All
// three render the same one-line diagnostic shape:
//
//	[line N] Error[ at '<lexeme>']: <message>
//
// WrapErrorWithSource augments a diagnostic with a small source snippet and
// a caret pointing at the offending column:
//
//	[line 3] Error at ')': expected expression
//
//	   2 | let x = (1 +
//	   3 |              )
//	     |              ^
//	   4 | print x;
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places the caret under the 0-based column. Output is
// plain text; coloring (if any) is the driver's business.
package lox

import (
	"fmt"
	"strings"
)

// LexError is an unrecognized or malformed piece of input. The lexer reports
// it, skips the offending bytes, and keeps scanning.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

// ParseError is a syntax error. Lexeme is the text of the offending token
// ("" at end of input). AtEOF marks errors caused by running out of input,
// which lets a REPL distinguish "broken" from "not finished yet".
type ParseError struct {
	Line   int
	Col    int
	Lexeme string
	Msg    string
	AtEOF  bool
}

func (e *ParseError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Msg)
}

// RuntimeErrorKind partitions runtime failures for callers that care which
// rule was violated; the rendered message is the same either way.
type RuntimeErrorKind int

const (
	ErrType      RuntimeErrorKind = iota // operand kind mismatch
	ErrArity                             // wrong argument count
	ErrUndefined                         // undefined variable
	ErrCall                              // callee is not callable
	ErrHost                              // propagated from a builtin; also stack overflow and top-level return
)

// RuntimeError is an execution-time failure with a source location.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
}

// IsIncomplete reports whether errs describe nothing worse than an
// unterminated construct at end of input, i.e. whether more input could
// still turn the source into a valid program. Used by the REPL to decide
// between "show the error" and "keep reading".
func IsIncomplete(errs []*ParseError) bool {
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !e.AtEOF {
			return false
		}
	}
	return true
}

// WrapErrorWithSource returns an error whose message is the original
// diagnostic followed by a caret-annotated snippet of src. Errors that are
// not lex/parse/runtime diagnostics are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	default:
		return err
	}
}

// snippet builds the context/caret block under a header line. Coordinates
// are clamped to the source bounds so rendering never fails.
func snippet(src, header string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 0 {
		col = 0
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]
	if col > len(lineTxt) {
		col = len(lineTxt)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
