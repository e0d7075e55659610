// errors_test.go
package lox

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_DiagnosticFormats(t *testing.T) {
	le := &LexError{Line: 3, Msg: "unexpected character: '@'"}
	if got := le.Error(); got != "[line 3] Error: unexpected character: '@'" {
		t.Fatalf("lex: %q", got)
	}

	pe := &ParseError{Line: 7, Lexeme: "=", Msg: "Invalid assignment target."}
	if got := pe.Error(); got != "[line 7] Error at '=': Invalid assignment target." {
		t.Fatalf("parse: %q", got)
	}

	atEnd := &ParseError{Line: 2, Msg: "expected expression", AtEOF: true}
	if got := atEnd.Error(); got != "[line 2] Error at end: expected expression" {
		t.Fatalf("parse at end: %q", got)
	}

	re := &RuntimeError{Kind: ErrType, Line: 5, Msg: "operands must be numbers"}
	if got := re.Error(); got != "[line 5] Error: operands must be numbers" {
		t.Fatalf("runtime: %q", got)
	}
}

func Test_Errors_SnippetPointsAtColumn(t *testing.T) {
	src := "let a = 1;\nlet b = a + true;\nprintln(b);"
	err := WrapErrorWithSource(&RuntimeError{Line: 2, Col: 10, Msg: "operands must be numbers"}, src)
	out := err.Error()

	for _, want := range []string{
		"[line 2] Error: operands must be numbers",
		"   1 | let a = 1;",
		"   2 | let b = a + true;",
		"     |           ^",
		"   3 | println(b);",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snippet missing %q:\n%s", want, out)
		}
	}
}

func Test_Errors_SnippetClampsOutOfRange(t *testing.T) {
	// Bad coordinates must never break rendering.
	err := WrapErrorWithSource(&LexError{Line: 99, Col: 99, Msg: "x"}, "one line")
	if !strings.Contains(err.Error(), "one line") {
		t.Fatalf("clamped snippet:\n%s", err.Error())
	}
}

func Test_Errors_WrapLeavesForeignErrorsAlone(t *testing.T) {
	plain := errors.New("disk on fire")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Fatalf("foreign error was wrapped: %v", got)
	}
}

func Test_Errors_IsIncomplete(t *testing.T) {
	if IsIncomplete(nil) {
		t.Fatalf("no errors is not incomplete")
	}
	if !IsIncomplete([]*ParseError{{AtEOF: true}}) {
		t.Fatalf("single at-EOF error is incomplete")
	}
	if IsIncomplete([]*ParseError{{AtEOF: true}, {AtEOF: false}}) {
		t.Fatalf("mixed errors are not incomplete")
	}
}
