// builtin_core.go
//
// Builtins surfaced:
//  1. parse(s) -> number | nil
//  2. dbg(a, b, ...) -> nil
//
// Conventions:
//   - Hard errors via fail(...); soft failures return nil.
//   - Builtins touch the world only through the Interpreter's host fields.
package lox

import (
	"fmt"
	"strconv"
	"strings"
)

func registerCoreBuiltins(ip *Interpreter) {
	// parse(s) -> number | nil
	// Parse a string as a number; nil when it does not decode.
	ip.RegisterNative("parse", 1, false, func(_ *Interpreter, args []Value) Value {
		if args[0].Tag != VTStr {
			fail("parse: argument must be a string")
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(args[0].Data.(string)), 64)
		if err != nil {
			return Nil
		}
		return Num(f)
	})

	// dbg(a, b, ...) -> nil
	// Print a debug representation of every argument on one line.
	ip.RegisterNative("dbg", 2, true, func(ip *Interpreter, args []Value) Value {
		fmt.Fprintln(ip.Out, DebugValues(args))
		return Nil
	})
}
