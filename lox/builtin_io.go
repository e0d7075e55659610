// builtin_io.go
//
// Builtins surfaced:
//  1. read_line() -> string | nil     one line from stdin, nil on EOF
package lox

import "strings"

func registerIOBuiltins(ip *Interpreter) {
	// read_line() -> string | nil
	// The trailing newline (and a preceding \r, for CRLF input) is removed.
	ip.RegisterNative("read_line", 0, false, func(ip *Interpreter, _ []Value) Value {
		line, err := ip.In.ReadString('\n')
		if err != nil && line == "" {
			return Nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return Str(line)
	})
}
