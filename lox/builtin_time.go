// builtin_time.go
//
// Builtins surfaced:
//  1. clock() -> number        seconds since the Unix epoch
//  2. sleep_secs(s) -> nil
//  3. sleep_millis(ms) -> nil
package lox

import "time"

func registerTimeBuiltins(ip *Interpreter) {
	// clock() -> number
	ip.RegisterNative("clock", 0, false, func(ip *Interpreter, _ []Value) Value {
		return Num(ip.Now())
	})

	// sleep_secs(s) -> nil
	// Fractional seconds are honored.
	ip.RegisterNative("sleep_secs", 1, false, func(ip *Interpreter, args []Value) Value {
		if args[0].Tag != VTNum {
			fail("sleep_secs: argument must be a number")
		}
		secs := args[0].Data.(float64)
		if secs < 0 {
			fail("sleep_secs: negative duration")
		}
		ip.Sleep(time.Duration(secs * float64(time.Second)))
		return Nil
	})

	// sleep_millis(ms) -> nil
	ip.RegisterNative("sleep_millis", 1, false, func(ip *Interpreter, args []Value) Value {
		if args[0].Tag != VTNum {
			fail("sleep_millis: argument must be a number")
		}
		ms := args[0].Data.(float64)
		if ms < 0 {
			fail("sleep_millis: negative duration")
		}
		ip.Sleep(time.Duration(ms * float64(time.Millisecond)))
		return Nil
	})
}
