// builtin_misc.go
//
// Builtins surfaced:
//  1. rand_int_range(lo, hi) -> number   uniform integer in [lo, hi]
//
// The RNG is instance-local and guarded by a mutex; see Interpreter.SeedRand.
package lox

import "math"

func registerRandomBuiltins(ip *Interpreter) {
	// rand_int_range(lo, hi) -> number
	ip.RegisterNative("rand_int_range", 2, false, func(ip *Interpreter, args []Value) Value {
		if args[0].Tag != VTNum || args[1].Tag != VTNum {
			fail("rand_int_range: bounds must be numbers")
		}
		lo := int64(math.Floor(args[0].Data.(float64)))
		hi := int64(math.Floor(args[1].Data.(float64)))
		if lo > hi {
			fail("rand_int_range: empty range [%d, %d]", lo, hi)
		}
		ip.rngMu.Lock()
		n := lo + ip.rng.Int63n(hi-lo+1)
		ip.rngMu.Unlock()
		return Num(float64(n))
	})
}
