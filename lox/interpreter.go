// interpreter.go — public surface of the Lox engine.
//
// OVERVIEW
// ========
// The Interpreter owns two well-known frames:
//   - Core:   host builtins, installed by NewInterpreter. Parent of Global.
//   - Global: user-visible program state. File mode runs a program in it
//     once; a REPL evaluates every line in it so definitions accumulate.
//
// Host capabilities (stdin, stdout, clock, RNG, sleep) are fields on the
// Interpreter rather than package globals so builtins stay testable: tests
// swap In/Out for buffers and Now/Sleep for deterministic hooks. The zero
// hooks wired by NewInterpreter talk to the real process environment.
//
// Execution is single-threaded; the only lock in the engine guards the RNG,
// which builtins may share with host code.
//
// All evaluation entry points return either nil or a *RuntimeError. Lexing
// and parsing are separate phases with collected diagnostics — see
// ParseSource — and a program that produced any of those must not be run.
package lox

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"sync"
	"time"
)

// MaxCallDepth bounds recursion so a runaway program surfaces as a runtime
// error instead of exhausting the Go stack.
const MaxCallDepth = 10000

// Interpreter is the entry point for evaluating Lox programs.
type Interpreter struct {
	Core   *Env // builtins; parent of Global
	Global *Env // program state (persistent across REPL lines)

	// Host capability surface. Builtins reach the world only through these.
	In    *bufio.Reader
	Out   io.Writer
	Now   func() float64 // seconds since the Unix epoch
	Sleep func(d time.Duration)

	rng   *rand.Rand
	rngMu sync.Mutex

	depth int // current call depth
}

// NewInterpreter constructs an engine wired to the real process environment
// (os.Stdin/os.Stdout, wall clock, time.Sleep, time-seeded RNG) with all
// builtins installed in Core and an empty Global.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		In:    bufio.NewReader(os.Stdin),
		Out:   os.Stdout,
		Now:   func() float64 { return float64(time.Now().UnixNano()) / float64(time.Second) },
		Sleep: time.Sleep,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	ip.Core = NewEnv(nil)
	ip.Global = NewEnv(ip.Core)

	registerCoreBuiltins(ip)
	registerTimeBuiltins(ip)
	registerIOBuiltins(ip)
	registerRandomBuiltins(ip)
	return ip
}

// SeedRand re-seeds the interpreter's RNG; tests use a fixed seed for
// reproducible rand_int_range sequences.
func (ip *Interpreter) SeedRand(seed int64) {
	ip.rngMu.Lock()
	ip.rng = rand.New(rand.NewSource(seed))
	ip.rngMu.Unlock()
}

// RegisterNative installs a host builtin into Core under name. When variadic
// is set, arity is the minimum argument count; otherwise calls must pass
// exactly arity arguments.
func (ip *Interpreter) RegisterNative(name string, arity int, variadic bool, impl NativeImpl) {
	ip.Core.Define(name, NativeVal(&NativeFn{
		Name:     name,
		Arity:    arity,
		Variadic: variadic,
		Impl:     impl,
	}))
}

// ParseSource runs lexer and parser over src and returns the program plus
// all collected diagnostics (lex errors first, in source order). A non-empty
// error list means the program must not be evaluated.
func ParseSource(src string) ([]Stmt, []error) {
	toks, lexErrs := NewLexer(src).Scan()
	stmts, parseErrs := NewParser(toks).Parse()

	var diags []error
	for _, e := range lexErrs {
		diags = append(diags, e)
	}
	for _, e := range parseErrs {
		diags = append(diags, e)
	}
	return stmts, diags
}

// Interpret executes a parsed program in env. Execution stops at the first
// runtime error, which is returned; nil means the program ran to completion.
func (ip *Interpreter) Interpret(stmts []Stmt, env *Env) error {
	for _, s := range stmts {
		if err := ip.execTop(s, env); err != nil {
			return err
		}
	}
	return nil
}

// RunSource is a one-shot convenience (used by the tests): parse src and
// run it in Global. Lex/parse diagnostics come back as-is;
// a runtime failure comes back as a single-element list.
func (ip *Interpreter) RunSource(src string) []error {
	stmts, diags := ParseSource(src)
	if len(diags) > 0 {
		return diags
	}
	if err := ip.Interpret(stmts, ip.Global); err != nil {
		return []error{err}
	}
	return nil
}
