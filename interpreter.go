// interpreter.go — PUBLIC API SURFACE for the Sol runtime.
//
// OVERVIEW
// ========
// This file exposes the entire public surface embedders need. It
// deliberately contains only exported types and thin methods; the actual
// walking logic lives in eval.go, path.go, and printer.go.
//
//   - The runtime value model lives in value.go (Value, ValueTag, Number,
//     Dict, Closure, Builtin, Partial, Result, and their constructors).
//   - Env is the lexical scope frame (value.go); Interpreter owns one root
//     frame, Global, per spec §4.3.
//   - Interpreter's entry points distinguish ephemeral runs (each call gets
//     a fresh child of Global, so bindings don't leak between calls) from
//     persistent runs (REPL-style: statements land directly in Global).
//
// Grounded on the teacher's interpreter.go ("SINGLE PUBLIC API SURFACE")
// for this file's organizing idea, generalized from MindScript's Core/
// Global split (native registration vs. user globals) to Sol's simpler
// Registry/Global split, since Sol has no RegisterNative equivalent.
package sol

// Interpreter holds one Sol runtime: a Builtin Registry and a persistent
// Global environment.
type Interpreter struct {
	Global   *Env
	Registry *Registry
}

// NewInterpreter builds an Interpreter with the full standard Registry
// (SPEC_FULL.md's DOMAIN STACK) and an empty Global frame.
func NewInterpreter() *Interpreter {
	reg := NewRegistry()
	return &Interpreter{
		Global:   NewRootEnv(reg),
		Registry: reg,
	}
}

// EvalSource parses and evaluates src in a fresh child of Global: bindings
// made during the run are discarded once it returns (file-mode "run once"
// semantics; spec §6 "Driver: file mode").
func (in *Interpreter) EvalSource(src string) (Value, error) {
	stmts, err := ParseProgram(src)
	if err != nil {
		return Value{}, err
	}
	return in.EvalAST(stmts, NewEnv(in.Global))
}

// EvalPersistentSource parses and evaluates src directly in Global, so
// assignments persist across calls (REPL line-mode semantics; spec §6
// "Driver: line mode").
func (in *Interpreter) EvalPersistentSource(src string) (Value, error) {
	stmts, err := ParseProgram(src)
	if err != nil {
		return Value{}, err
	}
	return in.EvalAST(stmts, in.Global)
}

// EvalAST evaluates a parsed statement list in exactly the given
// environment, returning the value of its last statement (Null if empty).
// This is the low-level entry point EvalSource/EvalPersistentSource build on;
// embedders that need explicit scoping control can call it directly.
func (in *Interpreter) EvalAST(stmts []Expr, env *Env) (Value, error) {
	result := Null
	for _, stmt := range stmts {
		v, err := eval(stmt, env)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// Apply invokes fn (a Closure, Builtin, or Partial) with args, applying
// Sol's currying rules (spec §3/§4.5): under-supplying returns a Partial,
// exact or over-supplying runs it (surplus args are applied to the result).
func (in *Interpreter) Apply(fn Value, args []Value) (Value, error) {
	return applyValue(fn, args, 0)
}
