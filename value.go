// value.go — the Sol runtime value model (spec §3).
//
// Value is a tagged union, mirroring the teacher's Value{Tag, Data} shape
// (interpreter.go) rather than an interface-per-case design: Sol's value
// space is closed (spec §1 rules out user-defined ADTs), so a fixed tag set
// is the simpler, more idiomatic fit here.
//
// Arrays and Dicts are logically immutable (spec §3 "Lifecycle"): every
// update goes through PathSet (path.go) and returns a new container. The
// underlying Go slice/map is still a mutable value under the hood — callers
// must treat any Value they didn't just build as read-only.
package sol

import (
	"fmt"
	"math"
	"strconv"
)

// ValueTag discriminates the active case of a Value; see spec §3's table.
type ValueTag int

const (
	VTNull ValueTag = iota
	VTBool
	VTNumber
	VTString
	VTArray
	VTDict
	VTClosure
	VTBuiltin
	VTPartial
	VTResult
)

func (t ValueTag) String() string {
	switch t {
	case VTNull:
		return "Null"
	case VTBool:
		return "Bool"
	case VTNumber:
		return "Number"
	case VTString:
		return "String"
	case VTArray:
		return "Array"
	case VTDict:
		return "Dict"
	case VTClosure:
		return "Closure"
	case VTBuiltin:
		return "Builtin"
	case VTPartial:
		return "Partial"
	case VTResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Value is the universal runtime carrier. Data holds the payload for Tag:
//
//	VTBool    -> bool
//	VTNumber  -> Number
//	VTString  -> string
//	VTArray   -> []Value  (1-indexed externally; 0-indexed in Go storage)
//	VTDict    -> *Dict
//	VTClosure -> *Closure
//	VTBuiltin -> *Builtin
//	VTPartial -> *Partial
//	VTResult  -> *Result
type Value struct {
	Tag  ValueTag
	Data any
}

// Number holds either an integer or a floating payload (spec §3: "Integer
// preserved when all operands are integer; otherwise promoted.").
type Number struct {
	IsInt bool
	Int   int64
	Float float64
}

func (n Number) AsFloat() float64 {
	if n.IsInt {
		return float64(n.Int)
	}
	return n.Float
}

// Dict is an insertion-ordered string-keyed map (spec §3: "Iteration order
// follows insertion.").
type Dict struct {
	Keys    []string
	Entries map[string]Value
}

// NewDict returns an empty, ready-to-use Dict.
func NewDict() *Dict {
	return &Dict{Entries: map[string]Value{}}
}

// Clone returns a shallow copy of d whose Keys/Entries are independent
// storage, so callers can append/overwrite without aliasing d.
func (d *Dict) Clone() *Dict {
	nd := &Dict{
		Keys:    make([]string, len(d.Keys)),
		Entries: make(map[string]Value, len(d.Entries)),
	}
	copy(nd.Keys, d.Keys)
	for k, v := range d.Entries {
		nd.Entries[k] = v
	}
	return nd
}

// Set returns a new Dict with key bound to v, preserving insertion order for
// existing keys and appending new ones.
func (d *Dict) Set(key string, v Value) *Dict {
	nd := d.Clone()
	if _, exists := nd.Entries[key]; !exists {
		nd.Keys = append(nd.Keys, key)
	}
	nd.Entries[key] = v
	return nd
}

// Closure is a user-defined callable capturing its defining Env by reference
// (spec §3 invariant: later bindings in that Env become visible to it).
type Closure struct {
	Name   string // best-effort name for error messages; may be ""
	Params []string
	Body   Expr
	Env    *Env
}

// BuiltinFn is the invocation handle a registered builtin exposes (spec §6).
// It receives the fully evaluated argument list and returns either a Value
// or a *SolError (used for evaluator-level failures like TypeError; I/O
// failures instead return an err Result as an ordinary Value, per spec §6/§7).
type BuiltinFn func(args []Value) (Value, error)

// Builtin is the registry's descriptor for a native function (spec §6):
// a name, an arity range, and an invocation handle. MaxArity of -1 means
// unbounded (used by variadic "+").
type Builtin struct {
	Name     string
	MinArity int
	MaxArity int // -1 = unbounded
	Fn       BuiltinFn
}

// Partial wraps an underlying callable (Closure or Builtin) together with an
// accumulated argument prefix, awaiting more arguments (spec §3/§4.5).
type Partial struct {
	Callee Value
	Args   []Value
}

// Result is Sol's tagged success/failure value (spec §3). It is never
// auto-unwrapped by the evaluator.
type Result struct {
	Success bool
	Val     Value
	Err     Value
}

// Constructors -----------------------------------------------------------

var Null = Value{Tag: VTNull}

func BoolVal(b bool) Value { return Value{Tag: VTBool, Data: b} }

func IntVal(n int64) Value { return Value{Tag: VTNumber, Data: Number{IsInt: true, Int: n}} }

func FloatVal(f float64) Value { return Value{Tag: VTNumber, Data: Number{Float: f}} }

func StrVal(s string) Value { return Value{Tag: VTString, Data: s} }

func ArrVal(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

func DictVal(d *Dict) Value { return Value{Tag: VTDict, Data: d} }

func ClosureVal(c *Closure) Value { return Value{Tag: VTClosure, Data: c} }

func BuiltinVal(b *Builtin) Value { return Value{Tag: VTBuiltin, Data: b} }

func PartialVal(p *Partial) Value { return Value{Tag: VTPartial, Data: p} }

func OkVal(v Value) Value { return Value{Tag: VTResult, Data: &Result{Success: true, Val: v}} }

func ErrVal(e Value) Value { return Value{Tag: VTResult, Data: &Result{Success: false, Err: e}} }

// ErrStr is a convenience for the common case of a string error payload.
func ErrStr(msg string) Value { return ErrVal(StrVal(msg)) }

// Truthy implements spec §4.5's truthiness rule: false, null, 0, "", [], {},
// and any err Result are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTNull:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTNumber:
		n := v.Data.(Number)
		if n.IsInt {
			return n.Int != 0
		}
		return n.Float != 0
	case VTString:
		return v.Data.(string) != ""
	case VTArray:
		return len(v.Data.([]Value)) != 0
	case VTDict:
		return len(v.Data.(*Dict).Keys) != 0
	case VTResult:
		return v.Data.(*Result).Success
	default:
		return true
	}
}

// Equal implements Sol's "==" builtin semantics: structural equality across
// numbers (promoted for comparison), strings, bools, null, arrays, and dicts.
// Closures, Builtins and Partials are never equal, not even to themselves;
// two Results are equal iff their tags and payloads match.
func Equal(a, b Value) bool {
	if a.Tag == VTNumber && b.Tag == VTNumber {
		na, nb := a.Data.(Number), b.Data.(Number)
		if na.IsInt && nb.IsInt {
			return na.Int == nb.Int
		}
		return na.AsFloat() == nb.AsFloat()
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTString:
		return a.Data.(string) == b.Data.(string)
	case VTArray:
		xa, xb := a.Data.([]Value), b.Data.([]Value)
		if len(xa) != len(xb) {
			return false
		}
		for i := range xa {
			if !Equal(xa[i], xb[i]) {
				return false
			}
		}
		return true
	case VTDict:
		da, db := a.Data.(*Dict), b.Data.(*Dict)
		if len(da.Keys) != len(db.Keys) {
			return false
		}
		for k, v := range da.Entries {
			ov, ok := db.Entries[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	case VTResult:
		ra, rb := a.Data.(*Result), b.Data.(*Result)
		if ra.Success != rb.Success {
			return false
		}
		if ra.Success {
			return Equal(ra.Val, rb.Val)
		}
		return Equal(ra.Err, rb.Err)
	default:
		return false
	}
}

// CanonicalNumberString renders a number the same way regardless of whether
// it arrived as a literal or a runtime computation, so that path components
// like d|1 and d|(1.0) key identically (spec §9 "Dict key rendering").
func CanonicalNumberString(n Number) string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	if n.Float == math.Trunc(n.Float) && !math.IsInf(n.Float, 0) {
		return strconv.FormatInt(int64(n.Float), 10)
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}

// Env is a lexically scoped binding frame chained via parent (spec §4.3).
// Assignment always Defines in the innermost frame; there is no distinct
// "update an outer binding" operation because Sol's assignment statement
// never targets an outer scope. registry is only ever set on the root frame
// (parent == nil); every other frame reaches it via the parent chain.
type Env struct {
	parent   *Env
	vars     map[string]Value
	registry *Registry
}

// NewEnv creates a new frame with the given parent (nil for the outermost).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, vars: map[string]Value{}}
}

// NewRootEnv creates the outermost frame, bound to reg for name resolution
// fallback (spec §4.5: "a bare identifier not found in the Env is looked up
// in the Builtin Registry").
func NewRootEnv(reg *Registry) *Env {
	return &Env{vars: map[string]Value{}, registry: reg}
}

// registryOf walks to the root frame and returns its Registry.
func (e *Env) registryOf() *Registry {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env.registry
}

// Define binds name to v in this frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.vars[name] = v
}

// Get walks the parent chain looking for name, returning ok=false if unbound
// anywhere in the chain (the caller then falls back to the Builtin Registry).
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

func fmtNumber(n Number) string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}

// debugString is a compact diagnostic rendering; user-facing rendering
// lives in printer.go.
func (v Value) debugString() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTNumber:
		return fmtNumber(v.Data.(Number))
	case VTString:
		return fmt.Sprintf("%q", v.Data.(string))
	default:
		return fmt.Sprintf("<%s>", v.Tag)
	}
}
