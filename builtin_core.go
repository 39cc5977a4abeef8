// builtin_core.go — the builtins spec §6 says "the core assumes exist":
// echo, the arithmetic/comparison operators, map/filter/fold, set,
// to_string/to_number, and the Result combinators (ok/err/unwrap_or/
// unwrap_or_exit/failed/succeeded).
//
// Grounded on the teacher's builtin_core.go for the registration shape
// (one exported register function adding a table of *Builtin descriptors),
// generalized from MindScript's richer numeric tower to Sol's Int/Float
// promotion rule (spec §3: "Integer preserved when all operands are
// integer; otherwise promoted.").
package sol

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func registerCoreBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "echo", MinArity: 1, MaxArity: 1, Fn: biEcho})
	r.Add(&Builtin{Name: "+", MinArity: 2, MaxArity: -1, Fn: biAdd})
	r.Add(&Builtin{Name: "-", MinArity: 2, MaxArity: 2, Fn: biSub})
	r.Add(&Builtin{Name: "*", MinArity: 2, MaxArity: 2, Fn: biMul})
	r.Add(&Builtin{Name: "/", MinArity: 2, MaxArity: 2, Fn: biDiv})
	r.Add(&Builtin{Name: "%", MinArity: 2, MaxArity: 2, Fn: biMod})
	r.Add(&Builtin{Name: "==", MinArity: 2, MaxArity: 2, Fn: biEq})
	r.Add(&Builtin{Name: "<", MinArity: 2, MaxArity: 2, Fn: biLt})
	r.Add(&Builtin{Name: ">", MinArity: 2, MaxArity: 2, Fn: biGt})
	r.Add(&Builtin{Name: "map", MinArity: 2, MaxArity: 2, Fn: biMap})
	r.Add(&Builtin{Name: "filter", MinArity: 2, MaxArity: 2, Fn: biFilter})
	r.Add(&Builtin{Name: "fold", MinArity: 2, MaxArity: 3, Fn: biFold})
	r.Add(&Builtin{Name: "set", MinArity: 3, MaxArity: 3, Fn: biSet})
	r.Add(&Builtin{Name: "to_string", MinArity: 1, MaxArity: 1, Fn: biToString})
	r.Add(&Builtin{Name: "to_number", MinArity: 1, MaxArity: 1, Fn: biToNumber})
	r.Add(&Builtin{Name: "ok", MinArity: 1, MaxArity: 1, Fn: biOk})
	r.Add(&Builtin{Name: "err", MinArity: 1, MaxArity: 1, Fn: biErr})
	r.Add(&Builtin{Name: "unwrap_or", MinArity: 2, MaxArity: 2, Fn: biUnwrapOr})
	r.Add(&Builtin{Name: "unwrap_or_exit", MinArity: 2, MaxArity: 2, Fn: biUnwrapOrExit})
	r.Add(&Builtin{Name: "failed", MinArity: 1, MaxArity: 1, Fn: biFailed})
	r.Add(&Builtin{Name: "succeeded", MinArity: 1, MaxArity: 1, Fn: biSucceeded})
	r.Add(&Builtin{Name: "exit", MinArity: 1, MaxArity: 1, Fn: biExit})
}

func biEcho(args []Value) (Value, error) {
	fmt.Println(Stringify(args[0]))
	return args[0], nil
}

func asNumber(v Value) (Number, bool) {
	if v.Tag != VTNumber {
		return Number{}, false
	}
	return v.Data.(Number), true
}

// numericFold reduces nums with intOp/floatOp, preserving Int as long as
// every operand is Int (spec §3).
func numericFold(nums []Number, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) Number {
	acc := nums[0]
	for _, n := range nums[1:] {
		if acc.IsInt && n.IsInt {
			acc = Number{IsInt: true, Int: intOp(acc.Int, n.Int)}
		} else {
			acc = Number{Float: floatOp(acc.AsFloat(), n.AsFloat())}
		}
	}
	return acc
}

func requireNumbers(name string, args []Value) ([]Number, error) {
	nums := make([]Number, len(args))
	for i, a := range args {
		n, ok := asNumber(a)
		if !ok {
			return nil, newErr(TypeErrorK, 0, "%s: argument %d is not a Number, got %s", name, i+1, a.Tag)
		}
		nums[i] = n
	}
	return nums, nil
}

func biAdd(args []Value) (Value, error) {
	nums, err := requireNumbers("+", args)
	if err != nil {
		return Value{}, err
	}
	n := numericFold(nums, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	return Value{Tag: VTNumber, Data: n}, nil
}

func biSub(args []Value) (Value, error) {
	nums, err := requireNumbers("-", args)
	if err != nil {
		return Value{}, err
	}
	n := numericFold(nums, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	return Value{Tag: VTNumber, Data: n}, nil
}

func biMul(args []Value) (Value, error) {
	nums, err := requireNumbers("*", args)
	if err != nil {
		return Value{}, err
	}
	n := numericFold(nums, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	return Value{Tag: VTNumber, Data: n}, nil
}

func biDiv(args []Value) (Value, error) {
	nums, err := requireNumbers("/", args)
	if err != nil {
		return Value{}, err
	}
	if nums[1].AsFloat() == 0 {
		return Value{}, newErr(DivideByZero, 0, "division by zero")
	}
	if nums[0].IsInt && nums[1].IsInt && nums[0].Int%nums[1].Int == 0 {
		return IntVal(nums[0].Int / nums[1].Int), nil
	}
	return FloatVal(nums[0].AsFloat() / nums[1].AsFloat()), nil
}

func biMod(args []Value) (Value, error) {
	nums, err := requireNumbers("%", args)
	if err != nil {
		return Value{}, err
	}
	if nums[1].AsFloat() == 0 {
		return Value{}, newErr(DivideByZero, 0, "division by zero")
	}
	if nums[0].IsInt && nums[1].IsInt {
		return IntVal(nums[0].Int % nums[1].Int), nil
	}
	return FloatVal(mathMod(nums[0].AsFloat(), nums[1].AsFloat())), nil
}

func mathMod(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	return m
}

func biEq(args []Value) (Value, error) {
	return BoolVal(Equal(args[0], args[1])), nil
}

// biLt and biGt compare their second argument against their first, so a
// partial application reads as a section: `filter (> 5)` keeps the values
// greater than 5, and `< a b` is true when b is less than a.
func biLt(args []Value) (Value, error) {
	return compareArgs("<", []Value{args[1], args[0]}, func(c int) bool { return c < 0 })
}

func biGt(args []Value) (Value, error) {
	return compareArgs(">", []Value{args[1], args[0]}, func(c int) bool { return c > 0 })
}

func compareArgs(name string, args []Value, ok func(int) bool) (Value, error) {
	a, b := args[0], args[1]
	if a.Tag == VTNumber && b.Tag == VTNumber {
		na, nb := a.Data.(Number), b.Data.(Number)
		diff := na.AsFloat() - nb.AsFloat()
		switch {
		case diff < 0:
			return BoolVal(ok(-1)), nil
		case diff > 0:
			return BoolVal(ok(1)), nil
		default:
			return BoolVal(ok(0)), nil
		}
	}
	if a.Tag == VTString && b.Tag == VTString {
		return BoolVal(ok(strings.Compare(a.Data.(string), b.Data.(string)))), nil
	}
	return Value{}, newErr(TypeErrorK, 0, "%s: cannot compare %s and %s", name, a.Tag, b.Tag)
}

// mapCallableAndArray resolves which of the two arguments is the Array and
// which is the callable, regardless of order: spec §6 names `map f arr`
// (function first), but the pipeline rewrite (spec §4.5) always prepends
// the piped value first, so `arr |> map f` arrives as `[arr, f]`. Both call
// shapes must work identically.
func mapCallableAndArray(name string, args []Value) ([]Value, Value, error) {
	var arr []Value
	var fn Value
	var haveArr, haveFn bool
	for _, a := range args {
		if a.Tag == VTArray && !haveArr {
			arr = a.Data.([]Value)
			haveArr = true
		} else if !haveFn && isCallable(a) {
			fn = a
			haveFn = true
		}
	}
	if !haveArr {
		return nil, Value{}, newErr(TypeErrorK, 0, "%s: no Array argument given", name)
	}
	if !haveFn {
		return nil, Value{}, newErr(TypeErrorK, 0, "%s: no callable argument given", name)
	}
	return arr, fn, nil
}

func isCallable(v Value) bool {
	switch v.Tag {
	case VTClosure, VTBuiltin, VTPartial:
		return true
	default:
		return false
	}
}

func biMap(args []Value) (Value, error) {
	arr, fn, err := mapCallableAndArray("map", args)
	if err != nil {
		return Value{}, err
	}
	out := make([]Value, len(arr))
	for i, x := range arr {
		v, err := applyValue(fn, []Value{x}, 0)
		if err != nil {
			return Value{}, err
		}
		out[i] = v
	}
	return ArrVal(out), nil
}

func biFilter(args []Value) (Value, error) {
	arr, fn, err := mapCallableAndArray("filter", args)
	if err != nil {
		return Value{}, err
	}
	var out []Value
	for _, x := range arr {
		v, err := applyValue(fn, []Value{x}, 0)
		if err != nil {
			return Value{}, err
		}
		if Truthy(v) {
			out = append(out, x)
		}
	}
	if out == nil {
		out = []Value{}
	}
	return ArrVal(out), nil
}

// biFold implements a left fold: `fold f arr`, `fold f arr init`, or (via
// the pipeline rewrite) `arr |> fold f [init]`. The Array and the callable
// are resolved by type as in map/filter; any third Value argument, whatever
// its position, is the seed.
func biFold(args []Value) (Value, error) {
	var arr []Value
	var fn Value
	var seed Value
	haveArr, haveFn, haveSeed := false, false, false
	for _, a := range args {
		switch {
		case a.Tag == VTArray && !haveArr:
			arr = a.Data.([]Value)
			haveArr = true
		case isCallable(a) && !haveFn:
			fn = a
			haveFn = true
		default:
			seed = a
			haveSeed = true
		}
	}
	if !haveArr {
		return Value{}, newErr(TypeErrorK, 0, "fold: no Array argument given")
	}
	if !haveFn {
		return Value{}, newErr(TypeErrorK, 0, "fold: no callable argument given")
	}
	var acc Value
	rest := arr
	if haveSeed {
		acc = seed
	} else {
		if len(arr) == 0 {
			return Value{}, newErr(TypeErrorK, 0, "fold: empty array requires an initial value")
		}
		acc = arr[0]
		rest = arr[1:]
	}
	for _, x := range rest {
		v, err := applyValue(fn, []Value{acc, x}, 0)
		if err != nil {
			return Value{}, err
		}
		acc = v
	}
	return acc, nil
}

// biSet implements spec §6's `set container path value`: path is a
// `|`-separated string (distinct from the parser's `|`-path syntax, which
// is resolved at parse time); each component is treated as an array index
// when it parses as a positive integer, else as a Dict key.
func biSet(args []Value) (Value, error) {
	container, pathArg, value := args[0], args[1], args[2]
	if pathArg.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "set: path must be a String, got %s", pathArg.Tag)
	}
	comps := parsePathString(pathArg.Data.(string))
	return PathSet(container, comps, value, 0)
}

func parsePathString(s string) []pathComponent {
	parts := strings.Split(s, "|")
	comps := make([]pathComponent, len(parts))
	for i, p := range parts {
		if n, err := strconv.ParseInt(p, 10, 64); err == nil {
			comps[i] = pathComponent{isIndex: true, index: n, key: p}
		} else {
			comps[i] = pathComponent{key: p}
		}
	}
	return comps
}

func biToString(args []Value) (Value, error) {
	return StrVal(Stringify(args[0])), nil
}

func biToNumber(args []Value) (Value, error) {
	v := args[0]
	if v.Tag == VTNumber {
		return OkVal(v), nil
	}
	if v.Tag != VTString {
		return ErrStr(fmt.Sprintf("to_number: cannot convert %s", v.Tag)), nil
	}
	s := v.Data.(string)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return OkVal(IntVal(n)), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return OkVal(FloatVal(f)), nil
	}
	return ErrStr(fmt.Sprintf("to_number: invalid number literal %q", s)), nil
}

func biOk(args []Value) (Value, error) { return OkVal(args[0]), nil }
func biErr(args []Value) (Value, error) { return ErrVal(args[0]), nil }

func biUnwrapOr(args []Value) (Value, error) {
	r, def := args[0], args[1]
	if r.Tag != VTResult {
		return Value{}, newErr(TypeErrorK, 0, "unwrap_or: expected a Result, got %s", r.Tag)
	}
	res := r.Data.(*Result)
	if res.Success {
		return res.Val, nil
	}
	return def, nil
}

func biUnwrapOrExit(args []Value) (Value, error) {
	r, msg := args[0], args[1]
	if r.Tag != VTResult {
		return Value{}, newErr(TypeErrorK, 0, "unwrap_or_exit: expected a Result, got %s", r.Tag)
	}
	res := r.Data.(*Result)
	if res.Success {
		return res.Val, nil
	}
	fmt.Fprintln(os.Stderr, Stringify(msg))
	os.Exit(1)
	return Value{}, nil
}

func biFailed(args []Value) (Value, error) {
	r := args[0]
	if r.Tag != VTResult {
		return Value{}, newErr(TypeErrorK, 0, "failed: expected a Result, got %s", r.Tag)
	}
	return BoolVal(!r.Data.(*Result).Success), nil
}

func biSucceeded(args []Value) (Value, error) {
	r := args[0]
	if r.Tag != VTResult {
		return Value{}, newErr(TypeErrorK, 0, "succeeded: expected a Result, got %s", r.Tag)
	}
	return BoolVal(r.Data.(*Result).Success), nil
}

func biExit(args []Value) (Value, error) {
	n, ok := asNumber(args[0])
	if !ok {
		return Value{}, newErr(TypeErrorK, 0, "exit: argument must be a Number, got %s", args[0].Tag)
	}
	code := int(n.Int)
	if !n.IsInt {
		code = int(n.Float)
	}
	os.Exit(code)
	return Null, nil
}
