// builtin_strings.go — string utility builtins (SPEC_FULL.md's Filesystem-
// adjacent "String utilities" domain-stack row): split/join/upper/lower/
// trim/contains/replace/str_len, all stdlib `strings`. This supplements
// spec.md's silence on string ergonomics — every interpreter in the
// retrieval pack ships some string builtin set (the teacher's own
// builtin_strings.go registers an equivalent table).
package sol

import "strings"

func registerStringBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "split", MinArity: 2, MaxArity: 2, Fn: biSplit})
	r.Add(&Builtin{Name: "join", MinArity: 2, MaxArity: 2, Fn: biJoin})
	r.Add(&Builtin{Name: "upper", MinArity: 1, MaxArity: 1, Fn: biUpper})
	r.Add(&Builtin{Name: "lower", MinArity: 1, MaxArity: 1, Fn: biLower})
	r.Add(&Builtin{Name: "trim", MinArity: 1, MaxArity: 1, Fn: biTrim})
	r.Add(&Builtin{Name: "contains", MinArity: 2, MaxArity: 2, Fn: biContains})
	r.Add(&Builtin{Name: "replace", MinArity: 3, MaxArity: 3, Fn: biReplace})
	r.Add(&Builtin{Name: "str_len", MinArity: 1, MaxArity: 1, Fn: biStrLen})
}

func biSplit(args []Value) (Value, error) {
	strs, err := requireStrings("split", args)
	if err != nil {
		return Value{}, err
	}
	parts := strings.Split(strs[0], strs[1])
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = StrVal(p)
	}
	return ArrVal(out), nil
}

func biJoin(args []Value) (Value, error) {
	arr, sep := args[0], args[1]
	if arr.Tag != VTArray {
		return Value{}, newErr(TypeErrorK, 0, "join: first argument is not an Array, got %s", arr.Tag)
	}
	if sep.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "join: second argument is not a String, got %s", sep.Tag)
	}
	xs := arr.Data.([]Value)
	parts := make([]string, len(xs))
	for i, x := range xs {
		if x.Tag != VTString {
			return Value{}, newErr(TypeErrorK, 0, "join: element %d is not a String, got %s", i+1, x.Tag)
		}
		parts[i] = x.Data.(string)
	}
	return StrVal(strings.Join(parts, sep.Data.(string))), nil
}

func biUpper(args []Value) (Value, error) {
	strs, err := requireStrings("upper", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(strings.ToUpper(strs[0])), nil
}

func biLower(args []Value) (Value, error) {
	strs, err := requireStrings("lower", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(strings.ToLower(strs[0])), nil
}

func biTrim(args []Value) (Value, error) {
	strs, err := requireStrings("trim", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(strings.TrimSpace(strs[0])), nil
}

func biContains(args []Value) (Value, error) {
	strs, err := requireStrings("contains", args)
	if err != nil {
		return Value{}, err
	}
	return BoolVal(strings.Contains(strs[0], strs[1])), nil
}

func biReplace(args []Value) (Value, error) {
	strs, err := requireStrings("replace", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(strings.ReplaceAll(strs[0], strs[1], strs[2])), nil
}

func biStrLen(args []Value) (Value, error) {
	strs, err := requireStrings("str_len", args)
	if err != nil {
		return Value{}, err
	}
	return IntVal(int64(len([]rune(strs[0])))), nil
}
