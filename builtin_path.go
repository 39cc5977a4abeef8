// builtin_path.go — filesystem path utilities, part of SPEC_FULL.md's
// Filesystem domain-stack concern: stdlib `path/filepath`, grounded on the
// teacher's own path_builtins.go (pathJoin/pathBase/pathDir/pathExt/
// pathClean), generalized to Sol's snake_case builtin names and its
// String-only value model (no dedicated Path type).
package sol

import "path/filepath"

func registerPathBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "path_join", MinArity: 1, MaxArity: -1, Fn: biPathJoin})
	r.Add(&Builtin{Name: "path_base", MinArity: 1, MaxArity: 1, Fn: biPathBase})
	r.Add(&Builtin{Name: "path_dir", MinArity: 1, MaxArity: 1, Fn: biPathDir})
	r.Add(&Builtin{Name: "path_ext", MinArity: 1, MaxArity: 1, Fn: biPathExt})
	r.Add(&Builtin{Name: "path_clean", MinArity: 1, MaxArity: 1, Fn: biPathClean})
}

func requireStrings(name string, args []Value) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		if a.Tag != VTString {
			return nil, newErr(TypeErrorK, 0, "%s: argument %d is not a String, got %s", name, i+1, a.Tag)
		}
		out[i] = a.Data.(string)
	}
	return out, nil
}

func biPathJoin(args []Value) (Value, error) {
	parts, err := requireStrings("path_join", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(filepath.Join(parts...)), nil
}

func biPathBase(args []Value) (Value, error) {
	parts, err := requireStrings("path_base", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(filepath.Base(parts[0])), nil
}

func biPathDir(args []Value) (Value, error) {
	parts, err := requireStrings("path_dir", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(filepath.Dir(parts[0])), nil
}

func biPathExt(args []Value) (Value, error) {
	parts, err := requireStrings("path_ext", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(filepath.Ext(parts[0])), nil
}

func biPathClean(args []Value) (Value, error) {
	parts, err := requireStrings("path_clean", args)
	if err != nil {
		return Value{}, err
	}
	return StrVal(filepath.Clean(parts[0])), nil
}
