// builtin_file.go — the Filesystem domain-stack row: ls/pwd/mkdir/rm/read/
// write/cp/mv/touch/find, all stdlib `os` and `path/filepath`. Every
// fallible operation returns a Result (spec §6: "preferred for I/O-shaped
// operations"), grounded on the teacher's os_io_builtins.go for the idiom
// of wrapping a stdlib call and turning its error into an annotated
// failure value rather than propagating a Go error to the evaluator.
package sol

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

func registerFileBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "ls", MinArity: 1, MaxArity: 1, Fn: biLs})
	r.Add(&Builtin{Name: "pwd", MinArity: 0, MaxArity: 0, Fn: biPwd})
	r.Add(&Builtin{Name: "mkdir", MinArity: 1, MaxArity: 1, Fn: biMkdir})
	r.Add(&Builtin{Name: "rm", MinArity: 1, MaxArity: 1, Fn: biRm})
	r.Add(&Builtin{Name: "read", MinArity: 1, MaxArity: 1, Fn: biRead})
	r.Add(&Builtin{Name: "write", MinArity: 2, MaxArity: 2, Fn: biWrite})
	r.Add(&Builtin{Name: "cp", MinArity: 2, MaxArity: 2, Fn: biCp})
	r.Add(&Builtin{Name: "mv", MinArity: 2, MaxArity: 2, Fn: biMv})
	r.Add(&Builtin{Name: "touch", MinArity: 1, MaxArity: 1, Fn: biTouch})
	r.Add(&Builtin{Name: "find", MinArity: 2, MaxArity: 2, Fn: biFind})
}

func biLs(args []Value) (Value, error) {
	strs, err := requireStrings("ls", args)
	if err != nil {
		return Value{}, err
	}
	entries, err := os.ReadDir(strs[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = StrVal(e.Name())
	}
	return OkVal(ArrVal(out)), nil
}

func biPwd(args []Value) (Value, error) {
	wd, err := os.Getwd()
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(wd)), nil
}

func biMkdir(args []Value) (Value, error) {
	strs, err := requireStrings("mkdir", args)
	if err != nil {
		return Value{}, err
	}
	if err := os.MkdirAll(strs[0], 0o755); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biRm(args []Value) (Value, error) {
	strs, err := requireStrings("rm", args)
	if err != nil {
		return Value{}, err
	}
	if err := os.RemoveAll(strs[0]); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biRead(args []Value) (Value, error) {
	strs, err := requireStrings("read", args)
	if err != nil {
		return Value{}, err
	}
	data, err := os.ReadFile(strs[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(string(data))), nil
}

func biWrite(args []Value) (Value, error) {
	path, content := args[0], args[1]
	if path.Tag != VTString || content.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "write: both arguments must be Strings")
	}
	if err := os.WriteFile(path.Data.(string), []byte(content.Data.(string)), 0o644); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biCp(args []Value) (Value, error) {
	strs, err := requireStrings("cp", args)
	if err != nil {
		return Value{}, err
	}
	data, err := os.ReadFile(strs[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	if err := os.WriteFile(strs[1], data, 0o644); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biMv(args []Value) (Value, error) {
	strs, err := requireStrings("mv", args)
	if err != nil {
		return Value{}, err
	}
	if err := os.Rename(strs[0], strs[1]); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biTouch(args []Value) (Value, error) {
	strs, err := requireStrings("touch", args)
	if err != nil {
		return Value{}, err
	}
	now := time.Now()
	if err := os.Chtimes(strs[0], now, now); err != nil {
		if !os.IsNotExist(err) {
			return ErrStr(err.Error()), nil
		}
		f, ferr := os.OpenFile(strs[0], os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			return ErrStr(ferr.Error()), nil
		}
		f.Close()
	}
	return OkVal(Null), nil
}

// biFind walks root looking for entries whose base name contains pattern
// (a plain substring match, not a glob), returning their paths in the order
// filepath.WalkDir visits them.
func biFind(args []Value) (Value, error) {
	strs, err := requireStrings("find", args)
	if err != nil {
		return Value{}, err
	}
	root, pattern := strs[0], strs[1]
	var out []Value
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && containsSubstr(d.Name(), pattern) {
			out = append(out, StrVal(path))
		}
		return nil
	})
	if walkErr != nil {
		return ErrStr(walkErr.Error()), nil
	}
	if out == nil {
		out = []Value{}
	}
	return OkVal(ArrVal(out)), nil
}

func containsSubstr(s, sub string) bool {
	if sub == "" {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
