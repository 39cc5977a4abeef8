// builtin_sys.go — Process/OS queries domain-stack row: getenv/setenv/
// listenv/sh/cpu_count, via stdlib os, os/exec, runtime. `getenv` and `sh`
// are in spec.md's required-builtin list (§6); `exit` lives in
// builtin_core.go since it is also part of that required list and the
// registry is last-write-wins, so it must be registered exactly once.
// Grounded on the teacher's builtin_sys.go (registerProcessBuiltins) and
// original_source/stdlib/system.py.
package sol

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

func registerSysBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "getenv", MinArity: 1, MaxArity: 1, Fn: biGetenv})
	r.Add(&Builtin{Name: "setenv", MinArity: 2, MaxArity: 2, Fn: biSetenv})
	r.Add(&Builtin{Name: "listenv", MinArity: 0, MaxArity: 0, Fn: biListenv})
	r.Add(&Builtin{Name: "sh", MinArity: 1, MaxArity: 1, Fn: biSh})
	r.Add(&Builtin{Name: "cpu_count", MinArity: 0, MaxArity: 0, Fn: biCPUCount})
}

func biGetenv(args []Value) (Value, error) {
	strs, err := requireStrings("getenv", args)
	if err != nil {
		return Value{}, err
	}
	v, ok := os.LookupEnv(strs[0])
	if !ok {
		return ErrStr("not set"), nil
	}
	return OkVal(StrVal(v)), nil
}

func biSetenv(args []Value) (Value, error) {
	strs, err := requireStrings("setenv", args)
	if err != nil {
		return Value{}, err
	}
	if err := os.Setenv(strs[0], strs[1]); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biListenv(args []Value) (Value, error) {
	entries := os.Environ()
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = StrVal(e)
	}
	return ArrVal(out), nil
}

// biSh runs a command via the system shell and returns its stdout as a
// String Result; a non-zero exit or spawn failure is an err Result carrying
// the command's stderr (or the exec error when stderr is empty).
func biSh(args []Value) (Value, error) {
	strs, err := requireStrings("sh", args)
	if err != nil {
		return Value{}, err
	}
	shell := "sh"
	flag := "-c"
	if runtime.GOOS == "windows" {
		shell = "cmd"
		flag = "/C"
	}
	cmd := exec.Command(shell, flag, strs[0])
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return ErrStr(msg), nil
	}
	return OkVal(StrVal(stdout.String())), nil
}

func biCPUCount(args []Value) (Value, error) {
	return IntVal(int64(runtime.NumCPU())), nil
}
