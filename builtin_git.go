// builtin_git.go — Git domain-stack row: git_status/git_add/git_commit/
// git_push/git_pull/git_branch, all via os/exec shelling to the `git`
// binary. Grounded on original_source/stdlib/git.py (GitPython); no Go git
// library (go-git) appears anywhere in the retrieved pack, so this follows
// the same "shell out" strategy the kernel's own `sh` builtin already uses.
package sol

import (
	"errors"
	"os/exec"
	"strings"
)

func registerGitBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "git_status", MinArity: 0, MaxArity: 0, Fn: biGitStatus})
	r.Add(&Builtin{Name: "git_add", MinArity: 1, MaxArity: 1, Fn: biGitAdd})
	r.Add(&Builtin{Name: "git_commit", MinArity: 1, MaxArity: 1, Fn: biGitCommit})
	r.Add(&Builtin{Name: "git_push", MinArity: 0, MaxArity: 0, Fn: biGitPush})
	r.Add(&Builtin{Name: "git_pull", MinArity: 0, MaxArity: 0, Fn: biGitPull})
	r.Add(&Builtin{Name: "git_branch", MinArity: 0, MaxArity: 0, Fn: biGitBranch})
}

func runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(msg)
	}
	return stdout.String(), nil
}

func gitResult(out string, err error) (Value, error) {
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(out)), nil
}

func biGitStatus(args []Value) (Value, error) {
	return gitResult(runGit("status", "--porcelain"))
}

func biGitAdd(args []Value) (Value, error) {
	strs, err := requireStrings("git_add", args)
	if err != nil {
		return Value{}, err
	}
	return gitResult(runGit("add", strs[0]))
}

func biGitCommit(args []Value) (Value, error) {
	strs, err := requireStrings("git_commit", args)
	if err != nil {
		return Value{}, err
	}
	return gitResult(runGit("commit", "-m", strs[0]))
}

func biGitPush(args []Value) (Value, error) {
	return gitResult(runGit("push"))
}

func biGitPull(args []Value) (Value, error) {
	return gitResult(runGit("pull"))
}

func biGitBranch(args []Value) (Value, error) {
	return gitResult(runGit("rev-parse", "--abbrev-ref", "HEAD"))
}
