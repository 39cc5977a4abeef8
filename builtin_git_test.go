package sol

import (
	"os"
	"os/exec"
	"testing"
)

func TestGitStatusOnNonRepoReturnsErrResult(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	v := mustEval(t, `git_status.`)
	if v.Tag != VTResult || v.Data.(*Result).Success {
		t.Fatalf("expected err Result outside a git repo, got %#v", v)
	}
}

func TestGitAddRequiresStringArg(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	_, err := NewInterpreter().EvalSource(`git_add 5.`)
	requireSolError(t, err, TypeErrorK)
}
