package sol

import "testing"

func TestPathJoin(t *testing.T) {
	v := mustEval(t, `path_join "a" "b" "c".`)
	if v.Data.(string) != "a/b/c" {
		t.Fatalf("got %q, want a/b/c", v.Data.(string))
	}
}

func TestPathBaseDirExt(t *testing.T) {
	if v := mustEval(t, `path_base "/a/b/c.txt".`); v.Data.(string) != "c.txt" {
		t.Fatalf("path_base = %q", v.Data.(string))
	}
	if v := mustEval(t, `path_dir "/a/b/c.txt".`); v.Data.(string) != "/a/b" {
		t.Fatalf("path_dir = %q", v.Data.(string))
	}
	if v := mustEval(t, `path_ext "/a/b/c.txt".`); v.Data.(string) != ".txt" {
		t.Fatalf("path_ext = %q", v.Data.(string))
	}
}

func TestPathClean(t *testing.T) {
	v := mustEval(t, `path_clean "/a/../b/./c".`)
	if v.Data.(string) != "/b/c" {
		t.Fatalf("got %q, want /b/c", v.Data.(string))
	}
}
