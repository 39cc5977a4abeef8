package sol

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")

	v := mustEval(t, `write `+quoteGo(path)+` "héllo, world".`)
	if v.Tag != VTResult || !v.Data.(*Result).Success {
		t.Fatalf("write failed: %#v", v)
	}
	v2 := mustEval(t, `unwrap_or (read `+quoteGo(path)+`) "missing".`)
	if v2.Data.(string) != "héllo, world" {
		t.Fatalf("read = %q", v2.Data.(string))
	}
}

func TestReadMissingFileReturnsErrResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope.txt")
	v := mustEval(t, `read `+quoteGo(path)+`.`)
	if v.Tag != VTResult || v.Data.(*Result).Success {
		t.Fatalf("expected err Result, got %#v", v)
	}
}

func TestMkdirAndLs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := mustEval(t, `mkdir `+quoteGo(sub)+`.`)
	if v.Tag != VTResult || !v.Data.(*Result).Success {
		t.Fatalf("mkdir failed: %#v", v)
	}
	v2 := mustEval(t, `unwrap_or (ls `+quoteGo(dir)+`) [].`)
	arr, ok := v2.Data.([]Value)
	if !ok {
		t.Fatalf("ls did not return an array: %#v", v2)
	}
	found := false
	for _, e := range arr {
		if e.Data.(string) == "a.txt" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ls missing a.txt: %v", arr)
	}
}

func TestCpMvTouchRm(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	moved := filepath.Join(dir, "moved.txt")
	touched := filepath.Join(dir, "touched.txt")

	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	mustEval(t, `cp `+quoteGo(src)+` `+quoteGo(dst)+`.`)
	if data, err := os.ReadFile(dst); err != nil || string(data) != "payload" {
		t.Fatalf("cp failed: %v %q", err, data)
	}

	mustEval(t, `mv `+quoteGo(dst)+` `+quoteGo(moved)+`.`)
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("mv left source behind")
	}
	if data, err := os.ReadFile(moved); err != nil || string(data) != "payload" {
		t.Fatalf("mv target missing: %v %q", err, data)
	}

	mustEval(t, `touch `+quoteGo(touched)+`.`)
	if _, err := os.Stat(touched); err != nil {
		t.Fatalf("touch did not create file: %v", err)
	}

	mustEval(t, `rm `+quoteGo(src)+`.`)
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("rm did not remove file")
	}
}

func TestPwdSucceeds(t *testing.T) {
	v := mustEval(t, `pwd.`)
	if v.Tag != VTResult || !v.Data.(*Result).Success {
		t.Fatalf("pwd failed: %#v", v)
	}
}

func TestFindMatchesSubstring(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep_me.txt"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("2"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := mustEval(t, `unwrap_or (find `+quoteGo(dir)+` "keep_me") [].`)
	arr, ok := v.Data.([]Value)
	if !ok || len(arr) != 1 {
		t.Fatalf("find = %#v", v)
	}
}

// quoteGo renders a Go string as a Sol single-quoted string literal.
func quoteGo(s string) string {
	out := "'"
	for _, r := range s {
		switch r {
		case '\'', '\\':
			out += "\\" + string(r)
		default:
			out += string(r)
		}
	}
	return out + "'"
}
