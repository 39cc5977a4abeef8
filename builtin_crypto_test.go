package sol

import "testing"

func TestMD5KnownVector(t *testing.T) {
	v := mustEval(t, `md5 "".`)
	want := "d41d8cd98f00b204e9800998ecf8427e"
	if v.Data.(string) != want {
		t.Fatalf("md5(\"\") = %q, want %q", v.Data.(string), want)
	}
}

func TestSHA256KnownVector(t *testing.T) {
	v := mustEval(t, `sha256 "".`)
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b85"
	if v.Data.(string) != want {
		t.Fatalf("sha256(\"\") = %q, want %q", v.Data.(string), want)
	}
}

func TestSHA256Deterministic(t *testing.T) {
	a := mustEval(t, `sha256 "hello".`)
	b := mustEval(t, `sha256 "hello".`)
	if a.Data.(string) != b.Data.(string) {
		t.Fatalf("sha256 not deterministic: %q vs %q", a.Data.(string), b.Data.(string))
	}
}
