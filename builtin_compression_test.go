package sol

import "testing"

func TestGzipGunzipRoundTrip(t *testing.T) {
	compressed := mustEval(t, `unwrap_or (gzip "hello world") "".`)
	if compressed.Data.(string) == "hello world" {
		t.Fatalf("gzip did not transform input")
	}

	env := NewInterpreter()
	env.Global.Define("payload", compressed)
	v, err := env.EvalPersistentSource(`unwrap_or (gunzip payload) "failed".`)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.Data.(string) != "hello world" {
		t.Fatalf("gunzip = %q, want %q", v.Data.(string), "hello world")
	}
}

func TestGunzipOnGarbageReturnsErrResult(t *testing.T) {
	v := mustEval(t, `gunzip "not gzip data".`)
	if v.Tag != VTResult || v.Data.(*Result).Success {
		t.Fatalf("expected err Result, got %#v", v)
	}
}
