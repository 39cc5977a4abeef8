package sol

import "testing"

func TestStringifyScalars(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{BoolVal(true), "true"},
		{BoolVal(false), "false"},
		{IntVal(42), "42"},
		{FloatVal(3.5), "3.5"},
		{StrVal("hi"), "hi"},
	}
	for _, tt := range tests {
		if got := Stringify(tt.v); got != tt.want {
			t.Errorf("Stringify(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestStringifyArrayQuotesNestedStrings(t *testing.T) {
	v := ArrVal([]Value{StrVal("a"), IntVal(1)})
	got := Stringify(v)
	want := "['a', 1]"
	if got != want {
		t.Errorf("Stringify(array) = %q, want %q", got, want)
	}
}

func TestStringifyDictPreservesOrder(t *testing.T) {
	d := NewDict().Set("b", IntVal(2)).Set("a", IntVal(1))
	got := Stringify(DictVal(d))
	want := "{b: 2, a: 1}"
	if got != want {
		t.Errorf("Stringify(dict) = %q, want %q", got, want)
	}
}

func TestStringifyResult(t *testing.T) {
	if got := Stringify(OkVal(IntVal(5))); got != "Ok(5)" {
		t.Errorf("Stringify(Ok) = %q, want Ok(5)", got)
	}
	if got := Stringify(ErrStr("boom")); got != "Err('boom')" {
		t.Errorf("Stringify(Err) = %q, want Err('boom')", got)
	}
}

func TestEvalInterpStringRendersPath(t *testing.T) {
	env := NewEnv(nil)
	d := NewDict().Set("name", StrVal("Ada"))
	env.Define("user", DictVal(d))
	stmts, err := ParseProgram(`"hi {user|name}!".`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	v, err := eval(stmts[0], env)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.Tag != VTString || v.Data.(string) != "hi Ada!" {
		t.Fatalf("got %#v, want StrVal(\"hi Ada!\")", v)
	}
}
