package sol

import "testing"

func TestEvalSourceIsEphemeral(t *testing.T) {
	in := NewInterpreter()
	if _, err := in.EvalSource(`x = 5.`); err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if _, err := in.EvalSource(`x.`); err == nil {
		t.Fatalf("expected NameError, bindings from EvalSource must not persist")
	}
}

func TestEvalPersistentSourcePersistsBindings(t *testing.T) {
	in := NewInterpreter()
	if _, err := in.EvalPersistentSource(`x = 5.`); err != nil {
		t.Fatalf("eval error: %v", err)
	}
	v, err := in.EvalPersistentSource(`x.`)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.Data.(Number).Int != 5 {
		t.Fatalf("x = %#v", v)
	}
}

func TestEvalPersistentSourceSupportsRecursion(t *testing.T) {
	in := NewInterpreter()
	src := `fact n = if n == 0 then 1 else n * fact (n - 1).`
	if _, err := in.EvalPersistentSource(src); err != nil {
		t.Fatalf("defining fact: %v", err)
	}
	v, err := in.EvalPersistentSource(`fact 5.`)
	if err != nil {
		t.Fatalf("calling fact: %v", err)
	}
	if v.Data.(Number).Int != 120 {
		t.Fatalf("fact 5 = %#v", v)
	}
}

func TestEvalPersistentSourceSupportsMutualRecursion(t *testing.T) {
	in := NewInterpreter()
	if _, err := in.EvalPersistentSource(`is_even n = if n == 0 then true else is_odd (n - 1).`); err != nil {
		t.Fatalf("defining is_even: %v", err)
	}
	if _, err := in.EvalPersistentSource(`is_odd n = if n == 0 then false else is_even (n - 1).`); err != nil {
		t.Fatalf("defining is_odd: %v", err)
	}
	v, err := in.EvalPersistentSource(`is_even 10.`)
	if err != nil {
		t.Fatalf("calling is_even: %v", err)
	}
	if !v.Data.(bool) {
		t.Fatalf("is_even 10 = %#v, want true", v)
	}
}

func TestApplyDispatchesClosure(t *testing.T) {
	in := NewInterpreter()
	if _, err := in.EvalPersistentSource(`double x = x * 2.`); err != nil {
		t.Fatalf("defining double: %v", err)
	}
	fn, ok := in.Global.Get("double")
	if !ok {
		t.Fatalf("lookup double: not found")
	}
	v, err := in.Apply(fn, []Value{IntVal(21)})
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if v.Data.(Number).Int != 42 {
		t.Fatalf("double 21 = %#v", v)
	}
}

func TestEvalASTReturnsLastStatement(t *testing.T) {
	stmts, err := ParseProgram(`x = 1. y = 2. x + y.`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	in := NewInterpreter()
	v, err := in.EvalAST(stmts, in.Global)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.Data.(Number).Int != 3 {
		t.Fatalf("result = %#v", v)
	}
}

func TestEvalASTEmptyProgramReturnsNull(t *testing.T) {
	in := NewInterpreter()
	v, err := in.EvalAST(nil, in.Global)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.Tag != VTNull {
		t.Fatalf("empty program result = %#v, want Null", v)
	}
}

func TestUndefinedNameProducesNameError(t *testing.T) {
	_, err := NewInterpreter().EvalSource(`nope.`)
	requireSolError(t, err, NameError)
}
