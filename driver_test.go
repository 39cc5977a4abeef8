package sol

import "testing"

func TestRunFileStripsShebang(t *testing.T) {
	v, err := RunFile("#!/usr/bin/env sol\nx = 1.\nx + 1.")
	if err != nil {
		t.Fatalf("RunFile error: %v", err)
	}
	if v.Tag != VTNumber || v.Data.(Number).Int != 2 {
		t.Fatalf("got %#v, want 2", v)
	}
}

func TestRunFileReturnsLastStatement(t *testing.T) {
	v, err := RunFile("1.\n2.\n3.")
	if err != nil {
		t.Fatalf("RunFile error: %v", err)
	}
	if v.Data.(Number).Int != 3 {
		t.Fatalf("got %#v, want 3", v)
	}
}

func TestIsIncompleteUnterminatedString(t *testing.T) {
	_, err := ParseProgram("x = 'abc")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !IsIncomplete(err) {
		t.Fatalf("IsIncomplete(%v) = false, want true", err)
	}
}

func TestIsIncompleteUnclosedParen(t *testing.T) {
	_, err := ParseProgram("(1 + 2")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !IsIncomplete(err) {
		t.Fatalf("IsIncomplete(%v) = false, want true", err)
	}
}

func TestIsIncompleteFalseForGenuineSyntaxError(t *testing.T) {
	_, err := ParseProgram("if x 1 else 2.")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if IsIncomplete(err) {
		t.Fatalf("IsIncomplete(%v) = true, want false", err)
	}
}

type fakeLineReader struct {
	lines []string
	i     int
}

func (f *fakeLineReader) Prompt(_ string) (string, error) {
	if f.i >= len(f.lines) {
		return "", errEOF
	}
	l := f.lines[f.i]
	f.i++
	return l, nil
}

var errEOF = &SolError{Kind: ParseErrorK, Msg: "EOF"}

func TestReadStatementBuffersUntilComplete(t *testing.T) {
	lr := &fakeLineReader{lines: []string{"x = (1 +", "2)."}}
	src, ok := ReadStatement(lr, "> ", ". ", func(err error) bool { return err == errEOF })
	if !ok {
		t.Fatalf("ReadStatement returned ok=false")
	}
	if src != "x = (1 +\n2)." {
		t.Fatalf("src = %q", src)
	}
}
