package sol

import (
	"reflect"
	"testing"
)

func scanTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", src, err)
	}
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexBasicTokens(t *testing.T) {
	tests := []struct {
		src  string
		want []TokenType
	}{
		{"42.", []TokenType{NUMBER, DOT, EOF}},
		{"3.14.", []TokenType{NUMBER, DOT, EOF}},
		{"x = 1.", []TokenType{IDENT, ASSIGN, NUMBER, DOT, EOF}},
		{"'hi'.", []TokenType{STRING, DOT, EOF}},
		{`"hi {x}".`, []TokenType{FSTRING, DOT, EOF}},
		{"a + b.", []TokenType{IDENT, OPERATOR, IDENT, DOT, EOF}},
		{"a == b.", []TokenType{IDENT, OPERATOR, IDENT, DOT, EOF}},
		{"nums |> map f.", []TokenType{IDENT, PIPEARR, IDENT, IDENT, DOT, EOF}},
		{"d|name.", []TokenType{IDENT, PIPE, IDENT, DOT, EOF}},
		{"if x then 1 else 2.", []TokenType{IF, IDENT, THEN, NUMBER, ELSE, NUMBER, DOT, EOF}},
		{"[1, 2].", []TokenType{LBRACKET, NUMBER, COMMA, NUMBER, RBRACKET, DOT, EOF}},
		{"{a: 1}.", []TokenType{LBRACE, IDENT, COLON, NUMBER, RBRACE, DOT, EOF}},
		{"(1 + 2).", []TokenType{LPAREN, NUMBER, OPERATOR, NUMBER, RPAREN, DOT, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := scanTypes(t, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Scan(%q) types = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestLexCollapsesConsecutiveDots(t *testing.T) {
	got := scanTypes(t, "x = 1..")
	want := []TokenType{IDENT, ASSIGN, NUMBER, DOT, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
}

func TestLexCommentsIgnored(t *testing.T) {
	got := scanTypes(t, "x = 1. # comment\ny = 2.")
	want := []TokenType{IDENT, ASSIGN, NUMBER, DOT, IDENT, ASSIGN, NUMBER, DOT, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := NewLexer(`'a\nb'.`).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if toks[0].Lexeme != "a\nb" {
		t.Fatalf("Lexeme = %q, want %q", toks[0].Lexeme, "a\nb")
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := NewLexer("'abc").Scan()
	if err == nil {
		t.Fatalf("expected a LexError")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("err = %#v, want *LexError", err)
	}
}

func TestLexIllegalCharacter(t *testing.T) {
	_, err := NewLexer("@.").Scan()
	if err == nil {
		t.Fatalf("expected a LexError")
	}
}

func TestLexLineTracking(t *testing.T) {
	toks, err := NewLexer("x = 1.\ny = 2.").Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	// toks: IDENT(x) ASSIGN NUMBER(1) DOT IDENT(y) ASSIGN NUMBER(2) DOT EOF
	if toks[0].Line != 1 {
		t.Fatalf("toks[0].Line = %d, want 1", toks[0].Line)
	}
	if toks[4].Line != 2 {
		t.Fatalf("toks[4].Line = %d, want 2", toks[4].Line)
	}
}

func TestLexTrailingApostropheIdent(t *testing.T) {
	toks, err := NewLexer("x' = 1.").Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if toks[0].Type != IDENT || toks[0].Lexeme != "x'" {
		t.Fatalf("toks[0] = %#v, want IDENT(x')", toks[0])
	}
}
