package lexer

import (
	"testing"

	"defargs/internal/diag"
	"defargs/internal/source"
	"defargs/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dfn", []byte(src))
	bag := diag.NewBag(16)
	toks := Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexer_Declaration(t *testing.T) {
	toks, bag := lexAll(t, "fn foo(a: i32, #[default(1)] b: u8) -> i64;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	expected := []token.Kind{
		token.KwFn, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Hash, token.LBracket, token.Ident, token.LParen, token.IntLit, token.RParen, token.RBracket,
		token.Ident, token.Colon, token.Ident,
		token.RParen, token.Arrow, token.Ident, token.Semicolon,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(expected) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestLexer_ReceiverForms(t *testing.T) {
	toks, bag := lexAll(t, "&'a mut self")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expected := []token.Kind{token.Amp, token.Lifetime, token.KwMut, token.KwSelf, token.EOF}
	got := kinds(toks)
	if len(got) != len(expected) {
		t.Fatalf("token kinds = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], expected[i])
		}
	}
	if toks[1].Text != "'a" {
		t.Errorf("lifetime text = %q, want 'a", toks[1].Text)
	}
}

func TestLexer_LifetimeVsChar(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.Kind
	}{
		{"lifetime", "'static", token.Lifetime},
		{"char", "'a'", token.CharLit},
		{"escaped char", `'\n'`, token.CharLit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
			if toks[0].Kind != tt.kind {
				t.Errorf("kind = %v, want %v", toks[0].Kind, tt.kind)
			}
			if toks[0].Text != tt.src {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.src)
			}
		})
	}
}

func TestLexer_TriviaAndComments(t *testing.T) {
	toks, bag := lexAll(t, "fn /* block */ foo // line\n ;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expected := []token.Kind{token.KwFn, token.Ident, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(expected) {
		t.Fatalf("token kinds = %v, want %v", got, expected)
	}
}

func TestLexer_NumberForms(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"1_000u32", token.IntLit},
		{"2.5", token.FloatLit},
		{"3.14f64", token.FloatLit},
	}
	for _, tt := range tests {
		toks, _ := lexAll(t, tt.src)
		if toks[0].Kind != tt.kind || toks[0].Text != tt.src {
			t.Errorf("lex(%q) = %v %q", tt.src, toks[0].Kind, toks[0].Text)
		}
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `"oops`)
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", bag.Items()[0].Code)
	}
}

func TestLexer_UnknownChar(t *testing.T) {
	toks, bag := lexAll(t, "~")
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", toks[0].Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("expected one LexUnknownChar diagnostic, got %v", bag.Items())
	}
}

func TestLexer_Spans(t *testing.T) {
	toks, _ := lexAll(t, "fn foo")
	if toks[1].Span.Start != 3 || toks[1].Span.End != 6 {
		t.Errorf("ident span = %v, want 0:3-6", toks[1].Span)
	}
}
