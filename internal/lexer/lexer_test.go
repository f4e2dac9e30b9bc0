package lexer_test

import (
	"testing"

	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

// scanAll токенизирует строку целиком, включая завершающий EOF.
func scanAll(input string) []token.Token {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.em", []byte(input))
	return lexer.Scan(fs.Get(fileID))
}

type wantToken struct {
	kind  token.Kind
	text  string
	start uint32
	end   uint32
}

func checkTokens(t *testing.T, input string, want []wantToken) {
	t.Helper()
	got := scanAll(input)
	if len(got) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d plus EOF: %v", len(got), len(want), got)
	}
	for i, w := range want {
		tok := got[i]
		if tok.Kind != w.kind {
			t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, w.kind)
		}
		if tok.Text != w.text {
			t.Errorf("token %d: text = %q, want %q", i, tok.Text, w.text)
		}
		if tok.Span.Start != w.start || tok.Span.End != w.end {
			t.Errorf("token %d: span = [%d,%d), want [%d,%d)",
				i, tok.Span.Start, tok.Span.End, w.start, w.end)
		}
	}
	last := got[len(got)-1]
	if last.Kind != token.EOF {
		t.Errorf("last token kind = %v, want EOF", last.Kind)
	}
	if !last.Span.Empty() {
		t.Errorf("EOF span = %v, want empty", last.Span)
	}
}

func TestLexer_Statements(t *testing.T) {
	checkTokens(t, "let x = 1;", []wantToken{
		{token.KwLet, "let", 0, 3},
		{token.Ident, "x", 4, 5},
		{token.Assign, "=", 6, 7},
		{token.IntLit, "1", 8, 9},
		{token.Semicolon, ";", 9, 10},
	})
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []wantToken
	}{
		{
			name:  "integer",
			input: "42",
			want:  []wantToken{{token.IntLit, "42", 0, 2}},
		},
		{
			name:  "float",
			input: "2.5",
			want:  []wantToken{{token.FloatLit, "2.5", 0, 3}},
		},
		{
			name:  "long fraction",
			input: "10.125",
			want:  []wantToken{{token.FloatLit, "10.125", 0, 6}},
		},
		{
			// точка без цифры после неё числу не принадлежит
			name:  "trailing dot is not part of the number",
			input: "1.",
			want: []wantToken{
				{token.IntLit, "1", 0, 1},
				{token.Unknown, ".", 1, 2},
			},
		},
		{
			name:  "leading dot is not a number",
			input: ".5",
			want: []wantToken{
				{token.Unknown, ".", 0, 1},
				{token.IntLit, "5", 1, 2},
			},
		},
		{
			name:  "no exponents",
			input: "1e3",
			want: []wantToken{
				{token.IntLit, "1", 0, 1},
				{token.Ident, "e3", 1, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, tt.input, tt.want)
		})
	}
}

func TestLexer_IdentsAndKeywords(t *testing.T) {
	checkTokens(t, "let lets _x x1", []wantToken{
		{token.KwLet, "let", 0, 3},
		{token.Ident, "lets", 4, 8},
		{token.Ident, "_x", 9, 11},
		{token.Ident, "x1", 12, 14},
	})
}

func TestLexer_Symbols(t *testing.T) {
	checkTokens(t, "+=;,(){}[]", []wantToken{
		{token.Plus, "+", 0, 1},
		{token.Assign, "=", 1, 2},
		{token.Semicolon, ";", 2, 3},
		{token.Comma, ",", 3, 4},
		{token.LParen, "(", 4, 5},
		{token.RParen, ")", 5, 6},
		{token.LBrace, "{", 6, 7},
		{token.RBrace, "}", 7, 8},
		{token.LBracket, "[", 8, 9},
		{token.RBracket, "]", 9, 10},
	})
}

func TestLexer_UnknownConsumesWholeRune(t *testing.T) {
	// π занимает два байта, Unknown — ровно одна руна
	checkTokens(t, "π@", []wantToken{
		{token.Unknown, "π", 0, 2},
		{token.Unknown, "@", 2, 3},
	})
}

func TestLexer_LeadingTrivia(t *testing.T) {
	toks := scanAll("  // comment\nx")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want ident plus EOF", len(toks))
	}
	ident := toks[0]
	if ident.Kind != token.Ident || ident.Text != "x" {
		t.Fatalf("token = %v %q, want Ident \"x\"", ident.Kind, ident.Text)
	}

	wantKinds := []token.TriviaKind{
		token.TriviaSpace,
		token.TriviaLineComment,
		token.TriviaNewline,
	}
	if len(ident.Leading) != len(wantKinds) {
		t.Fatalf("got %d leading trivia, want %d: %v", len(ident.Leading), len(wantKinds), ident.Leading)
	}
	for i, k := range wantKinds {
		if ident.Leading[i].Kind != k {
			t.Errorf("trivia %d: kind = %v, want %v", i, ident.Leading[i].Kind, k)
		}
	}
	if ident.Leading[1].Text != "// comment" {
		t.Errorf("comment text = %q, want %q", ident.Leading[1].Text, "// comment")
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	toks := scanAll("")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("got %v, want a single EOF token", toks)
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.em", []byte("x"))
	lx := lexer.New(fs.Get(fileID))

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("first token = %v, want Ident", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end: kind = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestLexer_PeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.em", []byte("a + b"))
	lx := lexer.New(fs.Get(fileID))

	peeked := lx.Peek()
	next := lx.Next()
	if peeked.Kind != next.Kind || peeked.Text != next.Text {
		t.Errorf("Peek() = %v %q, Next() = %v %q; want identical",
			peeked.Kind, peeked.Text, next.Kind, next.Text)
	}
	if tok := lx.Next(); tok.Kind != token.Plus {
		t.Errorf("after peeked token: kind = %v, want Plus", tok.Kind)
	}
}
