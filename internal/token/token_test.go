package token

import (
	"testing"
)

func TestDescribe(t *testing.T) {
	eof := Token{Kind: EOF}
	if got := eof.Describe(); got != "EOF" {
		t.Errorf("Describe(EOF) = %q, want %q", got, "EOF")
	}
	semi := Token{Kind: Semicolon, Text: ";"}
	if got := semi.Describe(); got != ";" {
		t.Errorf("Describe(;) = %q, want %q", got, ";")
	}
}

func TestClassification(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() || !(Token{Kind: FloatLit}).IsLiteral() {
		t.Error("numeric literals not classified as literals")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("identifier classified as a literal")
	}
	// 'let' относится к символическим токенам наряду с пунктуацией
	for _, k := range []Kind{KwLet, Plus, Assign, Semicolon, Comma, LParen, RParen, Unknown} {
		if !(Token{Kind: k}).IsSymbolic() {
			t.Errorf("%v not classified as symbolic", k)
		}
	}
	if (Token{Kind: IntLit}).IsSymbolic() || (Token{Kind: EOF}).IsSymbolic() {
		t.Error("non-symbolic kind classified as symbolic")
	}
}

func TestBracketKinds(t *testing.T) {
	opens := []Kind{LParen, LBrace, LBracket}
	closes := []Kind{RParen, RBrace, RBracket}
	for _, k := range opens {
		if !k.IsOpenBracket() || k.IsCloseBracket() {
			t.Errorf("%v misclassified", k)
		}
	}
	for _, k := range closes {
		if !k.IsCloseBracket() || k.IsOpenBracket() {
			t.Errorf("%v misclassified", k)
		}
	}
	if Semicolon.IsOpenBracket() || Semicolon.IsCloseBracket() {
		t.Error("semicolon classified as a bracket")
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("let"); !ok || k != KwLet {
		t.Errorf("LookupKeyword(let) = %v, %v", k, ok)
	}
	for _, s := range []string{"Let", "LET", "lets", "x"} {
		if _, ok := LookupKeyword(s); ok {
			t.Errorf("LookupKeyword(%q) unexpectedly matched", s)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Ident.String(); got != "Ident" {
		t.Errorf("Ident.String() = %q", got)
	}
	if got := Kind(200).String(); got != "Kind(?)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}
