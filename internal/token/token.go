package token

import (
	"ember/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsSymbolic reports whether the token is punctuation or the 'let' keyword.
func (t Token) IsSymbolic() bool {
	switch t.Kind {
	case KwLet, Plus, Assign, Semicolon, Comma,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Unknown:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe returns the token text for diagnostics, with EOF spelled out.
func (t Token) Describe() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Text
}
