package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit

	// KwLet represents the 'let' keyword.
	KwLet // let

	// Plus represents '+'.
	Plus // +
	// Assign represents '='.
	Assign // =
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]

	// Unknown represents a single character the lexer does not recognize.
	// Классификация "невалидного" символа откладывается до парсера.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case KwLet:
		return "KwLet"
	case Plus:
		return "Plus"
	case Assign:
		return "Assign"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Unknown:
		return "Unknown"
	}
	return "Kind(?)"
}

// IsOpenBracket reports whether the kind opens a bracket pair.
func (k Kind) IsOpenBracket() bool {
	switch k {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether the kind closes a bracket pair.
func (k Kind) IsCloseBracket() bool {
	switch k {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}
