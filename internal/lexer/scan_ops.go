package lexer

import (
	"unicode/utf8"

	"ember/internal/token"
)

// scanSymbol сканирует одно-символьные токены.
// Всё, что не распознано — Unknown длиной в один символ;
// решение, что символ невалиден, принимает парсер.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '+':
		kind = token.Plus
	case '=':
		kind = token.Assign
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		kind = token.Unknown
		if b >= utf8.RuneSelf {
			// добираем хвост UTF-8 последовательности, Unknown — ровно одна руна
			_, sz := utf8.DecodeRune(lx.file.Content[start:])
			for i := 1; i < sz; i++ {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
