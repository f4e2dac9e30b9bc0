package lexer

import (
	"ember/internal/token"
)

// scanNumber сканирует десятичный литерал.
// Максимальный ряд цифр — IntLit; если сразу за ним '.' и ещё цифра,
// забираем вторую серию цифр и получаем FloatLit.
// Без экспонент, знаков, ведущих и хвостовых точек.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLit

	// дробная часть: '.' принадлежит числу только если за ней цифра
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
