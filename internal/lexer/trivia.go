package lexer

import (
	"ember/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ' и '\t' коалесцируются в один TriviaSpace
// - '\n' и одиночные '\r' коалесцируются в один TriviaNewline
// - //... до перевода строки (не включая его) -> TriviaLineComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// space/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		// newlines (коалесцируем подряд)
		if b == '\n' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != '\n' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		// line comments
		if b == '/' {
			_, b1, ok := lx.cursor.Peek2()
			if !ok || b1 != '/' {
				break
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() {
				b2 := lx.cursor.Peek()
				if b2 == '\n' || b2 == '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)
			continue
		}

		// нет больше trivia
		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
