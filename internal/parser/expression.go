package parser

import (
	"errors"
	"math/big"
	"strconv"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
// Сложение — плоская левоассоциативная цепочка, других бинарных
// операторов в языке нет.
func (p *Parser) parseExpr() ast.ExprID {
	left := p.parseCallExpr()
	for p.at(token.Plus) {
		p.advance()
		right := p.parseCallExpr()
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewAdd(span, left, right)
	}
	return left
}

// parseCallExpr обрабатывает постфиксные вызовы: Primary ("(" ArgList ")")*,
// цепочки разрешены.
func (p *Parser) parseCallExpr() ast.ExprID {
	expr := p.parsePrimaryExpr()
	for p.at(token.LParen) {
		p.advance() // '('
		args := p.parseArgList()
		span := p.arenas.Exprs.Get(expr).Span.Cover(p.lastSpan)
		expr = p.arenas.Exprs.NewCall(span, expr, args)
	}
	return expr
}

// parseArgList разбирает список аргументов после '(' и съедает ')'.
// Пустой список и хвостовая запятая допустимы. Плохой разделитель
// (ни ',' ни ')') — диагностика, пропуск одного токена и новая попытка;
// если пропуск привёл прямо к ')', список закрывается.
func (p *Parser) parseArgList() []ast.ExprID {
	var args []ast.ExprID
	for {
		if p.at(token.RParen) {
			p.advance()
			return args
		}
		if p.at(token.EOF) {
			// незакрытый вызов: восстановление обязано остановиться на EOF
			p.reportUnexpected(diag.SynUnexpectedToken, p.peek())
			return args
		}

		args = append(args, p.parseExpr())

		switch {
		case p.at(token.Comma):
			p.advance()
		case p.at(token.RParen):
			p.advance()
			return args
		case p.at(token.EOF):
			p.reportUnexpected(diag.SynUnexpectedToken, p.peek())
			return args
		default:
			p.reportUnexpected(diag.SynBadArgSeparator, p.peek())
			p.advance() // пропускаем один токен и пробуем снова
			if p.at(token.RParen) {
				p.advance()
				return args
			}
		}
	}
}

// parsePrimaryExpr распознаёт литералы, идентификаторы и скобочные группы.
// Отсутствующий Primary — одна диагностика на offending-токене, placeholder
// и bracket-aware skip, ограничивающий зону поражения.
func (p *Parser) parsePrimaryExpr() ast.ExprID {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		value, ok := new(big.Int).SetString(tok.Text, 10)
		if !ok {
			// лексер гарантирует десятичные цифры; сюда не попадаем
			value = big.NewInt(0)
		}
		return p.arenas.Exprs.NewIntLit(tok.Span, value)

	case token.FloatLit:
		p.advance()
		// при переполнении ParseFloat возвращает ±Inf вместе с ErrRange,
		// это и есть double-значение литерала; сбрасываем только прочие ошибки
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			value = 0
		}
		return p.arenas.Exprs.NewFloatLit(tok.Span, value)

	case token.Ident:
		p.advance()
		nameID := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, nameID)

	case token.LParen:
		lparen := p.advance()
		inner := p.parseExpr()
		if p.at(token.RParen) {
			rparen := p.advance()
			return p.arenas.Exprs.NewGroup(lparen.Span.Cover(rparen.Span), inner)
		}
		if !p.suppress {
			p.reportUnexpected(diag.SynUnexpectedToken, p.peek())
		}
		return p.arenas.Exprs.NewGroup(lparen.Span.Cover(p.lastSpan), inner)

	default:
		if !p.suppress {
			p.reportUnexpected(diag.SynExpectExpression, tok)
		}
		span := tok.Span
		p.skipToStable()
		if p.lastSpan.End > span.Start && p.lastSpan.Start >= span.Start {
			span = span.Cover(p.lastSpan)
		}
		return p.arenas.Exprs.NewBad(span)
	}
}
