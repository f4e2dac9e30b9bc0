package parser

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// peek возвращает текущий токен, не потребляя его.
// Позиция никогда не уходит за EOF: последний токен возвращается вечно.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expectStructural — ожидаем структурный токен statement'а (имя, '=').
// Первая несработавшая проверка репортит и включает подавление: дальнейшие
// expected-token проверки в этом statement молчат, кроме проверки ';'.
func (p *Parser) expectStructural(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if !p.suppress {
		p.reportUnexpected(code, p.peek())
	}
	p.suppress = true
	return token.Token{Kind: token.Invalid, Span: p.peek().Span}, false
}

// expectSemi — завершающая ';' проверяется всегда, независимо от
// подавления: пропавшая точка с запятой — отдельная проблема statement'а.
func (p *Parser) expectSemi() {
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	p.reportUnexpected(diag.SynExpectSemicolon, p.peek())
}

// reportUnexpected репортит "Unexpected token: X" на span токена.
func (p *Parser) reportUnexpected(code diag.Code, tok token.Token) {
	p.report(code, diag.SevError, tok.Span, "Unexpected token: "+tok.Describe())
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if p.opts.Enough() {
			return false // достигли максимального количества ошибок
		}
		// лимит проверяется до инкремента: первые MaxErrors ошибок
		// записываются целиком, даже при MaxErrors=1
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		p.opts.Reporter.Report(code, sev, sp, msg)
		return true
	}
	return false // нет reporter - ничего не записали
}
