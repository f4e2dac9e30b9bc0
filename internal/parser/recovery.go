package parser

import (
	"ember/internal/token"
)

// isStableToken — стоп-набор восстановления: токены, на которых пропуск
// останавливается, не съедая их.
func isStableToken(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.RParen, token.RBrace, token.RBracket:
		return true
	default:
		return false
	}
}

// skipToStable прокручивает поток до стабильного токена или EOF.
// Открывающая скобка по пути запускает вложенный сбалансированный пропуск:
// так одна ошибка внутри скобок не рушит конструкцию снаружи.
func (p *Parser) skipToStable() {
	for {
		k := p.peek().Kind
		if k == token.EOF || isStableToken(k) {
			return
		}
		if k.IsOpenBracket() {
			p.advance()
			p.skipBalanced()
			continue
		}
		p.advance()
	}
}

// skipBalanced пропускает до закрывающей скобки, съедая её.
// Несовпадающая закрывающая скобка закрывает ближайшую открытую:
// терпим несоответствия вместо отказа. На EOF просто выходим.
func (p *Parser) skipBalanced() {
	for {
		k := p.peek().Kind
		if k == token.EOF {
			return
		}
		if k.IsCloseBracket() {
			p.advance()
			return
		}
		if k.IsOpenBracket() {
			p.advance()
			p.skipBalanced()
			continue
		}
		p.advance()
	}
}
