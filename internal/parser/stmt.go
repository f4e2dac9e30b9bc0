package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// parseStmt выбирает по первому токену нужный распознаватель statement'а.
// Любая неудача всё равно возвращает best-effort узел: соседние statement'ы
// разбираются независимо.
func (p *Parser) parseStmt() ast.StmtID {
	p.suppress = false
	if p.at(token.KwLet) {
		return p.parseLetStmt()
	}
	return p.parseExprStmt()
}

// parseExprStmt распознаёт `Expr ;`.
func (p *Parser) parseExprStmt() ast.StmtID {
	startSpan := p.peek().Span
	expr := p.parseExpr()
	p.expectSemi()
	return p.arenas.Stmts.NewExpr(p.stmtSpan(startSpan), expr)
}

// parseLetStmt распознаёт `let Ident = Expr ;`.
func (p *Parser) parseLetStmt() ast.StmtID {
	letTok := p.advance() // съедаем KwLet

	var nameID source.StringID
	nameSpan := p.peek().Span
	if nameTok, ok := p.expectStructural(token.Ident, diag.SynExpectIdentifier); ok {
		nameID = p.arenas.StringsInterner.Intern(nameTok.Text)
		nameSpan = nameTok.Span
	}

	p.expectStructural(token.Assign, diag.SynExpectEquals)

	value := p.parseExpr()
	p.expectSemi()

	return p.arenas.Stmts.NewLet(p.stmtSpan(letTok.Span), nameID, nameSpan, value)
}

// stmtSpan покрывает statement от первого токена до последнего съеденного.
func (p *Parser) stmtSpan(start source.Span) source.Span {
	if p.lastSpan.End > start.Start {
		return start.Cover(p.lastSpan)
	}
	return start
}
