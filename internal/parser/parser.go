// Package parser implements an error-tolerant recursive-descent parser over
// the Ember token stream. Парсер — явное значение: срез токенов и целочисленная
// позиция; все «приостановки» — обычные вызовы и возвраты.
package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	toks     []token.Token // поток токенов, всегда завершён EOF
	pos      int           // курсор в toks
	arenas   *ast.Builder  // построитель аренных узлов
	file     ast.FileID    // текущий FileID (в AST)
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	suppress bool        // подавление expected-token проверок до конца statement
}

func newParser(fs *source.FileSet, file *source.File, arenas *ast.Builder, opts Options) *Parser {
	toks := lexer.Scan(file)
	return &Parser{
		toks:     toks,
		pos:      0,
		arenas:   arenas,
		file:     arenas.Files.New(toks[0].Span),
		fs:       fs,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
}

// ParseFile — входная точка для разбора последовательности statement'ов.
// Поглощает весь поток токенов; диагностики копятся в Reporter.
func ParseFile(
	fs *source.FileSet,
	file *source.File,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := newParser(fs, file, arenas, opts)
	p.parseStmts()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

// ParseExpr — входная точка для разбора одного полного выражения.
// Остаток потока перед EOF — диагностика "expected EOF".
func ParseExpr(
	fs *source.FileSet,
	file *source.File,
	arenas *ast.Builder,
	opts Options,
) (ast.ExprID, Result) {
	p := newParser(fs, file, arenas, opts)
	expr := p.parseExpr()
	if !p.at(token.EOF) {
		p.reportUnexpected(diag.SynExpectEOF, p.peek())
	}
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return expr, Result{
		File: p.file,
		Bag:  bag,
	}
}

// parseStmts — основной цикл верхнего уровня: пока не EOF — parseStmt.
func (p *Parser) parseStmts() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		before := p.pos
		stmtID := p.parseStmt()
		if p.pos == before {
			// Ни одно правило не съело токен: двигаемся принудительно,
			// иначе цикл не завершится.
			tok := p.advance()
			stmtID = p.arenas.Stmts.NewBad(tok.Span)
		}
		p.arenas.PushStmt(p.file, stmtID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.peek().Span)
}
