package ast

import (
	"ember/internal/source"
)

type StmtKind uint8

const (
	// StmtBad is the placeholder substituted where a statement failed to
	// parse; оно всегда парно хотя бы одной диагностике.
	StmtBad StmtKind = iota
	StmtExpr
	StmtLet
)

func (k StmtKind) String() string {
	switch k {
	case StmtBad:
		return "Bad"
	case StmtExpr:
		return "Expr"
	case StmtLet:
		return "Let"
	}
	return "Stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData is the payload of an expression statement.
type StmtExprData struct {
	Expr ExprID
}

// StmtLetData is the payload of a let statement.
type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena *Arena[Stmt]
	Exprs *Arena[StmtExprData]
	Lets  *Arena[StmtLetData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Exprs: NewArena[StmtExprData](capHint),
		Lets:  NewArena[StmtLetData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewBad creates a placeholder statement.
func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.new(StmtBad, span, NoPayloadID)
}

// NewExpr creates a new expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression-statement data for the given ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewLet creates a new let statement.
func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{Name: name, NameSpan: nameSpan, Value: value})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let-statement data for the given ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}
