package ast

import (
	"ember/internal/source"
)

type ExprKind uint8

const (
	// ExprBad is the placeholder substituted where a production failed to
	// parse; оно всегда парно хотя бы одной диагностике.
	ExprBad ExprKind = iota
	ExprIdent
	ExprIntLit
	ExprFloatLit
	ExprAdd
	ExprGroup
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprBad:
		return "Bad"
	case ExprIdent:
		return "Ident"
	case ExprIntLit:
		return "IntLit"
	case ExprFloatLit:
		return "FloatLit"
	case ExprAdd:
		return "Add"
	case ExprGroup:
		return "Group"
	case ExprCall:
		return "Call"
	}
	return "Expr(?)"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}
