package ast

import (
	"math/big"

	"ember/internal/source"
)

// ExprIdentData is the payload of an identifier expression.
type ExprIdentData struct {
	Name source.StringID
}

// ExprIntData is the payload of an integer literal.
// Value хранится с произвольной точностью; литерал из исходника
// никогда не переполняется.
type ExprIntData struct {
	Value *big.Int
}

// ExprFloatData is the payload of a floating-point literal.
type ExprFloatData struct {
	Value float64
}

// ExprAddData is the payload of an addition.
type ExprAddData struct {
	Left  ExprID
	Right ExprID
}

// ExprGroupData is the payload of a parenthesized expression.
type ExprGroupData struct {
	Inner ExprID
}

// ExprCallData is the payload of a call expression.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena  *Arena[Expr]
	Idents *Arena[ExprIdentData]
	Ints   *Arena[ExprIntData]
	Floats *Arena[ExprFloatData]
	Adds   *Arena[ExprAddData]
	Groups *Arena[ExprGroupData]
	Calls  *Arena[ExprCallData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:  NewArena[Expr](capHint),
		Idents: NewArena[ExprIdentData](capHint),
		Ints:   NewArena[ExprIntData](capHint),
		Floats: NewArena[ExprFloatData](capHint),
		Adds:   NewArena[ExprAddData](capHint),
		Groups: NewArena[ExprGroupData](capHint),
		Calls:  NewArena[ExprCallData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewBad creates a placeholder expression.
func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.new(ExprBad, span, NoPayloadID)
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewIntLit creates a new integer literal expression.
func (e *Exprs) NewIntLit(span source.Span, value *big.Int) ExprID {
	payload := e.Ints.Allocate(ExprIntData{Value: value})
	return e.new(ExprIntLit, span, PayloadID(payload))
}

// IntLit returns the integer literal data for the given expression ID.
func (e *Exprs) IntLit(id ExprID) (*ExprIntData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIntLit {
		return nil, false
	}
	return e.Ints.Get(uint32(expr.Payload)), true
}

// NewFloatLit creates a new floating-point literal expression.
func (e *Exprs) NewFloatLit(span source.Span, value float64) ExprID {
	payload := e.Floats.Allocate(ExprFloatData{Value: value})
	return e.new(ExprFloatLit, span, PayloadID(payload))
}

// FloatLit returns the float literal data for the given expression ID.
func (e *Exprs) FloatLit(id ExprID) (*ExprFloatData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFloatLit {
		return nil, false
	}
	return e.Floats.Get(uint32(expr.Payload)), true
}

// NewAdd creates a new addition expression.
func (e *Exprs) NewAdd(span source.Span, left, right ExprID) ExprID {
	payload := e.Adds.Allocate(ExprAddData{Left: left, Right: right})
	return e.new(ExprAdd, span, PayloadID(payload))
}

// Add returns the addition data for the given expression ID.
func (e *Exprs) Add(id ExprID) (*ExprAddData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAdd {
		return nil, false
	}
	return e.Adds.Get(uint32(expr.Payload)), true
}

// NewGroup creates a new parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group data for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}
