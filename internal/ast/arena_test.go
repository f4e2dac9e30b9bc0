package ast

import (
	"math/big"
	"testing"

	"ember/internal/source"
)

func TestArena_OneBasedIDs(t *testing.T) {
	a := NewArena[int](4)

	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("IDs = %d, %d; want 1, 2", first, second)
	}

	if got := *a.Get(first); got != 10 {
		t.Errorf("Get(1) = %d, want 10", got)
	}
	// нулевой ID зарезервирован под "нет значения"
	if a.Get(0) != nil {
		t.Error("Get(0) returned a value, want nil")
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestExprs_PayloadRoundtrip(t *testing.T) {
	exprs := NewExprs(0)
	span := source.Span{Start: 0, End: 2}

	intID := exprs.NewIntLit(span, big.NewInt(42))
	if data, ok := exprs.IntLit(intID); !ok || data.Value.Int64() != 42 {
		t.Errorf("IntLit payload = %v, %v", data, ok)
	}
	// доступ через аксессор другого вида — промах, не паника
	if _, ok := exprs.Add(intID); ok {
		t.Error("Add() accessor matched an int literal")
	}

	addID := exprs.NewAdd(span, intID, intID)
	if data, ok := exprs.Add(addID); !ok || data.Left != intID || data.Right != intID {
		t.Errorf("Add payload = %v, %v", data, ok)
	}

	badID := exprs.NewBad(span)
	if exprs.Get(badID).Kind != ExprBad {
		t.Errorf("Bad kind = %v", exprs.Get(badID).Kind)
	}
	if exprs.Get(badID).Payload != NoPayloadID {
		t.Error("placeholder carries a payload")
	}
}

func TestStmts_PayloadRoundtrip(t *testing.T) {
	stmts := NewStmts(0)
	span := source.Span{Start: 0, End: 10}

	letID := stmts.NewLet(span, source.StringID(1), source.Span{Start: 4, End: 5}, ExprID(7))
	data, ok := stmts.Let(letID)
	if !ok || data.Value != ExprID(7) {
		t.Fatalf("Let payload = %v, %v", data, ok)
	}
	if _, ok := stmts.Expr(letID); ok {
		t.Error("Expr() accessor matched a let statement")
	}

	exprStmt := stmts.NewExpr(span, ExprID(3))
	if data, ok := stmts.Expr(exprStmt); !ok || data.Expr != ExprID(3) {
		t.Errorf("Expr payload = %v, %v", data, ok)
	}
}

func TestBuilder_PushStmt(t *testing.T) {
	b := NewBuilder(Hints{})
	fileID := b.Files.New(source.Span{})

	s1 := b.Stmts.NewBad(source.Span{})
	s2 := b.Stmts.NewBad(source.Span{})
	b.PushStmt(fileID, s1)
	b.PushStmt(fileID, s2)

	got := b.Files.Get(fileID).Stmts
	if len(got) != 2 || got[0] != s1 || got[1] != s2 {
		t.Errorf("Stmts = %v, want [%v %v] in order", got, s1, s2)
	}
}
