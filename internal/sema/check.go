// Package sema implements the single-pass Ember type checker.
// Проход никогда не прерывается на первой ошибке: диагностики копятся,
// а сомнительные выражения получают поглощающий тип Ambiguous.
package sema

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
}

// Result stores semantic artefacts produced by the checker.
// ExprTypes — справочная карта для тулинга; AST не аннотируется.
type Result struct {
	ExprTypes map[ast.ExprID]types.Kind
}

// Check performs type inference over the file's statement sequence.
// Таблица имён — «рабочее» состояние одного вызова и умирает вместе с ним.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		ExprTypes: make(map[ast.ExprID]types.Kind),
	}
	if builder == nil || fileID == ast.NoFileID {
		return res
	}

	checker := typeChecker{
		builder:  builder,
		reporter: opts.Reporter,
		scope:    make(map[source.StringID]types.Kind),
		result:   &res,
	}
	checker.checkFile(fileID)
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	reporter diag.Reporter
	scope    map[source.StringID]types.Kind
	result   *Result
}

func (tc *typeChecker) checkFile(fileID ast.FileID) {
	file := tc.builder.Files.Get(fileID)
	if file == nil {
		return
	}
	for _, stmtID := range file.Stmts {
		tc.checkStmt(stmtID)
	}
}

func (tc *typeChecker) checkStmt(stmtID ast.StmtID) {
	stmt := tc.builder.Stmts.Get(stmtID)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := tc.builder.Stmts.Expr(stmtID)
		tc.checkExpr(data.Expr)
	case ast.StmtLet:
		data, _ := tc.builder.Stmts.Let(stmtID)
		valueType := tc.checkExpr(data.Value)
		// Затенение безусловно разрешено: повторный let того же имени
		// просто перекрывает прежний тип для последующих ссылок.
		if data.Name != source.NoStringID {
			tc.scope[data.Name] = valueType
		}
	case ast.StmtBad:
		// placeholder уже несёт парсерную диагностику
	}
}

func (tc *typeChecker) checkExpr(exprID ast.ExprID) types.Kind {
	if exprID == ast.NoExprID {
		return types.Ambiguous
	}
	expr := tc.builder.Exprs.Get(exprID)
	if expr == nil {
		return types.Ambiguous
	}

	var result types.Kind
	switch expr.Kind {
	case ast.ExprIntLit:
		result = types.Int

	case ast.ExprFloatLit:
		result = types.F64

	case ast.ExprIdent:
		data, _ := tc.builder.Exprs.Ident(exprID)
		if kind, ok := tc.scope[data.Name]; ok {
			result = kind
		} else {
			// необъявленное имя само по себе не ошибка
			result = types.Ambiguous
		}

	case ast.ExprAdd:
		result = tc.checkAdd(exprID, expr.Span)

	case ast.ExprGroup:
		data, _ := tc.builder.Exprs.Group(exprID)
		result = tc.checkExpr(data.Inner)

	case ast.ExprCall:
		// Функциональных типов в языке ещё нет: вызов всегда Ambiguous,
		// но операнды проверяем, чтобы поднять вложенные ошибки.
		data, _ := tc.builder.Exprs.Call(exprID)
		tc.checkExpr(data.Callee)
		for _, arg := range data.Args {
			tc.checkExpr(arg)
		}
		result = types.Ambiguous

	case ast.ExprBad:
		result = types.Ambiguous

	default:
		result = types.Ambiguous
	}

	tc.result.ExprTypes[exprID] = result
	return result
}

// checkAdd выводит тип сложения. Оба операнда считаются всегда — даже если
// внешняя операция тоже ошибётся, вложенные ошибки должны всплыть.
func (tc *typeChecker) checkAdd(exprID ast.ExprID, span source.Span) types.Kind {
	data, _ := tc.builder.Exprs.Add(exprID)
	leftType := tc.checkExpr(data.Left)
	rightType := tc.checkExpr(data.Right)

	if leftType == types.Ambiguous || rightType == types.Ambiguous {
		// Ambiguous поглощает без диагностики: нерезолвленные имена
		// не должны каскадировать ошибки вверх.
		return types.Ambiguous
	}
	if leftType == rightType {
		return leftType
	}

	tc.report(diag.SemaInvalidAddOperands, span, "Invalid types in addition")
	// Ambiguous как результат: объемлющие выражения не перерепортят
	// тот же конфликт.
	return types.Ambiguous
}

func (tc *typeChecker) report(code diag.Code, sp source.Span, msg string) {
	if tc.reporter != nil {
		tc.reporter.Report(code, diag.SevError, sp, msg)
	}
}
