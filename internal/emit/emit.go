// Package emit turns a validated Ember AST into JavaScript source text.
// Эмиттер — stateless обход дерева: одна строка вывода на statement,
// целые литералы получают BigInt-суффикс 'n'.
package emit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ember/internal/ast"
	"ember/internal/source"
)

// ErrBadNode reports a placeholder node in the AST. Дерево с placeholder'ами
// уже несёт парсерные диагностики и кодогенерации не подлежит.
var ErrBadNode = errors.New("emit: AST contains parse placeholders")

type Emitter struct {
	builder *ast.Builder
	buf     strings.Builder
}

// File emits the whole statement sequence of the file.
func File(builder *ast.Builder, fileID ast.FileID) (string, error) {
	e := &Emitter{builder: builder}
	file := builder.Files.Get(fileID)
	if file == nil {
		return "", nil
	}
	for _, stmtID := range file.Stmts {
		if err := e.emitStmt(stmtID); err != nil {
			return "", err
		}
	}
	return e.buf.String(), nil
}

func (e *Emitter) emitStmt(stmtID ast.StmtID) error {
	stmt := e.builder.Stmts.Get(stmtID)
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := e.builder.Stmts.Expr(stmtID)
		text, err := e.emitExpr(data.Expr)
		if err != nil {
			return err
		}
		e.buf.WriteString(text)
		e.buf.WriteString(";\n")
		return nil

	case ast.StmtLet:
		data, _ := e.builder.Stmts.Let(stmtID)
		value, err := e.emitExpr(data.Value)
		if err != nil {
			return err
		}
		name := e.builder.StringsInterner.MustLookup(data.Name)
		fmt.Fprintf(&e.buf, "let %s = %s;\n", name, value)
		return nil

	case ast.StmtBad:
		return ErrBadNode
	}
	return fmt.Errorf("emit: unknown statement kind %v", stmt.Kind)
}

func (e *Emitter) emitExpr(exprID ast.ExprID) (string, error) {
	expr := e.builder.Exprs.Get(exprID)
	if expr == nil {
		return "", ErrBadNode
	}
	switch expr.Kind {
	case ast.ExprIntLit:
		data, _ := e.builder.Exprs.IntLit(exprID)
		return data.Value.String() + "n", nil

	case ast.ExprFloatLit:
		data, _ := e.builder.Exprs.FloatLit(exprID)
		return strconv.FormatFloat(data.Value, 'g', -1, 64), nil

	case ast.ExprIdent:
		data, _ := e.builder.Exprs.Ident(exprID)
		if data.Name == source.NoStringID {
			return "", ErrBadNode
		}
		return e.builder.StringsInterner.MustLookup(data.Name), nil

	case ast.ExprAdd:
		// сложение всегда в скобках: самый консервативный вариант
		// относительно приоритетов целевого языка
		data, _ := e.builder.Exprs.Add(exprID)
		left, err := e.emitExpr(data.Left)
		if err != nil {
			return "", err
		}
		right, err := e.emitExpr(data.Right)
		if err != nil {
			return "", err
		}
		return "(" + left + " + " + right + ")", nil

	case ast.ExprGroup:
		data, _ := e.builder.Exprs.Group(exprID)
		inner, err := e.emitExpr(data.Inner)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case ast.ExprCall:
		data, _ := e.builder.Exprs.Call(exprID)
		callee, err := e.emitExpr(data.Callee)
		if err != nil {
			return "", err
		}
		args := make([]string, 0, len(data.Args))
		for _, argID := range data.Args {
			arg, err := e.emitExpr(argID)
			if err != nil {
				return "", err
			}
			args = append(args, arg)
		}
		return callee + "(" + strings.Join(args, ", ") + ")", nil

	case ast.ExprBad:
		return "", ErrBadNode
	}
	return "", fmt.Errorf("emit: unknown expression kind %v", expr.Kind)
}
