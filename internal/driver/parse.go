package driver

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when the caller passes 0.
const DefaultMaxDiagnostics = 100

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse reads a file and parses its statement sequence.
// Возвращает best-effort AST вместе с диагностиками: этот уровень не
// «бросает» парсерные ошибки, он для тулинга, которому нужен AST всегда.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics)
}

// ParseString parses an in-memory source string.
func ParseString(name, src string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	result, err := parseFile(fs, fileID, maxDiagnostics)
	if err != nil {
		// parseFile ошибается только на кривом maxDiagnostics
		panic(err)
	}
	return result
}

// ParseExprString parses a single full expression from a string.
func ParseExprString(name, src string, maxDiagnostics int) (ast.ExprID, *ParseResult) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	file := fs.Get(fileID)

	bag, opts, err := parserOptions(maxDiagnostics)
	if err != nil {
		panic(err)
	}
	builder := ast.NewBuilder(ast.Hints{})
	exprID, result := parser.ParseExpr(fs, file, builder, opts)

	return exprID, &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag, opts, err := parserOptions(maxDiagnostics)
	if err != nil {
		return nil, err
	}
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, file, builder, opts)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}

func parserOptions(maxDiagnostics int) (*diag.Bag, parser.Options, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, parser.Options{}, fmt.Errorf("max diagnostics overflow: %w", err)
	}
	bag := diag.NewBag(maxDiagnostics)
	return bag, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	}, nil
}
