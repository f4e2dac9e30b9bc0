// Package driver wires the compiler phases into caller-facing pipelines.
package driver

import (
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads a file from disk and scans it into tokens.
// Токенизация тотальна: ошибок не бывает, кроме ошибок чтения файла.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Scan(file),
	}, nil
}

// TokenizeString scans an in-memory source string.
func TokenizeString(name, src string) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Scan(file),
	}
}
