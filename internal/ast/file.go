package ast

import (
	"ember/internal/source"
)

// File is the root node: an ordered statement sequence.
type File struct {
	Span  source.Span
	Stmts []StmtID
}

// Files manages allocation of file nodes.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: span}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
