package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ember/internal/diag"
	"ember/internal/source"
)

// RenderDiagnostic renders one diagnostic block:
// "{line}:{col}: {message}", пустая строка, code frame, пустая строка.
// Повторный рендер того же диагноза даёт байт-в-байт тот же текст.
func RenderDiagnostic(fs *source.FileSet, d diag.Diagnostic) string {
	pos := fs.ResolveStart(d.Primary)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d: %s\n\n", pos.Line, pos.Col, d.Message)
	sb.WriteString(CodeFrame(fs, d.Primary))
	sb.WriteByte('\n')
	return sb.String()
}

// Pretty выводит диагностики из Bag в порядке обнаружения.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	for _, d := range bag.Items() {
		if _, err := io.WriteString(w, RenderDiagnostic(fs, d)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders a composite pass error, if it is one.
// Прочие ошибки возвращаются как есть строкой.
func RenderError(fs *source.FileSet, err error) string {
	var passErr *diag.Error
	if !errors.As(err, &passErr) {
		return err.Error() + "\n"
	}
	var sb strings.Builder
	for _, d := range passErr.Diags {
		sb.WriteString(RenderDiagnostic(fs, d))
	}
	return sb.String()
}
