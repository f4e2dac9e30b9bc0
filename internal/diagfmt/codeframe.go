// Package diagfmt renders diagnostics and tokens for human consumption.
// Текстовый формат диагностик — контракт совместимости: менять его можно
// только синхронно с golden-снапшотами потребителей.
package diagfmt

import (
	"fmt"
	"strings"

	"ember/internal/source"
)

const frameContext = 2 // строк контекста вокруг span'а с каждой стороны

// CodeFrame renders the source window around a span: line numbers, a '|'
// separator, and caret markers under every line the span touches.
func CodeFrame(fs *source.FileSet, span source.Span) string {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	// внутри работаем с 0-based строками/колонками
	startLine := start.Line - 1
	startCol := start.Col - 1
	endLine := end.Line - 1
	endCol := end.Col - 1

	lastLine := file.LineCount() - 1
	firstShown := uint32(0)
	if startLine > frameContext {
		firstShown = startLine - frameContext
	}
	lastShown := endLine + frameContext
	if lastShown > lastLine {
		lastShown = lastLine
	}

	width := len(fmt.Sprintf("%d", lastShown+1))

	var sb strings.Builder
	for line := firstShown; line <= lastShown; line++ {
		fmt.Fprintf(&sb, "%*d | %s\n", width, line+1, file.Line(line))

		if line < startLine || line > endLine {
			continue
		}
		// хвостовая строка с нулевым пересечением маркера не получает
		if line == endLine && line > startLine && endCol == 0 {
			continue
		}

		fromCol := uint32(0)
		if line == startLine {
			fromCol = startCol
		}
		toCol := file.LineWidth(line)
		if line == endLine {
			toCol = endCol
		}
		carets := 1 // пустой span всё равно помечаем
		if toCol > fromCol {
			carets = int(toCol - fromCol)
		}

		sb.WriteString(strings.Repeat(" ", width))
		sb.WriteString(" | ")
		sb.WriteString(strings.Repeat(" ", int(fromCol)))
		sb.WriteString(strings.Repeat("^", carets))
		sb.WriteByte('\n')
	}
	return sb.String()
}
