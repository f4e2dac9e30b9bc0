package source

import (
	"path/filepath"
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the offset of every line terminator.
// После normalizeCRLF остаются только '\n' и одиночные '\r';
// каждый из них завершает ровно одну строку.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' || b == '\r' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// lineOfOffset возвращает 0-based номер строки, содержащей байт off.
func lineOfOffset(lineIdx []uint32, off uint32) uint32 {
	// бинпоиск: находим наименьший lineIdx[i] >= off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}

// lineStart возвращает байтовый offset начала 0-based строки line.
func lineStart(lineIdx []uint32, line uint32) uint32 {
	if line == 0 {
		return 0
	}
	return lineIdx[line-1] + 1
}

// utf16Len считает длину фрагмента в UTF-16 code units.
// Невалидный UTF-8 считаем по байту за единицу.
func utf16Len(fragment []byte) uint32 {
	var n uint32
	for i := 0; i < len(fragment); {
		r, sz := utf8.DecodeRune(fragment[i:])
		if r == utf8.RuneError && sz <= 1 {
			n++
			i++
			continue
		}
		n += uint32(len(utf16.Encode([]rune{r})))
		i += sz
	}
	return n
}

// toLineCol переводит байтовый offset в 1-based строку и колонку.
// Колонка измеряется в UTF-16 code units от начала строки.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	line := lineOfOffset(lineIdx, off)
	start := lineStart(lineIdx, line)
	if off > uint32(len(content)) {
		off = uint32(len(content))
	}
	col := utf16Len(content[start:off])
	return LineCol{Line: line + 1, Col: col + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
