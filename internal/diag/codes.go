package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические (зарезервируем; лексер тотален и пока ничего не репортит)
	LexInfo Code = 1000

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectEquals     Code = 2003
	SynExpectSemicolon  Code = 2004
	SynExpectExpression Code = 2005
	SynExpectEOF        Code = 2006
	SynBadArgSeparator  Code = 2007

	// Семантические
	SemaInfo               Code = 3000
	SemaInvalidAddOperands Code = 3001
)

// ID возвращает стабильный строковый идентификатор кода, например "EMB2001".
func (c Code) ID() string {
	return fmt.Sprintf("EMB%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "Unknown"
	case LexInfo:
		return "LexInfo"
	case SynInfo:
		return "SynInfo"
	case SynUnexpectedToken:
		return "SynUnexpectedToken"
	case SynExpectIdentifier:
		return "SynExpectIdentifier"
	case SynExpectEquals:
		return "SynExpectEquals"
	case SynExpectSemicolon:
		return "SynExpectSemicolon"
	case SynExpectExpression:
		return "SynExpectExpression"
	case SynExpectEOF:
		return "SynExpectEOF"
	case SynBadArgSeparator:
		return "SynBadArgSeparator"
	case SemaInfo:
		return "SemaInfo"
	case SemaInvalidAddOperands:
		return "SemaInvalidAddOperands"
	}
	return c.ID()
}
