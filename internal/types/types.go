// Package types defines the builtin type kinds of the Ember language.
package types

// Kind is the type of an Ember expression.
type Kind uint8

const (
	// Ambiguous — поглощающий placeholder: тип выражения, который пока
	// нельзя определить (ссылки на необъявленные имена, ошибочные узлы).
	// Любая операция с Ambiguous операндом даёт Ambiguous без диагностики.
	Ambiguous Kind = iota
	// Int is the builtin arbitrary-precision integer type.
	Int
	// F64 is the builtin IEEE-754 double type.
	F64
)

func (k Kind) String() string {
	switch k {
	case Ambiguous:
		return "ambiguous"
	case Int:
		return "Int"
	case F64:
		return "F64"
	}
	return "type(?)"
}

// IsBuiltin reports whether the kind is a concrete builtin type.
func (k Kind) IsBuiltin() bool {
	return k == Int || k == F64
}
