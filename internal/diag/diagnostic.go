package diag

import (
	"ember/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}
