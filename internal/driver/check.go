package driver

import (
	"ember/internal/diag"
	"ember/internal/sema"
)

type CheckResult struct {
	Parse *ParseResult
	Sema  sema.Result
	Bag   *diag.Bag // семантические диагностики; nil если до sema не дошли
}

// Check parses and typechecks a file.
// Каноничный "parse-then-typecheck" вход: любая парсерная диагностика
// поднимается сразу составной ошибкой, до типов дело не доходит.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	parsed, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return checkParsed(parsed, maxDiagnostics)
}

// CheckString parses and typechecks an in-memory source string.
func CheckString(name, src string, maxDiagnostics int) (*CheckResult, error) {
	return checkParsed(ParseString(name, src, maxDiagnostics), maxDiagnostics)
}

func checkParsed(parsed *ParseResult, maxDiagnostics int) (*CheckResult, error) {
	result := &CheckResult{Parse: parsed}
	if err := diag.AsError("parse", parsed.Bag); err != nil {
		return result, err
	}

	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	semaBag := diag.NewBag(maxDiagnostics)
	result.Bag = semaBag
	result.Sema = sema.Check(parsed.Builder, parsed.FileID, sema.Options{
		Reporter: &diag.BagReporter{Bag: semaBag},
	})
	if err := diag.AsError("typecheck", semaBag); err != nil {
		return result, err
	}
	return result, nil
}
