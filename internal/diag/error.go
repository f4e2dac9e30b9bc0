package diag

import (
	"fmt"
)

// Error — составная ошибка прохода: упорядоченный, непустой список
// диагностик, поднятый один раз после полного завершения прохода.
// Проходы никогда не бросают её посреди работы.
type Error struct {
	Stage string // "parse", "typecheck", "emit"
	Diags []Diagnostic
}

// AsError wraps the bag's diagnostics into *Error, or returns nil if the bag
// holds no errors.
func AsError(stage string, bag *Bag) error {
	if bag == nil || !bag.HasErrors() {
		return nil
	}
	diags := make([]Diagnostic, bag.Len())
	copy(diags, bag.Items())
	return &Error{Stage: stage, Diags: diags}
}

func (e *Error) Error() string {
	if len(e.Diags) == 1 {
		return fmt.Sprintf("%s: %s", e.Stage, e.Diags[0].Message)
	}
	return fmt.Sprintf("%s: %s (and %d more diagnostics)", e.Stage, e.Diags[0].Message, len(e.Diags)-1)
}
