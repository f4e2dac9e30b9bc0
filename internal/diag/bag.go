package diag

import (
	"math"

	"fortio.org/safecast"
)

type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag создаёт Bag с лимитом max диагностик.
// Лимит вне диапазона uint16 зажимается, а не обрезается: Bag с max=0
// молча терял бы все диагностики.
func NewBag(max int) *Bag {
	limit := clampLimit(max)
	return &Bag{
		items: make([]Diagnostic, 0, limit),
		max:   limit,
	}
}

func clampLimit(n int) uint16 {
	limit, err := safecast.Conv[uint16](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return math.MaxUint16
	}
	return limit
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
// Порядок — строго порядок обнаружения; Bag никогда не пересортировывает.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if limit := clampLimit(len(b.items) + len(other.items)); limit > b.max {
		b.max = limit
	}
	b.items = append(b.items, other.items...)
}
