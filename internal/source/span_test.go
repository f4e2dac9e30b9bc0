package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{
			name: "disjoint spans",
			a:    Span{File: 1, Start: 0, End: 1},
			b:    Span{File: 1, Start: 4, End: 5},
			want: Span{File: 1, Start: 0, End: 5},
		},
		{
			name: "contained span",
			a:    Span{File: 1, Start: 0, End: 10},
			b:    Span{File: 1, Start: 3, End: 5},
			want: Span{File: 1, Start: 0, End: 10},
		},
		{
			name: "extends to the left",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 2, End: 6},
			want: Span{File: 1, Start: 2, End: 10},
		},
		{
			name: "different file is ignored",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 2, Start: 0, End: 100},
			want: Span{File: 1, Start: 5, End: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	empty := Span{File: 1, Start: 5, End: 5}
	if !empty.Empty() || empty.Len() != 0 {
		t.Errorf("empty span: Empty() = %v, Len() = %d", empty.Empty(), empty.Len())
	}
	full := Span{File: 1, Start: 5, End: 9}
	if full.Empty() || full.Len() != 4 {
		t.Errorf("full span: Empty() = %v, Len() = %d", full.Empty(), full.Len())
	}
}

func TestSpan_ZeroideToEnd(t *testing.T) {
	s := Span{File: 3, Start: 5, End: 9}
	got := s.ZeroideToEnd()
	want := Span{File: 3, Start: 9, End: 9}
	if got != want {
		t.Errorf("ZeroideToEnd() = %v, want %v", got, want)
	}
}
