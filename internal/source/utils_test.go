package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{
			name:    "no carriage returns",
			input:   "let x = 1;\nx;\n",
			want:    "let x = 1;\nx;\n",
			changed: false,
		},
		{
			name:    "windows line endings",
			input:   "let x = 1;\r\nx;\r\n",
			want:    "let x = 1;\nx;\n",
			changed: true,
		},
		{
			name:    "lone carriage return survives",
			input:   "a\rb",
			want:    "a\rb",
			changed: false,
		},
		{
			name:    "mixed endings",
			input:   "a\r\nb\rc\n",
			want:    "a\nb\rc\n",
			changed: true,
		},
		{
			name:    "empty input",
			input:   "",
			want:    "",
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF() = %q, want %q", got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF() changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint32
	}{
		{name: "empty", input: "", want: []uint32{}},
		{name: "single line no terminator", input: "abc", want: []uint32{}},
		{name: "two lines", input: "ab\ncd", want: []uint32{2}},
		{name: "trailing newline", input: "ab\n", want: []uint32{2}},
		{name: "lone CR terminates a line", input: "ab\rcd\n", want: []uint32{2, 5}},
		{name: "consecutive newlines", input: "\n\n", want: []uint32{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("buildLineIndex() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("buildLineIndex()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{name: "ascii", input: "let x", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "bmp rune is one unit", input: "π", want: 1},
		{name: "emoji is a surrogate pair", input: "😀", want: 2},
		{name: "mixed", input: "a😀b", want: 4},
		{name: "invalid byte counts as one unit", input: "a\xffb", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utf16Len([]byte(tt.input)); got != tt.want {
				t.Errorf("utf16Len(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\n😀x\ncd")
	lineIdx := buildLineIndex(content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "end of first line", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "start of second line", off: 3, want: LineCol{Line: 2, Col: 1}},
		// 😀 занимает 4 байта и 2 UTF-16 единицы
		{name: "after emoji", off: 7, want: LineCol{Line: 2, Col: 3}},
		{name: "third line", off: 9, want: LineCol{Line: 3, Col: 1}},
		{name: "past the end clamps", off: 100, want: LineCol{Line: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(content, lineIdx, tt.off)
			if got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestLineOfOffset(t *testing.T) {
	// "ab\ncd\nef"
	lineIdx := []uint32{2, 5}
	cases := []struct {
		off  uint32
		want uint32
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {8, 2},
	}
	for _, c := range cases {
		if got := lineOfOffset(lineIdx, c.off); got != c.want {
			t.Errorf("lineOfOffset(%d) = %d, want %d", c.off, got, c.want)
		}
	}
}
