package formats

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	input := `Width 3
Height 2
1 0 2
4 3 1
`
	lvl, err := ParseText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	if lvl.Width != 3 || lvl.Height != 2 {
		t.Errorf("size = %dx%d, expected 3x2", lvl.Width, lvl.Height)
	}
	expected := [][]int{{1, 0, 2}, {4, 3, 1}}
	if !reflect.DeepEqual(lvl.Rows, expected) {
		t.Errorf("Rows = %v, expected %v", lvl.Rows, expected)
	}
}

func TestParseTextLayoutFree(t *testing.T) {
	// Only the token order matters, not the line breaks.
	lvl, err := ParseText(strings.NewReader("W 2 H 2 1 1\n0\n0 trailing"))
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	expected := [][]int{{1, 1}, {0, 0}}
	if !reflect.DeepEqual(lvl.Rows, expected) {
		t.Errorf("Rows = %v, expected %v", lvl.Rows, expected)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing height", "Width 2"},
		{"width not a number", "Width two\nHeight 2\n"},
		{"zero height", "Width 2\nHeight 0\n"},
		{"too few tiles", "Width 2\nHeight 2\n1 1 1"},
		{"tile not a number", "Width 1\nHeight 1\nx"},
		{"huge width", "Width 1000000000000\nHeight 1\n0"},
		{"height over limit", "Width 1\nHeight 1025\n0"},
		{"too many tiles", "Width 1024\nHeight 1024\n0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseText() error = %v, expected ErrMalformed", err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: cave
name: The Cave
size: {w: 4, h: 2}
rows:
  - "2 0 4 0"
  - "1111"
metadata:
  author: test
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.ID != "cave" || lvl.Name != "The Cave" {
		t.Errorf("ID/Name = %q/%q", lvl.ID, lvl.Name)
	}
	expected := [][]int{{2, 0, 4, 0}, {1, 1, 1, 1}}
	if !reflect.DeepEqual(lvl.Rows, expected) {
		t.Errorf("Rows = %v, expected %v", lvl.Rows, expected)
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("Metadata = %v", lvl.Metadata)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rows", "id: x\n"},
		{"ragged rows", "rows: [\"10\", \"111\"]\n"},
		{"bad digit", "rows: [\"1a\"]\n"},
		{"size mismatch", "size: {w: 3, h: 1}\nrows: [\"11\"]\n"},
		{"empty row", "rows: [\"\"]\n"},
		{"row over limit", "rows: [\"" + strings.Repeat("1", MaxDimension+1) + "\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseYAML() error = %v, expected ErrMalformed", err)
			}
		})
	}
}
