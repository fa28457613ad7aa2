package core

import (
	"strings"
)

// Cell is one character cell of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the game draws into. The platform turns it
// into terminal output, so games never touch the terminal directly.
// Cells are stored row by row.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a cleared screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the rectangle covering the whole screen.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions. The overlapping top-left part of the
// old content is kept; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	old, oldW := s.cells, s.width
	keep := NewRect(0, 0, s.width, s.height).Clip(NewRect(0, 0, width, height))

	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()

	for y := 0; y < keep.H; y++ {
		copy(s.cells[y*width:y*width+keep.W], old[y*oldW:y*oldW+keep.W])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell stores a cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.Bounds().Contains(x, y) {
		s.cells[y*s.width+x] = c
	}
}

// Get returns the rune at the given position, or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes an uncolored string starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r, Color: c})
		x++
	}
}

// DrawRect fills the part of r inside the screen with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	r = r.Clip(s.Bounds())
	if r.Empty() {
		return
	}
	cell := Cell{Rune: fill, Color: c}
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y*s.width+r.X : y*s.width+r.Right()]
		for x := range row {
			row[x] = cell
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of row y as a string. Rows outside the screen are
// all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}
