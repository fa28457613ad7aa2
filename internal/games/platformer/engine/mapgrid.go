package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMap is returned when map data does not describe a usable grid.
var ErrInvalidMap = errors.New("engine: invalid map")

// MapGrid is the level's tile grid plus its derived collision grid.
//
// Cells are addressed as (x, y) with x growing right and y growing up, so
// y=0 is the bottom row. Cell (x, y) covers [x, x+1) x [y, y+1) in world
// units. Both arrays are stored column-major, index x*height + y.
type MapGrid struct {
	width   int
	height  int
	tiles   []TileType
	collide []bool
}

// NewMapGrid builds a grid from rows in file order: rows[0] is the top row
// of the level and rows[r][c] is column c. The data is transposed and
// flipped vertically so that Tile(x, y) reads rows[height-1-y][x].
func NewMapGrid(width, height int, rows [][]int) (*MapGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMap, width, height)
	}
	if len(rows) != height {
		return nil, fmt.Errorf("%w: got %d rows, declared height %d", ErrInvalidMap, len(rows), height)
	}

	g := &MapGrid{
		width:   width,
		height:  height,
		tiles:   make([]TileType, width*height),
		collide: make([]bool, width*height),
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, declared width %d", ErrInvalidMap, r, len(row), width)
		}
		y := height - 1 - r
		for x, v := range row {
			if v < 0 || v > MaxMapValue {
				return nil, fmt.Errorf("%w: value %d at row %d column %d", ErrInvalidMap, v, r, x)
			}
			t := TileType(v)
			g.tiles[x*height+y] = t
			g.collide[x*height+y] = t.Collidable()
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *MapGrid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *MapGrid) Height() int {
	return g.height
}

func (g *MapGrid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return x*g.height + y, true
}

// Tile returns the loaded value of a cell. Out-of-range cells are empty.
func (g *MapGrid) Tile(x, y int) TileType {
	i, ok := g.index(x, y)
	if !ok {
		return TileEmpty
	}
	return g.tiles[i]
}

// Collidable reports whether a cell blocks movement.
// Out-of-range cells never do: the map edge is an open boundary.
func (g *MapGrid) Collidable(x, y int) bool {
	i, ok := g.index(x, y)
	if !ok {
		return false
	}
	return g.collide[i]
}

// CollidableAt reports whether the cell containing world point (x, y) blocks.
func (g *MapGrid) CollidableAt(x, y float64) bool {
	return g.Collidable(cellOf(x), cellOf(y))
}

// Count returns how many cells hold tile type t.
func (g *MapGrid) Count(t TileType) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *MapGrid) Clone() *MapGrid {
	c := &MapGrid{
		width:   g.width,
		height:  g.height,
		tiles:   make([]TileType, len(g.tiles)),
		collide: make([]bool, len(g.collide)),
	}
	copy(c.tiles, g.tiles)
	copy(c.collide, g.collide)
	return c
}

// cellOf maps a world coordinate to the index of the cell containing it.
func cellOf(c float64) int {
	return int(math.Floor(c))
}
