package engine

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows [][]int) *MapGrid {
	t.Helper()
	g, err := NewMapGrid(len(rows[0]), len(rows), rows)
	if err != nil {
		t.Fatalf("NewMapGrid() error = %v", err)
	}
	return g
}

func TestNewMapGridOrientation(t *testing.T) {
	// File order: first row is the top of the level.
	rows := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	}
	g := mustGrid(t, rows)

	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", g.Width(), g.Height())
	}

	// expected[x][y], y=0 at the bottom.
	expected := [3][3]bool{
		{true, false, true},
		{false, true, false},
		{false, false, true},
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if got := g.Collidable(x, y); got != expected[x][y] {
				t.Errorf("Collidable(%d, %d) = %v, expected %v", x, y, got, expected[x][y])
			}
			if got, want := g.Collidable(x, y), g.Tile(x, y) == TileWall; got != want {
				t.Errorf("Collidable(%d, %d) = %v, but Tile is %v", x, y, got, g.Tile(x, y))
			}
		}
	}
}

func TestNewMapGridNonSquare(t *testing.T) {
	rows := [][]int{
		{0, 0, 0, 4},
		{2, 0, 3, 1},
	}
	g := mustGrid(t, rows)

	if g.Width() != 4 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", g.Width(), g.Height())
	}
	tests := []struct {
		x, y int
		want TileType
	}{
		{0, 0, TileHero},
		{2, 0, TileEnemy},
		{3, 0, TileWall},
		{3, 1, TileCoin},
		{0, 1, TileEmpty},
	}
	for _, tt := range tests {
		if got := g.Tile(tt.x, tt.y); got != tt.want {
			t.Errorf("Tile(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := g.Count(TileWall); got != 1 {
		t.Errorf("Count(Wall) = %d, expected 1", got)
	}
}

func TestNewMapGridErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rows          [][]int
	}{
		{"zero width", 0, 1, [][]int{{}}},
		{"missing row", 2, 2, [][]int{{0, 0}}},
		{"short row", 2, 2, [][]int{{0, 0}, {0}}},
		{"value too large", 2, 1, [][]int{{0, 5}}},
		{"negative value", 2, 1, [][]int{{-1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapGrid(tt.width, tt.height, tt.rows)
			if !errors.Is(err, ErrInvalidMap) {
				t.Errorf("NewMapGrid() error = %v, expected ErrInvalidMap", err)
			}
		})
	}
}

func TestMapGridOutOfRange(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1},
		{1, 1},
	})
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, -100}} {
		if g.Collidable(c[0], c[1]) {
			t.Errorf("Collidable(%d, %d) = true, expected open boundary", c[0], c[1])
		}
		if got := g.Tile(c[0], c[1]); got != TileEmpty {
			t.Errorf("Tile(%d, %d) = %v, expected Empty", c[0], c[1], got)
		}
	}
	if !g.CollidableAt(1.99, 0.01) {
		t.Error("CollidableAt(1.99, 0.01) = false, expected true")
	}
	if g.CollidableAt(-0.01, 0.5) {
		t.Error("CollidableAt(-0.01, 0.5) = true, expected false")
	}
}

func TestMapGridClone(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 2}})
	c := g.Clone()

	if c.Width() != g.Width() || c.Height() != g.Height() {
		t.Fatalf("Clone() size = %dx%d, expected %dx%d", c.Width(), c.Height(), g.Width(), g.Height())
	}
	if &c.tiles[0] == &g.tiles[0] || &c.collide[0] == &g.collide[0] {
		t.Fatal("Clone() shares storage with the original")
	}
	c.tiles[0], c.collide[0] = TileEmpty, false
	if g.Tile(0, 0) != TileWall || !g.Collidable(0, 0) {
		t.Error("modifying the clone changed the original")
	}
}
