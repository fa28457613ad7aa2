// Package engine implements the platformer's gameplay core: the tile grid,
// the instance pool, grid and swept-box collision, enemy patrol logic and
// the particle trail. It is UI-agnostic and deterministic for a given seed.
package engine

import "github.com/vovakirdan/tui-platformer/internal/core"

// TileType identifies what a map cell holds and which archetype an
// instance was spawned from.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileWall
	TileHero
	TileEnemy
	TileCoin
	TileParticle // never stored in a map, only used by particle templates

	tileTypeCount
)

// MaxMapValue is the largest value a map file may contain.
const MaxMapValue = int(TileCoin)

// String returns the string representation of a tile type.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileHero:
		return "Hero"
	case TileEnemy:
		return "Enemy"
	case TileCoin:
		return "Coin"
	case TileParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// Collidable reports whether cells of this type block movement.
func (t TileType) Collidable() bool {
	return t == TileWall
}

// Shape is the footprint a renderer should use for a template.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeRound
)

// Template is the immutable visual descriptor shared by every instance of
// one type. Templates are created once per session and never mutated.
type Template struct {
	Type  TileType
	Glyph rune
	Color core.Color
	Shape Shape
}

// TemplateSet holds one template per spawnable tile type.
type TemplateSet struct {
	byType    [tileTypeCount]*Template
	particles []*Template
}

// DefaultTemplates returns the standard look of every archetype.
func DefaultTemplates() TemplateSet {
	var s TemplateSet
	s.byType[TileWall] = &Template{Type: TileWall, Glyph: '█', Color: core.ColorBlue}
	s.byType[TileHero] = &Template{Type: TileHero, Glyph: '@', Color: core.ColorBrightGreen}
	s.byType[TileEnemy] = &Template{Type: TileEnemy, Glyph: 'M', Color: core.ColorBrightRed}
	s.byType[TileCoin] = &Template{Type: TileCoin, Glyph: 'o', Color: core.ColorBrightYellow, Shape: ShapeRound}
	s.particles = []*Template{
		{Type: TileParticle, Glyph: '*', Color: core.ColorYellow, Shape: ShapeRound},
		{Type: TileParticle, Glyph: '+', Color: core.ColorOrange, Shape: ShapeRound},
		{Type: TileParticle, Glyph: '.', Color: core.ColorGray, Shape: ShapeRound},
	}
	s.byType[TileParticle] = s.particles[0]
	return s
}

// Get returns the template for t, or nil for types that never spawn.
func (s TemplateSet) Get(t TileType) *Template {
	if t >= tileTypeCount {
		return nil
	}
	return s.byType[t]
}

// Particles returns the particle archetypes.
func (s TemplateSet) Particles() []*Template {
	return s.particles
}
