// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when level data cannot be parsed.
var ErrMalformed = errors.New("formats: malformed level")

// Map size limits. Larger declared sizes are rejected before any
// allocation.
const (
	MaxDimension = 1024
	MaxTiles     = 1 << 18
)

// checkSize reports whether a width x height map is within the limits.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, width, height)
	}
	if width > MaxDimension || height > MaxDimension || width*height > MaxTiles {
		return fmt.Errorf("%w: dimensions %dx%d exceed the %d tile limit", ErrMalformed, width, height, MaxTiles)
	}
	return nil
}

// Level represents a parsed level ready for use. Rows are in file order:
// Rows[0] is the top of the level.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     [][]int
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".map", ".yaml", ".yml"}
}
