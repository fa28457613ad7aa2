package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
// Each entry of Rows is one line of the map, top first, written as tile
// digits; spaces inside a row are ignored.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions. When set it must match the rows.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	if len(yl.Rows) > MaxDimension {
		return Level{}, fmt.Errorf("%w: %d rows exceed the %d row limit", ErrMalformed, len(yl.Rows), MaxDimension)
	}

	rows := make([][]int, len(yl.Rows))
	for y, line := range yl.Rows {
		line = strings.ReplaceAll(line, " ", "")
		row := make([]int, 0, len(line))
		for x, ch := range line {
			if ch < '0' || ch > '9' {
				return Level{}, fmt.Errorf("%w: row %d column %d: %q is not a tile digit", ErrMalformed, y, x, ch)
			}
			row = append(row, int(ch-'0'))
		}
		if y > 0 && len(row) != len(rows[0]) {
			return Level{}, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrMalformed, y, len(row), len(rows[0]))
		}
		rows[y] = row
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    len(rows[0]),
		Height:   len(rows),
		Rows:     rows,
		Metadata: yl.Metadata,
	}
	if yl.Size.W != 0 || yl.Size.H != 0 {
		if yl.Size.W != level.Width || yl.Size.H != level.Height {
			return Level{}, fmt.Errorf("%w: size %dx%d does not match rows %dx%d",
				ErrMalformed, yl.Size.W, yl.Size.H, level.Width, level.Height)
		}
	}
	if err := checkSize(level.Width, level.Height); err != nil {
		return Level{}, err
	}
	return level, nil
}
