// Package levels loads platformer maps from text or YAML files and from the
// built-in campaign. This package depends on engine but engine does not
// depend on levels.
package levels

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

//go:embed builtin/*.txt
var builtinFS embed.FS

// Level is a loaded map with its catalogue entry.
type Level struct {
	ID       string
	Name     string
	Path     string // empty for built-in levels
	Grid     *engine.MapGrid
	Metadata map[string]string
}

// LoadMap reads a map file and builds its grid.
func LoadMap(path string) (*engine.MapGrid, error) {
	lvl, err := NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		return nil, err
	}
	return lvl.Grid, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	lvl, err := build(data, filepath.Base(path))
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	lvl.Path = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// Builtin returns the embedded campaign in play order.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("levels: reading builtin %s: %w", e.Name(), err)
		}
		lvl, err := build(data, e.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: builtin %s: %w", e.Name(), err)
		}
		levels = append(levels, lvl)
	}
	sortByID(levels)
	return levels, nil
}

// Catalogue returns the built-in levels followed by the levels found under
// dir. A directory level whose ID matches a built-in one replaces it. An
// empty dir yields only the built-in levels.
func Catalogue(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range extra {
		replaced := false
		for i := range levels {
			if levels[i].ID == lvl.ID {
				levels[i] = lvl
				replaced = true
				break
			}
		}
		if !replaced {
			levels = append(levels, lvl)
		}
	}
	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	return find(levels, id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func find(levels []Level, id string) (Level, error) {
	if i := Index(levels, id); i >= 0 {
		return levels[i], nil
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// build parses data by the extension of name and constructs the grid.
// Levels without an ID take it from the file name.
func build(data []byte, name string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(name))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}

	grid, err := engine.NewMapGrid(parsed.Width, parsed.Height, parsed.Rows)
	if err != nil {
		return Level{}, err
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(name, filepath.Ext(name))
	}
	title := parsed.Name
	if title == "" {
		title = titleFromID(id)
	}
	return Level{
		ID:       id,
		Name:     title,
		Grid:     grid,
		Metadata: parsed.Metadata,
	}, nil
}

// titleFromID turns "level2" or "ice_cave" into "Level 2" or "Ice cave".
func titleFromID(id string) string {
	var b strings.Builder
	prevDigit := false
	for i, r := range id {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevDigit = false
			continue
		case unicode.IsDigit(r) && !prevDigit && i > 0:
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevDigit = unicode.IsDigit(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func sortByID(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".map":
		return formats.ParseText(bytes.NewReader(data))
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
