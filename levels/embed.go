package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml *.csv
var levelsFS embed.FS

// DiskDir is where on-disk overrides of embedded level files live.
const DiskDir = "levels"

// Level describes one map: grid dimensions, the collision data file and the
// background image it pairs with. Cols and Rows are declared here rather
// than derived from the background image, and are validated against the
// collision data on load.
type Level struct {
	Name       string `yaml:"name"`
	TileSize   int    `yaml:"tile_size"`
	Cols       int    `yaml:"cols"`
	Rows       int    `yaml:"rows"`
	Collision  string `yaml:"collision"`
	Background string `yaml:"background"`
	SpawnX     int    `yaml:"spawn_x"`
	SpawnY     int    `yaml:"spawn_y"`
}

// Load reads and validates a level definition by basename (".yaml" optional).
func Load(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	data, err := read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.TileSize <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid tile size %d", name, lvl.TileSize)
	}
	if lvl.Cols <= 0 || lvl.Rows <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid dimensions %dx%d", name, lvl.Cols, lvl.Rows)
	}
	if lvl.Collision == "" || lvl.Background == "" {
		return nil, fmt.Errorf("levels: %s: missing collision or background file", name)
	}
	return &lvl, nil
}

// ReadFile returns a data file referenced by a level (e.g. its collision
// csv), preferring an on-disk override.
func ReadFile(name string) ([]byte, error) {
	return read(name)
}

func read(name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, name)); err == nil {
		return data, nil
	}
	return levelsFS.ReadFile(name)
}
