package config

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed config.yaml
var configFS embed.FS

// DiskDir is where an on-disk override of the embedded config lives,
// relative to the working directory. The fsnotify watcher points here.
const DiskDir = "config"

// read prefers an on-disk copy over the embedded one so the file can be
// edited (and hot-reloaded) without rebuilding.
func read(name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, name)); err == nil {
		return data, nil
	}
	return configFS.ReadFile(name)
}
