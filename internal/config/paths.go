package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the locations the engine touches on disk.
type Paths struct {
	DataDir string
}

// NewPaths builds the path set from the configuration, creating the data
// directory if it does not exist yet.
func NewPaths(cfg *Config) (*Paths, error) {
	dir := cfg.DataDir
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = filepath.Join(wd, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Paths{DataDir: dir}, nil
}

// DataFile returns the full path of a file inside the data directory.
func (p *Paths) DataFile(name string) string {
	return filepath.Join(p.DataDir, name)
}

// ListDataFiles returns the names of the supported data files currently in
// the data directory, in directory order.
func (p *Paths) ListDataFiles() ([]string, error) {
	entries, err := os.ReadDir(p.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".csv", ".txt", ".xlsx", ".xls", ".json", ".parquet":
			names = append(names, e.Name())
		}
	}
	return names, nil
}
