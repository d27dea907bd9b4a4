// Package gamedata loads maze themes from embedded JSON and optional files on disk.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Built-in themes, compiled into the binary.
//
//go:embed themes.json
var dataFS embed.FS

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	return loadFS[T](dataFS, filename)
}

// LoadFile reads and unmarshals a JSON file from disk, for user supplied data.
func LoadFile[T any](path string) (T, error) {
	return loadFS[T](os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func loadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
