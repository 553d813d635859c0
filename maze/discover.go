package maze

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// FileExt is the extension of maze description files.
const FileExt = ".txt"

// Discover lists the maze files directly inside each of dirs, sorted within
// each directory and in the order dirs are given. Missing directories are
// skipped; other I/O errors are returned.
func Discover(dirs ...string) ([]string, error) {
	var out []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("maze: discover %s: %w", dir, err)
		}
		var found []string
		for _, e := range entries {
			if e.Type().IsRegular() && filepath.Ext(e.Name()) == FileExt {
				found = append(found, filepath.Join(dir, e.Name()))
			}
		}
		slices.Sort(found)
		out = append(out, found...)
	}

	return out, nil
}
