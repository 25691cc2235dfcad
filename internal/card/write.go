package card

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths returns the overview and languages file paths for one theme
// under dir.
func Paths(dir, theme string) (overview, languages string) {
	return filepath.Join(dir, fmt.Sprintf("overview-%s.svg", theme)),
		filepath.Join(dir, fmt.Sprintf("languages-%s.svg", theme))
}

// WriteFile writes a rendered card atomically: temp file in the target
// directory, then rename. Missing directories are created. A README
// <img> never sees a half-written SVG this way.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
