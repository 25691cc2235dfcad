package readme

import (
	"fmt"
	"os"
)

// Splice returns doc with the marker region replaced by content. The
// markers stay and keep their own lines; everything outside the region
// is preserved byte for byte. changed is false when the region already
// equals content, so reruns produce no diff.
func Splice(doc, content string) (updated string, changed bool, err error) {
	reg, err := findRegion(doc)
	if err != nil {
		return "", false, err
	}

	replacement := "\n" + content + "\n"
	if doc[reg.start:reg.end] == replacement {
		return doc, false, nil
	}

	return doc[:reg.start] + replacement + doc[reg.end:], true, nil
}

// UpdateFile splices content into the document at path, writing the
// result atomically. An unchanged region leaves the file untouched.
func UpdateFile(path, content string) (changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated, changed, err := Splice(string(data), content)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if !changed {
		return false, nil
	}

	if err := WriteFile(path, updated); err != nil {
		return false, err
	}

	return true, nil
}

// WriteFile writes a whole document atomically via a temp file rename.
func WriteFile(path, content string) error {
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
