package subtitle

import (
	"os"
	"path/filepath"
)

// lists the .srt and .ass files in dir in the order the directory returns
// them, unsorted. -n ordinals refer to this order.
func Discover(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &IOError{Op: "open", Path: dir, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := FormatFromExtension(entry.Name()); err != nil {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// keeps the files at the given 1-based ordinals, preserving listing order.
// No ordinals selects everything. Ordinals with no matching file are
// returned in unmatched.
func Select(files []string, ordinals []int) (selected []string, unmatched []int) {
	if len(ordinals) == 0 {
		return files, nil
	}

	wanted := make(map[int]bool, len(ordinals))
	for _, n := range ordinals {
		if n < 1 || n > len(files) {
			unmatched = append(unmatched, n)
			continue
		}
		wanted[n] = true
	}

	for i, path := range files {
		if wanted[i+1] {
			selected = append(selected, path)
		}
	}
	return selected, unmatched
}
