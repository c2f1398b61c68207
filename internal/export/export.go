// Package export writes the raw grid selection to disk.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andyrewlee/gridpad/internal/selection"
)

// DefaultName is the file name used for raw selection exports.
const DefaultName = "selectedCells.json"

// maxSuffix bounds the search for a free " (n)" file name.
const maxSuffix = 10000

// Raw encodes the unfiltered selection, nulls included, with two-space indent.
func Raw(sel selection.Selection) ([]byte, error) {
	if sel == nil {
		sel = selection.Selection{}
	}
	return selection.Encode(sel, "  ")
}

// WriteRaw writes the raw selection into dir and returns the path written.
// Existing files are never overwritten: a browser-style " (n)" suffix is
// added instead.
func WriteRaw(dir string, sel selection.Selection) (string, error) {
	data, err := Raw(sel)
	if err != nil {
		return "", fmt.Errorf("encode selection: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	ext := filepath.Ext(DefaultName)
	base := strings.TrimSuffix(DefaultName, ext)
	for n := 0; n < maxSuffix; n++ {
		name := DefaultName
		if n > 0 {
			name = fmt.Sprintf("%s (%d)%s", base, n, ext)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", name, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s in %s", DefaultName, dir)
}
