// Package fragment gathers the hand-written Lua sources that are appended
// to the generated script.
package fragment

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Fragment is the raw text of one source file
type Fragment struct {
	Name string
	Text string
}

// Collect reads every regular file in dir ending in ext, ordered with
// NaturalLess. Files whose base name is in skip are left out.
func Collect(fsys fs.FS, dir, ext string, skip ...string) ([]Fragment, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("error reading fragment directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		if slices.Contains(skip, entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	slices.SortFunc(names, Compare)

	fragments := make([]Fragment, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("error reading fragment %s: %w", name, err)
		}
		fragments = append(fragments, Fragment{Name: name, Text: string(data)})
	}

	return fragments, nil
}
