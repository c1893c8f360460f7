package theme

import (
	"fmt"
	"io/fs"
	"slices"

	gotheme "github.com/goliatone/go-theme"
)

var manifestPatterns = []string{"*.yaml", "*.yml", "*.json"}

// LoadManifests reads every manifest at the root of fsys with gotheme.LoadFile.
// The format follows the file extension.
func LoadManifests(fsys fs.FS) ([]*gotheme.Manifest, error) {
	var paths []string
	for _, pattern := range manifestPatterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, ErrManifestNotFound
	}
	slices.Sort(paths)

	out := make([]*gotheme.Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := gotheme.LoadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		out = append(out, m)
	}
	return out, nil
}
