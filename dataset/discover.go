package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands glob patterns relative to dir into concrete file
// paths. Supports recursive wildcards (**). Results are deduplicated
// and sorted so repeated runs visit files in the same order.
func Discover(dir string, patterns []string) ([]string, error) {
	var found []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}

	sort.Strings(found)
	return found, nil
}
