package render

import (
	"strings"

	"github.com/katalvlaran/mazefinder/maze"
)

const (
	pathHead = 5
	pathTail = 6
)

// FormatPath joins path with " -> ". Paths longer than ten positions show
// only the first five and last six, with "..." between them.
func FormatPath(path []maze.Position) string {
	parts := make([]string, 0, min(len(path), pathHead+pathTail+1))
	if len(path) > pathHead+pathTail-1 {
		for _, p := range path[:pathHead] {
			parts = append(parts, p.String())
		}
		parts = append(parts, "...")
		for _, p := range path[len(path)-pathTail:] {
			parts = append(parts, p.String())
		}
	} else {
		for _, p := range path {
			parts = append(parts, p.String())
		}
	}

	return strings.Join(parts, " -> ")
}
