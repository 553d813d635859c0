package search

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Family groups strategies that share a frontier discipline.
type Family string

// Strategy families, in menu order.
const (
	FamilyAStar    Family = "A*"
	FamilyGreedy   Family = "Greedy"
	FamilyDFS      Family = "DFS"
	FamilyBFS      Family = "BFS"
	FamilyDijkstra Family = "Dijkstra"
	FamilyRandom   Family = "Random"
)

// maxSuggestDistance is the largest edit distance Lookup still offers as a suggestion.
const maxSuggestDistance = 4

// Entry is one row of the strategy table.
type Entry struct {
	Name   string   // stable identifier, e.g. "astar-manhattan"
	Title  string   // human-readable label
	Family Family
	Run    Strategy
}

var catalog = []Entry{
	{"astar-manhattan", "A* (Manhattan)", FamilyAStar, AStarManhattan},
	{"astar-euclidean", "A* (Euclidean)", FamilyAStar, AStarEuclidean},
	{"astar-overweight-manhattan", "A* overweight (Manhattan)", FamilyAStar, AStarOverweightManhattan},
	{"astar-overweight-euclidean", "A* overweight (Euclidean)", FamilyAStar, AStarOverweightEuclidean},
	{"greedy-manhattan", "Greedy best-first (Manhattan)", FamilyGreedy, GreedyManhattan},
	{"greedy-euclidean", "Greedy best-first (Euclidean)", FamilyGreedy, GreedyEuclidean},
	{"dfs-iterator", "DFS (iterator)", FamilyDFS, IteratorDFS},
	{"dfs-stack", "DFS (stack)", FamilyDFS, StackDFS},
	{"dfs-recursive", "DFS (recursive)", FamilyDFS, RecursiveDFS},
	{"bfs", "Breadth-first search", FamilyBFS, BFS},
	{"dijkstra", "Dijkstra", FamilyDijkstra, Dijkstra},
	{"random", "Random search", FamilyRandom, RandomSearch},
}

// Catalog returns a copy of the strategy table in menu order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)

	return out
}

// Families returns the distinct families in menu order.
func Families() []Family {
	var out []Family
	seen := make(map[Family]bool)
	for _, e := range catalog {
		if !seen[e.Family] {
			seen[e.Family] = true
			out = append(out, e.Family)
		}
	}

	return out
}

// ByFamily returns the catalog entries of f in menu order.
func ByFamily(f Family) []Entry {
	var out []Entry
	for _, e := range catalog {
		if e.Family == f {
			out = append(out, e)
		}
	}

	return out
}

// Lookup resolves a strategy by name, case-insensitively. On a miss the error
// wraps ErrUnknownStrategy and names the closest entry when one is near enough.
func Lookup(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range catalog {
		if e.Name == key {
			return e, nil
		}
	}
	if s := suggest(key); s != "" {
		return Entry{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownStrategy, name, s)
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// suggest returns the catalog name closest to key by edit distance, or "" if
// none is within maxSuggestDistance. Ties keep the earlier entry.
func suggest(key string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, e := range catalog {
		if d := levenshtein.ComputeDistance(key, e.Name); d < bestDist {
			best, bestDist = e.Name, d
		}
	}

	return best
}
