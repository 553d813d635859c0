package search

import (
	"fmt"

	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// Greedy searches best-first on the heuristic alone, ignoring accumulated
// cost. States are marked at discovery and never reopened, so the path is
// usually found quickly but is not guaranteed to be shortest.
func Greedy(p *maze.Problem, hook Hook, h maze.Heuristic, opts ...Option) (Result, error) {
	if !h.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownHeuristic, h)
	}
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	pq := frontier.NewPriorityQueue(frontier.Keyed[maze.Position]{Key: 0, Item: p.Initial()})
	visited := map[maze.Position]bool{p.Initial(): true}

	for {
		if err := r.opts.cancelled(); err != nil {
			return exhausted(len(visited)), err
		}
		_, current, ok := pq.Pop()
		if !ok {
			break
		}
		if p.IsGoal(current) {
			return r.finish(len(visited))
		}
		for next := range p.Adjacent(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			r.discover(next, current)
			pq.Push(h.Estimate(p, next), next)
		}
	}

	return exhausted(len(visited)), nil
}

// GreedyManhattan is Greedy with the Manhattan heuristic.
func GreedyManhattan(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return Greedy(p, hook, maze.Manhattan, opts...)
}

// GreedyEuclidean is Greedy with the Euclidean heuristic.
func GreedyEuclidean(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return Greedy(p, hook, maze.Euclidean, opts...)
}
