package search

import (
	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// RandomSearch expands a uniformly random discovered state at each step.
// States are marked at discovery. The generator comes from WithRand or
// WithSeed; without either the run is reproducible with frontier.DefaultSeed.
func RandomSearch(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	list := frontier.NewRandomList(r.opts.Rand, p.Initial())
	visited := map[maze.Position]bool{p.Initial(): true}

	for list.Len() > 0 {
		if err := r.opts.cancelled(); err != nil {
			return exhausted(len(visited)), err
		}
		current, _ := list.Pop()
		if p.IsGoal(current) {
			return r.finish(len(visited))
		}
		for next := range p.Adjacent(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			r.discover(next, current)
			list.Push(next)
		}
	}

	return exhausted(len(visited)), nil
}
