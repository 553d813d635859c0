package search

import "github.com/katalvlaran/mazefinder/maze"

// run holds the state every strategy shares: the problem, its hook and
// options, and the predecessor map built during the run.
type run struct {
	p        *maze.Problem
	grid     *maze.Grid
	hook     Hook
	opts     Options
	previous map[maze.Position]maze.Position
}

// newRun validates the inputs and prepares a fresh run.
func newRun(p *maze.Problem, hook Hook, opts []Option) (*run, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if hook == nil {
		hook = NopHook{}
	}
	g := p.Grid()

	return &run{
		p:        p,
		grid:     g,
		hook:     hook,
		opts:     o,
		previous: make(map[maze.Position]maze.Position, g.Width()*g.Height()/2),
	}, nil
}

// discover records parent→s in the predecessor map, paints s and fires the hook.
// Callers guarantee s was not discovered before.
func (r *run) discover(s, parent maze.Position) {
	r.previous[s] = parent
	r.grid.Visit(s)
	r.hook.NextFrame(r.grid, s)
}

// finish reconstructs the path once the goal has been reached.
func (r *run) finish(explored int) (Result, error) {
	path, err := r.p.ReconstructPath(r.previous)
	if err != nil {
		return Result{Explored: explored, Outcome: NoPath}, err
	}
	return Result{Path: path, Explored: explored, Outcome: Found}, nil
}

// exhausted is the result of a run whose frontier ran dry.
func exhausted(explored int) Result {
	return Result{Explored: explored, Outcome: NoPath}
}
