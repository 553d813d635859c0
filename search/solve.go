package search

import "github.com/katalvlaran/mazefinder/maze"

// Solve runs one catalog entry under a Visualizer: the grid's presentation
// layer is reset, viz is configured with the grid size and drawn, the
// strategy runs with viz as its hook, and the final grid is drawn again.
// A nil viz behaves like NopHook.
func Solve(p *maze.Problem, e Entry, viz Visualizer, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if e.Run == nil {
		return Result{}, ErrUnknownStrategy
	}
	if viz == nil {
		viz = NopHook{}
	}
	g := p.Grid()
	g.Reset()

	viz.Configure(g.Height(), g.Width())
	viz.Draw(g)
	res, err := e.Run(p, viz, opts...)
	if err != nil {
		return res, err
	}
	viz.Draw(g)

	return res, nil
}
