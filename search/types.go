package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil *maze.Problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownHeuristic is returned for a maze.Heuristic outside the declared set.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")

	// ErrBadWeight is returned for a negative, NaN or infinite heuristic weight.
	ErrBadWeight = errors.New("search: heuristic weight must be finite and non-negative")

	// ErrUnknownStrategy is returned by Lookup for a name not in the Catalog.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// DefaultMaxDepth bounds RecursiveDFS when WithMaxDepth is not given.
const DefaultMaxDepth = 10000

// Outcome classifies how a run terminated.
type Outcome uint8

const (
	// NoPath means the frontier was exhausted without reaching the goal.
	NoPath Outcome = iota
	// Found means the goal was reached and Result.Path holds the solution.
	Found
	// DepthExceeded means RecursiveDFS hit its depth bound before finishing.
	DepthExceeded
)

func (o Outcome) String() string {
	switch o {
	case NoPath:
		return "no-path"
	case Found:
		return "found"
	case DepthExceeded:
		return "depth-exceeded"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Result is the outcome of one run.
//   - Path: initial-to-goal positions; nil unless Outcome == Found.
//   - Explored: discovered states (see package doc for the exact identity).
//   - Outcome: Found, NoPath or DepthExceeded.
type Result struct {
	Path     []maze.Position
	Explored int
	Outcome  Outcome
}

// Found reports whether the run produced a path.
func (r Result) Found() bool { return r.Outcome == Found }

// Moves returns the number of steps on the path, or -1 without a path.
func (r Result) Moves() int {
	if r.Outcome != Found {
		return -1
	}
	return len(r.Path) - 1
}

// Hook observes a run. NextFrame is called once per newly discovered state,
// after the grid has marked it Open. It may block (e.g. to pace an animation).
type Hook interface {
	NextFrame(g *maze.Grid, discovered maze.Position)
}

// HookFunc adapts a function to Hook.
type HookFunc func(g *maze.Grid, discovered maze.Position)

// NextFrame calls f(g, discovered).
func (f HookFunc) NextFrame(g *maze.Grid, discovered maze.Position) { f(g, discovered) }

// Visualizer is the full presentation collaborator used by Solve.
//   - Configure(height, width) is called once before a run to set pacing.
//   - Draw(g) is a full redraw, called before and after a run.
type Visualizer interface {
	Hook
	Draw(g *maze.Grid)
	Configure(height, width int)
}

// NopHook ignores every event. It satisfies Visualizer.
type NopHook struct{}

func (NopHook) NextFrame(*maze.Grid, maze.Position) {}
func (NopHook) Draw(*maze.Grid)                     {}
func (NopHook) Configure(int, int)                  {}

// Strategy is the common signature of every search entry point.
type Strategy func(p *maze.Problem, hook Hook, opts ...Option) (Result, error)

// Option configures a run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the tunables of a run.
type Options struct {
	// Ctx is checked once per expansion; a done context aborts the run.
	Ctx context.Context

	// MaxDepth bounds RecursiveDFS's recursion (edges from the start).
	MaxDepth int

	// Rand drives RandomSearch. nil means frontier.NewRand(Seed).
	Rand *rand.Rand

	// Seed seeds the generator when Rand is nil. Zero selects frontier.DefaultSeed.
	Seed int64

	err error
}

// DefaultOptions returns Options with a background context,
// MaxDepth = DefaultMaxDepth and the default random seed.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: DefaultMaxDepth,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds RecursiveDFS.
//
//	d >= 0: recursion may descend at most d edges from the start
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithRand sets the generator used by RandomSearch. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds RandomSearch's generator when no WithRand is given.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// buildOptions applies opts over DefaultOptions and reports recorded violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = frontier.NewRand(o.Seed)
	}
	return o, nil
}

// cancelled returns the context error once the run's context is done.
func (o *Options) cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
