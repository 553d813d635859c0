package maze

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Problem is the maze search problem: reach goal from initial on grid.
// The endpoints are fixed at construction; only the Grid's presentation
// layer changes during a run.
type Problem struct {
	initial Position
	goal    Position
	grid    *Grid
}

// NewProblem validates the endpoints against grid and pins the Start and End
// cells. Returns ErrOutOfBounds or ErrBlocked wrapped with the offending position.
func NewProblem(grid *Grid, initial, goal Position) (*Problem, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	for _, p := range [...]Position{initial, goal} {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, grid.width, grid.height)
		}
		if !grid.Passable(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}
	grid.pin(initial, Start)
	grid.pin(goal, End)

	return &Problem{initial: initial, goal: goal, grid: grid}, nil
}

// Initial returns the start state.
func (p *Problem) Initial() Position { return p.initial }

// Goal returns the goal state.
func (p *Problem) Goal() Position { return p.goal }

// Grid returns the grid the problem is posed on.
func (p *Problem) Grid() *Grid { return p.grid }

// Actions lazily yields the moves from s whose target is passable,
// in the order of Moves.
func (p *Problem) Actions(s Position) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, m := range Moves {
			if p.grid.Wall(s.Add(m.Delta())) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Result returns the state reached by applying m to s.
func (p *Problem) Result(s Position, m Move) Position {
	return s.Add(m.Delta())
}

// Adjacent lazily yields the passable neighbors of s.
func (p *Problem) Adjacent(s Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for m := range p.Actions(s) {
			if !yield(p.Result(s, m)) {
				return
			}
		}
	}
}

// AdjacentWeighted lazily yields the passable neighbors of s with their step
// cost. Every step currently costs 1.0.
func (p *Problem) AdjacentWeighted(s Position) iter.Seq2[Position, float64] {
	return func(yield func(Position, float64) bool) {
		for m := range p.Actions(s) {
			if !yield(p.Result(s, m), 1.0) {
				return
			}
		}
	}
}

// Manhattan returns |Δcolumn| + |Δrow| between s and the goal.
func (p *Problem) Manhattan(s Position) float64 {
	return math.Abs(float64(s.Column-p.goal.Column)) + math.Abs(float64(s.Row-p.goal.Row))
}

// Euclidean returns the straight-line distance between s and the goal.
func (p *Problem) Euclidean(s Position) float64 {
	return math.Hypot(float64(s.Column-p.goal.Column), float64(s.Row-p.goal.Row))
}

// IsGoal reports whether s is the goal.
func (p *Problem) IsGoal(s Position) bool { return s == p.goal }

// ReconstructPath walks previous backwards from the goal to the initial state,
// marks every intermediate cell as Path, and returns the path in
// initial-to-goal order. When initial == goal it returns [goal] without
// reading previous.
//
// It must only be called once the goal has been reached. A missing predecessor,
// or a chain longer than the grid (a cycle), yields ErrBrokenChain.
func (p *Problem) ReconstructPath(previous map[Position]Position) ([]Position, error) {
	path := []Position{p.goal}
	if p.goal == p.initial {
		return path, nil
	}
	limit := p.grid.width * p.grid.height
	current, ok := previous[p.goal]
	if !ok {
		return nil, fmt.Errorf("%w: no predecessor for goal %v", ErrBrokenChain, p.goal)
	}
	for current != p.initial {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, current)
		}
		path = append(path, current)
		p.grid.MarkPath(current)
		next, ok := previous[current]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenChain, current)
		}
		current = next
	}
	path = append(path, p.initial)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Heuristic selects a distance-to-goal estimate.
type Heuristic uint8

const (
	// Manhattan is |Δcolumn| + |Δrow|; admissible and consistent on a 4-connected unit grid.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance; admissible and consistent, but weaker.
	Euclidean
)

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool { return h <= Euclidean }

// Estimate returns h's distance from s to p's goal. Invalid values estimate 0.
func (h Heuristic) Estimate(p *Problem, s Position) float64 {
	switch h {
	case Manhattan:
		return p.Manhattan(s)
	case Euclidean:
		return p.Euclidean(s)
	}
	return 0
}

func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	}
	return "Heuristic(" + strconv.Itoa(int(h)) + ")"
}
