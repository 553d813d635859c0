package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// OverweightFactor is the heuristic weight of the "overweight" A* variants.
const OverweightFactor = 1.5

// costItem is a queue entry: a state and the accumulated cost it was pushed with.
type costItem struct {
	pos  maze.Position
	cost float64
}

// runner holds the mutable state of one Dijkstra or A* execution.
type runner struct {
	*run
	dist     map[maze.Position]float64       // best known accumulated cost
	pq       *frontier.PriorityQueue[costItem] // lazy min-heap
	priority func(s maze.Position, cost float64) float64
}

// Dijkstra searches in order of accumulated cost. A neighbor's cost and
// predecessor are updated only on strict improvement; superseded queue entries
// are skipped when popped.
func Dijkstra(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	byCost := func(_ maze.Position, cost float64) float64 { return cost }

	return newRunner(r, byCost).process()
}

// AStar searches in order of accumulated cost + weight·h(state).
// Weight 1.0 with either declared heuristic returns an optimal path; larger
// weights trade optimality for fewer expansions.
// Returns ErrUnknownHeuristic or ErrBadWeight for invalid arguments.
func AStar(p *maze.Problem, hook Hook, h maze.Heuristic, weight float64, opts ...Option) (Result, error) {
	if !h.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownHeuristic, h)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	byEstimate := func(s maze.Position, cost float64) float64 {
		return cost + h.Estimate(p, s)*weight
	}

	return newRunner(r, byEstimate).process()
}

// AStarManhattan is A* with the Manhattan heuristic at weight 1.0.
func AStarManhattan(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return AStar(p, hook, maze.Manhattan, 1.0, opts...)
}

// AStarEuclidean is A* with the Euclidean heuristic at weight 1.0.
func AStarEuclidean(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return AStar(p, hook, maze.Euclidean, 1.0, opts...)
}

// AStarOverweightManhattan is A* with the Manhattan heuristic at OverweightFactor.
func AStarOverweightManhattan(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return AStar(p, hook, maze.Manhattan, OverweightFactor, opts...)
}

// AStarOverweightEuclidean is A* with the Euclidean heuristic at OverweightFactor.
func AStarOverweightEuclidean(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	return AStar(p, hook, maze.Euclidean, OverweightFactor, opts...)
}

// newRunner seeds the queue with the initial state at cost 0.
func newRunner(r *run, priority func(maze.Position, float64) float64) *runner {
	start := r.p.Initial()
	rn := &runner{
		run:      r,
		dist:     map[maze.Position]float64{start: 0},
		pq:       frontier.NewPriorityQueue[costItem](),
		priority: priority,
	}
	rn.pq.Push(priority(start, 0), costItem{pos: start, cost: 0})

	return rn
}

// process pops the lowest-keyed entry until the goal is popped or the queue
// runs dry. Every state with a known cost counts as explored.
func (rn *runner) process() (Result, error) {
	for {
		if err := rn.opts.cancelled(); err != nil {
			return exhausted(len(rn.dist)), err
		}

		_, item, ok := rn.pq.Pop()
		if !ok {
			break
		}
		// stale entry: the state was reached more cheaply after this push
		if item.cost > rn.dist[item.pos] {
			continue
		}
		if rn.p.IsGoal(item.pos) {
			return rn.finish(len(rn.dist))
		}
		rn.relax(item)
	}

	return exhausted(len(rn.dist)), nil
}

// relax tries to improve every neighbor of item through item.
func (rn *runner) relax(item costItem) {
	for next, w := range rn.p.AdjacentWeighted(item.pos) {
		total := item.cost + w
		best, seen := rn.dist[next]
		if seen && total >= best {
			continue
		}
		rn.dist[next] = total
		if seen {
			rn.previous[next] = item.pos
		} else {
			rn.discover(next, item.pos)
		}
		rn.pq.Push(rn.priority(next, total), costItem{pos: next, cost: total})
	}
}
