package search

import (
	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	*run
	queue   *frontier.Queue[maze.Position]
	visited map[maze.Position]bool // open and closed set union
}

// BFS searches breadth-first. States are marked visited when discovered and
// enqueued exactly once, so on a unit-cost grid the returned path has the
// fewest possible moves.
func BFS(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	w := &bfsWalker{
		run:     r,
		queue:   frontier.NewQueue(p.Initial()),
		visited: map[maze.Position]bool{p.Initial(): true},
	}

	return w.loop()
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *bfsWalker) loop() (Result, error) {
	for w.queue.Len() > 0 {
		if err := w.opts.cancelled(); err != nil {
			return exhausted(len(w.visited)), err
		}

		current, _ := w.queue.Pop()
		if w.p.IsGoal(current) {
			return w.finish(len(w.visited))
		}
		w.enqueueNeighbors(current)
	}

	return exhausted(len(w.visited)), nil
}

// enqueueNeighbors discovers and enqueues every unseen neighbor of current.
func (w *bfsWalker) enqueueNeighbors(current maze.Position) {
	for next := range w.p.Adjacent(current) {
		if w.visited[next] {
			continue
		}
		w.visited[next] = true
		w.discover(next, current)
		w.queue.Push(next)
	}
}
