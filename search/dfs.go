package search

import (
	"errors"
	"iter"

	"github.com/katalvlaran/mazefinder/frontier"
	"github.com/katalvlaran/mazefinder/maze"
)

// errDepthExceeded unwinds RecursiveDFS once MaxDepth is hit. It never escapes
// the package; callers see Outcome == DepthExceeded instead.
var errDepthExceeded = errors.New("search: recursion depth exceeded")

//----------------------------------------------------------------------------//
// Iterator DFS
//----------------------------------------------------------------------------//

// dfsFrame is one level of IteratorDFS: a node and the cursor over its
// remaining neighbors.
type dfsFrame struct {
	node maze.Position
	next func() (maze.Position, bool)
	stop func()
}

// IteratorDFS searches depth-first with an explicit stack of frames, each
// resuming its own neighbor iterator. A state is pushed at most once, so no
// state is expanded twice.
func IteratorDFS(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	visited := map[maze.Position]bool{p.Initial(): true}
	if p.IsGoal(p.Initial()) {
		return r.finish(len(visited))
	}

	stack := frontier.NewStack[dfsFrame]()
	push := func(n maze.Position) {
		next, stop := iter.Pull(p.Adjacent(n))
		stack.Push(dfsFrame{node: n, next: next, stop: stop})
	}
	defer func() {
		for f, ok := stack.Pop(); ok; f, ok = stack.Pop() {
			f.stop()
		}
	}()

	push(p.Initial())
	for stack.Len() > 0 {
		if err := r.opts.cancelled(); err != nil {
			return exhausted(len(visited)), err
		}

		top, _ := stack.Peek()
		child, ok := top.next()
		if !ok {
			top.stop()
			stack.Pop()
			continue
		}
		if visited[child] {
			continue
		}
		visited[child] = true
		r.discover(child, top.node)
		if p.IsGoal(child) {
			return r.finish(len(visited))
		}
		push(child)
	}

	return exhausted(len(visited)), nil
}

//----------------------------------------------------------------------------//
// Stack DFS
//----------------------------------------------------------------------------//

// pendingNode is a StackDFS entry: a state and the state that pushed it.
type pendingNode struct {
	node   maze.Position
	parent maze.Position
	root   bool
}

// StackDFS searches depth-first by eagerly pushing every unvisited neighbor
// and discarding already-visited states when they are popped. The same state
// may sit on the stack several times; its predecessor is fixed by the entry
// that is popped first.
func StackDFS(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	stack := frontier.NewStack(pendingNode{node: p.Initial(), root: true})
	visited := make(map[maze.Position]bool)

	for stack.Len() > 0 {
		if err := r.opts.cancelled(); err != nil {
			return exhausted(len(visited)), err
		}

		item, _ := stack.Pop()
		if visited[item.node] {
			continue
		}
		visited[item.node] = true
		if !item.root {
			r.discover(item.node, item.parent)
		}
		if p.IsGoal(item.node) {
			return r.finish(len(visited))
		}
		for next := range p.Adjacent(item.node) {
			if !visited[next] {
				stack.Push(pendingNode{node: next, parent: item.node})
			}
		}
	}

	return exhausted(len(visited)), nil
}

//----------------------------------------------------------------------------//
// Recursive DFS
//----------------------------------------------------------------------------//

// dfsWalker encapsulates RecursiveDFS state.
type dfsWalker struct {
	*run
	visited map[maze.Position]bool
}

// RecursiveDFS searches depth-first by recursive descent. Recursion is bounded
// by Options.MaxDepth (edges from the start, DefaultMaxDepth unless set with
// WithMaxDepth); hitting the bound ends the run with Outcome DepthExceeded,
// which is distinct from NoPath.
func RecursiveDFS(p *maze.Problem, hook Hook, opts ...Option) (Result, error) {
	r, err := newRun(p, hook, opts)
	if err != nil {
		return Result{}, err
	}
	w := &dfsWalker{run: r, visited: make(map[maze.Position]bool)}

	found, err := w.traverse(p.Initial(), 0)
	switch {
	case errors.Is(err, errDepthExceeded):
		return Result{Explored: len(w.visited), Outcome: DepthExceeded}, nil
	case err != nil:
		return exhausted(len(w.visited)), err
	case found:
		return w.finish(len(w.visited))
	}

	return exhausted(len(w.visited)), nil
}

// traverse visits current at the given depth and recurses into unvisited
// neighbors. It reports whether the goal was reached below current.
func (w *dfsWalker) traverse(current maze.Position, depth int) (bool, error) {
	if err := w.opts.cancelled(); err != nil {
		return false, err
	}
	w.visited[current] = true
	if w.p.IsGoal(current) {
		return true, nil
	}

	for next := range w.p.Adjacent(current) {
		if w.visited[next] {
			continue
		}
		if depth >= w.opts.MaxDepth {
			return false, errDepthExceeded
		}
		w.discover(next, current)
		found, err := w.traverse(next, depth+1)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
