// Package search implements uninformed and informed state-space search over a
// maze.Problem, returning the solution path and the number of explored states.
//
// What
//
//   - Twelve strategy entry points in six families, all sharing the Strategy
//     signature (problem, hook, options) → (Result, error):
//   - BFS:      FIFO frontier, marks states at discovery; shortest by edge count.
//   - DFS:      IteratorDFS (per-frame neighbor cursor, no duplicate pushes),
//     StackDFS (eager push, visited filtered on pop) and RecursiveDFS
//     (call-stack descent bounded by WithMaxDepth).
//   - Dijkstra: priority queue keyed by accumulated cost, strict relaxation.
//   - A*:       key = cost + weight·heuristic; Manhattan/Euclidean × weight 1.0/1.5.
//   - Greedy:   key = heuristic only, marks at discovery.
//   - Random:   pops a uniformly random discovered state.
//   - Catalog lists the twelve entries with stable names; Lookup resolves a
//     name and suggests the closest one on a typo.
//   - Solve runs one entry with a Visualizer: Configure, Draw, run, Draw.
//
// Result
//
//	Result.Outcome is Found, NoPath or DepthExceeded. When a path is found,
//	Result.Explored equals the number of predecessor links plus one; otherwise
//	it equals the number of discovered states.
//
// Hooks
//
//	Hook.NextFrame is called exactly once for every newly discovered state
//	other than the initial one, right after the grid marks it Open. It is the
//	only observable side effect besides the grid's presentation layer.
//
// Lazy deletion
//
//	Dijkstra and A* never decrease keys in place. An improved state gets a
//	fresh queue entry; an entry whose recorded cost is worse than the state's
//	current best is skipped when popped. Greedy never reopens a state.
//
// Complexity (V = passable cells, E ≤ 4V)
//
//   - BFS, DFS, Random: O(V + E) time, O(V) memory.
//   - Dijkstra, A*, Greedy: O((V + E) log V) time, O(V + E) memory.
//
// Concurrency
//
//	A run mutates the Problem's grid. Never run two strategies on the same
//	Problem concurrently; parse or Clone a separate grid per run instead.
//
// Errors
//
//   - ErrNilProblem        if the problem pointer is nil.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnknownHeuristic  if AStar/Greedy get an undeclared heuristic.
//   - ErrBadWeight         if AStar gets a negative, NaN or infinite weight.
//   - ErrUnknownStrategy   from Lookup.
//   - context errors       when WithContext's context is done.
//   - maze.ErrBrokenChain  if path reconstruction fails (an internal bug).
package search
