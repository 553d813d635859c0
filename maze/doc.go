// Package maze models a maze as a formal search problem over a uniform,
// 4-connected grid.
//
// What:
//
//   - Position is an immutable (column, row) pair, used both as a search state
//     and as a grid index.
//   - Move is one of four direction deltas (Up, Down, Left, Right).
//   - Grid keeps two layers: a passability layer fixed at load time and a
//     presentation layer (Cell) that a search run mutates in place through
//     Visit and MarkPath. Walls never change; Start and End cells are never
//     overwritten.
//   - Problem pairs the initial and goal positions with the Grid and exposes
//     the operations every search strategy needs: Actions, Result, Adjacent,
//     AdjacentWeighted, the Manhattan/Euclidean heuristics, IsGoal and
//     ReconstructPath.
//   - Parse/Load read the textual maze format:
//
//     XXXXX
//     X   X
//     XXXXX
//     start 1 1
//     end 3 1
//
//     Every 'X' is a wall, any other character is passable. The two trailer
//     lines give the start and end as "<column> <row>".
//
// Bounds:
//
//	Positions outside the grid are treated as walls, so mazes need not be
//	bordered by 'X' characters.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: invalid grid shape.
//   - ErrOutOfBounds, ErrBlocked:      invalid start or goal.
//   - ErrFormat (*FormatError):         malformed maze text.
//   - ErrBrokenChain:                   ReconstructPath called without a
//     complete predecessor chain (a caller contract violation).
package maze
