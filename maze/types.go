package maze

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for maze construction and path reconstruction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrBlocked indicates a start or goal position on a wall.
	ErrBlocked = errors.New("maze: position is a wall")
	// ErrBrokenChain indicates ReconstructPath met a state without a predecessor.
	ErrBrokenChain = errors.New("maze: predecessor chain broken")
	// ErrFormat is the sentinel wrapped by every *FormatError.
	ErrFormat = errors.New("maze: malformed maze description")
)

// FormatError reports a malformed maze description.
// Line is 1-based; zero means the error is not tied to a single line.
type FormatError struct {
	Line   int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := ErrFormat.Error()
	if e.Line > 0 {
		msg += ": line " + strconv.Itoa(e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrFormat so callers can test with errors.Is.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause, if any.
func (e *FormatError) Unwrap() error { return e.Err }

// Position is a (column, row) grid coordinate.
type Position struct {
	Column int
	Row    int
}

// Add returns the component-wise sum p+q.
func (p Position) Add(q Position) Position {
	return Position{Column: p.Column + q.Column, Row: p.Row + q.Row}
}

// String renders p as "[column,row]".
func (p Position) String() string {
	return fmt.Sprintf("[%d,%d]", p.Column, p.Row)
}

// Move is one of the four grid directions.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists every Move in the fixed enumeration order used by Actions.
var Moves = [...]Move{Up, Down, Left, Right}

var moveDeltas = [...]Position{
	Up:    {Column: 0, Row: -1},
	Down:  {Column: 0, Row: 1},
	Left:  {Column: -1, Row: 0},
	Right: {Column: 1, Row: 0},
}

// Delta returns the position offset of m.
func (m Move) Delta() Position { return moveDeltas[m] }

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "Move(" + strconv.Itoa(int(m)) + ")"
}

// Cell is the presentation state of one grid cell.
// Wall is the only tag that blocks traversal.
type Cell uint8

const (
	Wall  Cell = iota // impassable
	Empty             // passable, not yet discovered
	Open              // discovered during the current run
	Start             // the initial position
	End               // the goal position
	Path              // on the reconstructed solution
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case Open:
		return "open"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	}
	return "Cell(" + strconv.Itoa(int(c)) + ")"
}
