package maze_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/mazefinder/maze"
)

const corridor = `
XXXXXXX
X     X
X XXX X
X     X
XXXXXXX
start 1 1
end 5 3
`

func mustParse(t *testing.T, text string) *maze.Problem {
	t.Helper()
	p, err := maze.ParseString(text)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return p
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

// TestParse_Corridor checks dimensions, endpoints and the wall layer.
func TestParse_Corridor(t *testing.T) {
	p := mustParse(t, corridor)
	g := p.Grid()
	if g.Width() != 7 || g.Height() != 5 {
		t.Fatalf("size = %dx%d; want 7x5", g.Width(), g.Height())
	}
	if want := (maze.Position{Column: 1, Row: 1}); p.Initial() != want {
		t.Errorf("Initial = %v; want %v", p.Initial(), want)
	}
	if want := (maze.Position{Column: 5, Row: 3}); p.Goal() != want {
		t.Errorf("Goal = %v; want %v", p.Goal(), want)
	}
	if g.Cell(p.Initial()) != maze.Start || g.Cell(p.Goal()) != maze.End {
		t.Errorf("endpoints not pinned: %v %v", g.Cell(p.Initial()), g.Cell(p.Goal()))
	}
	if !g.Wall(maze.Position{Column: 2, Row: 2}) {
		t.Error("(2,2) should be a wall")
	}
	if got := g.PassableCount(); got != 12 {
		t.Errorf("PassableCount = %d; want 12", got)
	}
}

// TestParse_EndpointOverwritesWall verifies that start/end always become passable.
func TestParse_EndpointOverwritesWall(t *testing.T) {
	p := mustParse(t, "XXX\nX X\nXXX\nstart 0 0\nend 1 1")
	if p.Grid().Wall(maze.Position{}) {
		t.Error("start cell must be passable")
	}
	if p.Grid().Cell(maze.Position{}) != maze.Start {
		t.Errorf("start cell = %v; want start", p.Grid().Cell(maze.Position{}))
	}
}

// TestParse_Errors covers malformed descriptions.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		cause error
	}{
		{"Empty", "", nil},
		{"OnlyTrailer", "start 0 0\nend 0 0", nil},
		{"MissingEnd", "   \n   \nstart 0 0\nfinish 1 1", nil},
		{"MissingStart", "   \n   \nbegin 0 0\nend 1 1", nil},
		{"SwappedTrailer", "   \nend 1 0\nstart 0 0", nil},
		{"Ragged", "   \n  \nstart 0 0\nend 1 0", maze.ErrNonRectangular},
		{"StartOutOfBounds", "   \nstart 3 0\nend 1 0", maze.ErrOutOfBounds},
		{"EndOutOfBounds", "   \nstart 0 0\nend 0 4", maze.ErrOutOfBounds},
		{"HugeCoordinate", "   \nstart 99999999999999999999 0\nend 0 0", strconv.ErrRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseString(tc.text)
			if !errors.Is(err, maze.ErrFormat) {
				t.Fatalf("err = %v; want ErrFormat", err)
			}
			var fe *maze.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %T; want *FormatError", err)
			}
			if tc.cause != nil && !errors.Is(err, tc.cause) {
				t.Errorf("err = %v; want cause %v", err, tc.cause)
			}
		})
	}
}

// TestLoad_MissingFile reports the open failure, not a format error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := maze.Load("testdata/does-not-exist.txt")
	if err == nil || errors.Is(err, maze.ErrFormat) {
		t.Fatalf("err = %v; want an open error", err)
	}
}

// TestLoad_File reads a maze from disk.
func TestLoad_File(t *testing.T) {
	p, err := maze.Load("testdata/small.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Grid().Width() != 5 || p.Grid().Height() != 5 {
		t.Errorf("size = %dx%d; want 5x5", p.Grid().Width(), p.Grid().Height())
	}
}

//----------------------------------------------------------------------------//
// Grid
//----------------------------------------------------------------------------//

// TestNewGrid_Errors rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]bool
		err  error
	}{
		{"NoRows", nil, maze.ErrEmptyGrid},
		{"NoColumns", [][]bool{{}}, maze.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, true}, {true}}, maze.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := maze.NewGrid(tc.in); !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestGrid_PresentationLayer verifies Visit/MarkPath never touch walls,
// Start or End, and that Reset restores the loaded state.
func TestGrid_PresentationLayer(t *testing.T) {
	p := mustParse(t, corridor)
	g := p.Grid()
	open := maze.Position{Column: 2, Row: 1}
	wall := maze.Position{Column: 0, Row: 0}

	g.Visit(open)
	g.Visit(wall)
	g.Visit(p.Initial())
	g.MarkPath(p.Goal())
	if g.Cell(open) != maze.Open {
		t.Errorf("visited cell = %v; want open", g.Cell(open))
	}
	if g.Cell(wall) != maze.Wall || !g.Wall(wall) {
		t.Error("wall must stay a wall")
	}
	if g.Cell(p.Initial()) != maze.Start || g.Cell(p.Goal()) != maze.End {
		t.Error("start/end must never be overwritten")
	}
	g.MarkPath(open)
	if g.Cell(open) != maze.Path {
		t.Errorf("path cell = %v; want path", g.Cell(open))
	}
	if !g.Passable(open) {
		t.Error("presentation changes must not alter passability")
	}

	clone := g.Clone()
	g.Reset()
	if g.Cell(open) != maze.Empty {
		t.Errorf("after Reset cell = %v; want empty", g.Cell(open))
	}
	if clone.Cell(open) != maze.Path {
		t.Error("Clone must be independent of Reset")
	}
}

// TestGrid_OutOfBounds treats everything outside the grid as wall.
func TestGrid_OutOfBounds(t *testing.T) {
	g, err := maze.NewGrid([][]bool{{true}})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []maze.Position{{Column: -1}, {Column: 1}, {Row: -1}, {Row: 1}} {
		if g.InBounds(p) || g.Passable(p) || !g.Wall(p) || g.Cell(p) != maze.Wall {
			t.Errorf("%v should be an out-of-bounds wall", p)
		}
		g.Visit(p) // must not panic
	}
}

//----------------------------------------------------------------------------//
// Problem
//----------------------------------------------------------------------------//

// TestNewProblem_Validation rejects endpoints off the grid or on walls.
func TestNewProblem_Validation(t *testing.T) {
	g, _ := maze.NewGrid([][]bool{{true, false}})
	if _, err := maze.NewProblem(g, maze.Position{}, maze.Position{Column: 1}); !errors.Is(err, maze.ErrBlocked) {
		t.Errorf("goal on wall: err = %v; want ErrBlocked", err)
	}
	if _, err := maze.NewProblem(g, maze.Position{Row: 5}, maze.Position{}); !errors.Is(err, maze.ErrOutOfBounds) {
		t.Errorf("start off grid: err = %v; want ErrOutOfBounds", err)
	}
	if _, err := maze.NewProblem(nil, maze.Position{}, maze.Position{}); !errors.Is(err, maze.ErrEmptyGrid) {
		t.Errorf("nil grid: err = %v; want ErrEmptyGrid", err)
	}
}

// TestProblem_ActionsAndAdjacent checks move filtering and enumeration order.
func TestProblem_ActionsAndAdjacent(t *testing.T) {
	p := mustParse(t, corridor)
	s := maze.Position{Column: 1, Row: 2} // west corridor, middle row

	moves := slices.Collect(p.Actions(s))
	if want := []maze.Move{maze.Up, maze.Down}; !reflect.DeepEqual(moves, want) {
		t.Errorf("Actions = %v; want %v", moves, want)
	}
	adj := slices.Collect(p.Adjacent(s))
	want := []maze.Position{{Column: 1, Row: 1}, {Column: 1, Row: 3}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("Adjacent = %v; want %v", adj, want)
	}
	for n, w := range p.AdjacentWeighted(s) {
		if w != 1.0 {
			t.Errorf("weight to %v = %v; want 1.0", n, w)
		}
	}
	if got := p.Result(s, maze.Right); got != (maze.Position{Column: 2, Row: 2}) {
		t.Errorf("Result(right) = %v", got)
	}
}

// TestProblem_AdjacentStopsEarly makes sure the lazy sequences honor break.
func TestProblem_AdjacentStopsEarly(t *testing.T) {
	p := mustParse(t, corridor)
	n := 0
	for range p.Adjacent(maze.Position{Column: 3, Row: 1}) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations = %d; want 1", n)
	}
}

// TestProblem_Heuristics checks both distance functions and the Heuristic enum.
func TestProblem_Heuristics(t *testing.T) {
	p := mustParse(t, corridor) // goal (5,3)
	s := maze.Position{Column: 1, Row: 0}
	if got := p.Manhattan(s); got != 7 {
		t.Errorf("Manhattan = %v; want 7", got)
	}
	if got, want := p.Euclidean(s), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Euclidean = %v; want %v", got, want)
	}
	if maze.Manhattan.Estimate(p, s) != p.Manhattan(s) || maze.Euclidean.Estimate(p, s) != p.Euclidean(s) {
		t.Error("Estimate must delegate to the matching distance")
	}
	if maze.Heuristic(9).Valid() || !maze.Euclidean.Valid() {
		t.Error("Valid misreports")
	}
	if !p.IsGoal(p.Goal()) || p.IsGoal(s) {
		t.Error("IsGoal misreports")
	}
}

// TestReconstructPath_SameStartGoal returns [goal] without touching previous.
func TestReconstructPath_SameStartGoal(t *testing.T) {
	p := mustParse(t, "  \nstart 1 0\nend 1 0")
	path, err := p.ReconstructPath(nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := []maze.Position{{Column: 1}}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestReconstructPath_Chain orders the path and paints intermediate cells.
func TestReconstructPath_Chain(t *testing.T) {
	p := mustParse(t, "    \nstart 0 0\nend 3 0")
	at := func(c int) maze.Position { return maze.Position{Column: c} }
	prev := map[maze.Position]maze.Position{at(1): at(0), at(2): at(1), at(3): at(2)}

	path, err := p.ReconstructPath(prev)
	if err != nil {
		t.Fatal(err)
	}
	if want := []maze.Position{at(0), at(1), at(2), at(3)}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	for _, c := range []int{1, 2} {
		if p.Grid().Cell(at(c)) != maze.Path {
			t.Errorf("cell %d = %v; want path", c, p.Grid().Cell(at(c)))
		}
	}
}

// TestReconstructPath_Broken reports ErrBrokenChain for gaps and cycles.
func TestReconstructPath_Broken(t *testing.T) {
	p := mustParse(t, "    \nstart 0 0\nend 3 0")
	at := func(c int) maze.Position { return maze.Position{Column: c} }

	if _, err := p.ReconstructPath(map[maze.Position]maze.Position{}); !errors.Is(err, maze.ErrBrokenChain) {
		t.Errorf("empty map: err = %v; want ErrBrokenChain", err)
	}
	gap := map[maze.Position]maze.Position{at(3): at(2)}
	if _, err := p.ReconstructPath(gap); !errors.Is(err, maze.ErrBrokenChain) {
		t.Errorf("gap: err = %v; want ErrBrokenChain", err)
	}
	cycle := map[maze.Position]maze.Position{at(3): at(2), at(2): at(1), at(1): at(2)}
	if _, err := p.ReconstructPath(cycle); err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("cycle: err = %v; want cycle report", err)
	}
}

//----------------------------------------------------------------------------//
// Discover
//----------------------------------------------------------------------------//

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(corridor), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := maze.Discover(filepath.Join(dir, "missing"), dir, "testdata")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join("testdata", "small.txt"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Discover = %v; want %v", got, want)
	}
}
