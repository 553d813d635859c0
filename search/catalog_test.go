package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazefinder/maze"
	"github.com/katalvlaran/mazefinder/search"
)

func TestCatalog_Shape(t *testing.T) {
	entries := search.Catalog()
	require.Len(t, entries, 12)

	names := make(map[string]bool)
	for _, e := range entries {
		assert.NotEmpty(t, e.Title, e.Name)
		assert.NotNil(t, e.Run, e.Name)
		assert.False(t, names[e.Name], "duplicate name %q", e.Name)
		names[e.Name] = true
	}

	assert.Equal(t, []search.Family{
		search.FamilyAStar, search.FamilyGreedy, search.FamilyDFS,
		search.FamilyBFS, search.FamilyDijkstra, search.FamilyRandom,
	}, search.Families())

	total := 0
	for _, f := range search.Families() {
		total += len(search.ByFamily(f))
	}
	assert.Equal(t, len(entries), total)
	assert.Len(t, search.ByFamily(search.FamilyAStar), 4)
	assert.Len(t, search.ByFamily(search.FamilyDFS), 3)
}

// TestCatalog_Copy verifies callers cannot mutate the shared table.
func TestCatalog_Copy(t *testing.T) {
	entries := search.Catalog()
	entries[0].Name = "mutated"
	assert.Equal(t, "astar-manhattan", search.Catalog()[0].Name)
}

func TestLookup(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
		suggest string
	}{
		{name: "exact", in: "bfs", want: "bfs"},
		{name: "case and space", in: "  Dijkstra ", want: "dijkstra"},
		{name: "typo", in: "dijkstar", wantErr: true, suggest: `did you mean "dijkstra"`},
		{name: "near family", in: "dfs-stak", wantErr: true, suggest: `did you mean "dfs-stack"`},
		{name: "far", in: "simulated-annealing", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := search.Lookup(tc.in)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.want, e.Name)
				return
			}
			require.ErrorIs(t, err, search.ErrUnknownStrategy)
			if tc.suggest != "" {
				assert.Contains(t, err.Error(), tc.suggest)
			} else {
				assert.NotContains(t, err.Error(), "did you mean")
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Solve
//----------------------------------------------------------------------------//

// recorder is a Visualizer that logs every call.
type recorder struct {
	height, width int
	draws         int
	frames        int
	openAtFrame   bool
}

func (r *recorder) Configure(height, width int) { r.height, r.width = height, width }
func (r *recorder) Draw(*maze.Grid)             { r.draws++ }
func (r *recorder) NextFrame(g *maze.Grid, p maze.Position) {
	r.frames++
	r.openAtFrame = r.openAtFrame || g.Cell(p) == maze.Open
}

func TestSolve(t *testing.T) {
	p := parse(t, labyrinth)
	entry, err := search.Lookup("astar-manhattan")
	require.NoError(t, err)

	rec := &recorder{}
	res, err := search.Solve(p, entry, rec)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 10, rec.height)
	assert.Equal(t, 10, rec.width)
	assert.Equal(t, 2, rec.draws)
	assert.Equal(t, res.Explored-1, rec.frames)
	assert.True(t, rec.openAtFrame)

	// the grid is reset, so a second run sees the same problem
	again, err := search.Solve(p, entry, nil)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestSolve_Errors(t *testing.T) {
	_, err := search.Solve(nil, search.Catalog()[0], nil)
	require.ErrorIs(t, err, search.ErrNilProblem)

	_, err = search.Solve(parse(t, corridor), search.Entry{Name: "empty"}, nil)
	require.ErrorIs(t, err, search.ErrUnknownStrategy)

	rec := &recorder{}
	_, err = search.Solve(parse(t, corridor), search.Catalog()[0], rec, search.WithMaxDepth(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Equal(t, 1, rec.draws)
}
