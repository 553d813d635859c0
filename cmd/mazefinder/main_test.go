package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazefinder/search"
)

const corridor = "XXXXXXX\nX.....X\nX.XXX.X\nX.....X\nXXXXXXX\nstart 1 1\nend 5 3\n"

// workspace chdirs into a temp dir holding mazes/corridor.txt.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mazes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mazes", "corridor.txt"), []byte(corridor), 0o600))
	t.Chdir(dir)
	t.Setenv("MAZEFINDER_CONFIG", "")
	return dir
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Usage(t *testing.T) {
	workspace(t)
	_, _, err := runCLI(t)
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "frobnicate")
	require.ErrorIs(t, err, errUsage)
}

func TestRun_List(t *testing.T) {
	workspace(t)
	out, _, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("mazes", "corridor.txt"))
	for _, e := range search.Catalog() {
		assert.Contains(t, out, e.Name)
	}
}

func TestRun_Solve(t *testing.T) {
	workspace(t)
	out, _, err := runCLI(t, "solve", "-animate=false", "-color=false", "-strategy", "bfs", "corridor")
	require.NoError(t, err)
	assert.Contains(t, out, "X****EX")
	assert.Contains(t, out, "Outcome: found")
	assert.Contains(t, out, "Nodes visited: 12")
	assert.Contains(t, out, "Path length: 7")
	assert.Contains(t, out, "Path: [1,1] -> [1,2]")
}

func TestRun_SolveAnimated(t *testing.T) {
	workspace(t)
	out, _, err := runCLI(t, "solve", "-color=false", "-spf", "0.0001", "-strategy", "dijkstra", "mazes/corridor.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "corridor.txt: Dijkstra")
	assert.Contains(t, out, "Outcome: found")
}

func TestRun_SolveErrors(t *testing.T) {
	workspace(t)

	_, _, err := runCLI(t, "solve", "-strategy", "dijkstar", "corridor")
	require.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, _, err = runCLI(t, "solve", "missing")
	require.Error(t, err)

	_, _, err = runCLI(t, "solve")
	require.ErrorIs(t, err, errUsage)
}

func TestRun_Config(t *testing.T) {
	dir := workspace(t)
	path := filepath.Join(dir, "out.yaml")
	_, stderr, err := runCLI(t, "config", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote")

	_, _, err = runCLI(t, "-config", path, "list")
	require.NoError(t, err)
}
