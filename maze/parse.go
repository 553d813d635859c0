package maze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// WallRune marks an impassable cell in the textual maze format.
const WallRune = 'X'

var (
	startLine = regexp.MustCompile(`^start\D+(\d+)\D+(\d+)$`)
	endLine   = regexp.MustCompile(`^end\D+(\d+)\D+(\d+)$`)
)

// Load reads and parses the maze file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("maze: %s: %w", path, err)
	}
	return p, nil
}

// ParseString parses a maze held in memory. See Parse.
func ParseString(text string) (*Problem, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a maze description: a rectangular block of rows followed by
// "start <column> <row>" and "end <column> <row>" lines. Leading empty lines
// and trailing blank lines are ignored; rows are taken verbatim, so a row may
// begin or end with passable spaces. The start and end cells are passable
// whatever character was found there.
//
// All description problems are reported as *FormatError (errors.Is ErrFormat).
func Parse(r io.Reader) (*Problem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	lines := strings.Split(string(raw), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 3 {
		return nil, &FormatError{Reason: "want maze rows followed by start and end lines"}
	}

	n := len(lines)
	start, err := parseEndpoint(startLine, strings.TrimSpace(lines[n-2]), n-1, "start")
	if err != nil {
		return nil, err
	}
	goal, err := parseEndpoint(endLine, strings.TrimSpace(lines[n-1]), n, "end")
	if err != nil {
		return nil, err
	}

	rows := make([][]bool, n-2)
	for i, line := range lines[:n-2] {
		cells := []rune(line)
		row := make([]bool, len(cells))
		for c, ch := range cells {
			row[c] = ch != WallRune
		}
		rows[i] = row
	}
	for _, p := range [...]Position{start, goal} {
		if p.Row < len(rows) && p.Column < len(rows[p.Row]) {
			rows[p.Row][p.Column] = true
		}
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, &FormatError{Reason: "invalid grid", Err: err}
	}
	problem, err := NewProblem(grid, start, goal)
	if err != nil {
		return nil, &FormatError{Reason: "invalid endpoints", Err: err}
	}

	return problem, nil
}

func parseEndpoint(re *regexp.Regexp, line string, lineNo int, name string) (Position, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return Position{}, &FormatError{Line: lineNo, Reason: fmt.Sprintf("want %q line, got %q", name+" <column> <row>", line)}
	}
	col, errC := strconv.Atoi(m[1])
	row, errR := strconv.Atoi(m[2])
	if err := errors.Join(errC, errR); err != nil {
		return Position{}, &FormatError{Line: lineNo, Reason: name + " coordinates", Err: err}
	}

	return Position{Column: col, Row: row}, nil
}
