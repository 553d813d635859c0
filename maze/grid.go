package maze

// Grid is a fixed-size, row-major 2D maze.
//
// Passability is fixed when the Grid is built. The presentation layer starts
// as Wall/Empty (plus Start/End once a Problem marks them) and is mutated in
// place by Visit and MarkPath during one search run; Reset restores it.
type Grid struct {
	width, height int
	passable      []bool
	cells         []Cell
	base          []Cell
}

// NewGrid builds a Grid from a non-empty, rectangular passability matrix
// indexed [row][column]. The input is copied.
// Returns ErrEmptyGrid or ErrNonRectangular for invalid shapes.
// Complexity: O(W×H) time and memory.
func NewGrid(passable [][]bool) (*Grid, error) {
	if len(passable) == 0 || len(passable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(passable), len(passable[0])
	for _, row := range passable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		width:    w,
		height:   h,
		passable: make([]bool, w*h),
		cells:    make([]Cell, w*h),
		base:     make([]Cell, w*h),
	}
	for r, row := range passable {
		for c, ok := range row {
			i := g.index(c, r)
			g.passable[i] = ok
			if ok {
				g.base[i] = Empty
			} else {
				g.base[i] = Wall
			}
		}
	}
	copy(g.cells, g.base)

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Column >= 0 && p.Column < g.width && p.Row >= 0 && p.Row < g.height
}

// Passable reports whether p can be entered. Out-of-bounds positions are not passable.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.passable[g.index(p.Column, p.Row)]
}

// Wall reports whether p blocks traversal.
func (g *Grid) Wall(p Position) bool { return !g.Passable(p) }

// Cell returns the presentation state at p; out-of-bounds positions read as Wall.
func (g *Grid) Cell(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p.Column, p.Row)]
}

// Visit marks p as discovered. No-op on Start, End and walls.
func (g *Grid) Visit(p Position) { g.paint(p, Open) }

// MarkPath marks p as part of the solution. No-op on Start, End and walls.
func (g *Grid) MarkPath(p Position) { g.paint(p, Path) }

// Reset restores the presentation layer to its state before any run.
func (g *Grid) Reset() { copy(g.cells, g.base) }

// Clone returns an independent copy, presentation state included.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:    g.width,
		height:   g.height,
		passable: make([]bool, len(g.passable)),
		cells:    make([]Cell, len(g.cells)),
		base:     make([]Cell, len(g.base)),
	}
	copy(c.passable, g.passable)
	copy(c.cells, g.cells)
	copy(c.base, g.base)

	return c
}

// Rows returns a copy of the presentation layer indexed [row][column].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for r := range rows {
		rows[r] = make([]Cell, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, ok := range g.passable {
		if ok {
			n++
		}
	}
	return n
}

func (g *Grid) paint(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	i := g.index(p.Column, p.Row)
	switch g.cells[i] {
	case Start, End, Wall:
		return
	}
	g.cells[i] = c
}

// pin sets an immutable Start/End tag in both the live and base layers.
func (g *Grid) pin(p Position, c Cell) {
	i := g.index(p.Column, p.Row)
	g.cells[i] = c
	g.base[i] = c
}

// index maps (column,row) to a row-major index: row*width + column.
func (g *Grid) index(column, row int) int {
	return row*g.width + column
}
