// Package render draws a maze.Grid for terminals and plain-text consumers and
// paces search animations.
//
// A Theme maps every maze.Cell to a glyph. The plain theme emits one ASCII
// character per cell (X wall, space empty, '.' open, S start, E end, '*' path)
// and is safe for logs and JSON. The color theme emits two-column blocks
// styled with lipgloss.
//
// Animator implements search.Visualizer. Configure derives how many
// discoveries share one frame from the grid area:
//
//	movesPerFrame = max(1, round(height·width·speed·secondsPerFrame / 60))
//
// so a run over a larger grid redraws less often. Every Draw optionally clears
// the screen, prints the grid and a label line, then sleeps secondsPerFrame.
//
// FormatPath shortens long paths to their first five and last six positions.
package render
