package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/mazefinder/maze"
	"github.com/katalvlaran/mazefinder/search"
)

// Defaults mirror the interactive tool: ten frames per second at speed 10.
const (
	DefaultSecondsPerFrame = 0.1
	DefaultSimulationSpeed = 10.0
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// ErrOptionViolation is returned by NewAnimator for an invalid option.
var ErrOptionViolation = errors.New("render: invalid option supplied")

var _ search.Visualizer = (*Animator)(nil)

// Animator is a search.Visualizer that redraws the grid to a writer every
// movesPerFrame discoveries. It is not safe for concurrent use.
type Animator struct {
	out             io.Writer
	theme           *Theme
	label           string
	secondsPerFrame float64
	speed           float64
	clear           bool
	sleep           func(time.Duration)

	movesPerFrame int
	frameCounter  int
	draws         int
	err           error
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator) error

// WithTheme sets the cell theme. nil is ignored.
func WithTheme(t *Theme) AnimatorOption {
	return func(a *Animator) error {
		if t != nil {
			a.theme = t
		}
		return nil
	}
}

// WithLabel sets the line printed under every frame.
func WithLabel(label string) AnimatorOption {
	return func(a *Animator) error {
		a.label = label
		return nil
	}
}

// WithSecondsPerFrame sets the pause after each frame. Zero disables pausing.
func WithSecondsPerFrame(s float64) AnimatorOption {
	return func(a *Animator) error {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: seconds per frame %v", ErrOptionViolation, s)
		}
		a.secondsPerFrame = s
		return nil
	}
}

// WithSimulationSpeed sets the speed factor; larger values batch more
// discoveries into one frame.
func WithSimulationSpeed(speed float64) AnimatorOption {
	return func(a *Animator) error {
		if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("%w: simulation speed %v", ErrOptionViolation, speed)
		}
		a.speed = speed
		return nil
	}
}

// WithClearScreen toggles the clear-screen sequence before each frame.
func WithClearScreen(on bool) AnimatorOption {
	return func(a *Animator) error {
		a.clear = on
		return nil
	}
}

// WithSleep replaces time.Sleep, e.g. with a recorder in tests.
func WithSleep(sleep func(time.Duration)) AnimatorOption {
	return func(a *Animator) error {
		if sleep != nil {
			a.sleep = sleep
		}
		return nil
	}
}

// NewAnimator returns an Animator writing to out with the plain theme,
// default pacing and screen clearing enabled.
func NewAnimator(out io.Writer, opts ...AnimatorOption) (*Animator, error) {
	if out == nil {
		return nil, fmt.Errorf("%w: nil writer", ErrOptionViolation)
	}
	a := &Animator{
		out:             out,
		theme:           Plain(),
		secondsPerFrame: DefaultSecondsPerFrame,
		speed:           DefaultSimulationSpeed,
		clear:           true,
		sleep:           time.Sleep,
		movesPerFrame:   1,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Configure sets the frame interval from the grid shape and restarts the
// frame counter.
func (a *Animator) Configure(height, width int) {
	moves := math.Round(float64(height*width) * a.speed * a.secondsPerFrame / 60)
	a.movesPerFrame = max(1, int(moves))
	a.frameCounter = 0
}

// MovesPerFrame returns the number of discoveries drawn as one frame.
func (a *Animator) MovesPerFrame() int { return a.movesPerFrame }

// Draw writes a full frame and pauses. The first write error is kept and
// reported by Err; later frames are skipped.
func (a *Animator) Draw(g *maze.Grid) {
	if a.err != nil {
		return
	}
	frame := a.theme.Grid(g) + "\n" + a.label + "\n"
	if a.clear {
		frame = clearScreen + frame
	}
	if _, err := io.WriteString(a.out, frame); err != nil {
		a.err = fmt.Errorf("render: draw: %w", err)
		return
	}
	a.draws++
	if a.secondsPerFrame > 0 {
		a.sleep(time.Duration(a.secondsPerFrame * float64(time.Second)))
	}
}

// NextFrame counts one discovery and draws on every movesPerFrame-th.
func (a *Animator) NextFrame(g *maze.Grid, _ maze.Position) {
	a.frameCounter = (a.frameCounter + 1) % a.movesPerFrame
	if a.frameCounter == 0 {
		a.Draw(g)
	}
}

// Draws returns the number of frames written so far.
func (a *Animator) Draws() int { return a.draws }

// Err returns the first write error, if any.
func (a *Animator) Err() error { return a.err }
