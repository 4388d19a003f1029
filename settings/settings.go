// Package settings tracks the pan state driven by the movement keys. The
// translation itself ("landslide") persists until the program exits; the step
// size accelerates while keys stay held and snaps back when any of them is
// released.
package settings

import (
	mgl32 "github.com/go-gl/mathgl/mgl32"
)

const (
	// initialDelta is the pan step applied on the first held-key update.
	initialDelta = 0.01
	// doubleEvery is how many consecutive updates an axis takes before its
	// step size doubles.
	doubleEvery = 10
)

// axis is the acceleration state for one pan direction.
type axis struct {
	delta      float32
	iterations int
}

func newAxis() axis {
	return axis{delta: initialDelta}
}

// step advances the axis by one held-key update and returns the step size to
// apply. The doubling happens before the step is applied, so the tenth update
// already moves at the doubled rate.
func (a *axis) step() float32 {
	a.iterations++
	if a.iterations%doubleEvery == 0 {
		a.delta *= 2
	}
	return a.delta
}

func (a *axis) reset() {
	a.delta = initialDelta
	a.iterations = 0
}

// KeyState captures which movement keys are held during one frame. It keeps
// this package free of any windowing types.
type KeyState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Settings carries the current pan offset and the acceleration state of the
// two axes. The axes accelerate independently of each other.
type Settings struct {
	Landslide mgl32.Vec2

	horizontal axis
	vertical   axis
}

// New returns pan state at the origin with both axes at the initial step size.
func New() *Settings {
	return &Settings{
		horizontal: newAxis(),
		vertical:   newAxis(),
	}
}

// Move applies at most one vertical and one horizontal step for a frame's
// held keys. Up wins over Down and Left wins over Right when opposing keys
// are held together.
func (s *Settings) Move(keys KeyState) {
	switch {
	case keys.Up:
		s.Landslide[1] += s.vertical.step()
	case keys.Down:
		s.Landslide[1] -= s.vertical.step()
	}
	switch {
	case keys.Left:
		s.Landslide[0] -= s.horizontal.step()
	case keys.Right:
		s.Landslide[0] += s.horizontal.step()
	}
}

// Reset drops both axes back to the initial step size and clears their update
// counters. The landslide is untouched; the figure stays where it was panned.
// The caller invokes this whenever any movement key is released, even while
// other movement keys remain held.
func (s *Settings) Reset() {
	s.horizontal.reset()
	s.vertical.reset()
}
