// Package easing maps elapsed time to animated values.
package easing

import (
	"github.com/chewxy/math32"

	"shapes-demo/internal/geometry"
)

// EaseInOutSine follows a sinusoidal in-out curve from start (t=0) to start+change (t=duration).
// t is not clamped: past duration the value swings back, repeating every 2*duration.
func EaseInOutSine(t, start, change, duration float32) float32 {
	return -change/2*(math32.Cos(math32.Pi*t/duration)-1) + start
}

// Animation describes how the circle side count moves over time.
type Animation struct {
	Start    float32 `yaml:"start"`
	Change   float32 `yaml:"change"`
	Duration float32 `yaml:"duration"`
	MinSides int     `yaml:"min_sides"`
}

// DefaultAnimation sweeps from 3 to 103 sides over 10 seconds and back.
func DefaultAnimation() Animation {
	return Animation{Start: 3, Change: 100, Duration: 10, MinSides: geometry.MinSides}
}

// SideCount returns the floored eased value at elapsed seconds, never below the
// animation's MinSides (and never below geometry.MinSides).
func SideCount(elapsed float64, a Animation) int {
	sides := int(math32.Floor(EaseInOutSine(float32(elapsed), a.Start, a.Change, a.Duration)))
	floor := max(a.MinSides, geometry.MinSides)
	return min(max(sides, floor), geometry.MaxSides)
}
