// Package timer tracks frame time for the update/render loop.
package timer

// MaxDelta caps a single step so a stall (debugger, window drag) doesn't jump the animation.
const MaxDelta = 0.1

// StepTimer accumulates per-frame deltas into a total and counts updates.
// It does not read a clock itself; the window loop feeds it the frame delta.
type StepTimer struct {
	total    float64
	elapsed  float64
	frames   uint64
	skipNext bool
}

// Tick advances the timer by delta seconds and then calls update, if non-nil.
// Negative deltas count as zero, deltas above MaxDelta are capped.
func (s *StepTimer) Tick(delta float64, update func(*StepTimer)) {
	if delta < 0 || s.skipNext {
		delta = 0
		s.skipNext = false
	}
	if delta > MaxDelta {
		delta = MaxDelta
	}
	s.elapsed = delta
	s.total += delta
	s.frames++
	if update != nil {
		update(s)
	}
}

// ResetElapsed drops the next delta so time spent suspended is not added to the total.
func (s *StepTimer) ResetElapsed() {
	s.skipNext = true
}

// TotalSeconds is the sum of all deltas since the timer was created.
func (s *StepTimer) TotalSeconds() float64 { return s.total }

// ElapsedSeconds is the delta applied by the last Tick.
func (s *StepTimer) ElapsedSeconds() float64 { return s.elapsed }

// FrameCount is the number of Ticks so far.
func (s *StepTimer) FrameCount() uint64 { return s.frames }
