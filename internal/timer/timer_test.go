package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTimerTick(t *testing.T) {
	var s StepTimer
	assert.Equal(t, uint64(0), s.FrameCount())

	calls := 0
	s.Tick(0.016, func(st *StepTimer) {
		calls++
		assert.Equal(t, uint64(1), st.FrameCount())
	})
	s.Tick(0.02, nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(2), s.FrameCount())
	assert.InDelta(t, 0.036, s.TotalSeconds(), 1e-9)
	assert.InDelta(t, 0.02, s.ElapsedSeconds(), 1e-9)
}

func TestStepTimerClampsDelta(t *testing.T) {
	var s StepTimer
	s.Tick(5, nil)
	assert.Equal(t, MaxDelta, s.TotalSeconds())
	s.Tick(-1, nil)
	assert.Equal(t, MaxDelta, s.TotalSeconds())
	assert.Equal(t, 0.0, s.ElapsedSeconds())
}

func TestStepTimerResetElapsed(t *testing.T) {
	var s StepTimer
	s.Tick(0.05, nil)
	s.ResetElapsed()
	s.Tick(0.08, nil)
	assert.InDelta(t, 0.05, s.TotalSeconds(), 1e-9)
	s.Tick(0.01, nil)
	assert.InDelta(t, 0.06, s.TotalSeconds(), 1e-9)
	assert.Equal(t, uint64(3), s.FrameCount())
}
