package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_FullCycle(t *testing.T) {
	tr := NewTransition(0)
	calls := 0
	tr.Start(func() { calls++ })
	require.Equal(t, FadingOut, tr.State())

	prev := tr.Progress()
	steps := 0
	for tr.State() == FadingOut {
		tr.Update(0.125)
		steps++
		if tr.State() == FadingOut {
			assert.GreaterOrEqual(t, tr.Progress(), prev)
		}
		prev = tr.Progress()
	}
	assert.Equal(t, 4, steps, "0.5s of fade-out at rate 2")
	assert.Equal(t, 1.0, tr.Progress())
	assert.Equal(t, 1, calls)

	for tr.State() == FadingIn {
		tr.Update(0.125)
		assert.LessOrEqual(t, tr.Progress(), prev)
		prev = tr.Progress()
	}
	assert.Equal(t, Idle, tr.State())
	assert.Equal(t, 0.0, tr.Progress())
	assert.Equal(t, 1, calls, "callback fires exactly once")
	assert.False(t, tr.Active())
}

func TestTransition_LargeStepFiresOnce(t *testing.T) {
	tr := NewTransition(2)
	calls := 0
	tr.Start(func() { calls++ })

	tr.Update(10)
	assert.Equal(t, 1, calls)
	assert.Equal(t, FadingIn, tr.State())
	assert.Equal(t, 1.0, tr.Progress())

	tr.Update(10)
	tr.Update(10)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Idle, tr.State())
}

func TestTransition_RestartReplacesCallback(t *testing.T) {
	tr := NewTransition(2)
	var fired []string
	tr.Start(func() { fired = append(fired, "first") })
	tr.Update(0.4)
	require.InDelta(t, 0.8, tr.Progress(), 1e-9)
	tr.Start(func() { fired = append(fired, "second") })
	assert.Equal(t, FadingOut, tr.State())
	assert.Equal(t, 0.0, tr.Progress())

	tr.Update(0.4)
	assert.Empty(t, fired)

	for i := 0; i < 40; i++ {
		tr.Update(0.05)
	}
	assert.Equal(t, []string{"second"}, fired)
}

func TestTransition_StartDuringFadeIn(t *testing.T) {
	tr := NewTransition(2)
	calls := 0
	tr.Start(func() { calls++ })
	tr.Update(1)
	tr.Update(0.1)
	require.Equal(t, FadingIn, tr.State())

	tr.Start(func() { calls += 10 })
	assert.Equal(t, FadingOut, tr.State())
	assert.Equal(t, 0.0, tr.Progress())
	tr.Update(1)
	assert.Equal(t, 11, calls)
}

func TestTransition_Reset(t *testing.T) {
	tr := NewTransition(2)
	fired := false
	tr.Start(func() { fired = true })
	tr.Update(0.1)

	tr.Reset()
	tr.Update(1)
	assert.False(t, fired)
	assert.Equal(t, Idle, tr.State())
}

func TestTransition_UpdateIdleIsNoop(t *testing.T) {
	tr := NewTransition(2)
	tr.Update(1)
	assert.Equal(t, Idle, tr.State())
	assert.Equal(t, 0.0, tr.Progress())
}

func TestTransitionState_String(t *testing.T) {
	tests := []struct {
		state    TransitionState
		expected string
	}{
		{Idle, "Idle"},
		{FadingOut, "FadingOut"},
		{FadingIn, "FadingIn"},
		{TransitionState(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}
