package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/component"
)

type fakeHooks struct {
	calls []string
	ticks int
}

func (f *fakeHooks) Reset()       { f.calls = append(f.calls, "reset") }
func (f *fakeHooks) Arm()         { f.calls = append(f.calls, "arm") }
func (f *fakeHooks) Halt()        { f.calls = append(f.calls, "halt") }
func (f *fakeHooks) Tick(float64) { f.ticks++ }
func (f *fakeHooks) Persist()     { f.calls = append(f.calls, "persist") }
func (f *fakeHooks) Discard()     { f.calls = append(f.calls, "discard") }

func TestFullLifecycle(t *testing.T) {
	h := &fakeHooks{}
	sm := NewStateMachine(h, nil)
	require.Equal(t, component.PhaseMenu, sm.Phase())
	assert.False(t, sm.Update(1.0/60))

	require.NoError(t, sm.Start())
	assert.True(t, sm.Update(1.0/60))
	require.NoError(t, sm.Pause())
	assert.False(t, sm.Update(1.0/60), "no ticks while paused")
	require.NoError(t, sm.Resume())
	require.NoError(t, sm.GameOver())
	require.NoError(t, sm.Retry())
	require.NoError(t, sm.GameOver())
	require.NoError(t, sm.ToMenu())

	assert.Equal(t, []string{
		"reset", "arm",
		"halt",
		"arm",
		"halt", "persist",
		"reset", "arm",
		"halt", "persist",
		"discard",
	}, h.calls)
	assert.Equal(t, 1, h.ticks)
}

func TestInvalidTransitions(t *testing.T) {
	h := &fakeHooks{}
	sm := NewStateMachine(h, nil)

	assert.ErrorIs(t, sm.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.Resume(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.GameOver(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.Retry(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.ToMenu(), ErrInvalidTransition)

	require.NoError(t, sm.Start())
	assert.ErrorIs(t, sm.Start(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.Resume(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.Retry(), ErrInvalidTransition)

	require.NoError(t, sm.Pause())
	assert.ErrorIs(t, sm.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, sm.GameOver(), ErrInvalidTransition, "a paused run cannot die")

	assert.Equal(t, component.PhasePaused, sm.Phase())
	assert.Equal(t, []string{"reset", "arm", "halt"}, h.calls, "rejected transitions have no side effects")
}

func TestGameOverPersistsOnce(t *testing.T) {
	h := &fakeHooks{}
	sm := NewStateMachine(h, nil)
	require.NoError(t, sm.Start())
	require.NoError(t, sm.GameOver())
	assert.ErrorIs(t, sm.GameOver(), ErrInvalidTransition)

	persisted := 0
	for _, c := range h.calls {
		if c == "persist" {
			persisted++
		}
	}
	assert.Equal(t, 1, persisted)
}

func TestOnChange(t *testing.T) {
	sm := NewStateMachine(&fakeHooks{}, nil)
	var seen []component.Phase
	sm.OnChange = func(from, to component.Phase) { seen = append(seen, from, to) }

	require.NoError(t, sm.Start())
	require.NoError(t, sm.Pause())

	assert.Equal(t, []component.Phase{
		component.PhaseMenu, component.PhasePlaying,
		component.PhasePlaying, component.PhasePaused,
	}, seen)
}
