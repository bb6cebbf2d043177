package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/puzzle"
)

func TestPuzzleSessionSolve(t *testing.T) {
	sink := &recordingSink{}
	p := NewPuzzleSession(PuzzleOptions{
		UserID:   "tester",
		Secret:   []int{1, 2, 3, 4},
		Attempts: 5,
		Scores:   sink,
		Logger:   quietLogger(),
	})

	_, ok := p.Guess([]int{1, 2, 3, 4})
	assert.False(t, ok, "no guessing from the menu")

	require.NoError(t, p.Start())
	fb, ok := p.Guess([]int{1, 3, 2, 4})
	require.True(t, ok)
	assert.Equal(t, puzzle.Feedback{Correct: 2, WrongPosition: 2}, fb)

	_, ok = p.Guess([]int{1, 2})
	assert.False(t, ok)
	assert.Equal(t, 4, p.View().AttemptsLeft)

	_, ok = p.Guess([]int{1, 2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, component.PhaseGameOver, p.Phase())

	view := p.View()
	assert.True(t, view.Solved)
	assert.Equal(t, []int{1, 2, 3, 4}, view.Secret)
	assert.Equal(t, (3+1)*100, view.Score)

	require.Equal(t, 1, sink.count())
	assert.Equal(t, CodeBreakerGame, sink.records[0].GameType)
	assert.Equal(t, 400, sink.records[0].Score)
}

func TestPuzzleSessionOutOfAttempts(t *testing.T) {
	sink := &recordingSink{}
	p := NewPuzzleSession(PuzzleOptions{Secret: []int{0, 0, 0}, Length: 3, Attempts: 2, Scores: sink, Logger: quietLogger()})
	require.NoError(t, p.Start())

	for i := 0; i < 2; i++ {
		_, ok := p.Guess([]int{9, 9, 9})
		require.True(t, ok)
	}
	assert.Equal(t, component.PhaseGameOver, p.Phase())
	assert.Zero(t, p.Score())

	_, ok := p.Guess([]int{0, 0, 0})
	assert.False(t, ok)
	assert.Equal(t, 1, sink.count())

	require.NoError(t, p.Retry())
	assert.Equal(t, 2, p.View().AttemptsLeft)
	assert.Empty(t, p.View().History)
}

func TestPuzzleSessionPausedRejectsGuesses(t *testing.T) {
	p := NewPuzzleSession(PuzzleOptions{Seed: 4, Logger: quietLogger()})
	require.NoError(t, p.Start())
	require.NoError(t, p.Pause())

	_, ok := p.Guess([]int{1, 2, 3, 4})
	assert.False(t, ok)
	assert.Equal(t, 10, p.View().AttemptsLeft)
}

func TestPuzzleSessionRejectsBadOptions(t *testing.T) {
	cases := []PuzzleOptions{
		{Digits: 1},
		{Digits: -3},
		{Length: -1},
	}
	for _, opts := range cases {
		opts.Logger = quietLogger()
		p := NewPuzzleSession(opts)
		require.NotPanics(t, func() {
			assert.Error(t, p.Start())
		})
		assert.Equal(t, component.PhaseMenu, p.Phase())
		_, ok := p.Guess([]int{0, 0, 0, 0})
		assert.False(t, ok)
		assert.Equal(t, -1, p.View().AttemptsLeft)
	}
}

func TestPuzzleSessionFixedSecretOutsideAlphabet(t *testing.T) {
	p := NewPuzzleSession(PuzzleOptions{Secret: []int{7, 7}, Digits: 3, Length: 2, Seed: 1, Logger: quietLogger()})
	require.NoError(t, p.Start())

	view := p.View()
	assert.Equal(t, 2, view.Length)
	assert.Equal(t, 10, view.AttemptsLeft)
}
