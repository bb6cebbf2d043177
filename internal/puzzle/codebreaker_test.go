package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/utils"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		secret []int
		guess  []int
		want   Feedback
	}{
		{"swapped middle", []int{1, 2, 3, 4}, []int{1, 3, 2, 4}, Feedback{Correct: 2, WrongPosition: 2}},
		{"exact", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}, Feedback{Correct: 4}},
		{"nothing", []int{1, 2, 3, 4}, []int{5, 6, 7, 8}, Feedback{}},
		{"repeats counted once", []int{1, 1, 2, 2}, []int{1, 2, 1, 1}, Feedback{Correct: 1, WrongPosition: 2}},
		{"all misplaced", []int{1, 2, 3, 4}, []int{4, 3, 2, 1}, Feedback{WrongPosition: 4}},
		{"length mismatch", []int{1, 2, 3}, []int{1, 2}, Feedback{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.secret, tt.guess))
		})
	}
}

func TestCodeBreakerRejectsInvalidGuesses(t *testing.T) {
	cb, err := NewCodeBreaker([]int{1, 2, 3, 4}, 10, 5)
	require.NoError(t, err)

	_, ok := cb.Guess([]int{1, 2, 3})
	assert.False(t, ok)
	_, ok = cb.Guess([]int{1, 2, 3, 10})
	assert.False(t, ok)
	_, ok = cb.Guess([]int{-1, 2, 3, 4})
	assert.False(t, ok)

	assert.Equal(t, 5, cb.AttemptsLeft(), "rejected guesses cost nothing")
	assert.Empty(t, cb.History())
}

func TestCodeBreakerAttemptBudget(t *testing.T) {
	cb, err := NewCodeBreaker([]int{1, 2, 3, 4}, 10, 2)
	require.NoError(t, err)

	fb, ok := cb.Guess([]int{1, 3, 2, 4})
	require.True(t, ok)
	assert.Equal(t, Feedback{Correct: 2, WrongPosition: 2}, fb)
	_, revealed := cb.Secret()
	assert.False(t, revealed)

	_, ok = cb.Guess([]int{4, 3, 2, 1})
	require.True(t, ok)
	assert.True(t, cb.Over())
	assert.False(t, cb.Solved())
	assert.Zero(t, cb.AttemptsLeft())

	_, ok = cb.Guess([]int{1, 2, 3, 4})
	assert.False(t, ok, "no guesses after the budget is spent")

	secret, revealed := cb.Secret()
	assert.True(t, revealed)
	assert.Equal(t, []int{1, 2, 3, 4}, secret)
}

func TestCodeBreakerSolve(t *testing.T) {
	cb, err := NewCodeBreaker([]int{0, 5, 9}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, cb.AttemptsLeft())

	_, ok := cb.Guess([]int{0, 5, 9})
	require.True(t, ok)
	assert.True(t, cb.Solved())
	assert.True(t, cb.Over())
}

func TestNewCodeBreakerValidates(t *testing.T) {
	_, err := NewCodeBreaker(nil, 10, 5)
	assert.Error(t, err)
	_, err = NewCodeBreaker([]int{1, 12}, 10, 5)
	assert.Error(t, err)
	_, err = NewCodeBreaker([]int{1}, 1, 5)
	assert.Error(t, err)
}

func TestRandomSecret(t *testing.T) {
	rng := utils.NewPRNGService(11)
	for i := 0; i < 50; i++ {
		s := RandomSecret(rng, 4, 6, true)
		require.Len(t, s, 4)
		seen := map[int]bool{}
		for _, v := range s {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 6)
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
	assert.Len(t, RandomSecret(rng, 8, 4, true), 4)
	assert.Len(t, RandomSecret(rng, 8, 4, false), 8)
}
