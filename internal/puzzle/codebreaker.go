// internal/puzzle/codebreaker.go
package puzzle

import (
	"errors"
	"fmt"
)

// Rand is the subset of utils.PRNGService the generators need.
type Rand interface {
	Intn(n int) int
}

// Feedback is the answer to one guess: symbols in the right place, and symbols present
// in the secret but placed elsewhere.
type Feedback struct {
	Correct       int `json:"correct"`
	WrongPosition int `json:"wrong_position"`
}

// Attempt is one accepted guess and its feedback.
type Attempt struct {
	Guess    []int    `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Score compares guess with secret position by position. Repeated symbols are matched
// at most as many times as they occur in both. Slices of different length score zero.
func Score(secret, guess []int) Feedback {
	if len(secret) != len(guess) {
		return Feedback{}
	}
	var fb Feedback
	secretLeft := map[int]int{}
	guessLeft := map[int]int{}
	for i := range secret {
		if secret[i] == guess[i] {
			fb.Correct++
			continue
		}
		secretLeft[secret[i]]++
		guessLeft[guess[i]]++
	}
	for sym, n := range guessLeft {
		fb.WrongPosition += min(n, secretLeft[sym])
	}
	return fb
}

// CodeBreaker is one round of the code-breaking game: a secret of symbols in [0, digits)
// and a fixed number of attempts.
type CodeBreaker struct {
	secret   []int
	digits   int
	attempts int
	history  []Attempt
	solved   bool
}

// NewCodeBreaker validates the secret against the alphabet size. attempts <= 0 means unlimited.
func NewCodeBreaker(secret []int, digits, attempts int) (*CodeBreaker, error) {
	if len(secret) == 0 {
		return nil, errors.New("secret is empty")
	}
	if digits < 2 {
		return nil, fmt.Errorf("alphabet of %d symbols is too small", digits)
	}
	for i, v := range secret {
		if v < 0 || v >= digits {
			return nil, fmt.Errorf("secret symbol %d at %d is outside [0, %d)", v, i, digits)
		}
	}
	return &CodeBreaker{
		secret:   append([]int(nil), secret...),
		digits:   digits,
		attempts: attempts,
	}, nil
}

// RandomSecret draws length symbols in [0, digits). With unique set, no symbol repeats;
// length is then capped at digits.
func RandomSecret(rng Rand, length, digits int, unique bool) []int {
	if unique && length > digits {
		length = digits
	}
	out := make([]int, 0, length)
	if !unique {
		for i := 0; i < length; i++ {
			out = append(out, rng.Intn(digits))
		}
		return out
	}
	pool := make([]int, digits)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < length; i++ {
		j := i + rng.Intn(digits-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// Guess scores g. It returns false without consuming an attempt when the round is over,
// the guess has the wrong length or a symbol is outside the alphabet.
func (c *CodeBreaker) Guess(g []int) (Feedback, bool) {
	if c.Over() || len(g) != len(c.secret) {
		return Feedback{}, false
	}
	for _, v := range g {
		if v < 0 || v >= c.digits {
			return Feedback{}, false
		}
	}
	fb := Score(c.secret, g)
	c.history = append(c.history, Attempt{Guess: append([]int(nil), g...), Feedback: fb})
	if fb.Correct == len(c.secret) {
		c.solved = true
	}
	return fb, true
}

func (c *CodeBreaker) Solved() bool { return c.solved }
func (c *CodeBreaker) Length() int  { return len(c.secret) }
func (c *CodeBreaker) Digits() int  { return c.digits }

// Over reports whether the round is won or out of attempts.
func (c *CodeBreaker) Over() bool {
	return c.solved || (c.attempts > 0 && len(c.history) >= c.attempts)
}

// AttemptsLeft returns the remaining attempts, or -1 when unlimited.
func (c *CodeBreaker) AttemptsLeft() int {
	if c.attempts <= 0 {
		return -1
	}
	return max(c.attempts-len(c.history), 0)
}

// History returns a copy of the accepted guesses.
func (c *CodeBreaker) History() []Attempt {
	out := make([]Attempt, len(c.history))
	copy(out, c.history)
	return out
}

// Secret is revealed only once the round is over.
func (c *CodeBreaker) Secret() ([]int, bool) {
	if !c.Over() {
		return nil, false
	}
	return append([]int(nil), c.secret...), true
}
