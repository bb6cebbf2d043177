// internal/app/puzzle_session.go
package app

import (
	"fmt"
	"log/slog"

	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/puzzle"
	"go-recovery-arcade/internal/score"
	"go-recovery-arcade/internal/state"
	"go-recovery-arcade/internal/utils"
)

// CodeBreakerGame — тип игры, под которым сохраняются раунды взлома кода.
const CodeBreakerGame = "codebreaker"

// pointsPerSpareAttempt: решение стоит (оставшиеся попытки + 1) * pointsPerSpareAttempt.
const pointsPerSpareAttempt = 100

type PuzzleOptions struct {
	UserID   string
	Seed     int64
	Length   int  // длина кода, по умолчанию 4
	Digits   int  // размер алфавита, по умолчанию 10
	Attempts int  // по умолчанию 10; <= 0 — без ограничения
	Unique   bool // символы кода не повторяются

	// Secret задаёт код всех раундов вместо случайного.
	Secret []int

	Scores ScoreSink
	Logger *slog.Logger
}

// validate отклоняет параметры, при которых раунд не собрать.
func (o PuzzleOptions) validate() error {
	if o.Digits < 2 {
		return fmt.Errorf("code-breaker: alphabet of %d symbols is too small", o.Digits)
	}
	if o.Length < 1 {
		return fmt.Errorf("code-breaker: code length %d", o.Length)
	}
	return nil
}

// PuzzleView — состояние раунда только для чтения.
type PuzzleView struct {
	Phase        component.Phase  `json:"phase"`
	Length       int              `json:"length"`
	Digits       int              `json:"digits"`
	AttemptsLeft int              `json:"attempts_left"`
	History      []puzzle.Attempt `json:"history"`
	Solved       bool             `json:"solved"`
	Secret       []int            `json:"secret,omitempty"` // только после окончания
	Score        int              `json:"score"`
}

// PuzzleSession runs code-breaker rounds through the same menu/playing/paused/gameover
// lifecycle as the arcade games. The round ends on a solve or when attempts run out.
type PuzzleSession struct {
	opts    PuzzleOptions
	logger  *slog.Logger
	rng     *utils.PRNGService
	machine *state.StateMachine
	round   *puzzle.CodeBreaker
}

func NewPuzzleSession(opts PuzzleOptions) *PuzzleSession {
	if opts.Length == 0 {
		opts.Length = 4
	}
	if opts.Digits == 0 {
		opts.Digits = 10
	}
	if opts.Attempts == 0 {
		opts.Attempts = 10
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &PuzzleSession{
		opts:   opts,
		logger: logger.With("game", CodeBreakerGame),
		rng:    utils.NewPRNGService(opts.Seed),
	}
	p.machine = state.NewStateMachine(&puzzleHooks{p: p}, p.logger)
	return p
}

func (p *PuzzleSession) Phase() component.Phase { return p.machine.Phase() }

// Start начинает раунд. Параметры, с которыми раунд не собрать, возвращаются ошибкой,
// сессия остаётся в меню.
func (p *PuzzleSession) Start() error {
	if err := p.opts.validate(); err != nil {
		return err
	}
	return p.machine.Start()
}

func (p *PuzzleSession) Pause() error        { return p.machine.Pause() }
func (p *PuzzleSession) Resume() error       { return p.machine.Resume() }
func (p *PuzzleSession) ReturnToMenu() error { return p.machine.ToMenu() }

func (p *PuzzleSession) Retry() error {
	if err := p.opts.validate(); err != nil {
		return err
	}
	return p.machine.Retry()
}

// Guess отправляет догадку. Некорректные догадки и любые догадки вне фазы игры
// отклоняются без траты попытки.
func (p *PuzzleSession) Guess(g []int) (puzzle.Feedback, bool) {
	if p.round == nil || p.machine.Phase() != component.PhasePlaying {
		return puzzle.Feedback{}, false
	}
	fb, ok := p.round.Guess(g)
	if !ok {
		return fb, false
	}
	if p.round.Over() {
		if err := p.machine.GameOver(); err != nil {
			p.logger.Error("game over rejected", "err", err)
		}
	}
	return fb, true
}

// Score is (spare attempts + 1) * 100 for a solved round and 0 otherwise.
func (p *PuzzleSession) Score() int {
	if p.round == nil || !p.round.Solved() {
		return 0
	}
	spare := max(p.round.AttemptsLeft(), 0)
	return (spare + 1) * pointsPerSpareAttempt
}

func (p *PuzzleSession) View() PuzzleView {
	v := PuzzleView{Phase: p.machine.Phase(), Length: p.opts.Length, Digits: p.opts.Digits, AttemptsLeft: -1}
	if p.round == nil {
		return v
	}
	v.Length = p.round.Length()
	v.AttemptsLeft = p.round.AttemptsLeft()
	v.History = p.round.History()
	v.Solved = p.round.Solved()
	v.Secret, _ = p.round.Secret()
	v.Score = p.Score()
	return v
}

type puzzleHooks struct {
	p *PuzzleSession
}

func (h *puzzleHooks) Reset() {
	p := h.p
	secret := p.opts.Secret
	if len(secret) == 0 {
		secret = puzzle.RandomSecret(p.rng, p.opts.Length, p.opts.Digits, p.opts.Unique)
	}
	round, err := puzzle.NewCodeBreaker(secret, p.opts.Digits, p.opts.Attempts)
	if err != nil {
		p.logger.Warn("fixed secret rejected, drawing a random one", "err", err)
		secret = puzzle.RandomSecret(p.rng, p.opts.Length, p.opts.Digits, p.opts.Unique)
		if round, err = puzzle.NewCodeBreaker(secret, p.opts.Digits, p.opts.Attempts); err != nil {
			p.logger.Error("round not started", "err", err)
			p.round = nil
			return
		}
	}
	p.round = round
	p.logger.Info("round started", "length", round.Length(), "attempts", p.opts.Attempts)
}

func (h *puzzleHooks) Arm()         {}
func (h *puzzleHooks) Halt()        {}
func (h *puzzleHooks) Tick(float64) {}

func (h *puzzleHooks) Persist() {
	p := h.p
	if p.round == nil {
		return
	}
	rec := score.Record{
		UserID:   p.opts.UserID,
		GameType: CodeBreakerGame,
		Score:    p.Score(),
		Level:    len(p.round.History()),
	}
	p.logger.Info("round finished", "solved", p.round.Solved(), "score", rec.Score)
	if p.opts.Scores != nil {
		p.opts.Scores.Submit(rec)
	}
}

func (h *puzzleHooks) Discard() {
	h.p.round = nil
}
