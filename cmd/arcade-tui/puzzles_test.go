package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/puzzle"
	"go-recovery-arcade/internal/score"
)

type sinkStub struct{ records []score.Record }

func (s *sinkStub) Submit(rec score.Record) { s.records = append(s.records, rec) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }
func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func typeCode(t *testing.T, c *codeBreaker, code string) {
	t.Helper()
	for _, r := range code {
		_, err := c.handleKey(runeKey(r))
		require.NoError(t, err)
	}
}

func TestCodeBreakerKeys(t *testing.T) {
	sink := &sinkStub{}
	c := newCodeBreaker(app.PuzzleOptions{
		Secret:   []int{1, 2, 3, 4},
		Attempts: 3,
		Scores:   sink,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := c.handleKey(key(tcell.KeyEnter))
	require.NoError(t, err)
	require.Equal(t, component.PhasePlaying, c.session.Phase())

	// лишняя цифра не помещается, backspace стирает последнюю
	typeCode(t, c, "13245")
	assert.Equal(t, []int{1, 3, 2, 4}, c.input)
	_, _ = c.handleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, []int{1, 3, 2}, c.input)
	typeCode(t, c, "4")

	_, _ = c.handleKey(key(tcell.KeyEnter))
	assert.Empty(t, c.input)
	require.Len(t, c.session.View().History, 1)
	assert.Equal(t, puzzle.Feedback{Correct: 2, WrongPosition: 2}, c.session.View().History[0].Feedback)

	// неполная догадка не тратит попытку
	typeCode(t, c, "12")
	_, _ = c.handleKey(key(tcell.KeyEnter))
	assert.Len(t, c.session.View().History, 1)
	assert.Equal(t, []int{1, 2}, c.input)

	typeCode(t, c, "34")
	_, _ = c.handleKey(key(tcell.KeyEnter))
	assert.Equal(t, component.PhaseGameOver, c.session.Phase())
	assert.True(t, c.session.View().Solved)
	require.Len(t, sink.records, 1)
	assert.Equal(t, app.CodeBreakerGame, sink.records[0].GameType)

	_, err = c.handleKey(runeKey('m'))
	require.NoError(t, err)
	leave, err := c.handleKey(runeKey('a'))
	require.NoError(t, err)
	assert.True(t, leave)
}

func TestCodeBreakerBadAlphabetStaysInMenu(t *testing.T) {
	c := newCodeBreaker(app.PuzzleOptions{Digits: 1, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	_, err := c.handleKey(key(tcell.KeyEnter))
	assert.Error(t, err)
	assert.Equal(t, component.PhaseMenu, c.session.Phase())
}

func TestGridCursorWraps(t *testing.T) {
	g := newGridPuzzle(5, "tester", nil)

	g.handleKey(key(tcell.KeyLeft))
	g.handleKey(key(tcell.KeyUp))
	assert.Equal(t, puzzle.Size-1, g.col)
	assert.Equal(t, puzzle.Size-1, g.row)

	g.handleKey(key(tcell.KeyRight))
	g.handleKey(key(tcell.KeyDown))
	assert.Zero(t, g.col)
	assert.Zero(t, g.row)
}

func TestGridSolveSubmitsOnce(t *testing.T) {
	sink := &sinkStub{}
	g := newGridPuzzle(11, "tester", sink)
	require.Positive(t, g.blanks)

	hinted := false
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			g.row, g.col = r, c
			if g.board.Given[r][c] {
				before := g.board.Cells[r][c]
				g.handleKey(runeKey('0'))
				assert.Equal(t, before, g.board.Cells[r][c], "clues stay fixed")
				continue
			}
			if !hinted {
				g.handleKey(runeKey('h'))
				hinted = true
				continue
			}
			g.handleKey(runeKey(rune('0' + g.solution[r][c])))
		}
	}

	require.True(t, g.done)
	assert.True(t, g.board.Solved())
	require.Len(t, sink.records, 1)
	assert.Equal(t, gridGame, sink.records[0].GameType)
	assert.Equal(t, (g.blanks-1)*pointsPerCell, sink.records[0].Score)

	// после решения ввод игнорируется
	g.handleKey(key(tcell.KeyBackspace2))
	assert.True(t, g.board.Solved())

	assert.True(t, g.handleKey(runeKey('a')))
	g.handleKey(runeKey('n'))
	assert.False(t, g.done)
	assert.Len(t, sink.records, 1)
}
