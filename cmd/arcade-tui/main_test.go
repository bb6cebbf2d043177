package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/clock"
	"go-recovery-arcade/internal/defs"
)

func newTestGame() *Game {
	return &Game{
		sched:   clock.NewLoopScheduler(),
		library: defs.NewLibrary(),
		sound:   NewSoundManager(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSwitchGameUnknownKeepsSession(t *testing.T) {
	g := newTestGame()
	g.switchGame("zombie")
	require.NotNil(t, g.session)
	before := g.session

	g.switchGame("no-such-game")
	assert.Same(t, before, g.session)
	assert.Equal(t, "zombie", g.session.Definition().ID)

	g.switchGame("runner")
	assert.Equal(t, "runner", g.session.Definition().ID)
}

func TestEnterCreatesPuzzlesOnce(t *testing.T) {
	g := newTestGame()
	g.settings.Seed = 3

	g.enter(modeCodeBreaker)
	require.NotNil(t, g.code)
	code := g.code
	g.enter(modeArcade)
	g.enter(modeCodeBreaker)
	assert.Same(t, code, g.code)

	g.enter(modeGrid)
	require.NotNil(t, g.grid)
	assert.Equal(t, modeGrid, g.mode)
}
