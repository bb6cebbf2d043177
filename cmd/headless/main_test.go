package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/pkg/geom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSummarize(t *testing.T) {
	all := []runStats{
		{ticks: 100, finished: true, snap: app.Snapshot{Stats: component.RunStats{Score: 10, Kills: 2, ShotsFired: 4}, Wave: component.Wave{Index: 1}}},
		{ticks: 300, snap: app.Snapshot{Stats: component.RunStats{Score: 30, Kills: 3, ShotsFired: 6}, Wave: component.Wave{Index: 3}}},
	}
	agg := summarize(all)
	assert.Equal(t, 2, agg.runs)
	assert.Equal(t, 1, agg.gameOvers)
	assert.Equal(t, 20.0, agg.meanScore)
	assert.Equal(t, 30, agg.bestScore)
	assert.Equal(t, 2.0, agg.meanWave)
	assert.Equal(t, 200.0, agg.meanTicks)
	assert.Equal(t, 0.5, agg.accuracy)

	assert.Zero(t, summarize(nil).runs)
}

func TestNearestHostileIgnoresPickups(t *testing.T) {
	snap := app.Snapshot{
		Player: component.PlayerState{Pos: geom.Vec2{X: 100, Y: 100}},
		Entities: []component.Entity{
			{ID: 1, Kind: defs.KindPickup, Pos: geom.Vec2{X: 101, Y: 100}},
			{ID: 2, Kind: defs.KindEnemy, Pos: geom.Vec2{X: 200, Y: 100}},
			{ID: 3, Kind: defs.KindObstacle, Pos: geom.Vec2{X: 100, Y: 150}},
		},
	}
	e, ok := nearestHostile(snap)
	require.True(t, ok)
	assert.EqualValues(t, 3, e.ID)

	_, ok = nearestHostile(app.Snapshot{})
	assert.False(t, ok)
}

func TestRunGameIsDeterministic(t *testing.T) {
	def, err := defs.NewLibrary().Lookup("zombie")
	require.NoError(t, err)

	a := runGame(def, 1, 42, 900, nil, quietLogger())
	b := runGame(def, 1, 42, 900, nil, quietLogger())
	assert.Equal(t, a.ticks, b.ticks)
	assert.Equal(t, a.snap, b.snap)
	assert.Equal(t, a.events, b.events)
	assert.Positive(t, a.snap.Stats.ShotsFired)
}
