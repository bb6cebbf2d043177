package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/utils"
)

type eventCounter struct {
	counts map[event.EventType]int
}

func (c *eventCounter) OnEvent(e event.Event) { c.counts[e.Type]++ }

func newTestWorld(t *testing.T, game string) (*World, *eventCounter) {
	t.Helper()
	def, err := defs.NewLibrary().Lookup(game)
	require.NoError(t, err)

	d := event.NewDispatcher()
	counter := &eventCounter{counts: map[event.EventType]int{}}
	d.SubscribeAll(counter,
		event.EnemySpawned, event.EnemyKilled, event.ObstacleCleared, event.HostileCrashed,
		event.PlayerDamaged, event.ShieldAbsorbed, event.PickupSpawned, event.PickupCollected,
		event.WaveCompleted, event.PlayerDied,
	)
	return NewWorld(def, utils.NewPRNGService(7), d, nil), counter
}
