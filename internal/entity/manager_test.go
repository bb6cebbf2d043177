package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/types"
	"go-recovery-arcade/internal/utils"
	"go-recovery-arcade/pkg/geom"
)

func newZombieManager(t *testing.T) *Manager {
	t.Helper()
	def, err := defs.NewLibrary().Lookup("zombie")
	require.NoError(t, err)
	return NewManager(def, utils.NewPRNGService(42))
}

func TestIDsStrictlyIncreasingAndNeverReused(t *testing.T) {
	m := newZombieManager(t)
	center := geom.Vec2{X: 240, Y: 400}

	var last types.EntityID
	seen := map[types.EntityID]bool{}
	for i := 0; i < 200; i++ {
		var id types.EntityID
		switch i % 3 {
		case 0:
			id = m.SpawnEnemy(1, false, center, 0).ID
		case 1:
			id = m.SpawnProjectile(center, geom.Vec2{X: 240}, 0).ID
		default:
			id = m.SpawnPickup(defs.VariantCoin, center, geom.Vec2{}, 0).ID
		}
		require.Greater(t, id, last)
		require.False(t, seen[id])
		seen[id] = true
		last = id

		if i%2 == 0 {
			assert.True(t, m.Remove(id))
		}
	}

	assert.False(t, m.Remove(1), "removed IDs stay removed")
	next := m.SpawnEnemy(1, false, center, 0)
	assert.Equal(t, last+1, next.ID)
}

func TestSpawnEnemyForcedBoss(t *testing.T) {
	m := newZombieManager(t)
	e := m.SpawnEnemy(5, true, geom.Vec2{X: 240, Y: 400}, 7)

	assert.Equal(t, defs.VariantBoss, e.Variant)
	assert.Equal(t, defs.KindEnemy, e.Kind)
	assert.Equal(t, uint64(7), e.SpawnTick)
	// здоровье растёт в 1 + 0.1*(5-1) раз
	assert.InDelta(t, 20*1.4, e.Health, 1e-9)
}

func TestSpawnRespectsSafetyRadius(t *testing.T) {
	m := newZombieManager(t)
	player := geom.Vec2{X: 240, Y: 400}
	for i := 0; i < 100; i++ {
		e := m.SpawnEnemy(1, false, player, 0)
		assert.GreaterOrEqual(t, e.Pos.Dist(player), 150.0)
	}
}

func TestSpawnFallsBackToFarthestCandidate(t *testing.T) {
	def, err := defs.NewLibrary().Lookup("zombie")
	require.NoError(t, err)
	def.Spawn.SafetyRadius = 10000
	def.Spawn.MaxRerolls = 3
	m := NewManager(def, utils.NewPRNGService(1))

	e := m.SpawnEnemy(1, false, geom.Vec2{X: 240, Y: 400}, 0)
	assert.True(t, m.Bounds().Contains(e.Pos), "still placed on the arena edge")
}

func TestStepSteersEnemiesTowardPlayer(t *testing.T) {
	m := newZombieManager(t)
	player := geom.Vec2{X: 240, Y: 400}
	e := m.SpawnEnemy(1, false, player, 0)
	before := e.Pos.Dist(player)

	m.Step(0.1, player, 1)

	assert.InDelta(t, before-e.Speed*0.1, e.Pos.Dist(player), 1e-6)
}

func TestStepRemovesProjectilesOutOfBounds(t *testing.T) {
	m := newZombieManager(t)
	p := m.SpawnProjectile(geom.Vec2{X: 240, Y: 5}, geom.Vec2{X: 240, Y: 0}, 0)

	report := m.Step(1, geom.Vec2{}, 1)

	assert.Equal(t, 1, report.LostProjectiles)
	_, ok := m.Get(p.ID)
	assert.False(t, ok)
	assert.Empty(t, m.Projectiles())
}

func TestStepReportsDodgedObstacles(t *testing.T) {
	def, err := defs.NewLibrary().Lookup("runner")
	require.NoError(t, err)
	m := NewManager(def, utils.NewPRNGService(3))
	o := m.SpawnEnemy(1, false, geom.Vec2{X: 240, Y: 700}, 0)
	require.Equal(t, defs.KindObstacle, o.Kind)
	require.Less(t, o.Pos.Y, 0.0)

	report := m.Step(10, geom.Vec2{X: 240, Y: 700}, 1)

	require.Len(t, report.Dodged, 1)
	assert.Equal(t, o.ID, report.Dodged[0].ID)
	assert.Empty(t, m.Hostiles())
}

func TestStepExpiresPickups(t *testing.T) {
	m := newZombieManager(t)
	p := m.SpawnPickup(defs.VariantAmmo, geom.Vec2{X: 100, Y: 100}, geom.Vec2{}, 10)
	assert.Equal(t, uint64(610), p.ExpiresAtTick)

	assert.Empty(t, m.Step(1.0/60, geom.Vec2{}, 609).ExpiredPickups)
	report := m.Step(1.0/60, geom.Vec2{}, 610)
	require.Len(t, report.ExpiredPickups, 1)
	assert.Empty(t, m.Pickups())
}

func TestSnapshotIsACopy(t *testing.T) {
	m := newZombieManager(t)
	e := m.SpawnEnemy(1, false, geom.Vec2{X: 240, Y: 400}, 0)
	want := e.Health

	snap := m.Snapshot()
	snap[0].Health = -5

	assert.Equal(t, want, e.Health)
}
