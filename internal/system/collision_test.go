package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/pkg/geom"
)

func TestProjectileHitsOnlyFirstOverlappingHostile(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	spot := geom.Vec2{X: 100, Y: 100}

	first := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	second := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	first.Pos, second.Pos = spot, spot
	firstHealth, secondHealth := first.Health, second.Health

	p := w.Entities.SpawnProjectile(spot, geom.Vec2{X: 100}, 0)

	report := cs.Resolve()

	assert.Equal(t, 1, report.Hits)
	assert.Equal(t, firstHealth-1, first.Health)
	assert.Equal(t, secondHealth, second.Health)
	_, alive := w.Entities.Get(p.ID)
	assert.False(t, alive, "projectile is consumed by the hit")
}

func TestTwoProjectilesOneHostile(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	spot := geom.Vec2{X: 100, Y: 100}

	h := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	h.Pos = spot
	h.Health = 1
	p1 := w.Entities.SpawnProjectile(spot, geom.Vec2{X: 100}, 0)
	p2 := w.Entities.SpawnProjectile(spot, geom.Vec2{X: 100}, 0)

	report := cs.Resolve()

	assert.Equal(t, 1, report.Kills)
	_, ok := w.Entities.Get(p1.ID)
	assert.False(t, ok)
	_, ok = w.Entities.Get(p2.ID)
	assert.True(t, ok, "second projectile finds nothing left to hit")
}

func TestKillCreditsScoreAndCoins(t *testing.T) {
	w, events := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	spot := geom.Vec2{X: 100, Y: 100}

	h := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	h.Pos = spot
	h.Health = 1
	w.Entities.SpawnProjectile(spot, geom.Vec2{X: 100}, 0)

	cs.Resolve()

	assert.Equal(t, h.Score, w.Stats.Score)
	assert.Equal(t, h.Coins, w.Stats.Coins)
	assert.Equal(t, 1, w.Stats.Kills)
	assert.Equal(t, 1, events.counts[event.EnemyKilled])
	_, ok := w.Entities.Get(h.ID)
	assert.False(t, ok)
	assert.LessOrEqual(t, len(w.Entities.Pickups()), 1, "at most one drop per kill")
}

func TestShieldAbsorbsHit(t *testing.T) {
	w, events := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	w.Player.Shield.Grant(0, 300)
	h := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	h.Pos = w.Player.Pos

	report := cs.Resolve()

	assert.True(t, report.Absorbed)
	assert.Equal(t, w.Player.MaxHealth, w.Player.Health)
	assert.False(t, w.Player.Shield.Active)
	_, ok := w.Entities.Get(h.ID)
	assert.True(t, ok, "absorbed hostile stays in play")
	assert.Equal(t, 1, events.counts[event.ShieldAbsorbed])
	assert.Zero(t, events.counts[event.PlayerDamaged])
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	ps := NewPlayerSystem(w)
	h := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	h.Pos = w.Player.Pos

	cs.Resolve()
	afterFirst := w.Player.Health
	assert.Equal(t, w.Player.MaxHealth-h.ContactDamage, afterFirst)

	cs.Resolve()
	assert.Equal(t, afterFirst, w.Player.Health, "still cooling down")

	for i := 0; i < w.Def.Player.DamageCooldownTicks; i++ {
		ps.Update()
	}
	cs.Resolve()
	assert.Equal(t, afterFirst-h.ContactDamage, w.Player.Health)
}

func TestDeathIsReportedOnce(t *testing.T) {
	w, events := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	h := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	h.Pos = w.Player.Pos
	w.Player.Health = 1

	report := cs.Resolve()
	require.True(t, report.PlayerDied)
	assert.Zero(t, w.Player.Health)

	w.Player.TicksSinceDamage = 1000
	report = cs.Resolve()
	assert.False(t, report.PlayerDied)
	assert.Zero(t, w.Player.Health)
	assert.Equal(t, 1, events.counts[event.PlayerDied])
}

func TestObstacleRemovedOnContact(t *testing.T) {
	w, events := newTestWorld(t, "racer")
	cs := NewCollisionSystem(w)
	o := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	require.Equal(t, defs.KindObstacle, o.Kind)
	o.Pos = w.Player.Pos

	cs.Resolve()

	_, ok := w.Entities.Get(o.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, events.counts[event.HostileCrashed])
	assert.Less(t, w.Player.Health, w.Player.MaxHealth)
}

func TestPickupsApplyClampedEffects(t *testing.T) {
	w, events := newTestWorld(t, "zombie")
	cs := NewCollisionSystem(w)
	w.Player.Ammo = w.Player.MaxAmmo - 2
	w.Player.Health = w.Player.MaxHealth - 5

	w.Entities.SpawnPickup(defs.VariantAmmo, w.Player.Pos, geom.Vec2{}, 0)
	w.Entities.SpawnPickup(defs.VariantHealth, w.Player.Pos, geom.Vec2{}, 0)
	w.Entities.SpawnPickup(defs.VariantCoin, w.Player.Pos, geom.Vec2{}, 0)

	report := cs.Resolve()

	assert.Equal(t, 3, report.Collected)
	assert.Equal(t, w.Player.MaxAmmo, w.Player.Ammo)
	assert.Equal(t, w.Player.MaxHealth, w.Player.Health)
	assert.Equal(t, w.Def.Pickups.Coins, w.Stats.Coins)
	assert.Empty(t, w.Entities.Pickups())
	assert.Equal(t, 3, events.counts[event.PickupCollected])
}

func TestShieldPickupGrantsShield(t *testing.T) {
	w, _ := newTestWorld(t, "racer")
	cs := NewCollisionSystem(w)
	w.Tick = 10
	w.Entities.SpawnPickup(defs.VariantShield, w.Player.Pos, geom.Vec2{}, 10)

	cs.Resolve()

	assert.True(t, w.Player.Shield.Active)
	assert.Equal(t, uint64(10+300), w.Player.Shield.ExpiresAtTick)
}
