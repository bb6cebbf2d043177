package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/pkg/geom"
)

func TestUpgradeRejectedWhenShortOfCoins(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	ps := NewPlayerSystem(w)
	w.Player.WeaponLevel = 2
	w.Player.MaxAmmo = 40
	w.Player.Ammo = 35
	require.Equal(t, 50*2, ps.UpgradeCost())

	w.Stats.Coins = 99
	assert.False(t, ps.UpgradeWeapon())
	assert.Equal(t, 2, w.Player.WeaponLevel)
	assert.Equal(t, 99, w.Stats.Coins)
	assert.Equal(t, 40, w.Player.MaxAmmo)
	assert.Equal(t, 35, w.Player.Ammo)

	w.Stats.Coins = 100
	assert.True(t, ps.UpgradeWeapon())
	assert.Equal(t, 3, w.Player.WeaponLevel)
	assert.Zero(t, w.Stats.Coins)
	assert.Equal(t, 50, w.Player.MaxAmmo)
	assert.Equal(t, 45, w.Player.Ammo)
}

func TestUpgradeRaisesDamage(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	ps := NewPlayerSystem(w)
	w.Stats.Coins = 1000
	before := w.Def.Weapon.Damage(w.Player.WeaponLevel)
	require.True(t, ps.UpgradeWeapon())
	assert.Greater(t, w.Def.Weapon.Damage(w.Player.WeaponLevel), before)
}

func TestMoveClampsToArena(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	ps := NewPlayerSystem(w)

	pos := ps.Move(-100, 5000)

	assert.Equal(t, geom.Vec2{X: 15, Y: 785}, pos)
	assert.Equal(t, pos, w.Player.Pos)
}

func TestMoveSnapsToLanes(t *testing.T) {
	w, _ := newTestWorld(t, "racer")
	ps := NewPlayerSystem(w)

	assert.Equal(t, 60.0, ps.Move(10, 400).X)
	assert.Equal(t, 180.0, ps.Move(170, 400).X)
	assert.Equal(t, 300.0, ps.Move(9999, 400).X)
}

func TestFireSpendsAmmoAndCoolsDown(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	ps := NewPlayerSystem(w)
	ammo := w.Player.Ammo

	require.True(t, ps.Fire(240, 0))
	assert.Equal(t, ammo-1, w.Player.Ammo)
	assert.Len(t, w.Entities.Projectiles(), 1)

	assert.False(t, ps.Fire(240, 0), "cooling down")
	for i := 0; i < w.Def.Weapon.FireCooldownTicks; i++ {
		ps.Update()
	}
	assert.True(t, ps.Fire(240, 0))
	assert.Equal(t, 2, w.Stats.ShotsFired)
}

func TestFireWithoutAmmoIsRejected(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	ps := NewPlayerSystem(w)
	w.Player.Ammo = 0

	assert.False(t, ps.Fire(240, 0))
	assert.Empty(t, w.Entities.Projectiles())
	assert.Zero(t, w.Stats.ShotsFired)
}

func TestAttemptBudget(t *testing.T) {
	w, _ := newTestWorld(t, "bubble")
	ps := NewPlayerSystem(w)
	assert.Equal(t, 60, ps.AttemptsLeft())

	w.Stats.ShotsFired = 60
	assert.Zero(t, ps.AttemptsLeft())
	assert.False(t, ps.Fire(240, 0))

	z, _ := newTestWorld(t, "zombie")
	assert.Equal(t, -1, NewPlayerSystem(z).AttemptsLeft())
}

func TestStrikeHitsFirstHostileInReach(t *testing.T) {
	w, _ := newTestWorld(t, "strike")
	ps := NewPlayerSystem(w)

	far := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	far.Pos = w.Player.Pos.Add(geom.Vec2{X: 400})
	nearA := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	nearA.Pos = w.Player.Pos.Add(geom.Vec2{X: 40})
	nearB := w.Entities.SpawnEnemy(1, false, w.Player.Pos, 0)
	nearB.Pos = w.Player.Pos.Add(geom.Vec2{Y: 40})
	healthB := nearB.Health

	require.True(t, ps.Strike())
	assert.Equal(t, far.MaxHealth, far.Health)
	assert.Equal(t, healthB, nearB.Health)
	assert.Less(t, nearA.Health, nearA.MaxHealth)

	assert.False(t, ps.Strike(), "cooling down")
}

func TestStrikeUnavailableForProjectileWeapons(t *testing.T) {
	w, _ := newTestWorld(t, "zombie")
	assert.False(t, NewPlayerSystem(w).Strike())
}

func TestShieldExpires(t *testing.T) {
	w, _ := newTestWorld(t, "racer")
	ps := NewPlayerSystem(w)
	w.Player.Shield = component.Shield{Active: true, ExpiresAtTick: 5}

	w.Tick = 4
	ps.Update()
	assert.True(t, w.Player.Shield.Active)
	w.Tick = 5
	ps.Update()
	assert.False(t, w.Player.Shield.Active)
}
