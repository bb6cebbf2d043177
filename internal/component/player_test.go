package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamageClampsAndReportsDeathOnce(t *testing.T) {
	p := PlayerState{Health: 15, MaxHealth: 100}

	assert.False(t, p.Damage(10))
	assert.Equal(t, 5.0, p.Health)
	assert.True(t, p.Damage(40))
	assert.Equal(t, 0.0, p.Health)
	assert.False(t, p.Damage(40), "second lethal hit must not report death again")
	assert.Equal(t, 0.0, p.Health)
	assert.False(t, p.Damage(-5))
}

func TestHealAndAmmoCaps(t *testing.T) {
	p := PlayerState{Health: 90, MaxHealth: 100, Ammo: 28, MaxAmmo: 30}

	p.Heal(50)
	assert.Equal(t, 100.0, p.Health)
	p.Heal(-10)
	assert.Equal(t, 100.0, p.Health)

	p.AddAmmo(10)
	assert.Equal(t, 30, p.Ammo)

	p.Ammo = 1
	assert.True(t, p.SpendAmmo())
	assert.False(t, p.SpendAmmo())
	assert.Equal(t, 0, p.Ammo)

	p.RefillAmmo()
	assert.Equal(t, 30, p.Ammo)
}

func TestDeadPlayerCannotHeal(t *testing.T) {
	p := PlayerState{Health: 0, MaxHealth: 10}
	p.Heal(5)
	assert.Equal(t, 0.0, p.Health)
}

func TestShieldLifecycle(t *testing.T) {
	var s Shield
	assert.False(t, s.Consume())

	s.Grant(10, 100)
	assert.True(t, s.Active)
	assert.Equal(t, uint64(110), s.ExpiresAtTick)

	s.Grant(20, 10)
	assert.Equal(t, uint64(110), s.ExpiresAtTick, "shorter grant keeps the longer shield")

	assert.False(t, s.Expire(109))
	assert.True(t, s.Expire(110))
	assert.False(t, s.Active)

	s.Grant(200, 5)
	assert.True(t, s.Consume())
	assert.False(t, s.Active)
}
