// internal/component/player.go
package component

import (
	"go-recovery-arcade/pkg/geom"
)

// PlayerState — единственный игрок сессии. Все изменения ограничиваются: здоровье
// остаётся в [0, MaxHealth], патроны в [0, MaxAmmo].
type PlayerState struct {
	Pos  geom.Vec2
	Size float64

	Health    float64
	MaxHealth float64
	Ammo      int
	MaxAmmo   int

	WeaponLevel int
	Shield      Shield

	TicksSinceDamage int
	FireCooldown     int
}

// Alive — здоровье больше нуля.
func (p *PlayerState) Alive() bool { return p.Health > 0 }

// Damage вычитает amount (отрицательное игнорируется), не ниже нуля.
// true только при вызове, который довёл здоровье до нуля.
func (p *PlayerState) Damage(amount float64) bool {
	if amount <= 0 || p.Health <= 0 {
		return false
	}
	p.Health = geom.Clamp(p.Health-amount, 0, p.MaxHealth)
	return p.Health == 0
}

// Heal добавляет здоровье до MaxHealth. Мёртвого игрока не лечит.
func (p *PlayerState) Heal(amount float64) {
	if amount <= 0 || p.Health <= 0 {
		return
	}
	p.Health = geom.Clamp(p.Health+amount, 0, p.MaxHealth)
}

// AddAmmo добавляет n патронов, не больше MaxAmmo.
func (p *PlayerState) AddAmmo(n int) {
	if n <= 0 {
		return
	}
	p.Ammo = geom.ClampInt(p.Ammo+n, 0, p.MaxAmmo)
}

// SpendAmmo тратит один патрон. Если пусто, возвращает false и ничего не меняет.
func (p *PlayerState) SpendAmmo() bool {
	if p.Ammo <= 0 {
		return false
	}
	p.Ammo--
	return true
}

// RefillAmmo пополняет патроны до MaxAmmo.
func (p *PlayerState) RefillAmmo() { p.Ammo = p.MaxAmmo }
