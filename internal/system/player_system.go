// internal/system/player_system.go
package system

import (
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/pkg/geom"
)

// PlayerSystem обрабатывает всё, что делает игрок: движение, стрельбу, ближний бой и
// улучшения, а также потиковые таймеры.
type PlayerSystem struct {
	world *World
}

func NewPlayerSystem(world *World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Update продвигает перезарядки урона и стрельбы и снимает истёкший щит.
func (s *PlayerSystem) Update() {
	p := s.world.Player
	p.Shield.Expire(s.world.Tick)
	if p.TicksSinceDamage < s.world.Def.Player.DamageCooldownTicks {
		p.TicksSinceDamage++
	}
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// Move ставит игрока в (x, y) с ограничением ареной. На аренах с полосами x
// прилипает к ближайшему центру полосы. Перемещение не отклоняется.
func (s *PlayerSystem) Move(x, y float64) geom.Vec2 {
	w := s.world
	p := w.Player
	half := p.Size / 2
	arena := geom.Rect{
		X: half,
		Y: half,
		W: max(w.Def.Arena.Width-p.Size, 0),
		H: max(w.Def.Arena.Height-p.Size, 0),
	}
	pos := arena.Clamp(geom.Vec2{X: x, Y: y})
	if lanes := w.Def.Arena.Lanes; lanes > 0 {
		pos.X = geom.LaneCenter(w.Def.Arena.Width, lanes, geom.NearestLane(w.Def.Arena.Width, lanes, pos.X))
	}
	p.Pos = pos
	return pos
}

// AttemptsLeft — оставшиеся выстрелы или -1, если лимита нет.
func (s *PlayerSystem) AttemptsLeft() int {
	budget := s.world.Def.Rules.AttemptBudget
	if budget <= 0 {
		return -1
	}
	return max(budget-s.world.Stats.ShotsFired, 0)
}

// Fire launches a projectile toward (tx, ty). It is rejected without side effects when
// the weapon is melee, the player is dead, the weapon is cooling down, the attempt
// budget is spent or there is no ammo.
func (s *PlayerSystem) Fire(tx, ty float64) bool {
	w := s.world
	p := w.Player
	if w.Def.Weapon.Mode != defs.WeaponProjectile || !p.Alive() || p.FireCooldown > 0 {
		return false
	}
	if s.AttemptsLeft() == 0 {
		return false
	}
	if !p.SpendAmmo() {
		return false
	}
	w.Entities.SpawnProjectile(p.Pos, geom.Vec2{X: tx, Y: ty}, w.Tick)
	p.FireCooldown = w.Def.Weapon.FireCooldownTicks
	w.Stats.ShotsFired++
	return true
}

// Strike бьёт первого по порядку появления противника в пределах MeleeRange от края
// игрока. false, если никого рядом нет или удар недоступен.
func (s *PlayerSystem) Strike() bool {
	w := s.world
	p := w.Player
	if w.Def.Weapon.Mode != defs.WeaponMelee || !p.Alive() || p.FireCooldown > 0 {
		return false
	}

	reach := p.Size + 2*w.Def.Weapon.MeleeRange
	for _, h := range w.Entities.Hostiles() {
		if geom.CirclesOverlap(p.Pos, reach, h.Pos, h.Size) {
			p.FireCooldown = w.Def.Weapon.FireCooldownTicks
			DamageHostile(w, h, w.Def.Weapon.Damage(p.WeaponLevel))
			return true
		}
	}
	return false
}

// UpgradeCost — цена следующего уровня оружия в монетах.
func (s *PlayerSystem) UpgradeCost() int {
	return s.world.Def.Weapon.UpgradeCost(s.world.Player.WeaponLevel)
}

// UpgradeWeapon покупает следующий уровень оружия за base*level монет. Максимум
// патронов растёт на AmmoPerUpgrade, текущий запас на столько же. Без монет ничего
// не меняется.
func (s *PlayerSystem) UpgradeWeapon() bool {
	w := s.world
	p := w.Player
	cost := s.UpgradeCost()
	if cost < 0 || w.Stats.Coins < cost {
		return false
	}

	w.Stats.Coins -= cost
	p.WeaponLevel++
	if delta := w.Def.Weapon.AmmoPerUpgrade; delta > 0 {
		p.MaxAmmo += delta
		p.AddAmmo(delta)
	}
	w.Logger.Debug("weapon upgraded", "level", p.WeaponLevel, "cost", cost, "coins", w.Stats.Coins)
	return true
}
