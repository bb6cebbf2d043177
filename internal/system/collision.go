// internal/system/collision.go
package system

import (
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/pkg/geom"
)

// CollisionReport — итог одного прохода Resolve.
type CollisionReport struct {
	Hits       int
	Kills      int
	Absorbed   bool
	Damaged    bool
	Collected  int
	PlayerDied bool
}

// CollisionSystem разрешает контакты снаряд/противник, противник/игрок и игрок/бонус
// в этом порядке, раз за тик.
type CollisionSystem struct {
	world *World
}

func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// Resolve выполняет все проверки контактов. Обход идёт в порядке появления: если снаряд
// задевает нескольких противников, попадание получает самый старый.
func (s *CollisionSystem) Resolve() CollisionReport {
	var report CollisionReport
	s.projectilesVsHostiles(&report)
	s.hostilesVsPlayer(&report)
	s.playerVsPickups(&report)
	return report
}

func (s *CollisionSystem) projectilesVsHostiles(report *CollisionReport) {
	w := s.world
	damage := w.Def.Weapon.Damage(w.Player.WeaponLevel)

	// Remove заменяет массивы, так что эти срезы не меняются до конца прохода.
	projectiles := w.Entities.Projectiles()
	hostiles := w.Entities.Hostiles()

	for _, p := range projectiles {
		for _, h := range hostiles {
			if h.Health <= 0 {
				continue
			}
			if !geom.CirclesOverlap(p.Pos, p.Size, h.Pos, h.Size) {
				continue
			}
			w.Entities.Remove(p.ID)
			report.Hits++
			if DamageHostile(w, h, damage) {
				report.Kills++
			}
			break
		}
	}
}

func (s *CollisionSystem) hostilesVsPlayer(report *CollisionReport) {
	w := s.world
	player := w.Player
	if !player.Alive() || player.TicksSinceDamage < w.Def.Player.DamageCooldownTicks {
		return
	}

	var hit *component.Entity
	for _, h := range w.Entities.Hostiles() {
		if geom.CirclesOverlap(h.Pos, h.Size, player.Pos, player.Size) {
			hit = h
			break
		}
	}
	if hit == nil {
		return
	}

	player.TicksSinceDamage = 0
	if player.Shield.Consume() {
		report.Absorbed = true
		w.dispatch(event.ShieldAbsorbed, event.DamageData{SourceID: hit.ID, Health: player.Health})
		return
	}

	before := player.Health
	died := player.Damage(hit.ContactDamage)
	w.Stats.DamageTaken += before - player.Health
	report.Damaged = true
	w.dispatch(event.PlayerDamaged, event.DamageData{
		SourceID: hit.ID, Amount: before - player.Health, Health: player.Health,
	})

	if hit.RemoveOnContact {
		w.Entities.Remove(hit.ID)
		w.dispatch(event.HostileCrashed, event.HostileData{ID: hit.ID, Variant: hit.Variant, Pos: hit.Pos})
	}

	if died {
		report.PlayerDied = true
		w.dispatch(event.PlayerDied, event.DamageData{SourceID: hit.ID})
	}
}

func (s *CollisionSystem) playerVsPickups(report *CollisionReport) {
	w := s.world
	player := w.Player
	if !player.Alive() {
		return
	}

	for _, p := range w.Entities.Pickups() {
		if !geom.CirclesOverlap(p.Pos, p.Size, player.Pos, player.Size) {
			continue
		}
		s.applyPickup(p.Variant)
		w.Entities.Remove(p.ID)
		report.Collected++
		w.dispatch(event.PickupCollected, event.PickupData{ID: p.ID, Variant: p.Variant, Pos: p.Pos})
	}
}

func (s *CollisionSystem) applyPickup(variant defs.Variant) {
	w := s.world
	cfg := w.Def.Pickups
	switch variant {
	case defs.VariantAmmo:
		w.Player.AddAmmo(cfg.Ammo)
	case defs.VariantHealth:
		w.Player.Heal(cfg.Health)
	case defs.VariantCoin:
		if cfg.Coins > 0 {
			w.Stats.Coins += cfg.Coins
		}
	case defs.VariantShield:
		w.Player.Shield.Grant(w.Tick, cfg.ShieldTicks)
	default:
		w.Logger.Debug("unknown pickup variant", "variant", variant)
	}
}
