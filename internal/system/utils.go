// internal/system/utils.go
package system

import (
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/pkg/geom"
)

// DamageHostile наносит урон живому противнику. Когда здоровье падает до нуля, противник
// удаляется и убийство засчитывается; тогда возвращается true.
func DamageHostile(w *World, h *component.Entity, damage float64) bool {
	if damage <= 0 || h.Health <= 0 {
		return false
	}
	h.Health -= damage
	if h.Health > 0 {
		return false
	}
	h.Health = 0

	w.Entities.Remove(h.ID)
	w.Stats.Score += h.Score
	w.Stats.Coins += h.Coins
	w.Stats.Kills++
	w.dispatch(event.EnemyKilled, event.HostileData{
		ID: h.ID, Variant: h.Variant, Pos: h.Pos, Score: h.Score, Coins: h.Coins,
	})

	if w.RNG.Chance(w.Def.Pickups.DropChance) {
		dropPickup(w, h.Pos, geom.Vec2{})
	}
	return true
}

// dropPickup создаёт ровно один бонус из таблицы добычи.
func dropPickup(w *World, pos, vel geom.Vec2) *component.Entity {
	variant := w.RNG.ChooseWeighted(w.Def.Pickups.Table)
	if variant == "" {
		return nil
	}
	p := w.Entities.SpawnPickup(variant, pos, vel, w.Tick)
	w.dispatch(event.PickupSpawned, event.PickupData{ID: p.ID, Variant: p.Variant, Pos: p.Pos})
	return p
}
