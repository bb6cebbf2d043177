package main

import (
	"math"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/pkg/geom"
)

// bot играет по простым правилам: покупает улучшения, когда хватает монет, атакует
// ближайшего противника и уходит от препятствий.
type bot struct {
	def   defs.GameDefinition
	speed float64 // единиц арены за тик
}

func newBot(def defs.GameDefinition) *bot {
	return &bot{def: def, speed: 240 * config.DefaultDT}
}

func (b *bot) act(s *app.Session) {
	snap := s.Snapshot()
	if snap.Stats.Coins >= snap.UpgradeCost && snap.UpgradeCost > 0 {
		s.UpgradeWeapon()
	}

	target, ok := nearestHostile(snap)
	if !ok {
		return
	}
	p := snap.Player.Pos

	if target.Kind == defs.KindObstacle {
		if x, dodge := b.dodge(snap, target); dodge {
			s.MovePlayer(x, p.Y)
		}
		if b.def.Weapon.Mode == defs.WeaponProjectile {
			s.Fire(target.Pos.X, target.Pos.Y)
		}
		return
	}

	switch b.def.Weapon.Mode {
	case defs.WeaponMelee:
		reach := snap.Player.Size/2 + b.def.Weapon.MeleeRange + target.Size/2
		if p.Dist(target.Pos) > reach {
			step := target.Pos.Sub(p).Norm().Mul(b.speed)
			next := p.Add(step)
			s.MovePlayer(next.X, next.Y)
			return
		}
		s.Strike()
	default:
		s.Fire(target.Pos.X, target.Pos.Y)
	}
}

// dodge возвращает новый X, если препятствие идёт в колонку игрока.
func (b *bot) dodge(snap app.Snapshot, o component.Entity) (float64, bool) {
	p := snap.Player
	if o.Pos.Y > p.Pos.Y {
		return 0, false
	}
	if math.Abs(o.Pos.X-p.Pos.X) > (o.Size+p.Size)/2 {
		return 0, false
	}
	arena := snap.Arena
	if arena.Lanes > 0 {
		lane := geom.NearestLane(arena.Width, arena.Lanes, p.Pos.X)
		next := lane + 1
		if next >= arena.Lanes {
			next = lane - 1
		}
		return geom.LaneCenter(arena.Width, arena.Lanes, next), true
	}
	if o.Pos.X > arena.Width/2 {
		return p.Pos.X - o.Size - p.Size, true
	}
	return p.Pos.X + o.Size + p.Size, true
}

func nearestHostile(snap app.Snapshot) (component.Entity, bool) {
	var best component.Entity
	found := false
	bestDist := 0.0
	for _, e := range snap.Entities {
		if !e.Hostile() {
			continue
		}
		d := e.Pos.Dist2(snap.Player.Pos)
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
