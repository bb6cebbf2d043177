// internal/system/movement.go
package system

import (
	"go-recovery-arcade/internal/event"
)

// MovementSystem двигает сущности и засчитывает то, что проехало мимо игрока.
type MovementSystem struct {
	world *World
}

func NewMovementSystem(world *World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update сдвигает всё на dt. Препятствие, ушедшее за нижний край, считается
// увернутым и приносит очки; прокручиваемые арены ещё и наращивают Distance.
func (s *MovementSystem) Update(dt float64) {
	w := s.world
	report := w.Entities.Step(dt, w.Player.Pos, w.Tick)

	for _, o := range report.Dodged {
		w.Stats.Score += o.Score
		w.Stats.Dodged++
		w.dispatch(event.ObstacleCleared, event.HostileData{
			ID: o.ID, Variant: o.Variant, Pos: o.Pos, Score: o.Score,
		})
	}

	if speed := w.Def.Arena.ScrollSpeed; speed > 0 && dt > 0 {
		w.Stats.Distance += speed * dt
	}
}
