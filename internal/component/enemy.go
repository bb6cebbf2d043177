// internal/component/enemy.go
package component

import (
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/types"
	"go-recovery-arcade/pkg/geom"
)

// Entity — всё, чем владеет менеджер сущностей: враги, препятствия, снаряды и бонусы.
type Entity struct {
	ID      types.EntityID
	Kind    defs.Kind
	Variant defs.Variant

	Pos   geom.Vec2
	Vel   geom.Vec2 // для снарядов, препятствий и подбираемых предметов
	Speed float64   // для врагов, преследующих игрока
	Size  float64

	Health    float64
	MaxHealth float64

	ContactDamage   float64
	Score           int
	Coins           int
	RemoveOnContact bool

	SpawnTick     uint64
	ExpiresAtTick uint64 // 0 — бессрочно
}

// Hostile — сущность учитывается среди активных противников волны.
func (e *Entity) Hostile() bool {
	return e.Kind == defs.KindEnemy || e.Kind == defs.KindObstacle
}
