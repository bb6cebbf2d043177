// internal/system/world.go
package system

import (
	"log/slog"

	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/entity"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/utils"
	"go-recovery-arcade/pkg/geom"
)

// World — изменяемое состояние одного забега. Системы делят его; создаёт и заменяет
// его только сессия-владелец.
type World struct {
	Def      defs.GameDefinition
	Entities *entity.Manager
	Player   *component.PlayerState
	Stats    *component.RunStats
	Events   *event.Dispatcher
	RNG      *utils.PRNGService
	Logger   *slog.Logger

	Tick uint64
}

// NewWorld собирает новый забег: пустая арена, игрок внизу по центру (или в средней
// полосе) с полным здоровьем и стартовыми патронами, нулевая статистика.
func NewWorld(def defs.GameDefinition, rng *utils.PRNGService, dispatcher *event.Dispatcher, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	player := &component.PlayerState{
		Size:        def.Player.Size,
		Health:      def.Player.MaxHealth,
		MaxHealth:   def.Player.MaxHealth,
		Ammo:        def.Player.StartAmmo,
		MaxAmmo:     def.Player.MaxAmmo,
		WeaponLevel: 1,
		// первый контакт наносит урон сразу
		TicksSinceDamage: def.Player.DamageCooldownTicks,
	}
	player.Pos = startPosition(def)

	return &World{
		Def:      def,
		Entities: entity.NewManager(def, rng),
		Player:   player,
		Stats:    &component.RunStats{Level: 1},
		Events:   dispatcher,
		RNG:      rng,
		Logger:   logger,
	}
}

func startPosition(def defs.GameDefinition) (pos geom.Vec2) {
	pos.Y = def.Arena.Height - def.Player.Size*2
	pos.X = def.Arena.Width / 2
	if def.Arena.Lanes > 0 {
		pos.X = geom.LaneCenter(def.Arena.Width, def.Arena.Lanes, def.Arena.Lanes/2)
	}
	if def.Spawn.Edge != defs.EdgeTop {
		pos.Y = def.Arena.Height / 2
	}
	return pos
}

func (w *World) dispatch(t event.EventType, data any) {
	if w.Events == nil {
		return
	}
	w.Events.Dispatch(event.Event{Type: t, Tick: w.Tick, Data: data})
}
