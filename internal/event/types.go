// internal/event/types.go
package event

import (
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/types"
	"go-recovery-arcade/pkg/geom"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // враг появился
	EnemyKilled       EventType = "EnemyKilled"       // враг уничтожен снарядом или ударом
	ObstacleCleared   EventType = "ObstacleCleared"   // препятствие ушло за край арены
	HostileCrashed    EventType = "HostileCrashed"    // враг исчез при столкновении с игроком
	PlayerDamaged     EventType = "PlayerDamaged"     // игрок потерял здоровье
	ShieldAbsorbed    EventType = "ShieldAbsorbed"    // щит поглотил удар
	PickupSpawned     EventType = "PickupSpawned"     // выпал бонус
	PickupCollected   EventType = "PickupCollected"   // бонус подобран
	WaveCompleted     EventType = "WaveCompleted"     // волна закончилась
	PlayerDied        EventType = "PlayerDied"        // здоровье игрока дошло до нуля
	AttemptsExhausted EventType = "AttemptsExhausted" // бюджет попыток исчерпан
	PhaseChanged      EventType = "PhaseChanged"      // смена состояния сессии
)

// HostileData сопровождает EnemySpawned, EnemyKilled, ObstacleCleared и HostileCrashed.
type HostileData struct {
	ID      types.EntityID
	Variant defs.Variant
	Pos     geom.Vec2
	Score   int
	Coins   int
}

// DamageData сопровождает PlayerDamaged и ShieldAbsorbed.
type DamageData struct {
	SourceID types.EntityID
	Amount   float64
	Health   float64
}

// PickupData сопровождает PickupSpawned и PickupCollected.
type PickupData struct {
	ID      types.EntityID
	Variant defs.Variant
	Pos     geom.Vec2
}

// WaveData сопровождает WaveCompleted. Index — только что закончившаяся волна.
type WaveData struct {
	Index int
	Next  int
}

// PhaseData сопровождает PhaseChanged.
type PhaseData struct {
	From component.Phase
	To   component.Phase
}
