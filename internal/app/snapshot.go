// internal/app/snapshot.go
package app

import (
	"go-recovery-arcade/internal/component"
)

// Snapshot — вид сессии только для чтения, который получают отрисовщики. Память с
// сессией не разделяется, снимок можно хранить и менять.
type Snapshot struct {
	Game  string          `msgpack:"game" json:"game"`
	Phase component.Phase `msgpack:"phase" json:"phase"`
	Tick  uint64          `msgpack:"tick" json:"tick"`

	Arena    ArenaView             `msgpack:"arena" json:"arena"`
	Player   component.PlayerState `msgpack:"player" json:"player"`
	Entities []component.Entity    `msgpack:"entities" json:"entities"`
	Stats    component.RunStats    `msgpack:"stats" json:"stats"`
	Wave     component.Wave        `msgpack:"wave" json:"wave"`

	AttemptsLeft int `msgpack:"attempts_left" json:"attempts_left"` // -1 — без ограничения
	UpgradeCost  int `msgpack:"upgrade_cost" json:"upgrade_cost"`
}

type ArenaView struct {
	Width  float64 `msgpack:"w" json:"w"`
	Height float64 `msgpack:"h" json:"h"`
	Lanes  int     `msgpack:"lanes" json:"lanes"`
}

// Snapshot копирует текущий забег. В меню заполнены только Game, Phase и Arena.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Game:  s.def.ID,
		Phase: s.machine.Phase(),
		Arena: ArenaView{
			Width:  s.def.Arena.Width,
			Height: s.def.Arena.Height,
			Lanes:  s.def.Arena.Lanes,
		},
		AttemptsLeft: -1,
	}
	w := s.world
	if w == nil {
		return snap
	}
	snap.Tick = w.Tick
	snap.Player = *w.Player
	snap.Entities = w.Entities.Snapshot()
	snap.Stats = *w.Stats
	snap.Wave = s.waves.Wave()
	snap.AttemptsLeft = s.player.AttemptsLeft()
	snap.UpgradeCost = s.player.UpgradeCost()
	return snap
}
