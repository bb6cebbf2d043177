// internal/app/hooks.go
package app

import (
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/system"
)

// sessionHooks выполняет побочные эффекты машины состояний над сессией.
type sessionHooks struct {
	s *Session
}

func (h *sessionHooks) Reset() {
	s := h.s
	h.Discard()
	s.runs++

	w := system.NewWorld(s.def, s.rng, s.events, s.logger)
	s.world = w
	s.waves = system.NewWaveSystem(w)
	s.movement = system.NewMovementSystem(w)
	s.collision = system.NewCollisionSystem(w)
	s.player = system.NewPlayerSystem(w)

	s.logger.Info("run started", "run", s.runs, "seed", s.rng.Seed())
}

func (h *sessionHooks) Arm() {
	if h.s.clock != nil {
		h.s.clock.Start()
	}
}

func (h *sessionHooks) Halt() {
	if h.s.clock != nil {
		h.s.clock.Stop()
	}
}

func (h *sessionHooks) Tick(dt float64) {
	h.s.step(dt)
}

func (h *sessionHooks) Persist() {
	s := h.s
	rec := s.record()
	s.logger.Info("run finished", "score", rec.Score, "level", rec.Level, "coins", rec.Coins, "distance", rec.Distance)
	if s.opts.Scores != nil {
		s.opts.Scores.Submit(rec)
	}
}

func (h *sessionHooks) Discard() {
	s := h.s
	if s.waves != nil {
		s.waves.Detach()
	}
	s.world = nil
	s.waves = nil
	s.movement = nil
	s.collision = nil
	s.player = nil
}

var _ event.Listener = (*Session)(nil)
