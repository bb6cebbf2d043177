// internal/state/states.go
package state

import "go-recovery-arcade/internal/component"

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*MenuState)(nil)
	_ State = (*PlayingState)(nil)
	_ State = (*PauseState)(nil)
	_ State = (*GameOverState)(nil)
)

// MenuState — ожидание старта
type MenuState struct {
	sm *StateMachine
}

func (s *MenuState) Phase() component.Phase { return component.PhaseMenu }
func (s *MenuState) Enter()                 { s.sm.hooks.Discard() }
func (s *MenuState) Update(float64) bool    { return false }
func (s *MenuState) Exit()                  {}

// PlayingState владеет часами: вход заводит их, выход останавливает.
type PlayingState struct {
	sm *StateMachine
}

func (s *PlayingState) Phase() component.Phase { return component.PhasePlaying }
func (s *PlayingState) Enter()                 { s.sm.hooks.Arm() }
func (s *PlayingState) Exit()                  { s.sm.hooks.Halt() }

func (s *PlayingState) Update(deltaTime float64) bool {
	s.sm.hooks.Tick(deltaTime)
	return true
}

// PauseState — игра заморожена, никаких изменений
type PauseState struct {
	sm *StateMachine
}

func (s *PauseState) Phase() component.Phase { return component.PhasePaused }
func (s *PauseState) Enter()                 {}
func (s *PauseState) Update(float64) bool    { return false }
func (s *PauseState) Exit()                  {}

// GameOverState сохраняет забег при входе. Забег попадает сюда не больше одного раза:
// выход всегда сбрасывает или выбрасывает забег.
type GameOverState struct {
	sm *StateMachine
}

func (s *GameOverState) Phase() component.Phase { return component.PhaseGameOver }
func (s *GameOverState) Enter()                 { s.sm.hooks.Persist() }
func (s *GameOverState) Update(float64) bool    { return false }
func (s *GameOverState) Exit()                  {}
