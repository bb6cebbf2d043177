// internal/state/state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"go-recovery-arcade/internal/component"
)

// ErrInvalidTransition — переход из текущей фазы запрещён.
var ErrInvalidTransition = errors.New("invalid state transition")

// State — интерфейс для всех состояний
type State interface {
	Phase() component.Phase
	Enter()
	// Update выполняет шаг симуляции и сообщает, продвинулось ли что-то.
	Update(deltaTime float64) bool
	Exit()
}

// Hooks — побочные эффекты переходов. Их реализует сессия.
type Hooks interface {
	Reset()          // новый забег: всё изменяемое состояние с нуля
	Arm()            // запустить игровые часы
	Halt()           // остановить игровые часы, отменив ожидающий тик
	Tick(dt float64) // один шаг симуляции
	Persist()        // сохранить результат забега
	Discard()        // выбросить состояние забега
}

var transitions = map[component.Phase][]component.Phase{
	component.PhaseMenu:     {component.PhasePlaying},
	component.PhasePlaying:  {component.PhasePaused, component.PhaseGameOver},
	component.PhasePaused:   {component.PhasePlaying, component.PhaseMenu},
	component.PhaseGameOver: {component.PhasePlaying, component.PhaseMenu},
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	hooks   Hooks
	logger  *slog.Logger

	// OnChange вызывается после каждого перехода, когда новое состояние уже вошло.
	OnChange func(from, to component.Phase)
}

// NewStateMachine создаёт машину в меню. Вход в начальное меню без побочных эффектов.
func NewStateMachine(hooks Hooks, logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.Default()
	}
	sm := &StateMachine{hooks: hooks, logger: logger}
	sm.current = &MenuState{sm: sm}
	return sm
}

// Phase возвращает текущую фазу.
func (sm *StateMachine) Phase() component.Phase {
	return sm.current.Phase()
}

// CanTransition — можно ли перейти в to из текущей фазы.
func (sm *StateMachine) CanTransition(to component.Phase) bool {
	for _, p := range transitions[sm.Phase()] {
		if p == to {
			return true
		}
	}
	return false
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) error {
	from := sm.Phase()
	to := newState.Phase()
	if !sm.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	sm.current.Exit()
	sm.current = newState
	sm.current.Enter()

	sm.logger.Info("state changed", "from", from.String(), "to", to.String())
	if sm.OnChange != nil {
		sm.OnChange(from, to)
	}
	return nil
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) bool {
	return sm.current.Update(deltaTime)
}

// Start начинает новый забег из меню.
func (sm *StateMachine) Start() error {
	if sm.Phase() != component.PhaseMenu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, sm.Phase())
	}
	sm.hooks.Reset()
	return sm.SetState(&PlayingState{sm: sm})
}

// Pause замораживает идущую игру.
func (sm *StateMachine) Pause() error {
	return sm.SetState(&PauseState{sm: sm})
}

// Resume продолжает игру ровно с места паузы.
func (sm *StateMachine) Resume() error {
	if sm.Phase() != component.PhasePaused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, sm.Phase())
	}
	return sm.SetState(&PlayingState{sm: sm})
}

// GameOver завершает забег и сохраняет результат.
func (sm *StateMachine) GameOver() error {
	return sm.SetState(&GameOverState{sm: sm})
}

// Retry начинает новый забег сразу после проигрыша.
func (sm *StateMachine) Retry() error {
	if sm.Phase() != component.PhaseGameOver {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, sm.Phase())
	}
	sm.hooks.Reset()
	return sm.SetState(&PlayingState{sm: sm})
}

// ToMenu выходит из паузы или оконченного забега и выбрасывает его.
func (sm *StateMachine) ToMenu() error {
	return sm.SetState(&MenuState{sm: sm})
}
