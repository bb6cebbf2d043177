// internal/app/session.go
package app

import (
	"log/slog"

	"go-recovery-arcade/internal/clock"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/score"
	"go-recovery-arcade/internal/state"
	"go-recovery-arcade/internal/system"
	"go-recovery-arcade/internal/utils"
)

// ScoreSink принимает законченные (или промежуточные) забеги. Его реализует *score.Persister.
type ScoreSink interface {
	Submit(rec score.Record)
}

type Options struct {
	UserID string
	Seed   int64 // 0 — случайное зерно

	// Scheduler ведёт часы сессии. Без него хост сам вызывает Tick.
	Scheduler clock.Scheduler
	TickRate  int

	Scores ScoreSink
	Logger *slog.Logger

	// OnTick вызывается после каждого выполненного тика, в горутине тиков.
	OnTick func(s *Session)
}

// Session — одна аркадная игра от меню до проигрыша, сколько угодно раз. Состоянием
// забега владеет только она, глобального ничего нет.
type Session struct {
	def    defs.GameDefinition
	opts   Options
	logger *slog.Logger

	rng     *utils.PRNGService
	events  *event.Dispatcher
	machine *state.StateMachine
	clock   *clock.Clock

	world     *system.World
	waves     *system.WaveSystem
	movement  *system.MovementSystem
	collision *system.CollisionSystem
	player    *system.PlayerSystem

	runs int
}

func NewSession(def defs.GameDefinition, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("game", def.ID)
	if opts.TickRate <= 0 {
		opts.TickRate = config.TickRate
	}

	s := &Session{
		def:    def,
		opts:   opts,
		logger: logger,
		rng:    utils.NewPRNGService(opts.Seed),
		events: event.NewDispatcher(),
	}
	s.machine = state.NewStateMachine(&sessionHooks{s: s}, logger)
	s.machine.OnChange = func(from, to component.Phase) {
		s.events.Dispatch(event.Event{Type: event.PhaseChanged, Tick: s.tick(), Data: event.PhaseData{From: from, To: to}})
	}
	if opts.Scheduler != nil {
		s.clock = clock.New(opts.Scheduler, opts.TickRate, func(dt float64) { s.Tick(dt) })
	}
	s.events.Subscribe(event.PickupCollected, s)
	return s
}

// Events отдаёт диспетчер, чтобы хосты слушали убийства, попадания и смену фаз.
func (s *Session) Events() *event.Dispatcher { return s.events }

func (s *Session) Definition() defs.GameDefinition { return s.def }
func (s *Session) Phase() component.Phase          { return s.machine.Phase() }
func (s *Session) Seed() int64                     { return s.rng.Seed() }

// Clock возвращает часы сессии или nil, если хост тикает сам.
func (s *Session) Clock() *clock.Clock { return s.clock }

func (s *Session) Start() error        { return s.machine.Start() }
func (s *Session) Pause() error        { return s.machine.Pause() }
func (s *Session) Resume() error       { return s.machine.Resume() }
func (s *Session) Retry() error        { return s.machine.Retry() }
func (s *Session) ReturnToMenu() error { return s.machine.ToMenu() }

// Close останавливает часы. Игра остаётся в своей фазе, но больше не тикает.
func (s *Session) Close() {
	if s.clock != nil {
		s.clock.Stop()
	}
}

// Tick продвигает симуляцию на шаг dt секунд и сообщает, был ли шаг.
// Вне фазы игры ничего не делает. dt ограничен (0, MaxDeltaTime].
func (s *Session) Tick(dt float64) bool {
	if dt <= 0 {
		dt = config.DefaultDT
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if !s.machine.Update(dt) {
		return false
	}
	if s.opts.OnTick != nil {
		s.opts.OnTick(s)
	}
	return true
}

// step — тело одного игрового тика.
func (s *Session) step(dt float64) {
	w := s.world
	w.Tick++

	s.player.Update()
	s.waves.Update()
	s.movement.Update(dt)

	report := s.collision.Resolve()
	if report.PlayerDied {
		s.logger.Info("player died", "tick", w.Tick, "score", w.Stats.Score, "wave", s.waves.Wave().Index)
		s.gameOver()
		return
	}

	s.waves.CheckCompletion()

	if s.player.AttemptsLeft() == 0 && len(w.Entities.Projectiles()) == 0 {
		s.logger.Info("attempts exhausted", "tick", w.Tick, "score", w.Stats.Score)
		s.events.Dispatch(event.Event{Type: event.AttemptsExhausted, Tick: w.Tick})
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	if err := s.machine.GameOver(); err != nil {
		s.logger.Error("game over rejected", "err", err)
	}
}

// MovePlayer сразу применяет ввод с ограничением ареной. Вне фазы игры вернёт false.
func (s *Session) MovePlayer(x, y float64) bool {
	if !s.playing() {
		return false
	}
	s.player.Move(x, y)
	return true
}

// Fire стреляет в (tx, ty). Правила отказа — в system.PlayerSystem.Fire.
func (s *Session) Fire(tx, ty float64) bool {
	return s.playing() && s.player.Fire(tx, ty)
}

// Strike бьёт первого противника в зоне досягаемости.
func (s *Session) Strike() bool {
	return s.playing() && s.player.Strike()
}

// UpgradeWeapon покупает следующий уровень оружия. Отклонённая покупка ничего не меняет.
func (s *Session) UpgradeWeapon() bool {
	return s.playing() && s.player.UpgradeWeapon()
}

func (s *Session) playing() bool {
	return s.world != nil && s.machine.Phase() == component.PhasePlaying
}

func (s *Session) tick() uint64 {
	if s.world == nil {
		return 0
	}
	return s.world.Tick
}

func (s *Session) record() score.Record {
	st := s.world.Stats
	return score.Record{
		UserID:   s.opts.UserID,
		GameType: s.def.ID,
		Score:    st.Score,
		Level:    st.Level,
		Coins:    st.Coins,
		Distance: st.Distance,
	}
}

// OnEvent сохраняет промежуточный счёт при подборе монеты, если игра этого требует.
func (s *Session) OnEvent(e event.Event) {
	if e.Type != event.PickupCollected || !s.def.Pickups.PersistOnCoin || s.opts.Scores == nil || s.world == nil {
		return
	}
	if data, ok := e.Data.(event.PickupData); ok && data.Variant == defs.VariantCoin {
		s.opts.Scores.Submit(s.record())
	}
}
