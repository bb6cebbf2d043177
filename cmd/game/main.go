// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/clock"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/render"
	"go-recovery-arcade/internal/score"
	"go-recovery-arcade/internal/spectate"
	"go-recovery-arcade/internal/ui"
	"go-recovery-arcade/pkg/geom"
)

const (
	moveSpeed    = 320.0 // единиц арены в секунду при управлении с клавиатуры
	publishEvery = 6     // тиков между кадрами для зрителей
)

var gameKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type AppGame struct {
	library  defs.Library
	settings config.Settings
	scores   app.ScoreSink
	hub      *spectate.Hub
	logger   *slog.Logger

	session  *app.Session
	sched    *clock.ManualScheduler
	renderer *render.Renderer

	lastUpdateTime time.Time
	gameTime       float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.gameTime += deltaTime

	a.handleInput(now, deltaTime)
	a.renderer.Effects.Update(deltaTime)
	// после зависания кадра тики не догоняются: Frame запускает один, остальные пропускает
	a.sched.Frame(time.Duration(deltaTime*float64(time.Second)), a.session.Clock().Interval())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.session.Snapshot(), a.gameTime)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// OnEvent показывает панель итогов в конце забега и прячет её, когда игрок идёт дальше.
func (a *AppGame) OnEvent(e event.Event) {
	phase, ok := e.Data.(event.PhaseData)
	if !ok {
		return
	}
	if phase.To != component.PhaseGameOver {
		a.renderer.Summary.Hide()
		if phase.From != component.PhasePaused {
			a.renderer.Effects.Clear()
		}
		return
	}
	snap := a.session.Snapshot()
	a.renderer.Summary.Show("GAME OVER", snap.Stats)
	if err := clipboard.WriteAll(summaryLine(snap)); err != nil {
		a.logger.Debug("clipboard unavailable", "err", err)
	}
}

func summaryLine(snap app.Snapshot) string {
	s := snap.Stats
	return fmt.Sprintf("%s: score %d, wave %d, kills %d, coins %d, distance %.0f",
		snap.Game, s.Score, s.Level, s.Kills, s.Coins, s.Distance)
}

// pointer возвращает позицию касания или курсора и было ли нажатие в этом кадре.
func pointer() (image.Point, bool, bool) {
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return image.Pt(x, y), true, true
	}
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return image.Pt(x, y), true, false
	}
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return image.Pt(x, y), pressed, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (a *AppGame) handleInput(now time.Time, dt float64) {
	pt, pressed, justPressed := pointer()
	s := a.session

	switch s.Phase() {
	case component.PhaseMenu:
		for i, key := range gameKeys {
			if inpututil.IsKeyJustPressed(key) && i < len(a.library.IDs()) {
				a.switchGame(a.library.IDs()[i])
				return
			}
		}
		if justPressed || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.must(s.Start())
		}

	case component.PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			(justPressed && a.renderer.Pause.IsClicked(pt.X, pt.Y) && a.renderer.Pause.Toggle(now)) {
			a.must(s.Pause())
			return
		}
		a.steer(dt)
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			s.UpgradeWeapon()
		}

		snap := s.Snapshot()
		vp := a.renderer.Viewport(snap)
		target := vp.ToArena(pt.X, pt.Y)
		// Касание в нижней трети экрана двигает игрока, выше — атака.
		if pressed && pt.Y > config.ScreenHeight*2/3 {
			s.MovePlayer(target.X, target.Y)
			return
		}
		if justPressed || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.attack(snap, target, justPressed)
		}

	case component.PhasePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			(justPressed && a.renderer.Pause.IsClicked(pt.X, pt.Y) && a.renderer.Pause.Toggle(now)) {
			a.must(s.Resume())
		} else if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			a.must(s.ReturnToMenu())
		}

	case component.PhaseGameOver:
		action := a.renderer.Summary.Update(pt, justPressed)
		switch {
		case action == ui.ActionRetry || inpututil.IsKeyJustPressed(ebiten.KeyR):
			a.must(s.Retry())
		case action == ui.ActionMenu || inpututil.IsKeyJustPressed(ebiten.KeyM):
			a.must(s.ReturnToMenu())
		}
	}
	if s.Phase() != component.PhaseGameOver {
		a.renderer.Summary.Update(pt, false)
	}
}

// steer двигает игрока стрелками или WASD.
func (a *AppGame) steer(dt float64) {
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y++
	}
	if dir.IsZero() {
		return
	}
	pos := a.session.Snapshot().Player.Pos.Add(dir.Norm().Mul(moveSpeed * dt))
	a.session.MovePlayer(pos.X, pos.Y)
}

func (a *AppGame) attack(snap app.Snapshot, target geom.Vec2, aimed bool) {
	if a.session.Definition().Weapon.Mode == defs.WeaponMelee {
		a.session.Strike()
		return
	}
	if !aimed {
		// Пробел стреляет прямо вверх.
		target = snap.Player.Pos.Sub(geom.Vec2{Y: 1})
	}
	a.session.Fire(target.X, target.Y)
}

func (a *AppGame) switchGame(id string) {
	def, err := a.library.Lookup(id)
	if err != nil {
		a.logger.Error("switch game", "err", err)
		return
	}
	if a.session != nil {
		a.session.Close()
	}
	a.session = a.newSession(def)
	a.logger.Info("game selected", "game", id)
}

func (a *AppGame) newSession(def defs.GameDefinition) *app.Session {
	opts := app.Options{
		UserID:    a.settings.UserID,
		Seed:      a.settings.Seed,
		Scheduler: a.sched,
		Scores:    a.scores,
		Logger:    a.logger,
	}
	if a.hub != nil {
		hub := a.hub
		opts.OnTick = func(s *app.Session) {
			snap := s.Snapshot()
			if snap.Tick%publishEvery == 0 {
				if err := hub.Publish(snap); err != nil {
					a.logger.Warn("publish snapshot", "err", err)
				}
			}
		}
	}
	s := app.NewSession(def, opts)
	s.Events().Subscribe(event.PhaseChanged, a)
	a.renderer.Effects.Subscribe(s.Events())
	return s
}

func (a *AppGame) must(err error) {
	if err != nil {
		a.logger.Warn("transition rejected", "err", err)
	}
}

func main() {
	gameID := flag.String("game", config.DefaultGame, "game to start with (zombie, runner, racer, strike, bubble)")
	envFile := flag.String("env", ".env", "settings file")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	logger := config.SetupLogger(os.Stderr, settings.LogLevel)

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	library := defs.NewLibrary()
	if settings.DefsPath != "" {
		if err := library.Load(settings.DefsPath); err != nil {
			log.Fatal(err)
		}
	}
	def, err := library.Lookup(*gameID)
	if err != nil {
		log.Fatal(err)
	}

	policy, err := score.ParsePolicy(settings.SavePolicy)
	if err != nil {
		log.Fatal(err)
	}
	persister := score.NewPersister(
		score.OpenStore(settings.ScoreURL, settings.ScoreKey, settings.ScoreFile),
		score.Options{Policy: policy, Logger: logger},
	)
	defer persister.Close()

	a := &AppGame{
		library:        library,
		settings:       settings,
		scores:         persister,
		logger:         logger,
		sched:          clock.NewManualScheduler(),
		renderer:       render.NewRenderer(),
		lastUpdateTime: time.Now(),
	}

	if settings.SpectateAddr != "" {
		a.hub = spectate.NewHub(logger)
		defer a.hub.Close()
		mux := http.NewServeMux()
		mux.Handle("/ws", a.hub)
		go func() {
			if err := http.ListenAndServe(settings.SpectateAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectate server stopped", "err", err)
			}
		}()
		logger.Info("spectators welcome", "addr", settings.SpectateAddr)
	}

	a.session = a.newSession(def)
	defer func() { a.session.Close() }()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arcade")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
