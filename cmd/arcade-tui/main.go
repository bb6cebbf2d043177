// cmd/arcade-tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/clock"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/score"
)

// moveStep — шаг игрока за одно нажатие стрелки, в единицах арены.
const moveStep = 20.0

type Game struct {
	screen  tcell.Screen
	sched   *clock.LoopScheduler
	library defs.Library
	sound   *SoundManager
	logger  *slog.Logger

	settings config.Settings
	scores   app.ScoreSink
	session  *app.Session

	mode mode
	code *codeBreaker
	grid *gridPuzzle
}

// switchGame переключает аркаду на другое определение из библиотеки.
func (g *Game) switchGame(id string) {
	def, err := g.library.Lookup(id)
	if err != nil {
		g.logger.Error("switch game", "err", err)
		return
	}
	g.newSession(def)
	g.logger.Info("game selected", "game", id)
}

// enter включает режим m; головоломки создаются при первом входе.
func (g *Game) enter(m mode) {
	g.mode = m
	switch m {
	case modeCodeBreaker:
		if g.code == nil {
			g.code = newCodeBreaker(app.PuzzleOptions{
				UserID: g.settings.UserID,
				Seed:   g.settings.Seed,
				Scores: g.scores,
				Logger: g.logger,
			})
		}
	case modeGrid:
		if g.grid == nil {
			g.grid = newGridPuzzle(g.settings.Seed, g.settings.UserID, g.scores)
		}
	}
	g.logger.Info("mode selected", "mode", m)
}

func (g *Game) redraw() {
	switch g.mode {
	case modeCodeBreaker:
		g.code.draw(g.screen)
	case modeGrid:
		g.grid.draw(g.screen)
	default:
		draw(g.screen, g.session.Snapshot())
	}
}

func (g *Game) newSession(def defs.GameDefinition) {
	if g.session != nil {
		g.session.Close()
	}
	g.session = app.NewSession(def, app.Options{
		UserID:    g.settings.UserID,
		Seed:      g.settings.Seed,
		Scheduler: g.sched,
		TickRate:  30,
		Scores:    g.scores,
		Logger:    g.logger,
		OnTick: func(s *app.Session) {
			if g.mode == modeArcade {
				draw(g.screen, s.Snapshot())
			}
		},
	})
	g.sound.Subscribe(g.session.Events())
}

// handleKey выполняется в горутине цикла. false — игрок выходит.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	s := g.session
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
		return false
	}
	defer g.redraw()

	var err error
	switch g.mode {
	case modeCodeBreaker:
		var leave bool
		if leave, err = g.code.handleKey(ev); leave {
			g.enter(modeArcade)
		}
		if err != nil {
			g.logger.Warn("transition rejected", "err", err)
		}
		return true
	case modeGrid:
		if g.grid.handleKey(ev) {
			g.enter(modeArcade)
		}
		return true
	}

	switch s.Phase() {
	case component.PhaseMenu:
		if r := ev.Rune(); r >= '1' && r <= '5' {
			ids := g.library.IDs()
			if i := int(r - '1'); i < len(ids) {
				g.switchGame(ids[i])
			}
			break
		}
		switch ev.Rune() {
		case 'c':
			g.enter(modeCodeBreaker)
			return true
		case 'g':
			g.enter(modeGrid)
			return true
		}
		if ev.Key() == tcell.KeyEnter || ev.Rune() == ' ' {
			err = s.Start()
		}

	case component.PhasePlaying:
		g.handlePlayingKey(ev)

	case component.PhasePaused:
		switch ev.Rune() {
		case 'p':
			err = s.Resume()
		case 'm':
			err = s.ReturnToMenu()
		}

	case component.PhaseGameOver:
		switch ev.Rune() {
		case 'r':
			err = s.Retry()
		case 'm':
			err = s.ReturnToMenu()
		}
	}
	if err != nil {
		g.logger.Warn("transition rejected", "err", err)
	}
	return true
}

func (g *Game) handlePlayingKey(ev *tcell.EventKey) {
	s := g.session
	pos := s.Snapshot().Player.Pos
	switch ev.Key() {
	case tcell.KeyLeft:
		s.MovePlayer(pos.X-moveStep, pos.Y)
	case tcell.KeyRight:
		s.MovePlayer(pos.X+moveStep, pos.Y)
	case tcell.KeyUp:
		s.MovePlayer(pos.X, pos.Y-moveStep)
	case tcell.KeyDown:
		s.MovePlayer(pos.X, pos.Y+moveStep)
	}
	switch ev.Rune() {
	case ' ':
		if s.Definition().Weapon.Mode == defs.WeaponMelee {
			s.Strike()
		} else {
			s.Fire(pos.X, pos.Y-1)
		}
	case 'u':
		s.UpgradeWeapon()
	case 'p':
		if err := s.Pause(); err != nil {
			g.logger.Warn("pause rejected", "err", err)
		}
	}
}

func (g *Game) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := g.sched.Run(ctx); err != nil && ctx.Err() == nil {
			g.logger.Error("loop stopped", "err", err)
		}
	}()
	g.sched.Do(g.redraw)

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		keep := true
		switch ev := ev.(type) {
		case *tcell.EventKey:
			g.sched.Do(func() { keep = g.handleKey(ev) })
		case *tcell.EventResize:
			g.screen.Sync()
			g.sched.Do(g.redraw)
		}
		if !keep {
			g.sched.Do(func() { g.session.Close() })
			return
		}
	}
}

func main() {
	gameID := flag.String("game", config.DefaultGame, "game to start with (an arcade game, codebreaker or grid)")
	envFile := flag.String("env", ".env", "settings file")
	logFile := flag.String("log", "arcade-tui.log", "log file (the terminal is taken by the game)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	logger := config.SetupLogger(out, settings.LogLevel)

	library := defs.NewLibrary()
	if settings.DefsPath != "" {
		if err := library.Load(settings.DefsPath); err != nil {
			log.Fatal(err)
		}
	}
	start := modeArcade
	switch *gameID {
	case app.CodeBreakerGame:
		start, *gameID = modeCodeBreaker, config.DefaultGame
	case gridGame:
		start, *gameID = modeGrid, config.DefaultGame
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sound := NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("no audio", "err", err)
		}
	}
	defer sound.Cleanup()

	g := &Game{
		screen:   screen,
		sched:    clock.NewLoopScheduler(),
		library:  library,
		sound:    sound,
		logger:   logger,
		settings: settings,
		scores:   persister,
	}
	g.newSession(def)
	g.enter(start)
	g.run(context.Background())
}
