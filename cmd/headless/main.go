package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/internal/score"
)

const botUser = "headless-bot"

type runStats struct {
	runIndex int
	seed     int64

	ticks    int
	finished bool // игра закончилась до лимита тиков
	snap     app.Snapshot

	events map[event.EventType]int
}

// eventTally считает все события сессии.
type eventTally map[event.EventType]int

func (t eventTally) OnEvent(e event.Event) { t[e.Type]++ }

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var gameID string
	var defsPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&gameID, "game", config.DefaultGame, "game definition to run")
	flag.StringVar(&defsPath, "defs", "", "JSON file with definition overrides")
	flag.BoolVar(&verbose, "v", false, "log engine output")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	var logOut io.Writer = io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger := config.SetupLogger(logOut, "debug")

	library := defs.NewLibrary()
	if defsPath != "" {
		if err := library.Load(defsPath); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	def, err := library.Lookup(gameID)
	if err != nil {
		fmt.Printf("error: %v (supported: %v)\n", err, library.IDs())
		return
	}

	store := score.NewMemoryStore()
	persister := score.NewPersister(store, score.Options{Logger: logger})

	fmt.Printf("=== Headless Arcade Report ===\n")
	fmt.Printf("game=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", def.ID, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runGame(def, i+1, seed, ticks, persister, logger)
		all = append(all, stats)
		printRun(stats)
	}
	persister.Close()

	printAggregate(all)
	history := store.History(score.Key{UserID: botUser, GameType: def.ID})
	fmt.Printf("score trend per run: %+.1f\n", score.Trend(score.Scores(history)))
}

func runGame(def defs.GameDefinition, runIndex int, seed int64, ticks int, sink app.ScoreSink, logger *slog.Logger) runStats {
	s := app.NewSession(def, app.Options{UserID: botUser, Seed: seed, Scores: sink, Logger: logger})
	tally := eventTally{}
	s.Events().SubscribeAll(tally,
		event.EnemySpawned, event.EnemyKilled, event.ObstacleCleared, event.HostileCrashed,
		event.PlayerDamaged, event.ShieldAbsorbed, event.PickupSpawned, event.PickupCollected,
		event.WaveCompleted, event.PlayerDied, event.AttemptsExhausted,
	)
	if err := s.Start(); err != nil {
		logger.Error("start", "err", err)
	}

	b := newBot(def)
	rs := runStats{runIndex: runIndex, seed: seed, events: tally}
	for rs.ticks < ticks && s.Phase() == component.PhasePlaying {
		b.act(s)
		s.Tick(config.DefaultDT)
		rs.ticks++
	}
	rs.finished = s.Phase() == component.PhaseGameOver
	rs.snap = s.Snapshot()
	s.Close()
	return rs
}

func printRun(rs runStats) {
	st := rs.snap.Stats
	outcome := "timeout"
	if rs.finished {
		outcome = "gameover"
	}
	fmt.Printf("run %d seed=%d outcome=%s ticks=%d\n", rs.runIndex, rs.seed, outcome, rs.ticks)
	fmt.Printf("  score=%d wave=%d kills=%d dodged=%d coins=%d distance=%.0f\n",
		st.Score, rs.snap.Wave.Index, st.Kills, st.Dodged, st.Coins, st.Distance)
	fmt.Printf("  shots=%d damage_taken=%.1f weapon_level=%d health=%.1f/%.1f\n",
		st.ShotsFired, st.DamageTaken, rs.snap.Player.WeaponLevel, rs.snap.Player.Health, rs.snap.Player.MaxHealth)
	fmt.Printf("  pickups=%d/%d waves_cleared=%d shield_blocks=%d\n\n",
		rs.events[event.PickupCollected], rs.events[event.PickupSpawned],
		rs.events[event.WaveCompleted], rs.events[event.ShieldAbsorbed])
}

type aggregate struct {
	runs      int
	gameOvers int
	meanScore float64
	meanWave  float64
	meanTicks float64
	bestScore int
	accuracy  float64 // попадания на выстрел
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	if len(all) == 0 {
		return agg
	}
	shots, kills := 0, 0
	for _, rs := range all {
		if rs.finished {
			agg.gameOvers++
		}
		agg.meanScore += float64(rs.snap.Stats.Score)
		agg.meanWave += float64(rs.snap.Wave.Index)
		agg.meanTicks += float64(rs.ticks)
		agg.bestScore = max(agg.bestScore, rs.snap.Stats.Score)
		shots += rs.snap.Stats.ShotsFired
		kills += rs.snap.Stats.Kills
	}
	n := float64(len(all))
	agg.meanScore /= n
	agg.meanWave /= n
	agg.meanTicks /= n
	if shots > 0 {
		agg.accuracy = float64(kills) / float64(shots)
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Printf("=== Aggregate (%d runs) ===\n", agg.runs)
	fmt.Printf("gameovers=%d mean_score=%.1f best_score=%d mean_wave=%.2f mean_ticks=%.0f kills_per_shot=%.2f\n",
		agg.gameOvers, agg.meanScore, agg.bestScore, agg.meanWave, agg.meanTicks, agg.accuracy)
}
