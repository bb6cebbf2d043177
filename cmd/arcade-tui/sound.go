package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-recovery-arcade/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// tone — короткий синусоидальный сигнал для одного типа событий.
type tone struct {
	freq     float64
	duration time.Duration
}

var eventTones = map[event.EventType]tone{
	event.EnemyKilled:     {freq: 880, duration: 60 * time.Millisecond},
	event.ObstacleCleared: {freq: 740, duration: 40 * time.Millisecond},
	event.PlayerDamaged:   {freq: 140, duration: 150 * time.Millisecond},
	event.ShieldAbsorbed:  {freq: 330, duration: 90 * time.Millisecond},
	event.PickupCollected: {freq: 660, duration: 70 * time.Millisecond},
	event.WaveCompleted:   {freq: 520, duration: 250 * time.Millisecond},
	event.PlayerDied:      {freq: 110, duration: 400 * time.Millisecond},
}

// SoundManager plays event tones through a single mixer. Without an audio device it
// stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// OnEvent проигрывает сигнал, привязанный к типу события.
func (sm *SoundManager) OnEvent(e event.Event) {
	t, ok := eventTones[e.Type]
	if !ok {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: beep.Take(sampleRate.N(t.duration), sine), Base: 2, Volume: -3}
	speaker.Lock()
	sm.mixer.Add(quiet)
	speaker.Unlock()
}

// Subscribe подписывает менеджер на все типы событий, у которых есть сигнал.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	types := make([]event.EventType, 0, len(eventTones))
	for t := range eventTones {
		types = append(types, t)
	}
	d.SubscribeAll(sm, types...)
}
