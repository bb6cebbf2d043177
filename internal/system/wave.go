// internal/system/wave.go
package system

import (
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/pkg/geom"
)

// WaveSystem создаёт противников в темпе волны и решает, когда волна закончена.
// Живых противников считает по событиям: всё, что удаляет противника, обязано
// отправить EnemyKilled, ObstacleCleared или HostileCrashed.
type WaveSystem struct {
	world        *World
	wave         component.Wave
	ambientTimer int
}

func NewWaveSystem(world *World) *WaveSystem {
	ws := &WaveSystem{world: world}
	if world.Events != nil {
		world.Events.SubscribeAll(ws, event.EnemyKilled, event.ObstacleCleared, event.HostileCrashed)
	}
	ws.StartWave(1)
	return ws
}

// StartWave заводит квоту волны index и сбрасывает таймер появления.
func (s *WaveSystem) StartWave(index int) {
	if index < 1 {
		index = 1
	}
	s.wave = component.Wave{
		Index: index,
		Quota: s.world.Def.Waves.Quota(index),
	}
	s.world.Stats.Level = index
}

// Wave возвращает копию текущей волны.
func (s *WaveSystem) Wave() component.Wave { return s.wave }

// Complete — волна выпустила всю квоту и живых не осталось.
func (s *WaveSystem) Complete() bool { return s.wave.Complete() }

// Update продвигает таймер появления на один тик. За тик появляется не больше одного
// противника; первым в волне босса всегда идёт босс.
func (s *WaveSystem) Update() {
	w := s.world
	if s.wave.Spawned < s.wave.Quota {
		s.wave.SpawnTimer++
		if s.wave.SpawnTimer >= w.Def.Waves.SpawnInterval(s.wave.Index) {
			s.wave.SpawnTimer = 0
			forceBoss := s.wave.Spawned == 0 && w.Def.Waves.IsBossWave(s.wave.Index)
			e := w.Entities.SpawnEnemy(s.wave.Index, forceBoss, w.Player.Pos, w.Tick)
			s.wave.Spawned++
			s.wave.Active++
			w.dispatch(event.EnemySpawned, event.HostileData{
				ID: e.ID, Variant: e.Variant, Pos: e.Pos, Score: e.Score, Coins: e.Coins,
			})
		}
	}

	if every := w.Def.Pickups.AmbientEveryTicks; every > 0 {
		s.ambientTimer++
		if s.ambientTimer >= every {
			s.ambientTimer = 0
			s.spawnAmbientPickup()
		}
	}
}

// spawnAmbientPickup кладёт бонус так же, как входят противники: сверху в
// прокручиваемых играх, в любом месте арены в остальных.
func (s *WaveSystem) spawnAmbientPickup() {
	w := s.world
	arena := w.Def.Arena
	size := w.Def.Pickups.Size

	if arena.ScrollSpeed > 0 {
		x := w.RNG.Range(size/2, arena.Width-size/2)
		if arena.Lanes > 0 {
			x = geom.LaneCenter(arena.Width, arena.Lanes, w.RNG.Intn(arena.Lanes))
		}
		dropPickup(w, geom.Vec2{X: x, Y: -size / 2}, geom.Vec2{Y: arena.ScrollSpeed})
		return
	}
	pos := geom.Vec2{
		X: w.RNG.Range(size/2, arena.Width-size/2),
		Y: w.RNG.Range(size/2, arena.Height-size/2),
	}
	dropPickup(w, pos, geom.Vec2{})
}

// CheckCompletion закрывает оконченную волну: индекс растёт, патроны пополняются,
// игрок лечится на HealOnClear и заводится следующая квота.
// Возвращает true на тике закрытия.
func (s *WaveSystem) CheckCompletion() bool {
	if !s.wave.Complete() {
		return false
	}
	w := s.world
	finished := s.wave.Index

	w.Player.RefillAmmo()
	w.Player.Heal(w.Def.Waves.HealOnClear)
	s.StartWave(finished + 1)

	w.Logger.Debug("wave completed", "wave", finished, "next_quota", s.wave.Quota)
	w.dispatch(event.WaveCompleted, event.WaveData{Index: finished, Next: s.wave.Index})
	return true
}

// Detach отписывает систему от событий. Вызывать перед тем, как её выбросить.
func (s *WaveSystem) Detach() {
	if s.world.Events == nil {
		return
	}
	for _, t := range []event.EventType{event.EnemyKilled, event.ObstacleCleared, event.HostileCrashed} {
		s.world.Events.Unsubscribe(t, s)
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.ObstacleCleared, event.HostileCrashed:
		if s.wave.Active > 0 {
			s.wave.Active--
		}
	}
}
