// internal/defs/waves.go
package defs

// WaveDefinition описывает квоту и темп появления, общие для всех волн.
type WaveDefinition struct {
	QuotaBase           int     `json:"quota_base"`
	QuotaGrowth         int     `json:"quota_growth"`
	SpawnEveryTicks     int     `json:"spawn_every_ticks"`
	MinSpawnEveryTicks  int     `json:"min_spawn_every_ticks"`
	SpawnSpeedupPerWave int     `json:"spawn_speedup_per_wave"`
	BossEvery           int     `json:"boss_every"`
	HealOnClear         float64 `json:"heal_on_clear"`
	HealthScalePerWave  float64 `json:"health_scale_per_wave"`
}

// Quota — сколько противников должна выпустить волна: base + wave*growth.
func (w WaveDefinition) Quota(wave int) int {
	if wave < 1 {
		wave = 1
	}
	q := w.QuotaBase + wave*w.QuotaGrowth
	if q < 1 {
		return 1
	}
	return q
}

// SpawnInterval — тиков между появлениями в волне.
func (w WaveDefinition) SpawnInterval(wave int) int {
	if wave < 1 {
		wave = 1
	}
	every := w.SpawnEveryTicks - w.SpawnSpeedupPerWave*(wave-1)
	if every < w.MinSpawnEveryTicks {
		every = w.MinSpawnEveryTicks
	}
	if every < 1 {
		every = 1
	}
	return every
}

// IsBossWave — первым в волне обязательно идёт босс.
func (w WaveDefinition) IsBossWave(wave int) bool {
	return w.BossEvery > 0 && wave > 0 && wave%w.BossEvery == 0
}

// HealthScale — множитель здоровья врагов в волне.
func (w WaveDefinition) HealthScale(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 1 + w.HealthScalePerWave*float64(wave-1)
}
