// internal/defs/game.go
package defs

// DefinitionVersion растёт при каждом изменении JSON-формата GameDefinition.
const DefinitionVersion = 1

// GameDefinition — полная таблица настроек одной мини-игры. Все игровые числа движок
// берёт отсюда.
type GameDefinition struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Name    string `json:"name"`

	Arena   ArenaDefinition             `json:"arena"`
	Player  PlayerDefinition            `json:"player"`
	Weapon  WeaponDefinition            `json:"weapon"`
	Waves   WaveDefinition              `json:"waves"`
	Spawn   SpawnDefinition             `json:"spawn"`
	Enemies map[Variant]EnemyDefinition `json:"enemies"`
	Pickups PickupDefinition            `json:"pickups"`
	Rules   RulesDefinition             `json:"rules"`
}

type ArenaDefinition struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Lanes  int     `json:"lanes"`

	// ScrollSpeed > 0 делает арену прокручиваемой; дистанция растёт на ScrollSpeed*dt за тик.
	ScrollSpeed float64 `json:"scroll_speed"`
}

type PlayerDefinition struct {
	Size                float64 `json:"size"`
	MaxHealth           float64 `json:"max_health"`
	MaxAmmo             int     `json:"max_ammo"`
	StartAmmo           int     `json:"start_ammo"`
	DamageCooldownTicks int     `json:"damage_cooldown_ticks"`
}

type WeaponDefinition struct {
	Mode              WeaponMode `json:"mode"`
	BaseDamage        float64    `json:"base_damage"`
	DamagePerLevel    float64    `json:"damage_per_level"`
	ProjectileSpeed   float64    `json:"projectile_speed"`
	ProjectileSize    float64    `json:"projectile_size"`
	FireCooldownTicks int        `json:"fire_cooldown_ticks"`
	MeleeRange        float64    `json:"melee_range"`
	UpgradeBaseCost   int        `json:"upgrade_base_cost"`
	AmmoPerUpgrade    int        `json:"ammo_per_upgrade"`
}

// Damage — урон за попадание на уровне оружия.
func (w WeaponDefinition) Damage(level int) float64 {
	if level < 1 {
		level = 1
	}
	return w.BaseDamage + w.DamagePerLevel*float64(level-1)
}

// UpgradeCost — монеты на улучшение с уровня level: base * level.
func (w WeaponDefinition) UpgradeCost(level int) int {
	if level < 1 {
		level = 1
	}
	return w.UpgradeBaseCost * level
}

type SpawnDefinition struct {
	Edge         SpawnEdge `json:"edge"`
	SafetyRadius float64   `json:"safety_radius"`
	MaxRerolls   int       `json:"max_rerolls"`
	FastChance   float64   `json:"fast_chance"`
}

// RulesDefinition — условия конца забега помимо нулевого здоровья.
type RulesDefinition struct {
	// AttemptBudget > 0 завершает забег, когда выстрелы потрачены и ничего не летит.
	AttemptBudget int `json:"attempt_budget"`
}
