// internal/defs/loot_tables.go
package defs

// LootEntry — строка таблицы добычи: вариант бонуса и его вес.
type LootEntry struct {
	Variant Variant `json:"variant"`
	Weight  int     `json:"weight"`
}

// PickupDefinition настраивает выпадение бонусов и их эффекты.
type PickupDefinition struct {
	DropChance    float64     `json:"drop_chance"`
	Size          float64     `json:"size"`
	LifetimeTicks int         `json:"lifetime_ticks"`
	Ammo          int         `json:"ammo"`
	Health        float64     `json:"health"`
	Coins         int         `json:"coins"`
	ShieldTicks   int         `json:"shield_ticks"`
	Table         []LootEntry `json:"table"`

	// AmbientEveryTicks > 0: бонус появляется у края с этим периодом, для игр,
	// где никого не убивают.
	AmbientEveryTicks int `json:"ambient_every_ticks"`

	// PersistOnCoin сохраняет текущий счёт при каждом подборе монеты.
	PersistOnCoin bool `json:"persist_on_coin"`
}
