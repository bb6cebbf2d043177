// internal/defs/builtin.go
package defs

// Встроенные таблицы пяти мини-игр. JSON-файлы, загруженные через Library.Load,
// заменяют их по ID.

func zombieDefinition() GameDefinition {
	return GameDefinition{
		Version: DefinitionVersion,
		ID:      "zombie",
		Name:    "Zombie Survival",
		Arena:   ArenaDefinition{Width: 480, Height: 800},
		Player: PlayerDefinition{
			Size:                30,
			MaxHealth:           100,
			MaxAmmo:             30,
			StartAmmo:           30,
			DamageCooldownTicks: 30,
		},
		Weapon: WeaponDefinition{
			Mode:              WeaponProjectile,
			BaseDamage:        1,
			DamagePerLevel:    1,
			ProjectileSpeed:   600,
			ProjectileSize:    10,
			FireCooldownTicks: 8,
			UpgradeBaseCost:   50,
			AmmoPerUpgrade:    10,
		},
		Waves: WaveDefinition{
			QuotaBase:           5,
			QuotaGrowth:         2,
			SpawnEveryTicks:     60,
			MinSpawnEveryTicks:  20,
			SpawnSpeedupPerWave: 5,
			BossEvery:           5,
			HealOnClear:         20,
			HealthScalePerWave:  0.1,
		},
		Spawn: SpawnDefinition{
			Edge:         EdgeRandom,
			SafetyRadius: 150,
			MaxRerolls:   10,
			FastChance:   0.25,
		},
		Enemies: map[Variant]EnemyDefinition{
			VariantNormal: {Kind: KindEnemy, Size: 30, Speed: 60, Health: 3, ContactDamage: 10, Score: 10, Coins: 1},
			VariantFast:   {Kind: KindEnemy, Size: 24, Speed: 110, Health: 2, ContactDamage: 8, Score: 15, Coins: 2},
			VariantBoss:   {Kind: KindEnemy, Size: 70, Speed: 40, Health: 20, ContactDamage: 25, Score: 50, Coins: 10},
		},
		Pickups: PickupDefinition{
			DropChance:    0.3,
			Size:          20,
			LifetimeTicks: 600,
			Ammo:          10,
			Health:        20,
			Coins:         5,
			Table: []LootEntry{
				{Variant: VariantAmmo, Weight: 1},
				{Variant: VariantHealth, Weight: 1},
				{Variant: VariantCoin, Weight: 1},
			},
		},
	}
}

func runnerDefinition() GameDefinition {
	return GameDefinition{
		Version: DefinitionVersion,
		ID:      "runner",
		Name:    "Endless Runner",
		Arena:   ArenaDefinition{Width: 480, Height: 800, ScrollSpeed: 220},
		Player: PlayerDefinition{
			Size:                34,
			MaxHealth:           3,
			DamageCooldownTicks: 45,
		},
		Weapon: WeaponDefinition{Mode: WeaponProjectile, UpgradeBaseCost: 100},
		Waves: WaveDefinition{
			QuotaBase:           5,
			QuotaGrowth:         2,
			SpawnEveryTicks:     45,
			MinSpawnEveryTicks:  15,
			SpawnSpeedupPerWave: 3,
			BossEvery:           5,
			HealOnClear:         1,
		},
		Spawn: SpawnDefinition{Edge: EdgeTop, MaxRerolls: 4, FastChance: 0.2},
		Enemies: map[Variant]EnemyDefinition{
			VariantNormal: {Kind: KindObstacle, Size: 40, Speed: 240, Health: 1, ContactDamage: 1, Score: 10, RemoveOnContact: true},
			VariantFast:   {Kind: KindObstacle, Size: 30, Speed: 360, Health: 1, ContactDamage: 1, Score: 20, RemoveOnContact: true},
			VariantBoss:   {Kind: KindObstacle, Size: 120, Speed: 200, Health: 1, ContactDamage: 2, Score: 50, RemoveOnContact: true},
		},
		Pickups: PickupDefinition{
			Size:              24,
			Coins:             1,
			Health:            1,
			AmbientEveryTicks: 90,
			Table: []LootEntry{
				{Variant: VariantCoin, Weight: 4},
				{Variant: VariantHealth, Weight: 1},
			},
			PersistOnCoin: true,
		},
	}
}

func racerDefinition() GameDefinition {
	return GameDefinition{
		Version: DefinitionVersion,
		ID:      "racer",
		Name:    "Lane Racer",
		Arena:   ArenaDefinition{Width: 360, Height: 800, Lanes: 3, ScrollSpeed: 320},
		Player: PlayerDefinition{
			Size:                50,
			MaxHealth:           3,
			DamageCooldownTicks: 40,
		},
		Weapon: WeaponDefinition{Mode: WeaponProjectile, UpgradeBaseCost: 100},
		Waves: WaveDefinition{
			QuotaBase:           6,
			QuotaGrowth:         3,
			SpawnEveryTicks:     40,
			MinSpawnEveryTicks:  12,
			SpawnSpeedupPerWave: 4,
			HealOnClear:         1,
		},
		Spawn: SpawnDefinition{Edge: EdgeTop, MaxRerolls: 4, FastChance: 0.3},
		Enemies: map[Variant]EnemyDefinition{
			VariantNormal: {Kind: KindObstacle, Size: 60, Speed: 320, Health: 1, ContactDamage: 1, Score: 10, RemoveOnContact: true},
			VariantFast:   {Kind: KindObstacle, Size: 60, Speed: 460, Health: 1, ContactDamage: 1, Score: 20, RemoveOnContact: true},
			VariantBoss:   {Kind: KindObstacle, Size: 100, Speed: 260, Health: 1, ContactDamage: 2, Score: 60, RemoveOnContact: true},
		},
		Pickups: PickupDefinition{
			Size:              30,
			Coins:             2,
			ShieldTicks:       300,
			AmbientEveryTicks: 120,
			Table: []LootEntry{
				{Variant: VariantCoin, Weight: 3},
				{Variant: VariantShield, Weight: 1},
			},
			PersistOnCoin: true,
		},
	}
}

func strikeDefinition() GameDefinition {
	return GameDefinition{
		Version: DefinitionVersion,
		ID:      "strike",
		Name:    "Strike",
		Arena:   ArenaDefinition{Width: 480, Height: 800},
		Player: PlayerDefinition{
			Size:                36,
			MaxHealth:           60,
			DamageCooldownTicks: 30,
		},
		Weapon: WeaponDefinition{
			Mode:              WeaponMelee,
			BaseDamage:        1,
			DamagePerLevel:    1,
			FireCooldownTicks: 15,
			MeleeRange:        70,
			UpgradeBaseCost:   30,
		},
		Waves: WaveDefinition{
			QuotaBase:           3,
			QuotaGrowth:         2,
			SpawnEveryTicks:     50,
			MinSpawnEveryTicks:  20,
			SpawnSpeedupPerWave: 4,
			BossEvery:           4,
			HealOnClear:         10,
			HealthScalePerWave:  0.15,
		},
		Spawn: SpawnDefinition{Edge: EdgeOpposite, SafetyRadius: 200, MaxRerolls: 10, FastChance: 0.3},
		Enemies: map[Variant]EnemyDefinition{
			VariantNormal: {Kind: KindEnemy, Size: 34, Speed: 70, Health: 2, ContactDamage: 8, Score: 10, Coins: 1},
			VariantFast:   {Kind: KindEnemy, Size: 28, Speed: 130, Health: 1, ContactDamage: 6, Score: 20, Coins: 2},
			VariantBoss:   {Kind: KindEnemy, Size: 80, Speed: 45, Health: 12, ContactDamage: 20, Score: 100, Coins: 15},
		},
		Pickups: PickupDefinition{
			DropChance:    0.3,
			Size:          20,
			LifetimeTicks: 480,
			Health:        15,
			Coins:         5,
			Table: []LootEntry{
				{Variant: VariantHealth, Weight: 1},
				{Variant: VariantCoin, Weight: 1},
			},
		},
	}
}

func bubbleDefinition() GameDefinition {
	return GameDefinition{
		Version: DefinitionVersion,
		ID:      "bubble",
		Name:    "Bubble Shooter",
		Arena:   ArenaDefinition{Width: 480, Height: 800},
		Player: PlayerDefinition{
			Size:                40,
			MaxHealth:           1,
			MaxAmmo:             40,
			StartAmmo:           40,
			DamageCooldownTicks: 1,
		},
		Weapon: WeaponDefinition{
			Mode:              WeaponProjectile,
			BaseDamage:        1,
			DamagePerLevel:    1,
			ProjectileSpeed:   700,
			ProjectileSize:    30,
			FireCooldownTicks: 12,
			UpgradeBaseCost:   40,
			AmmoPerUpgrade:    5,
		},
		Waves: WaveDefinition{
			QuotaBase:           8,
			QuotaGrowth:         4,
			SpawnEveryTicks:     30,
			MinSpawnEveryTicks:  10,
			SpawnSpeedupPerWave: 2,
			HealOnClear:         0,
		},
		Spawn: SpawnDefinition{Edge: EdgeTop, MaxRerolls: 4, FastChance: 0.1},
		Enemies: map[Variant]EnemyDefinition{
			VariantNormal: {Kind: KindEnemy, Size: 36, Speed: 15, Health: 1, ContactDamage: 1, Score: 10, Coins: 1},
			VariantFast:   {Kind: KindEnemy, Size: 36, Speed: 25, Health: 1, ContactDamage: 1, Score: 20, Coins: 2},
			VariantBoss:   {Kind: KindEnemy, Size: 72, Speed: 10, Health: 5, ContactDamage: 1, Score: 100, Coins: 10},
		},
		Pickups: PickupDefinition{
			DropChance:    0.3,
			Size:          20,
			LifetimeTicks: 300,
			Ammo:          3,
			Coins:         3,
			Table: []LootEntry{
				{Variant: VariantAmmo, Weight: 1},
				{Variant: VariantCoin, Weight: 1},
			},
		},
		Rules: RulesDefinition{AttemptBudget: 60},
	}
}
