// internal/defs/types.go
package defs

// Kind — общий класс сущности.
type Kind string

const (
	KindEnemy      Kind = "enemy"
	KindObstacle   Kind = "obstacle"
	KindProjectile Kind = "projectile"
	KindPickup     Kind = "pickup"
)

// Variant tags an entity within its kind.
type Variant string

const (
	VariantNormal Variant = "normal"
	VariantFast   Variant = "fast"
	VariantBoss   Variant = "boss"

	VariantAmmo   Variant = "ammo"
	VariantHealth Variant = "health"
	VariantCoin   Variant = "coin"
	VariantShield Variant = "shield"

	VariantBullet Variant = "bullet"
)

// WeaponMode определяет, как атакует игрок.
type WeaponMode string

const (
	WeaponProjectile WeaponMode = "projectile"
	WeaponMelee      WeaponMode = "melee"
)

// SpawnEdge определяет, откуда противники входят на арену.
type SpawnEdge string

const (
	EdgeRandom   SpawnEdge = "random"   // случайная точка на случайной стороне
	EdgeOpposite SpawnEdge = "opposite" // сторона, дальняя от игрока
	EdgeTop      SpawnEdge = "top"      // верхний край, для прокручиваемых препятствий
)
