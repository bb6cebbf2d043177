// internal/defs/enemies.go
package defs

// EnemyDefinition хранит статические данные одного варианта противника.
type EnemyDefinition struct {
	Kind            Kind    `json:"kind"`
	Size            float64 `json:"size"`
	Speed           float64 `json:"speed"`
	Health          float64 `json:"health"`
	ContactDamage   float64 `json:"contact_damage"`
	Score           int     `json:"score"`
	Coins           int     `json:"coins"`
	RemoveOnContact bool    `json:"remove_on_contact"`
}

// Scrolls — вариант едет с постоянной скоростью, а не преследует игрока.
func (e EnemyDefinition) Scrolls() bool {
	return e.Kind == KindObstacle
}
