// internal/component/stats.go
package component

// RunStats — табло забега. Score, Kills, Dodged и Distance в пределах забега только
// растут; Coins — баланс, который уменьшается лишь при покупке улучшения.
type RunStats struct {
	Score    int
	Coins    int
	Level    int
	Distance float64

	Kills       int
	Dodged      int
	ShotsFired  int
	DamageTaken float64
}
