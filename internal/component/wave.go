// internal/component/wave.go
package component

// Wave отслеживает появление противников. Spawned не превышает Quota; волна окончена,
// когда Spawned == Quota и Active == 0.
type Wave struct {
	Index      int
	Quota      int
	Spawned    int
	Active     int
	SpawnTimer int // тиков с последнего появления врага
}

// Complete — все противники появились и никого не осталось.
func (w *Wave) Complete() bool {
	return w.Spawned == w.Quota && w.Active == 0
}

// Remaining — сколько противников ещё должно появиться.
func (w *Wave) Remaining() int {
	return w.Quota - w.Spawned
}
