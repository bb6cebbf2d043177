package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/pkg/geom"
)

func TestFitKeepsAspect(t *testing.T) {
	vp := Fit(app.ArenaView{Width: 240, Height: 400}, 480, 800)
	assert.Equal(t, 2.0, vp.Scale)
	assert.Zero(t, vp.OffsetX)
	assert.Zero(t, vp.OffsetY)

	// Широкая арена: полосы сверху и снизу
	vp = Fit(app.ArenaView{Width: 960, Height: 800}, 480, 800)
	assert.Equal(t, 0.5, vp.Scale)
	assert.Zero(t, vp.OffsetX)
	assert.Equal(t, 200.0, vp.OffsetY)

	x, y := vp.ToScreen(geom.Vec2{X: 960, Y: 800})
	assert.Equal(t, float32(480), x)
	assert.Equal(t, float32(600), y)
	assert.Equal(t, geom.Vec2{X: 480, Y: 400}, vp.ToArena(240, 400))
}

func TestFitDegenerateArena(t *testing.T) {
	vp := Fit(app.ArenaView{}, 480, 800)
	assert.Equal(t, 1.0, vp.Scale)
	assert.Equal(t, geom.Vec2{X: 3, Y: 4}, vp.ToArena(3, 4))
}

func TestVariantColors(t *testing.T) {
	assert.NotEqual(t, VariantColor(defs.VariantBoss), VariantColor(defs.VariantNormal))
	assert.Equal(t, uint8(128), VariantColor("unknown").R)
	assert.Equal(t, uint8(100), DarkenColor(VariantColor(defs.VariantNormal)).R)
}
