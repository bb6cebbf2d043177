package render

import (
	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/pkg/geom"
)

// Viewport переводит координаты арены в экранные, сохраняя пропорции и центрируя арену.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit returns the largest viewport that shows the whole arena on a w×h screen.
func Fit(arena app.ArenaView, w, h int) Viewport {
	if arena.Width <= 0 || arena.Height <= 0 {
		return Viewport{Scale: 1}
	}
	scale := min(float64(w)/arena.Width, float64(h)/arena.Height)
	return Viewport{
		Scale:   scale,
		OffsetX: (float64(w) - arena.Width*scale) / 2,
		OffsetY: (float64(h) - arena.Height*scale) / 2,
	}
}

func (v Viewport) ToScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X*v.Scale + v.OffsetX), float32(p.Y*v.Scale + v.OffsetY)
}

// ToArena переводит позицию курсора или касания обратно в координаты арены.
func (v Viewport) ToArena(x, y int) geom.Vec2 {
	if v.Scale == 0 {
		return geom.Vec2{X: float64(x), Y: float64(y)}
	}
	return geom.Vec2{X: (float64(x) - v.OffsetX) / v.Scale, Y: (float64(y) - v.OffsetY) / v.Scale}
}

func (v Viewport) Len(d float64) float32 { return float32(d * v.Scale) }
