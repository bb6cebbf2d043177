// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-recovery-arcade/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков, по одному на единицу.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Dots возвращает число заполненных и общее число кружков. Частичная единица здоровья
// округляется вверх, чтобы живой игрок никогда не показывался пустым.
func Dots(health, maxHealth float64) (filled, total int) {
	total = int(math.Ceil(maxHealth))
	filled = int(math.Ceil(health))
	if filled > total {
		filled = total
	}
	if filled < 0 {
		filled = 0
	}
	return filled, total
}

// Draw рисует сетку и подпись "health/max" над ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth float64) {
	filled, total := Dots(health, maxHealth)
	r := float32(config.HealthDotSize)
	step := r*2 + HealthCircleSpacing

	for j := 0; j < total; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + float32(col)*step + r
		cy := i.Y + float32(row)*step + r

		var c color.Color = config.HealthEmptyColor
		if j < filled {
			c = config.HealthFullColor
		}
		vector.DrawFilledCircle(screen, cx, cy, r, c, true)
		vector.StrokeCircle(screen, cx, cy, r, 1, color.White, true)
	}

	label := strconv.Itoa(filled) + "/" + strconv.Itoa(total)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-6, config.TextLightColor)
}

// Height возвращает высоту сетки для total кружков.
func (i *PlayerHealthIndicator) Height(total int) float32 {
	rows := (total + HealthCols - 1) / HealthCols
	return float32(rows) * (float32(config.HealthDotSize)*2 + HealthCircleSpacing)
}
