package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WeaponIndicator отображает запас патронов полосой и уровень оружия прямоугольниками.
type WeaponIndicator struct {
	X, Y float32
}

const (
	ammoBarWidth    = 118
	ammoBarHeight   = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	maxShownLevel   = 5
	borderWidth     = 1
)

var (
	ammoBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor      = color.White
)

func NewWeaponIndicator(x, y float32) *WeaponIndicator {
	return &WeaponIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. maxAmmo <= 0 (ближний бой) скрывает полосу патронов.
func (i *WeaponIndicator) Draw(screen *ebiten.Image, level, ammo, maxAmmo int) {
	rectY := i.Y
	if maxAmmo > 0 {
		vector.StrokeRect(screen, i.X, i.Y, ammoBarWidth, ammoBarHeight, borderWidth, borderColor, true)
		fillWidth := float32(float64(ammoBarWidth-borderWidth*2) * fillRatio(ammo, maxAmmo))
		if fillWidth > 0 {
			vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, ammoBarHeight-borderWidth*2, ammoBarColorFill, true)
		}
		rectY += ammoBarHeight + 10
	}

	for j := 0; j < maxShownLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, ammoBarColorFill, true)
		}
	}
}

func fillRatio(cur, total int) float64 {
	if total <= 0 || cur <= 0 {
		return 0
	}
	if cur >= total {
		return 1
	}
	return float64(cur) / float64(total)
}
