// internal/render/color.go
package render

import (
	"image/color"

	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
)

// Palette holds all the colors needed to draw an arena snapshot.
type Palette struct {
	BackgroundColor color.RGBA
	ArenaColor      color.RGBA
	LaneColor       color.RGBA
	PlayerColor     color.RGBA
	ShieldColor     color.RGBA
	ProjectileColor color.RGBA
	TextColor       color.RGBA
	OverlayColor    color.RGBA
	StrokeWidth     float32
}

func DefaultPalette() Palette {
	return Palette{
		BackgroundColor: config.BackgroundColor,
		ArenaColor:      config.ArenaColor,
		LaneColor:       LightenColor(config.ArenaColor),
		PlayerColor:     config.PlayerColor,
		ShieldColor:     config.ShieldColor,
		ProjectileColor: config.ProjectileColor,
		TextColor:       config.TextLightColor,
		OverlayColor:    config.OverlayColor,
		StrokeWidth:     2,
	}
}

// VariantColor — заливка для варианта сущности, серая для неизвестных.
func VariantColor(v defs.Variant) color.RGBA {
	if c, ok := config.VariantColors[string(v)]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

// DarkenColor уменьшает яркость цвета
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor сдвигает цвет наполовину к белому
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}
