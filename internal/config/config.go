// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 800

	TickRate     = 60          // номинальная частота тиков
	MaxDeltaTime = 0.25        // секунд; дольше — кадр считается пропущенным
	DefaultDT    = 1.0 / 60.0 // шаг симуляции в секундах

	DefaultGame = "zombie"

	ClickCooldown   = 300 // мс между нажатиями кнопки паузы
	IndicatorMargin = 24
	HealthDotSize   = 8.0
	HUDLineHeight   = 16
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	ArenaColor       = color.RGBA{32, 34, 46, 255}
	PlayerColor      = color.RGBA{80, 200, 120, 255}
	ShieldColor      = color.RGBA{90, 170, 255, 200}
	ProjectileColor  = color.RGBA{255, 240, 120, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 170}
	BossWaveColor    = color.RGBA{220, 60, 60, 255}
	WaveColor        = color.RGBA{70, 130, 180, 255}
	HealthFullColor  = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor = color.RGBA{30, 30, 30, 255}

	// Цвета врагов по варианту
	VariantColors = map[string]color.RGBA{
		"normal": {200, 80, 80, 255},
		"fast":   {240, 150, 60, 255},
		"boss":   {170, 50, 220, 255},
		"ammo":   {200, 200, 200, 255},
		"health": {90, 220, 90, 255},
		"coin":   {255, 215, 0, 255},
		"shield": {90, 170, 255, 255},
	}
)
