// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/ui"
	"go-recovery-arcade/pkg/geom"
)

// Renderer рисует снимок сессии. Он ничего не знает о самой сессии, только о Snapshot.
type Renderer struct {
	Palette Palette
	face    font.Face

	health *ui.PlayerHealthIndicator
	wave   *ui.WaveIndicator
	weapon *ui.WeaponIndicator

	Pause   *ui.PauseButton
	Summary *ui.SummaryPanel
	Effects *Effects
}

func NewRenderer() *Renderer {
	face := basicfont.Face7x13
	margin := float32(config.IndicatorMargin)
	return &Renderer{
		Palette: DefaultPalette(),
		face:    face,
		health:  ui.NewPlayerHealthIndicator(margin, margin+12),
		wave:    ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorMargin),
		weapon:  ui.NewWeaponIndicator(config.ScreenWidth-margin-130, margin),
		Pause:   ui.NewPauseButton(config.ScreenWidth-margin, config.ScreenHeight-margin-10, 14, config.WaveColor, config.PlayerColor),
		Summary: ui.NewSummaryPanel(face, face),
		Effects: NewEffects(),
	}
}

// Viewport returns the arena-to-screen mapping for a snapshot.
func (r *Renderer) Viewport(snap app.Snapshot) Viewport {
	return Fit(snap.Arena, config.ScreenWidth, config.ScreenHeight)
}

func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot, gameTime float64) {
	screen.Fill(r.Palette.BackgroundColor)
	vp := r.Viewport(snap)
	r.drawArena(screen, vp, snap.Arena)

	if snap.Phase == component.PhaseMenu {
		r.drawCentered(screen, "TAP TO START", config.ScreenHeight/2)
		r.drawCentered(screen, snap.Game, config.ScreenHeight/2-2*config.HUDLineHeight)
		return
	}

	// Сначала подбираемые предметы с пульсацией
	for _, e := range snap.Entities {
		if e.Kind != defs.KindPickup {
			continue
		}
		x, y := vp.ToScreen(e.Pos)
		pulse := float32(1 + 0.1*math.Sin(gameTime*2*math.Pi))
		c := VariantColor(e.Variant)
		vector.DrawFilledCircle(screen, x, y, vp.Len(e.Size/2)*pulse, c, true)
	}

	// Затем враги, препятствия и снаряды
	for _, e := range snap.Entities {
		switch e.Kind {
		case defs.KindEnemy:
			r.drawEnemy(screen, vp, e)
		case defs.KindObstacle:
			x, y := vp.ToScreen(e.Pos.Sub(geom.Vec2{X: e.Size / 2, Y: e.Size / 2}))
			side := vp.Len(e.Size)
			c := VariantColor(e.Variant)
			vector.DrawFilledRect(screen, x, y, side, side, c, true)
			vector.StrokeRect(screen, x, y, side, side, r.Palette.StrokeWidth, DarkenColor(c), true)
		case defs.KindProjectile:
			x, y := vp.ToScreen(e.Pos)
			vector.DrawFilledCircle(screen, x, y, vp.Len(e.Size/2), r.Palette.ProjectileColor, true)
		}
	}

	r.drawPlayer(screen, vp, snap.Player)
	r.Effects.Draw(screen, vp)
	r.drawHUD(screen, snap)

	switch snap.Phase {
	case component.PhasePaused:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, r.Palette.OverlayColor, false)
		r.drawCentered(screen, "PAUSED", config.ScreenHeight/2)
	case component.PhaseGameOver:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, r.Palette.OverlayColor, false)
	}
	r.Pause.SetPaused(snap.Phase == component.PhasePaused)
	if snap.Phase != component.PhaseGameOver {
		r.Pause.Draw(screen)
	}
	r.Summary.Draw(screen)
}

func (r *Renderer) drawArena(screen *ebiten.Image, vp Viewport, arena app.ArenaView) {
	x, y := vp.ToScreen(geom.Vec2{})
	w, h := vp.Len(arena.Width), vp.Len(arena.Height)
	vector.DrawFilledRect(screen, x, y, w, h, r.Palette.ArenaColor, false)

	// Разделители полос
	for i := 1; i < arena.Lanes; i++ {
		lx := x + w*float32(i)/float32(arena.Lanes)
		vector.StrokeLine(screen, lx, y, lx, y+h, 1, r.Palette.LaneColor, true)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, vp Viewport, e component.Entity) {
	x, y := vp.ToScreen(e.Pos)
	radius := vp.Len(e.Size / 2)
	c := VariantColor(e.Variant)
	if e.Variant == defs.VariantBoss {
		vector.DrawFilledCircle(screen, x, y, radius+r.Palette.StrokeWidth, DarkenColor(c), true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, c, true)

	// Полоска здоровья только для раненых
	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		w := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, config.HealthEmptyColor, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*float32(e.Health/e.MaxHealth), 3, config.HealthFullColor, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, vp Viewport, p component.PlayerState) {
	x, y := vp.ToScreen(p.Pos)
	radius := vp.Len(p.Size / 2)
	c := r.Palette.PlayerColor
	if !p.Alive() {
		c = DarkenColor(c)
	}
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
	if p.Shield.Active {
		vector.StrokeCircle(screen, x, y, radius+4, r.Palette.StrokeWidth, r.Palette.ShieldColor, true)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	p := snap.Player
	r.health.Draw(screen, r.face, p.Health, p.MaxHealth)
	r.wave.Draw(screen, r.face, snap.Wave.Index, bossAlive(snap))
	r.weapon.Draw(screen, p.WeaponLevel, p.Ammo, p.MaxAmmo)

	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Stats.Score),
		fmt.Sprintf("COINS %d  UPGRADE %d", snap.Stats.Coins, snap.UpgradeCost),
	}
	if snap.AttemptsLeft >= 0 {
		lines = append(lines, fmt.Sprintf("SHOTS %d", snap.AttemptsLeft))
	}
	y := config.ScreenHeight - config.IndicatorMargin - config.HUDLineHeight*(len(lines)-1)
	for _, l := range lines {
		text.Draw(screen, l, r.face, config.IndicatorMargin, y, r.Palette.TextColor)
		y += config.HUDLineHeight
	}
}

// bossAlive — среди живых противников есть босс.
func bossAlive(snap app.Snapshot) bool {
	for _, e := range snap.Entities {
		if e.Variant == defs.VariantBoss {
			return true
		}
	}
	return false
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, y int) {
	bounds := text.BoundString(r.face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, r.face, x, y, color.White)
}
