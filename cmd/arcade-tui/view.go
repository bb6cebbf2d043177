package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/pkg/geom"
)

// statusRows строк внизу терминала отведены под HUD.
const statusRows = 2

var (
	styleDefault = tcell.StyleDefault
	styleArena   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleShield  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

var variantGlyphs = map[defs.Variant]rune{
	defs.VariantNormal: 'e',
	defs.VariantFast:   'f',
	defs.VariantBoss:   'B',
	defs.VariantAmmo:   'a',
	defs.VariantHealth: '+',
	defs.VariantCoin:   '$',
	defs.VariantShield: 'o',
}

var variantStyles = map[defs.Variant]tcell.Style{
	defs.VariantNormal: tcell.StyleDefault.Foreground(tcell.ColorRed),
	defs.VariantFast:   tcell.StyleDefault.Foreground(tcell.ColorOrange),
	defs.VariantBoss:   tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	defs.VariantCoin:   tcell.StyleDefault.Foreground(tcell.ColorGold),
	defs.VariantHealth: tcell.StyleDefault.Foreground(tcell.ColorLime),
	defs.VariantShield: tcell.StyleDefault.Foreground(tcell.ColorBlue),
}

// cell maps an arena position onto a cols×rows grid.
func cell(arena app.ArenaView, p geom.Vec2, cols, rows int) (int, int, bool) {
	if arena.Width <= 0 || arena.Height <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(p.X / arena.Width * float64(cols))
	y := int(p.Y / arena.Height * float64(rows))
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func glyph(e component.Entity) (rune, tcell.Style) {
	switch e.Kind {
	case defs.KindObstacle:
		return '#', styleDefault
	case defs.KindProjectile:
		return '|', styleShot
	}
	r, ok := variantGlyphs[e.Variant]
	if !ok {
		r = '?'
	}
	style, ok := variantStyles[e.Variant]
	if !ok {
		style = styleDefault
	}
	return r, style
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// draw рисует снимок на весь экран.
func draw(s tcell.Screen, snap app.Snapshot) {
	s.Clear()
	cols, height := s.Size()
	rows := height - statusRows

	// Разделители полос
	for i := 1; i < snap.Arena.Lanes; i++ {
		x := cols * i / snap.Arena.Lanes
		for y := 0; y < rows; y++ {
			s.SetContent(x, y, '.', nil, styleArena)
		}
	}

	if snap.Phase == component.PhaseMenu {
		drawText(s, 2, rows/2-1, styleDefault, "ARCADE: "+snap.Game)
		drawText(s, 2, rows/2+1, styleDefault, "enter start  1-5 game  c code breaker  g grid  q quit")
		s.Show()
		return
	}

	for _, e := range snap.Entities {
		if x, y, ok := cell(snap.Arena, e.Pos, cols, rows); ok {
			r, style := glyph(e)
			s.SetContent(x, y, r, nil, style)
		}
	}
	if x, y, ok := cell(snap.Arena, snap.Player.Pos, cols, rows); ok {
		style := stylePlayer
		if snap.Player.Shield.Active {
			style = styleShield
		}
		s.SetContent(x, y, '@', nil, style)
	}

	drawText(s, 0, rows, styleStatus, statusLine(snap))
	drawText(s, 0, rows+1, styleDefault, hintLine(snap.Phase))
	s.Show()
}

func statusLine(snap app.Snapshot) string {
	p := snap.Player
	line := fmt.Sprintf(" %s  HP %.0f/%.0f  AMMO %d/%d  LV %d  WAVE %d  SCORE %d  COINS %d (up %d) ",
		snap.Game, p.Health, p.MaxHealth, p.Ammo, p.MaxAmmo, p.WeaponLevel,
		snap.Wave.Index, snap.Stats.Score, snap.Stats.Coins, snap.UpgradeCost)
	if snap.AttemptsLeft >= 0 {
		line += fmt.Sprintf("SHOTS %d ", snap.AttemptsLeft)
	}
	return line
}

func hintLine(phase component.Phase) string {
	switch phase {
	case component.PhasePlaying:
		return "arrows move  space attack  u upgrade  p pause  q quit"
	case component.PhasePaused:
		return "PAUSED  p resume  m menu"
	case component.PhaseGameOver:
		return "GAME OVER  r retry  m menu"
	}
	return ""
}
