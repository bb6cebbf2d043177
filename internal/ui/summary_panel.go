// internal/ui/summary_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/config"
)

const (
	panelHeight    = 220
	panelMargin    = 5
	animationSpeed = 14.0
	lineHeight     = 20
	columnSpacing  = 200
	btnWidth       = 150
	btnHeight      = 40
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// PanelAction — что запрашивает клик по панели итогов.
type PanelAction int

const (
	ActionNone PanelAction = iota
	ActionRetry
	ActionMenu
)

// SummaryPanel выезжает снизу после окончания забега и показывает его итоги.
type SummaryPanel struct {
	IsVisible     bool
	Title         string
	Stats         component.RunStats
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	RetryButton   Button
	MenuButton    Button
}

func NewSummaryPanel(font, titleFont font.Face) *SummaryPanel {
	return &SummaryPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *SummaryPanel) Show(title string, stats component.RunStats) {
	p.Title = title
	p.Stats = stats
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *SummaryPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель и возвращает действие, если клик пришёлся на кнопку.
func (p *SummaryPanel) Update(click image.Point, clicked bool) PanelAction {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
	p.layout()

	if !p.IsVisible || !clicked {
		return ActionNone
	}
	switch {
	case click.In(p.RetryButton.Rect):
		return ActionRetry
	case click.In(p.MenuButton.Rect):
		return ActionMenu
	}
	return ActionNone
}

func (p *SummaryPanel) rect() image.Rectangle {
	return image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
}

func (p *SummaryPanel) layout() {
	r := p.rect()
	p.RetryButton = Button{
		Rect: image.Rect(r.Max.X-btnWidth*2-40, r.Max.Y-btnHeight-20, r.Max.X-btnWidth-40, r.Max.Y-20),
		Text: "Retry",
	}
	p.MenuButton = Button{
		Rect: image.Rect(r.Max.X-btnWidth-20, r.Max.Y-btnHeight-20, r.Max.X-20, r.Max.Y-20),
		Text: "Menu",
	}
}

func (p *SummaryPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	r := p.rect()

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.WaveColor, true)

	x := r.Min.X + 15
	y := r.Min.Y + 15 + lineHeight
	text.Draw(screen, p.Title, p.titleFontFace, x, y, config.TextLightColor)
	y += lineHeight + 6

	s := p.Stats
	p.drawPair(screen, x, y, fmt.Sprintf("Score: %d", s.Score), fmt.Sprintf("Level: %d", s.Level))
	y += lineHeight
	p.drawPair(screen, x, y, fmt.Sprintf("Kills: %d", s.Kills), fmt.Sprintf("Dodged: %d", s.Dodged))
	y += lineHeight
	p.drawPair(screen, x, y, fmt.Sprintf("Coins: %d", s.Coins), fmt.Sprintf("Distance: %.0f", s.Distance))

	p.drawButton(screen, p.RetryButton, color.RGBA{R: 60, G: 120, B: 60, A: 255})
	p.drawButton(screen, p.MenuButton, color.RGBA{R: 100, G: 60, B: 60, A: 255})
}

func (p *SummaryPanel) drawPair(screen *ebiten.Image, x, y int, left, right string) {
	text.Draw(screen, left, p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, right, p.fontFace, x+columnSpacing, y, config.TextLightColor)
}

func (p *SummaryPanel) drawButton(screen *ebiten.Image, b Button, c color.Color) {
	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(b.Rect.Dx()), float32(b.Rect.Dy()), c, true)
	bounds := text.BoundString(p.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, p.fontFace, textX, textY, color.White)
}
