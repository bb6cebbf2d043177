// internal/render/effects.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-recovery-arcade/internal/config"
	"go-recovery-arcade/internal/event"
	"go-recovery-arcade/pkg/geom"
)

const (
	burstDuration  = 0.35 // секунд
	burstMaxRadius = 36.0 // единиц арены
	flashDuration  = 0.25
)

// burst — расширяющееся кольцо на месте уничтоженного противника.
type burst struct {
	Pos          geom.Vec2
	Color        color.RGBA
	CurrentTimer float64
}

// Effects управляет визуальными эффектами: кольцами на месте убитых врагов и вспышкой
// экрана при уроне игроку. Эффекты живут в реальном времени и не влияют на симуляцию.
type Effects struct {
	bursts     []burst
	flashTimer float64
}

func NewEffects() *Effects {
	return &Effects{}
}

// Subscribe attaches the effects to a session's dispatcher.
func (fx *Effects) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(fx, event.EnemyKilled, event.HostileCrashed, event.PlayerDamaged)
}

func (fx *Effects) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.HostileCrashed:
		if data, ok := e.Data.(event.HostileData); ok {
			fx.bursts = append(fx.bursts, burst{Pos: data.Pos, Color: VariantColor(data.Variant)})
		}
	case event.PlayerDamaged:
		fx.flashTimer = flashDuration
	}
}

// Update обновляет таймеры всех активных эффектов.
func (fx *Effects) Update(deltaTime float64) {
	fx.flashTimer = max(fx.flashTimer-deltaTime, 0)

	live := fx.bursts[:0]
	for _, b := range fx.bursts {
		b.CurrentTimer += deltaTime
		if b.CurrentTimer < burstDuration {
			live = append(live, b)
		}
	}
	fx.bursts = live
}

// Clear сбрасывает все эффекты, например при новом забеге.
func (fx *Effects) Clear() {
	fx.bursts = fx.bursts[:0]
	fx.flashTimer = 0
}

func (fx *Effects) Active() int { return len(fx.bursts) }

func (fx *Effects) Flashing() bool { return fx.flashTimer > 0 }

func (fx *Effects) Draw(screen *ebiten.Image, vp Viewport) {
	for _, b := range fx.bursts {
		progress := b.CurrentTimer / burstDuration
		x, y := vp.ToScreen(b.Pos)
		c := b.Color
		c.A = uint8(255 * (1 - progress))
		vector.StrokeCircle(screen, x, y, vp.Len(progress*burstMaxRadius), 2, c, true)
	}
	if fx.flashTimer > 0 {
		c := config.HealthFullColor
		c.A = uint8(90 * fx.flashTimer / flashDuration)
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, c, false)
	}
}
