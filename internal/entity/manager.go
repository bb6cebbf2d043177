// internal/entity/manager.go
package entity

import (
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/defs"
	"go-recovery-arcade/internal/types"
	"go-recovery-arcade/internal/utils"
	"go-recovery-arcade/pkg/geom"
)

// Manager единолично владеет всеми сущностями забега. Коллекции упорядочены по порядку
// появления, поэтому обход идёт по возрастанию ID и выбор при коллизиях детерминирован.
type Manager struct {
	def    defs.GameDefinition
	rng    *utils.PRNGService
	bounds geom.Rect

	NextID types.EntityID

	hostiles    []*component.Entity
	projectiles []*component.Entity
	pickups     []*component.Entity
}

// StepReport — что покинуло арену за один Step.
type StepReport struct {
	Dodged          []component.Entity // препятствия, ушедшие за нижний край
	ExpiredPickups  []component.Entity
	LostProjectiles int
}

func NewManager(def defs.GameDefinition, rng *utils.PRNGService) *Manager {
	return &Manager{
		def:    def,
		rng:    rng,
		bounds: geom.Rect{W: def.Arena.Width, H: def.Arena.Height},
		NextID: 1,
	}
}

// NewEntity выдаёт следующий ID. ID начинаются с 1 и не переиспользуются.
func (m *Manager) NewEntity() types.EntityID {
	id := m.NextID
	m.NextID++
	return id
}

func (m *Manager) Bounds() geom.Rect { return m.bounds }

// Hostiles returns enemies and obstacles in spawn order. Callers may mutate the
// entities but must not keep the slice across a Step or Remove.
func (m *Manager) Hostiles() []*component.Entity    { return m.hostiles }
func (m *Manager) Projectiles() []*component.Entity { return m.projectiles }
func (m *Manager) Pickups() []*component.Entity     { return m.pickups }

// Count возвращает число живых сущностей всех видов.
func (m *Manager) Count() int {
	return len(m.hostiles) + len(m.projectiles) + len(m.pickups)
}

// Get ищет живую сущность по ID.
func (m *Manager) Get(id types.EntityID) (*component.Entity, bool) {
	for _, list := range [][]*component.Entity{m.hostiles, m.projectiles, m.pickups} {
		for _, e := range list {
			if e.ID == id {
				return e, true
			}
		}
	}
	return nil, false
}

// SpawnEnemy создаёт одного противника для волны. forceBoss отменяет случайный выбор
// варианта; иначе вариант быстрый с вероятностью Spawn.FastChance, либо обычный.
func (m *Manager) SpawnEnemy(wave int, forceBoss bool, playerPos geom.Vec2, now uint64) *component.Entity {
	variant := m.pickVariant(forceBoss)
	ed := m.def.Enemies[variant]

	health := ed.Health * m.def.Waves.HealthScale(wave)
	if health <= 0 {
		health = 1
	}

	e := &component.Entity{
		ID:              m.NewEntity(),
		Kind:            ed.Kind,
		Variant:         variant,
		Pos:             m.spawnPosition(ed.Size, playerPos),
		Speed:           ed.Speed,
		Size:            ed.Size,
		Health:          health,
		MaxHealth:       health,
		ContactDamage:   ed.ContactDamage,
		Score:           ed.Score,
		Coins:           ed.Coins,
		RemoveOnContact: ed.RemoveOnContact,
		SpawnTick:       now,
	}
	if e.Kind == "" {
		e.Kind = defs.KindEnemy
	}
	if ed.Scrolls() {
		e.Vel = geom.Vec2{Y: ed.Speed}
	}
	m.hostiles = append(m.hostiles, e)
	return e
}

func (m *Manager) pickVariant(forceBoss bool) defs.Variant {
	if forceBoss {
		if _, ok := m.def.Enemies[defs.VariantBoss]; ok {
			return defs.VariantBoss
		}
	}
	if m.rng.Chance(m.def.Spawn.FastChance) {
		if _, ok := m.def.Enemies[defs.VariantFast]; ok {
			return defs.VariantFast
		}
	}
	return defs.VariantNormal
}

// spawnPosition выбирает точку на заданной стороне. Точки ближе SafetyRadius к игроку
// перебрасываются до MaxRerolls раз, после чего берётся самая дальняя.
func (m *Manager) spawnPosition(size float64, playerPos geom.Vec2) geom.Vec2 {
	best := m.edgePoint(size, playerPos)
	safety := m.def.Spawn.SafetyRadius
	if safety <= 0 {
		return best
	}
	bestDist := best.Dist(playerPos)
	for i := 0; i < m.def.Spawn.MaxRerolls && bestDist < safety; i++ {
		p := m.edgePoint(size, playerPos)
		if d := p.Dist(playerPos); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (m *Manager) edgePoint(size float64, playerPos geom.Vec2) geom.Vec2 {
	w, h := m.bounds.W, m.bounds.H
	switch m.def.Spawn.Edge {
	case defs.EdgeTop:
		return geom.Vec2{X: m.topX(size), Y: -size / 2}
	case defs.EdgeOpposite:
		return m.sidePoint(farthestSide(playerPos, w, h), w, h)
	default:
		return m.sidePoint(m.rng.Intn(4), w, h)
	}
}

// topX — центр случайной полосы или любой x, при котором сущность целиком внутри.
func (m *Manager) topX(size float64) float64 {
	if lanes := m.def.Arena.Lanes; lanes > 0 {
		return geom.LaneCenter(m.bounds.W, lanes, m.rng.Intn(lanes))
	}
	lo, hi := size/2, m.bounds.W-size/2
	if hi <= lo {
		return m.bounds.W / 2
	}
	return m.rng.Range(lo, hi)
}

// Стороны: 0 — верх, 1 — право, 2 — низ, 3 — лево
func (m *Manager) sidePoint(side int, w, h float64) geom.Vec2 {
	switch side {
	case 0:
		return geom.Vec2{X: m.rng.Range(0, w), Y: 0}
	case 1:
		return geom.Vec2{X: w, Y: m.rng.Range(0, h)}
	case 2:
		return geom.Vec2{X: m.rng.Range(0, w), Y: h}
	default:
		return geom.Vec2{X: 0, Y: m.rng.Range(0, h)}
	}
}

func farthestSide(p geom.Vec2, w, h float64) int {
	dists := [4]float64{p.Y, w - p.X, h - p.Y, p.X}
	best := 0
	for i := 1; i < len(dists); i++ {
		if dists[i] > dists[best] {
			best = i
		}
	}
	return best
}

// SpawnProjectile запускает снаряд из origin в сторону target. Нулевое направление — строго вверх.
func (m *Manager) SpawnProjectile(origin, target geom.Vec2, now uint64) *component.Entity {
	dir := target.Sub(origin).Norm()
	if dir.IsZero() {
		dir = geom.Vec2{Y: -1}
	}
	e := &component.Entity{
		ID:        m.NewEntity(),
		Kind:      defs.KindProjectile,
		Variant:   defs.VariantBullet,
		Pos:       origin,
		Vel:       dir.Mul(m.def.Weapon.ProjectileSpeed),
		Speed:     m.def.Weapon.ProjectileSpeed,
		Size:      m.def.Weapon.ProjectileSize,
		SpawnTick: now,
	}
	m.projectiles = append(m.projectiles, e)
	return e
}

// SpawnPickup кладёт бонус в pos. vel ненулевой только у бонусов, которые едут вместе с ареной.
func (m *Manager) SpawnPickup(variant defs.Variant, pos, vel geom.Vec2, now uint64) *component.Entity {
	e := &component.Entity{
		ID:        m.NewEntity(),
		Kind:      defs.KindPickup,
		Variant:   variant,
		Pos:       pos,
		Vel:       vel,
		Size:      m.def.Pickups.Size,
		SpawnTick: now,
	}
	if lt := m.def.Pickups.LifetimeTicks; lt > 0 {
		e.ExpiresAtTick = now + uint64(lt)
	}
	m.pickups = append(m.pickups, e)
	return e
}

// Step сдвигает все сущности на dt. Враги поворачивают к playerPos со своей скоростью,
// остальные сохраняют скорость. Улетевшие снаряды, препятствия за нижним краем и
// истёкшие бонусы удаляются и попадают в отчёт.
func (m *Manager) Step(dt float64, playerPos geom.Vec2, now uint64) StepReport {
	var report StepReport

	m.hostiles = filter(m.hostiles, func(e *component.Entity) bool {
		if e.Kind == defs.KindEnemy {
			e.Vel = playerPos.Sub(e.Pos).Norm().Mul(e.Speed)
			e.Pos = e.Pos.Add(e.Vel.Mul(dt))
			return true
		}
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		if e.Pos.Y-e.Size/2 > m.bounds.H {
			report.Dodged = append(report.Dodged, *e)
			return false
		}
		return true
	})

	m.projectiles = filter(m.projectiles, func(e *component.Entity) bool {
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		if !m.inside(e) {
			report.LostProjectiles++
			return false
		}
		return true
	})

	m.pickups = filter(m.pickups, func(e *component.Entity) bool {
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		if (e.ExpiresAtTick != 0 && now >= e.ExpiresAtTick) || !m.inside(e) {
			report.ExpiredPickups = append(report.ExpiredPickups, *e)
			return false
		}
		return true
	})

	return report
}

// inside допускает свес за край на размер сущности: входящие сверху не удаляются
// на первом шаге.
func (m *Manager) inside(e *component.Entity) bool {
	r := m.bounds
	return e.Pos.X >= r.X-e.Size && e.Pos.X <= r.X+r.W+e.Size &&
		e.Pos.Y >= r.Y-e.Size && e.Pos.Y <= r.Y+r.H+e.Size
}

// Remove удаляет живую сущность. Для неизвестного или уже удалённого ID вернёт false.
func (m *Manager) Remove(id types.EntityID) bool {
	for _, list := range []*[]*component.Entity{&m.hostiles, &m.projectiles, &m.pickups} {
		for i, e := range *list {
			if e.ID == id {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Snapshot возвращает копии живых сущностей: противники, затем снаряды, затем бонусы.
func (m *Manager) Snapshot() []component.Entity {
	out := make([]component.Entity, 0, m.Count())
	for _, list := range [][]*component.Entity{m.hostiles, m.projectiles, m.pickups} {
		for _, e := range list {
			out = append(out, *e)
		}
	}
	return out
}

func filter(list []*component.Entity, keep func(*component.Entity) bool) []*component.Entity {
	out := list[:0]
	for _, e := range list {
		if keep(e) {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}
