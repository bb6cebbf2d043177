// internal/clock/clock.go
package clock

import "time"

// Clock ведёт тики с фиксированной частотой через Scheduler. Пока часы идут, ожидает
// ровно один колбэк тика; Stop отменяет его, и после возврата Stop тиков нет.
//
// Если планировщик сработал с опозданием, часы не догоняют: выполняется один тик с
// номинальным dt, пропущенные интервалы считаются в Skipped.
//
// Clock не потокобезопасен. Вызывать из горутины планировщика.
type Clock struct {
	sched    Scheduler
	interval time.Duration
	dt       float64
	fn       func(dt float64)

	running bool
	gen     uint64
	cancel  func()
	due     time.Time

	ticks   uint64
	skipped uint64
}

// New создаёт остановленные часы с частотой hz. fn получает фиксированный шаг в секундах.
func New(s Scheduler, hz int, fn func(dt float64)) *Clock {
	if hz <= 0 {
		hz = 60
	}
	interval := time.Second / time.Duration(hz)
	return &Clock{
		sched:    s,
		interval: interval,
		dt:       interval.Seconds(),
		fn:       fn,
	}
}

// Start заводит первый тик через один интервал. Повторный Start ничего не делает.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.gen++
	c.arm(c.sched.Now().Add(c.interval))
}

// Stop отменяет ожидающий тик.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Clock) Running() bool           { return c.running }
func (c *Clock) Ticks() uint64           { return c.ticks }
func (c *Clock) Skipped() uint64         { return c.skipped }
func (c *Clock) Interval() time.Duration { return c.interval }

func (c *Clock) arm(due time.Time) {
	c.due = due
	gen := c.gen
	c.cancel = c.sched.Schedule(due.Sub(c.sched.Now()), func() { c.fire(gen) })
}

func (c *Clock) fire(gen uint64) {
	if !c.running || gen != c.gen {
		return
	}
	now := c.sched.Now()
	if late := now.Sub(c.due); late >= c.interval {
		c.skipped += uint64(late / c.interval)
	}

	c.ticks++
	c.fn(c.dt)

	// fn мог остановить или перезапустить часы
	if c.running && gen == c.gen {
		c.arm(now.Add(c.interval))
	}
}
