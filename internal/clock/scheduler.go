// internal/clock/scheduler.go
package clock

import (
	"sort"
	"time"
)

// Scheduler runs a callback once after a delay. Callbacks of one scheduler never run
// concurrently with each other.
type Scheduler interface {
	Now() time.Time
	// Schedule arranges for fn to run after d. The returned func cancels a pending call;
	// cancelling after fn has run is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

type manualTimer struct {
	due       time.Time
	seq       uint64
	fn        func()
	cancelled bool
}

// ManualScheduler — планировщик виртуального времени. Пока не вызван Advance, ничего не
// происходит; колбэки выполняются в горутине вызывающего. Не потокобезопасен.
type ManualScheduler struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

// NewManualScheduler начинает виртуальное время с эпохи Unix.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{now: time.Unix(0, 0)}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{due: s.now.Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Pending — сколько живых колбэков ждёт.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, running every callback that falls due, in due
// order. Callbacks scheduled while advancing run too if they fall due before the target.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		if t.due.After(s.now) {
			s.now = t.due
		}
		t.fn()
	}
	s.now = target
}

// Frame продвигает время на длительность кадра хоста d. Кадр длиннее двух интервалов
// считается зависанием: время перескакивает без запуска колбэков, затем просроченные
// срабатывают по одному разу, и Clock засчитывает пропущенные тики в Skipped.
func (s *ManualScheduler) Frame(d, interval time.Duration) {
	if interval > 0 && d >= 2*interval {
		s.Stall(d)
		s.Advance(0)
		return
	}
	s.Advance(d)
}

// Stall moves virtual time forward without running anything, the way a host that
// throttles background timers would. Overdue callbacks fire on the next Advance.
func (s *ManualScheduler) Stall(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *ManualScheduler) popDue(target time.Time) *manualTimer {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.timers = live
	if len(s.timers) == 0 {
		return nil
	}
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})
	t := s.timers[0]
	if t.due.After(target) {
		return nil
	}
	s.timers = s.timers[1:]
	return t
}
