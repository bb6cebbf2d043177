// internal/score/persister.go
package score

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Policy решает, какие записи доходят до хранилища.
type Policy string

const (
	PolicyAlways Policy = "always" // каждый результат перезаписывает строку
	PolicyBest   Policy = "best"   // только если побит сохранённый рекорд
)

// ParsePolicy принимает "always", "best" или "" (always).
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAlways:
		return PolicyAlways, nil
	case PolicyBest:
		return PolicyBest, nil
	}
	return "", fmt.Errorf("unknown save policy %q", s)
}

type Options struct {
	Policy  Policy
	Timeout time.Duration // на одну операцию с хранилищем
	Queue   int
	Logger  *slog.Logger
}

// Persister передаёт записи в Store в своей горутине. Submit не блокирует вызывающего,
// ошибки только логируются.
type Persister struct {
	store  Store
	opts   Options
	logger *slog.Logger

	queue chan Record
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	best   map[Key]int
}

func NewPersister(store Store, opts Options) *Persister {
	if opts.Policy == "" {
		opts.Policy = PolicyAlways
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Queue <= 0 {
		opts.Queue = 16
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &Persister{
		store:  store,
		opts:   opts,
		logger: logger,
		queue:  make(chan Record, opts.Queue),
		done:   make(chan struct{}),
		best:   make(map[Key]int),
	}
	go p.loop()
	return p
}

// Submit ставит rec в очередь. Если очередь полна или Persister закрыт, запись теряется.
func (p *Persister) Submit(rec Record) {
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.logger.Warn("score dropped, persister closed", "game", rec.GameType, "score", rec.Score)
		return
	}
	select {
	case p.queue <- rec:
	default:
		p.logger.Warn("score dropped, queue full", "game", rec.GameType, "score", rec.Score)
	}
}

// Close перестаёт принимать записи и дожидается записи очереди.
func (p *Persister) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
}

func (p *Persister) loop() {
	defer close(p.done)
	for rec := range p.queue {
		p.persist(rec)
	}
}

func (p *Persister) persist(rec Record) {
	ctx, cancel := context.WithTimeout(context.Background(), p.opts.Timeout)
	defer cancel()

	if p.opts.Policy == PolicyBest && !p.beats(ctx, rec) {
		p.logger.Debug("score not a new best, skipped", "game", rec.GameType, "score", rec.Score)
		return
	}
	if err := p.store.Upsert(ctx, rec); err != nil {
		p.logger.Warn("score upsert failed", "game", rec.GameType, "score", rec.Score, "err", err)
		return
	}
	if prev, ok := p.best[rec.Key()]; !ok || rec.Score > prev {
		p.best[rec.Key()] = rec.Score
	}
	p.logger.Debug("score saved", "game", rec.GameType, "score", rec.Score)
}

// beats сообщает, лучше ли rec сохранённого рекорда. Если хранилище не читается, запись
// не блокируется: сравнение идёт только с тем, что видел этот Persister.
func (p *Persister) beats(ctx context.Context, rec Record) bool {
	if prev, ok := p.best[rec.Key()]; ok && rec.Score <= prev {
		return false
	}
	reader, ok := p.store.(BestReader)
	if !ok {
		return true
	}
	stored, found, err := reader.Best(ctx, rec.Key())
	if err != nil {
		p.logger.Warn("score lookup failed", "game", rec.GameType, "err", err)
		return true
	}
	if found {
		p.best[rec.Key()] = stored.Score
		return rec.Score > stored.Score
	}
	return true
}
