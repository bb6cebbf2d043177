// internal/score/memory.go
package score

import (
	"context"
	"sync"
)

// MemoryStore хранит строки и полную историю записей в памяти.
type MemoryStore struct {
	mu      sync.Mutex
	rows    map[Key]Record
	history []Record

	// Err, если задан, возвращается каждым Upsert.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[Key]Record)}
}

func (s *MemoryStore) Upsert(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.rows[rec.Key()] = rec
	s.history = append(s.history, rec)
	return nil
}

func (s *MemoryStore) Best(_ context.Context, key Key) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.rows[key]
	return rec, ok, nil
}

// History возвращает все записи для key в порядке поступления.
func (s *MemoryStore) History(key Key) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, r := range s.history {
		if r.Key() == key {
			out = append(out, r)
		}
	}
	return out
}

// Calls — число успешных Upsert.
func (s *MemoryStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
