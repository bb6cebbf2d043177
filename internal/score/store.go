// internal/score/store.go
package score

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable оборачивает любые сбои транспорта или бэкенда.
var ErrStoreUnavailable = errors.New("score store unavailable")

// Record — одна строка рекордов с ключом (UserID, GameType).
type Record struct {
	UserID   string    `json:"user_id"`
	GameType string    `json:"game_type"`
	Score    int       `json:"score"`
	Level    int       `json:"level,omitempty"`
	Coins    int       `json:"coins,omitempty"`
	Distance float64   `json:"distance,omitempty"`
	At       time.Time `json:"updated_at"`
}

// Key определяет строку, в которую пишется запись.
type Key struct {
	UserID   string
	GameType string
}

func (r Record) Key() Key { return Key{UserID: r.UserID, GameType: r.GameType} }

// Store is the high-score backend. Upsert inserts or replaces the row for rec.Key().
type Store interface {
	Upsert(ctx context.Context, rec Record) error
}

// BestReader is implemented by stores that can report the stored row, which the
// best-only save policy needs.
type BestReader interface {
	Best(ctx context.Context, key Key) (Record, bool, error)
}

// OpenStore выбирает бэкенд: REST API, если задан url, иначе JSON-файл, если задан path,
// иначе память процесса.
func OpenStore(url, key, path string) Store {
	switch {
	case url != "":
		return NewRESTStore(url, key, nil)
	case path != "":
		return NewFileStore(path)
	default:
		return NewMemoryStore()
	}
}
