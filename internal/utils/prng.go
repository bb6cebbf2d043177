// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-recovery-arcade/internal/defs"
)

// PRNGService оборачивает генератор с сидом, чтобы забег воспроизводился по сиду.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает сид, с которым создан сервис.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает целое в [0, n). При n <= 0 — 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает число в [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// ChooseWeighted выбирает запись с вероятностью, пропорциональной весу.
// Пустая таблица даёт ""; при нулевой сумме весов берётся первая запись.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) defs.Variant {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].Variant
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Variant
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Variant
}
