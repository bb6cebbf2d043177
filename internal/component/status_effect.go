// internal/component/status_effect.go
package component

// Shield поглощает ровно один удар. Снимается сам, когда тик сессии достигает
// ExpiresAtTick.
type Shield struct {
	Active        bool
	ExpiresAtTick uint64
}

// Grant включает щит до тика now+duration. Более длинный оставшийся щит сохраняется.
func (s *Shield) Grant(now uint64, duration int) {
	if duration <= 0 {
		return
	}
	until := now + uint64(duration)
	if s.Active && s.ExpiresAtTick > until {
		return
	}
	s.Active = true
	s.ExpiresAtTick = until
}

// Consume тратит щит на удар. Если щита нет, возвращает false.
func (s *Shield) Consume() bool {
	if !s.Active {
		return false
	}
	s.Active = false
	s.ExpiresAtTick = 0
	return true
}

// Expire снимает щит, если время вышло. Возвращает true, когда щит истёк.
func (s *Shield) Expire(now uint64) bool {
	if s.Active && now >= s.ExpiresAtTick {
		s.Active = false
		s.ExpiresAtTick = 0
		return true
	}
	return false
}
