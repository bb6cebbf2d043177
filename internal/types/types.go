package types

// EntityID — идентификатор сущности в пределах сессии. Начинается с 1, не переиспользуется.
type EntityID uint64
