// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
)

// ErrUnknownGame возвращает Lookup для ID, которого нет в библиотеке.
var ErrUnknownGame = errors.New("unknown game")

// Library хранит определения игр по ID.
type Library map[string]GameDefinition

// NewLibrary возвращает библиотеку со встроенными играми.
func NewLibrary() Library {
	lib := Library{}
	for _, def := range []GameDefinition{
		zombieDefinition(),
		runnerDefinition(),
		racerDefinition(),
		strikeDefinition(),
		bubbleDefinition(),
	} {
		lib[def.ID] = def
	}
	return lib
}

// Lookup возвращает собственную копию определения с ID.
func (l Library) Lookup(id string) (GameDefinition, error) {
	def, ok := l[id]
	if !ok {
		return GameDefinition{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return def.Clone(), nil
}

// IDs возвращает отсортированные ID игр.
func (l Library) IDs() []string {
	return slices.Sorted(maps.Keys(l))
}

// Load читает JSON-массив определений и заменяет записи с совпадающими ID.
func (l Library) Load(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read game definitions file: %w", err)
	}

	var loaded []GameDefinition
	if err := json.Unmarshal(file, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal game definitions: %w", err)
	}

	for _, def := range loaded {
		if def.Version != DefinitionVersion {
			return fmt.Errorf("definition %q: unsupported version %d, want %d", def.ID, def.Version, DefinitionVersion)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("definition %q: %w", def.ID, err)
		}
	}
	for _, def := range loaded {
		l[def.ID] = def
	}
	return nil
}

// Save writes every definition to path as an indented JSON array, sorted by ID.
func (l Library) Save(path string) error {
	out := make([]GameDefinition, 0, len(l))
	for _, id := range l.IDs() {
		out = append(out, l[id])
	}
	blob, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game definitions: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write game definitions: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename game definitions: %w", err)
	}
	return nil
}

// Validate проверяет то, на что опирается движок.
func (d GameDefinition) Validate() error {
	switch {
	case d.ID == "":
		return errors.New("empty id")
	case d.Arena.Width <= 0 || d.Arena.Height <= 0:
		return fmt.Errorf("arena must be positive, got %.0fx%.0f", d.Arena.Width, d.Arena.Height)
	case d.Player.MaxHealth <= 0:
		return errors.New("player max health must be positive")
	case d.Player.MaxAmmo < 0 || d.Player.StartAmmo < 0 || d.Player.StartAmmo > d.Player.MaxAmmo:
		return fmt.Errorf("start ammo %d outside [0, %d]", d.Player.StartAmmo, d.Player.MaxAmmo)
	case d.Waves.QuotaBase < 0 || d.Waves.QuotaGrowth < 0:
		return errors.New("wave quota must not shrink")
	case d.Pickups.DropChance < 0 || d.Pickups.DropChance > 1:
		return fmt.Errorf("drop chance %.2f outside [0, 1]", d.Pickups.DropChance)
	case d.Spawn.FastChance < 0 || d.Spawn.FastChance > 1:
		return fmt.Errorf("fast chance %.2f outside [0, 1]", d.Spawn.FastChance)
	}
	switch d.Weapon.Mode {
	case WeaponProjectile, WeaponMelee:
	default:
		return fmt.Errorf("unknown weapon mode %q", d.Weapon.Mode)
	}
	for _, v := range []Variant{VariantNormal, VariantFast, VariantBoss} {
		e, ok := d.Enemies[v]
		if !ok {
			return fmt.Errorf("missing enemy variant %q", v)
		}
		if e.Health <= 0 || e.Size <= 0 {
			return fmt.Errorf("enemy variant %q needs positive health and size", v)
		}
		if e.Kind != KindEnemy && e.Kind != KindObstacle {
			return fmt.Errorf("enemy variant %q has kind %q", v, e.Kind)
		}
	}
	for _, entry := range d.Pickups.Table {
		switch entry.Variant {
		case VariantAmmo, VariantHealth, VariantCoin, VariantShield:
		default:
			return fmt.Errorf("unknown pickup variant %q", entry.Variant)
		}
		if entry.Weight < 0 {
			return fmt.Errorf("pickup %q has negative weight", entry.Variant)
		}
	}
	return nil
}

// Clone делает глубокую копию: сессии не делят карту врагов и таблицу добычи.
func (d GameDefinition) Clone() GameDefinition {
	c := d
	c.Enemies = maps.Clone(d.Enemies)
	c.Pickups.Table = slices.Clone(d.Pickups.Table)
	return c
}
