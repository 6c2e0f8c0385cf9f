package gamedata

import (
	"errors"

	"github.com/samdwyer/tetra/internal/random"
)

// Weighted is implemented by definitions a Registry can hold.
type Weighted interface {
	Key() string
	Weight() int
}

// Registry holds loaded definitions and provides weighted spawning.
type Registry[T Weighted] struct {
	defs        []T
	totalWeight int
}

// NewRegistry creates a registry from loaded definitions, keeping their order.
func NewRegistry[T Weighted](defs []T) *Registry[T] {
	totalWeight := 0
	for _, d := range defs {
		totalWeight += d.Weight()
	}
	return &Registry[T]{
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// MonsterRegistry is a registry of monster kinds.
type MonsterRegistry = Registry[MonsterDef]

// ItemRegistry is a registry of item kinds.
type ItemRegistry = Registry[ItemDef]

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a definition using weighted probability. The roll is
// rng.Between(0, totalWeight) and maps onto the definitions in file order.
func (r *Registry[T]) SpawnRandom(rng random.Rng) *T {
	if r.totalWeight <= 0 || len(r.defs) == 0 {
		return nil
	}

	roll := rng.Between(0, r.totalWeight)

	cumulative := 0
	for i := range r.defs {
		cumulative += r.defs[i].Weight()
		if roll < cumulative {
			return &r.defs[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.defs[0]
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	for i := range r.defs {
		if r.defs[i].Key() == id {
			return &r.defs[i]
		}
	}
	return nil
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.defs
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.defs)
}
