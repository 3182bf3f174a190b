package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning
// utilities. The shipped table carries an 80/20 weight split between the
// common and rare kinds.
type MonsterRegistry struct {
	player      MonsterDef
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded definitions.
func NewMonsterRegistry(file MonstersFile) *MonsterRegistry {
	totalWeight := 0
	for _, m := range file.Monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		player:      file.Player,
		monsters:    file.Monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded
// monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	file, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(file.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(file), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// PlayerDef returns the fixed player definition.
func (r *MonsterRegistry) PlayerDef() *MonsterDef {
	return &r.player
}

// SpawnRandom selects a random monster definition using weighted
// probability. A single rng draw keeps generation reproducible.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
