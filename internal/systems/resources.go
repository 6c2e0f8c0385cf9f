// Package systems implements the per-turn update passes of the simulation and
// the fixed-order pipeline that runs them.
package systems

import (
	"github.com/yohamta/donburi"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/gamelog"
	"github.com/samdwyer/tetra/internal/vision"
	"github.com/samdwyer/tetra/internal/world"
)

// Resources is the shared state every pass reads and writes.
type Resources struct {
	World  donburi.World
	Map    *world.Map
	Log    *gamelog.Log
	Vision *vision.Engine
	Player donburi.Entity

	// MonsterTurn gates the AI pass; monsters only act while it is set.
	MonsterTurn bool
}

// NewResources bundles a session's shared state.
func NewResources(w donburi.World, m *world.Map, log *gamelog.Log, player donburi.Entity) *Resources {
	return &Resources{
		World:  w,
		Map:    m,
		Log:    log,
		Vision: vision.NewEngine(m.Width(), m.Height()),
		Player: player,
	}
}

// IsPlayer reports whether e is the player entity.
func (r *Resources) IsPlayer(e donburi.Entity) bool {
	return e == r.Player
}

// fighter is a snapshot of an entity's combat data, usable as a
// combat.Combatant after the entity's components move.
type fighter struct {
	name  string
	stats ecs.CombatStats
}

func (f fighter) GetName() string { return f.name }
func (f fighter) GetHP() int      { return f.stats.HP }
func (f fighter) GetMaxHP() int   { return f.stats.MaxHP }
func (f fighter) GetPower() int   { return f.stats.Power }
func (f fighter) GetDefense() int { return f.stats.Defense }

// fighterOf builds a fighter for e. e must have CombatStats.
func fighterOf(w donburi.World, e donburi.Entity) fighter {
	return fighter{
		name:  ecs.NameOf(w, e, "Something"),
		stats: *ecs.MustGet(w, e, ecs.CombatStatsComponent),
	}
}

// queueDamage appends amount to e's SufferDamage accumulator.
func queueDamage(w donburi.World, e donburi.Entity, amount int) {
	if sd, ok := ecs.Get(w, e, ecs.SufferDamageComponent); ok {
		sd.Amounts = append(sd.Amounts, amount)
		return
	}
	ecs.Set(w, e, ecs.SufferDamageComponent, ecs.SufferDamage{Amounts: []int{amount}})
}
