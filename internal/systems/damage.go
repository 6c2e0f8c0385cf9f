package systems

import (
	"github.com/samdwyer/tetra/internal/combat"
	"github.com/samdwyer/tetra/internal/ecs"
)

// Damage subtracts each entity's queued damage from its hp and clears the
// accumulator. hp is not clamped and nothing is deleted here.
func Damage(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.SufferDamageComponent) {
		sd := ecs.MustGet(w, e, ecs.SufferDamageComponent)
		if stats, ok := ecs.Get(w, e, ecs.CombatStatsComponent); ok {
			stats.HP = combat.ApplyDamage(stats.HP, sd.Amounts)
		}
		ecs.Remove(w, e, ecs.SufferDamageComponent)
	}
}
