package systems

import (
	"github.com/samdwyer/tetra/internal/combat"
	"github.com/samdwyer/tetra/internal/ecs"
)

// Melee resolves every WantsToMelee intent. Damage is queued on the target's
// SufferDamage, not applied. All intents are removed afterwards.
//
// Attacker and target must both have CombatStats.
func Melee(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.WantsToMeleeComponent) {
		intent := *ecs.MustGet(w, e, ecs.WantsToMeleeComponent)

		result := combat.ResolveMelee(fighterOf(w, e), fighterOf(w, intent.Target))
		if result.Message != "" {
			res.Log.Add(result.Message)
		}
		if result.Damage > 0 {
			queueDamage(w, intent.Target, result.Damage)
		}

		ecs.Remove(w, e, ecs.WantsToMeleeComponent)
	}
}
