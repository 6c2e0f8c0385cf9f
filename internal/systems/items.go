package systems

import (
	"fmt"

	"github.com/samdwyer/tetra/internal/combat"
	"github.com/samdwyer/tetra/internal/ecs"
)

// ItemUse resolves every WantsToUseItem intent.
//
// A healing item restores the user's hp up to its maximum. A damaging item
// queues damage on every combatant standing on the intent's target cells,
// using the occupancy of the last indexing pass. A consumable is deleted once
// it has had an effect. Messages are only logged for the player.
func ItemUse(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.WantsToUseItemComponent) {
		intent := *ecs.MustGet(w, e, ecs.WantsToUseItemComponent)
		if !w.Valid(intent.Item) {
			panic(fmt.Sprintf("systems: entity %v uses missing item %v", e, intent.Item))
		}
		itemName := ecs.NameOf(w, intent.Item, "item")
		used := false

		if heal, ok := ecs.Get(w, intent.Item, ecs.ProvidesHealingComponent); ok {
			if stats, ok := ecs.Get(w, e, ecs.CombatStatsComponent); ok {
				result := combat.ResolveHealing(fighterOf(w, e), itemName, heal.Amount)
				stats.HP += result.Healing
				if res.IsPlayer(e) {
					res.Log.Add(result.Message)
				}
				used = true
			}
		}

		if dmg, ok := ecs.Get(w, intent.Item, ecs.InflictsDamageComponent); ok && len(intent.Targets) > 0 {
			amount := dmg.Damage
			for _, cell := range intent.Targets {
				if !res.Map.InBounds(cell.X, cell.Y) {
					continue
				}
				for _, victim := range res.Map.OccupantsAt(cell.X, cell.Y) {
					if !ecs.Has(w, victim, ecs.CombatStatsComponent) {
						continue
					}
					result := combat.ResolveItemDamage(itemName, fighterOf(w, victim), amount)
					if !result.Success {
						continue
					}
					queueDamage(w, victim, result.Damage)
					if res.IsPlayer(e) {
						res.Log.Add(result.Message)
					}
				}
			}
			used = true
		}

		if used && ecs.Has(w, intent.Item, ecs.ConsumableTag) {
			w.Remove(intent.Item)
		}
		ecs.Remove(w, e, ecs.WantsToUseItemComponent)
	}
}

// ItemPickup moves every item named by a WantsToPickupItem intent off the map
// and into the collector's backpack.
func ItemPickup(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.WantsToPickupItemComponent) {
		intent := *ecs.MustGet(w, e, ecs.WantsToPickupItemComponent)

		ecs.Remove(w, intent.Item, ecs.PositionComponent)
		ecs.Set(w, intent.Item, ecs.InBackpackComponent, ecs.InBackpack{Owner: intent.CollectedBy})
		if res.IsPlayer(intent.CollectedBy) {
			res.Log.Say("You pick up the %s.", ecs.NameOf(w, intent.Item, "item"))
		}

		ecs.Remove(w, e, ecs.WantsToPickupItemComponent)
	}
}

// ItemDrop puts every item named by a WantsToDropItem intent back on the map
// at the dropper's position, or the origin when the dropper has none.
func ItemDrop(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.WantsToDropItemComponent) {
		intent := *ecs.MustGet(w, e, ecs.WantsToDropItemComponent)

		var at ecs.Position
		if pos, ok := ecs.Get(w, e, ecs.PositionComponent); ok {
			at = *pos
		}
		ecs.Remove(w, intent.Item, ecs.InBackpackComponent)
		ecs.Set(w, intent.Item, ecs.PositionComponent, at)
		if res.IsPlayer(e) {
			res.Log.Say("You drop the %s.", ecs.NameOf(w, intent.Item, "item"))
		}

		ecs.Remove(w, e, ecs.WantsToDropItemComponent)
	}
}
