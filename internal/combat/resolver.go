// Package combat resolves melee exchanges and item effects between combatants.
package combat

import "github.com/leonelquinteros/gotext"

// Combatant is the interface for any entity that can take part in a fight.
// Both the player and monsters are adapted to it by the systems package.
type Combatant interface {
	GetName() string
	GetHP() int
	GetMaxHP() int
	GetPower() int
	GetDefense() int
}

// Result contains the outcome of resolving one attack or item effect. Nothing
// is applied to the combatants; the caller queues damage and adjusts hp.
type Result struct {
	Success bool
	Damage  int
	Healing int
	Message string
}

// MeleeDamage returns the damage dealt by an attacker with the given power
// against a target with the given defense. It is never negative.
func MeleeDamage(power, defense int) int {
	return max(0, power-defense)
}

// ResolveMelee computes one melee attack. A target already at hp < 1 is left
// alone and an unsuccessful, message-less result is returned.
func ResolveMelee(attacker, target Combatant) Result {
	if target.GetHP() <= 0 {
		return Result{}
	}

	damage := MeleeDamage(attacker.GetPower(), target.GetDefense())
	if damage == 0 {
		return Result{
			Message: gotext.Get("%s is unable to hurt %s", attacker.GetName(), target.GetName()),
		}
	}
	return Result{
		Success: true,
		Damage:  damage,
		Message: gotext.Get("%s hits %s, for %d hp.", attacker.GetName(), target.GetName(), damage),
	}
}

// ResolveHealing computes the effect of a healing item. Healing never lifts hp
// above max hp; Healing reports the amount actually restored.
func ResolveHealing(user Combatant, itemName string, amount int) Result {
	healed := min(user.GetMaxHP(), user.GetHP()+amount) - user.GetHP()
	healed = max(0, healed)
	return Result{
		Success: true,
		Healing: healed,
		Message: gotext.Get("You use the %s, healing %d hp.", itemName, healed),
	}
}

// ResolveItemDamage computes the damage an item deals to one target. Item
// damage ignores defense.
func ResolveItemDamage(itemName string, target Combatant, damage int) Result {
	if damage <= 0 {
		return Result{}
	}
	return Result{
		Success: true,
		Damage:  damage,
		Message: gotext.Get("You use %s on %s, inflicting %d hp.", itemName, target.GetName(), damage),
	}
}

// ApplyDamage returns hp after subtracting every queued amount. hp is not
// clamped and may go negative.
func ApplyDamage(hp int, amounts []int) int {
	for _, a := range amounts {
		hp -= a
	}
	return hp
}
