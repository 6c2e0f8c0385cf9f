// Package ecs defines the component data of the simulation and registers it
// with the donburi entity store.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"
)

// Position is an entity's cell on the map.
type Position struct {
	X, Y int
}

// Name is the display name used in messages and tooltips.
type Name struct {
	Name string
}

// Renderable is what the renderer draws for an entity.
type Renderable struct {
	Glyph rune
	Color string // Hex color code (e.g., "#FF0000")
	Order int    // Lower orders draw on top
}

// Viewshed is the set of cells an entity currently sees.
// Dirty marks that the set must be recomputed before it is read again.
type Viewshed struct {
	Visible mapset.Set[int]
	Range   int
	Dirty   bool
}

// NewViewshed returns an empty, dirty viewshed.
func NewViewshed(sightRange int) Viewshed {
	return Viewshed{
		Visible: mapset.New[int](),
		Range:   sightRange,
		Dirty:   true,
	}
}

// Player marks the player and holds its fog-of-war memory. Revealed only grows.
type Player struct {
	Revealed mapset.Set[int]
}

// CombatStats are the fighting attributes of a creature.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// SufferDamage accumulates the damage an entity takes during one pipeline run.
type SufferDamage struct {
	Amounts []int
}

// Total returns the sum of the queued amounts.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}

// WantsToMelee is the intent to attack Target this turn.
type WantsToMelee struct {
	Target donburi.Entity
}

// WantsToPickupItem is the intent to move Item into CollectedBy's backpack.
type WantsToPickupItem struct {
	CollectedBy donburi.Entity
	Item        donburi.Entity
}

// WantsToUseItem is the intent to use Item. Targets lists every cell the item
// affects; it is empty for items used on oneself.
type WantsToUseItem struct {
	Item    donburi.Entity
	Targets []Position
}

// WantsToDropItem is the intent to put Item back on the floor.
type WantsToDropItem struct {
	Item donburi.Entity
}

// ProvidesHealing restores hit points when the item is used.
type ProvidesHealing struct {
	Amount int
}

// InflictsDamage damages whatever stands on the target cells.
type InflictsDamage struct {
	Damage int
}

// AreaOfEffect widens a damaging item's target to a blast radius.
type AreaOfEffect struct {
	Radius int
}

// Ranged lets an item reach targets up to Range cells away.
type Ranged struct {
	Range int
}

// InBackpack records who carries an item. Carried items have no Position.
type InBackpack struct {
	Owner donburi.Entity
}

var (
	PositionComponent     = donburi.NewComponentType[Position]()
	NameComponent         = donburi.NewComponentType[Name]()
	RenderableComponent   = donburi.NewComponentType[Renderable]()
	ViewshedComponent     = donburi.NewComponentType[Viewshed]()
	PlayerComponent       = donburi.NewComponentType[Player]()
	CombatStatsComponent  = donburi.NewComponentType[CombatStats]()
	SufferDamageComponent = donburi.NewComponentType[SufferDamage]()

	// --- Intent Components ---
	WantsToMeleeComponent      = donburi.NewComponentType[WantsToMelee]()
	WantsToPickupItemComponent = donburi.NewComponentType[WantsToPickupItem]()
	WantsToUseItemComponent    = donburi.NewComponentType[WantsToUseItem]()
	WantsToDropItemComponent   = donburi.NewComponentType[WantsToDropItem]()

	// --- Item Components ---
	ProvidesHealingComponent = donburi.NewComponentType[ProvidesHealing]()
	InflictsDamageComponent  = donburi.NewComponentType[InflictsDamage]()
	AreaOfEffectComponent    = donburi.NewComponentType[AreaOfEffect]()
	RangedComponent          = donburi.NewComponentType[Ranged]()
	InBackpackComponent      = donburi.NewComponentType[InBackpack]()

	// --- Tags ---
	MonsterTag    = donburi.NewComponentType[struct{}]()
	BlocksTileTag = donburi.NewComponentType[struct{}]()
	ItemTag       = donburi.NewComponentType[struct{}]()
	ConsumableTag = donburi.NewComponentType[struct{}]()
)
