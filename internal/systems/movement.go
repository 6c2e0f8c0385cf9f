package systems

import (
	"github.com/yohamta/donburi"

	"github.com/samdwyer/tetra/internal/ecs"
)

// MoveOutcome is the result of a bump move.
type MoveOutcome int

const (
	// MoveNone means the destination was the mover's own cell.
	MoveNone MoveOutcome = iota
	// MoveBlocked means the destination is a wall or a blocking entity.
	MoveBlocked
	// MoveAttack means the move became a melee intent.
	MoveAttack
	// MoveMoved means the mover changed cell.
	MoveMoved
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveNone:
		return "none"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	case MoveMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// TryMove moves e by (dx, dy), clamped to the map. If the destination holds
// another entity with combat stats the move becomes a WantsToMelee intent
// against it and e stays put. Otherwise e moves when the cell is unblocked and
// its viewshed, if any, is marked dirty.
//
// Occupancy and blocking are read from the map as last indexed.
func TryMove(res *Resources, e donburi.Entity, dx, dy int) MoveOutcome {
	w := res.World
	pos := ecs.MustGet(w, e, ecs.PositionComponent)

	x, y := res.Map.Clamp(pos.X+dx, pos.Y+dy)
	if x == pos.X && y == pos.Y {
		return MoveNone
	}

	for _, other := range res.Map.OccupantsAt(x, y) {
		if other == e || !ecs.Has(w, other, ecs.CombatStatsComponent) {
			continue
		}
		ecs.Set(w, e, ecs.WantsToMeleeComponent, ecs.WantsToMelee{Target: other})
		return MoveAttack
	}

	if res.Map.IsBlocked(x, y) {
		return MoveBlocked
	}

	pos.X, pos.Y = x, y
	if vs, ok := ecs.Get(w, e, ecs.ViewshedComponent); ok {
		vs.Dirty = true
	}
	return MoveMoved
}
