package systems

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/tetra/internal/ecs"
)

// MonsterAI moves every monster that can see the player one step along the
// shortest path towards it. Stepping onto the player becomes a melee intent.
// It does nothing outside the monster turn.
//
// The nav buffer is not rewritten while monsters move, so cells entered during
// this pass are claimed locally and no two monsters step onto the same cell.
func MonsterAI(res *Resources) {
	if !res.MonsterTurn {
		return
	}
	w := res.World

	target, ok := ecs.Get(w, res.Player, ecs.PositionComponent)
	if !ok {
		return
	}
	playerPos := *target
	playerIdx := res.Map.Index(playerPos.X, playerPos.Y)

	claimed := mapset.New[int]()
	for _, e := range ecs.Entities(w, ecs.MonsterTag, ecs.PositionComponent, ecs.ViewshedComponent) {
		vs := ecs.MustGet(w, e, ecs.ViewshedComponent)
		if !vs.Visible.Has(playerIdx) {
			continue
		}

		pos := *ecs.MustGet(w, e, ecs.PositionComponent)
		path := res.Vision.Path(res.Map, pos, playerPos)
		if len(path) < 2 {
			continue
		}

		next := path[1]
		nextIdx := res.Map.Index(next.X, next.Y)
		if claimed.Has(nextIdx) {
			continue
		}
		if TryMove(res, e, next.X-pos.X, next.Y-pos.Y) == MoveMoved {
			claimed.Put(nextIdx)
		}
	}
}
