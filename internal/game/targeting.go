package game

import (
	"cmp"
	"slices"

	"github.com/yohamta/donburi"

	"github.com/samdwyer/tetra/internal/ecs"
)

// targetsFor picks the cells an item affects when the player uses it. Items
// without Ranged are used on the player and need no cells. A ranged item aims
// at the closest visible monster within its range; an area item then widens
// that point to every cell within its radius that the blast can see. ok is
// false when a ranged item has nothing to aim at.
func (g *Game) targetsFor(item donburi.Entity) (targets []ecs.Position, ok bool) {
	w := g.res.World
	ranged, isRanged := ecs.Get(w, item, ecs.RangedComponent)
	if !isRanged {
		return nil, true
	}

	target, found := g.closestVisibleMonster(float64(ranged.Range))
	if !found {
		return nil, false
	}

	aoe, isArea := ecs.Get(w, item, ecs.AreaOfEffectComponent)
	if !isArea || aoe.Radius <= 0 {
		return []ecs.Position{target}, true
	}

	m := g.res.Map
	blast := g.res.Vision.Viewshed(m, target.X, target.Y, aoe.Radius)
	cells := make([]int, 0, blast.Size())
	blast.Each(func(idx int) { cells = append(cells, idx) })
	slices.Sort(cells)

	targets = make([]ecs.Position, len(cells))
	for i, idx := range cells {
		x, y := m.XY(idx)
		targets[i] = ecs.Position{X: x, Y: y}
	}
	return targets, true
}

// closestVisibleMonster returns the position of the nearest monster the player
// can see within maxDist, breaking ties by entity id.
func (g *Game) closestVisibleMonster(maxDist float64) (ecs.Position, bool) {
	w := g.res.World
	m := g.res.Map

	vs, ok := ecs.Get(w, g.res.Player, ecs.ViewshedComponent)
	if !ok {
		return ecs.Position{}, false
	}
	from := *ecs.MustGet(w, g.res.Player, ecs.PositionComponent)
	fromIdx := m.Index(from.X, from.Y)

	type candidate struct {
		pos  ecs.Position
		dist float64
	}
	var candidates []candidate
	for _, e := range ecs.Entities(w, ecs.MonsterTag, ecs.PositionComponent, ecs.CombatStatsComponent) {
		pos := *ecs.MustGet(w, e, ecs.PositionComponent)
		idx := m.Index(pos.X, pos.Y)
		if !vs.Visible.Has(idx) {
			continue
		}
		if d := m.PathingDistance(fromIdx, idx); d <= maxDist {
			candidates = append(candidates, candidate{pos: pos, dist: d})
		}
	}
	if len(candidates) == 0 {
		return ecs.Position{}, false
	}

	// Entities are in id order and the sort is stable, so ties keep that order.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})
	return candidates[0].pos, true
}
