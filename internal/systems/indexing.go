package systems

import "github.com/samdwyer/tetra/internal/ecs"

// MapIndexing rebuilds the map's derived buffers: nav from terrain plus every
// BlocksTile entity, and occupancy from every entity with a Position.
func MapIndexing(res *Resources) {
	m := res.Map
	m.RegenerateNav()
	m.ClearOccupancy()

	for _, e := range ecs.Entities(res.World, ecs.PositionComponent) {
		pos := ecs.MustGet(res.World, e, ecs.PositionComponent)
		if ecs.Has(res.World, e, ecs.BlocksTileTag) {
			m.SetBlocked(pos.X, pos.Y)
		}
		m.AddOccupant(pos.X, pos.Y, e)
	}
}
