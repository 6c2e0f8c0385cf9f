package systems

import (
	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/vision"
)

// Visibility recomputes every dirty viewshed and clears its flag. When the
// owner is the player the new visible cells are added to its fog memory.
// Clean viewsheds are left untouched.
func Visibility(res *Resources) {
	w := res.World
	for _, e := range ecs.Entities(w, ecs.PositionComponent, ecs.ViewshedComponent) {
		vs := ecs.MustGet(w, e, ecs.ViewshedComponent)
		if !vs.Dirty {
			continue
		}

		pos := ecs.MustGet(w, e, ecs.PositionComponent)
		vs.Visible = res.Vision.Viewshed(res.Map, pos.X, pos.Y, vs.Range)
		vs.Dirty = false

		if p, ok := ecs.Get(w, e, ecs.PlayerComponent); ok {
			vision.Reveal(p.Revealed, vs.Visible)
		}
	}
}
