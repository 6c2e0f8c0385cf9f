// Package vision computes fields of view, fog-of-war memory and A* paths over
// the map.
package vision

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/world"
)

// Engine holds the reusable FOV and path-search state for one map size.
type Engine struct {
	fov   *rl.FOV
	paths *paths.PathRange
	nav   *navigator
}

// NewEngine creates an engine for maps of the given dimensions.
func NewEngine(width, height int) *Engine {
	rg := gruid.NewRange(0, 0, width, height)
	return &Engine{
		fov:   rl.NewFOV(rg),
		paths: paths.NewPathRange(rg),
		nav:   &navigator{},
	}
}

// Viewshed returns the indices of the cells visible from (x, y) within
// sightRange, using symmetric shadow casting against the map's opaque cells.
// The result is clipped to a circle of radius sightRange and to the map.
func (en *Engine) Viewshed(m *world.Map, x, y, sightRange int) mapset.Set[int] {
	passable := func(p gruid.Point) bool {
		return m.InBounds(p.X, p.Y) && !m.IsOpaque(m.Index(p.X, p.Y))
	}

	visible := mapset.New[int]()
	if !m.InBounds(x, y) {
		return visible
	}
	visible.Put(m.Index(x, y))

	r2 := sightRange * sightRange
	for _, p := range en.fov.SSCVisionMap(gruid.Pt(x, y), sightRange, passable, true) {
		if !m.InBounds(p.X, p.Y) {
			continue
		}
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy > r2 {
			continue
		}
		visible.Put(m.Index(p.X, p.Y))
	}
	return visible
}

// Reveal adds every visible index to the revealed set. The revealed set never
// loses entries.
func Reveal(revealed, visible mapset.Set[int]) {
	visible.Each(func(idx int) {
		revealed.Put(idx)
	})
}

// Path returns the cheapest route from one cell to another, both included,
// moving through unblocked cells of the nav buffer. It returns nil when the
// target cannot be reached.
func (en *Engine) Path(m *world.Map, from, to ecs.Position) []ecs.Position {
	if !m.InBounds(from.X, from.Y) || !m.InBounds(to.X, to.Y) {
		return nil
	}
	en.nav.m = m
	defer func() { en.nav.m = nil }()

	route := en.paths.AstarPath(en.nav, gruid.Pt(from.X, from.Y), gruid.Pt(to.X, to.Y))
	if len(route) == 0 {
		return nil
	}
	out := make([]ecs.Position, len(route))
	for i, p := range route {
		out[i] = ecs.Position{X: p.X, Y: p.Y}
	}
	return out
}
