package vision

import (
	"math"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/tetra/internal/world"
)

// costScale converts the map's fractional step costs into the integer costs
// the A* search works with.
const costScale = 100

// navigator adapts world.Map's exits to gruid's paths.Astar interface.
type navigator struct {
	m   *world.Map
	nbs []gruid.Point
}

// Neighbors returns the cells reachable in one step from p.
func (n *navigator) Neighbors(p gruid.Point) []gruid.Point {
	n.nbs = n.nbs[:0]
	for _, exit := range n.m.Exits(n.m.Index(p.X, p.Y)) {
		x, y := n.m.XY(exit.Index)
		n.nbs = append(n.nbs, gruid.Pt(x, y))
	}
	return n.nbs
}

// Cost returns the cost of stepping between two adjacent cells.
func (n *navigator) Cost(p, q gruid.Point) int {
	if p.X != q.X && p.Y != q.Y {
		return int(math.Round(world.DiagonalCost * costScale))
	}
	return int(math.Round(world.CardinalCost * costScale))
}

// Estimation is the Euclidean distance heuristic. It never exceeds the true
// cost since a diagonal step costs more than its length.
func (n *navigator) Estimation(p, q gruid.Point) int {
	return int(n.m.PathingDistance(n.m.Index(p.X, p.Y), n.m.Index(q.X, q.Y)) * costScale)
}
