package world

import "math"

// Step costs used by the pathing adapter.
const (
	CardinalCost = 1.0
	DiagonalCost = 1.45
)

// Exit is a reachable neighbour of a cell and the cost to step onto it.
type Exit struct {
	Index int
	Cost  float64
}

// IsOpaque reports whether the cell blocks sight. Only walls are opaque;
// entities never block vision.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles.Data[idx].IsOpaque()
}

// Exits lists the unblocked neighbours of idx. A diagonal is only offered when
// both cardinal cells it passes between are open, so paths never cut corners.
func (m *Map) Exits(idx int) []Exit {
	x, y := m.XY(idx)
	exits := make([]Exit, 0, 8)

	open := func(x, y int) bool {
		return m.InBounds(x, y) && !m.IsBlocked(x, y)
	}

	west, east := open(x-1, y), open(x+1, y)
	north, south := open(x, y-1), open(x, y+1)

	if west {
		exits = append(exits, Exit{m.Index(x-1, y), CardinalCost})
	}
	if east {
		exits = append(exits, Exit{m.Index(x+1, y), CardinalCost})
	}
	if north {
		exits = append(exits, Exit{m.Index(x, y-1), CardinalCost})
	}
	if south {
		exits = append(exits, Exit{m.Index(x, y+1), CardinalCost})
	}

	if north && west && open(x-1, y-1) {
		exits = append(exits, Exit{m.Index(x-1, y-1), DiagonalCost})
	}
	if north && east && open(x+1, y-1) {
		exits = append(exits, Exit{m.Index(x+1, y-1), DiagonalCost})
	}
	if south && west && open(x-1, y+1) {
		exits = append(exits, Exit{m.Index(x-1, y+1), DiagonalCost})
	}
	if south && east && open(x+1, y+1) {
		exits = append(exits, Exit{m.Index(x+1, y+1), DiagonalCost})
	}

	return exits
}

// PathingDistance is the Euclidean distance between two cells, used as the
// search heuristic.
func (m *Map) PathingDistance(idx1, idx2 int) float64 {
	x1, y1 := m.XY(idx1)
	x2, y2 := m.XY(idx2)
	return math.Hypot(float64(x2-x1), float64(y2-y1))
}
