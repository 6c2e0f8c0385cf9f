package world

import (
	"github.com/yohamta/donburi"

	"github.com/samdwyer/tetra/internal/grid"
)

// Default map dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Map is the shared spatial resource of the simulation.
//
// Tiles never change once generation is done. Nav is derived from Tiles plus
// blocking entities and Occupants lists the entities standing on each cell;
// both are rebuilt once per turn by the map indexing pass.
type Map struct {
	Tiles     *grid.Buffer[TileKind]
	Nav       *grid.Buffer[bool]
	Occupants *grid.Buffer[[]donburi.Entity]
	Rooms     []Room
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	m := &Map{
		Tiles:     grid.New(width, height, TileWall),
		Nav:       grid.New(width, height, true),
		Occupants: grid.New[[]donburi.Entity](width, height, nil),
		Rooms:     make([]Room, 0),
	}
	m.RegenerateNav()
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.Tiles.Width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.Tiles.Height
}

// Index returns the linear cell index of (x, y).
func (m *Map) Index(x, y int) int {
	return m.Tiles.Index(x, y)
}

// XY returns the coordinates of a linear cell index.
func (m *Map) XY(idx int) (int, int) {
	return m.Tiles.XY(idx)
}

// InBounds returns true if (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return m.Tiles.InBounds(x, y)
}

// Tile returns the terrain at (x, y).
func (m *Map) Tile(x, y int) TileKind {
	return m.Tiles.Get(x, y)
}

// Clamp bounds a point to the map dimensions.
func (m *Map) Clamp(x, y int) (int, int) {
	return min(m.Width()-1, max(0, x)), min(m.Height()-1, max(0, y))
}

// PlaceRoom carves r into the map and registers it. It returns nil on success.
// When r collides with an existing room the map is left untouched and the
// first colliding room, in placement order, is returned.
func (m *Map) PlaceRoom(r Room) *Room {
	for i := range m.Rooms {
		if r.Intersects(m.Rooms[i]) {
			collided := m.Rooms[i]
			return &collided
		}
	}

	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			m.Tiles.Set(x, y, TileFloor)
			m.Nav.Set(x, y, false)
		}
	}
	m.Rooms = append(m.Rooms, r)
	return nil
}

// CarveHorizontal converts the row y between x1 and x2 (inclusive) to floor.
// Cells outside the map are skipped.
func (m *Map) CarveHorizontal(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if m.InBounds(x, y) {
			m.Tiles.Set(x, y, TileFloor)
		}
	}
}

// CarveVertical converts the column x between y1 and y2 (inclusive) to floor.
// Cells outside the map are skipped.
func (m *Map) CarveVertical(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if m.InBounds(x, y) {
			m.Tiles.Set(x, y, TileFloor)
		}
	}
}

// RegenerateNav recomputes the nav buffer from terrain alone.
func (m *Map) RegenerateNav() {
	for i, tile := range m.Tiles.Data {
		m.Nav.Data[i] = tile == TileWall
	}
}

// SetBlocked marks (x, y) as blocked by an entity.
func (m *Map) SetBlocked(x, y int) {
	m.Nav.Set(x, y, true)
}

// IsBlocked returns true if (x, y) is a wall or holds a blocking entity.
func (m *Map) IsBlocked(x, y int) bool {
	return m.Nav.Get(x, y)
}

// ClearOccupancy empties every occupancy list, keeping the backing arrays.
func (m *Map) ClearOccupancy() {
	for i := range m.Occupants.Data {
		m.Occupants.Data[i] = m.Occupants.Data[i][:0]
	}
}

// AddOccupant records that e stands on (x, y).
func (m *Map) AddOccupant(x, y int, e donburi.Entity) {
	m.Occupants.Mutate(x, y, func(list *[]donburi.Entity) {
		*list = append(*list, e)
	})
}

// OccupantsAt returns the entities standing on (x, y).
func (m *Map) OccupantsAt(x, y int) []donburi.Entity {
	return m.Occupants.Get(x, y)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// FloorCount returns the number of floor cells.
func (m *Map) FloorCount() int {
	n := 0
	for _, tile := range m.Tiles.Data {
		if tile == TileFloor {
			n++
		}
	}
	return n
}
