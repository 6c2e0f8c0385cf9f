package world

// Room is a rectangle of the map described by its bounding corners.
// Carving converts the cells x1 < x <= x2, y1 < y <= y2 to floor; the
// top-left row and column stay wall.
type Room struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRoom creates a room at (x, y) spanning w by h cells.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the horizontal extent of the room.
func (r Room) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the room.
func (r Room) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the point lies in the carved interior of the room.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// Intersects returns true if the bounds of the two rooms overlap or touch.
// Borders are inclusive, so accepted rooms always keep a wall between them.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
