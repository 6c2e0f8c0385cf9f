// Package world provides the tile map, room carving and map generation.
package world

// TileKind is the terrain of a single map cell.
type TileKind uint8

const (
	// TileWall blocks movement and sight.
	TileWall TileKind = iota
	// TileFloor is open ground.
	TileFloor
)

// IsPassable returns true if the tile can be walked on.
func (t TileKind) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t TileKind) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	default:
		return '#'
	}
}

// String returns a human-readable tile name.
func (t TileKind) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
