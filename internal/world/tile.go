// Package world provides the tile grid and dungeon generation.
package world

// Tile is a single map cell. Explored starts false and is never reset
// for the lifetime of a map.
type Tile struct {
	Blocked     bool // cannot be walked onto
	BlocksSight bool // opaque to visibility
	Explored    bool // has ever been seen
}

// MakeWall returns an impassable, opaque wall tile.
func MakeWall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{}
}
