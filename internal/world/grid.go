package world

import "fmt"

// Grid is a fixed-size rectangular tile lattice. Tiles live in a single
// flat buffer indexed y*Width+x so a row scan stays in one region of
// memory; all index arithmetic is confined to the accessors below.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid of the given dimensions with every tile a wall.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: non-positive grid dimensions %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	wall := MakeWall()
	for i := range tiles {
		tiles[i] = wall
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Out-of-range coordinates are a
// programmer error and panic rather than wrap around.
func (g *Grid) At(x, y int) Tile {
	g.check(x, y)
	return g.tiles[y*g.Width+x]
}

// Set replaces the tile at (x, y). Panics on out-of-range coordinates.
func (g *Grid) Set(x, y int, t Tile) {
	g.check(x, y)
	g.tiles[y*g.Width+x] = t
}

// MarkExplored sets the explored flag at (x, y). The flag is monotonic:
// there is no operation that clears it.
func (g *Grid) MarkExplored(x, y int) {
	g.check(x, y)
	g.tiles[y*g.Width+x].Explored = true
}

// IsBlocked reports whether (x, y) cannot be walked onto. Off-grid
// positions count as blocked so edge probes stay total.
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[y*g.Width+x].Blocked
}

// IsTransparent reports whether sight passes through (x, y). Off-grid
// positions are opaque.
func (g *Grid) IsTransparent(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return !g.tiles[y*g.Width+x].BlocksSight
}

func (g *Grid) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile access (%d,%d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
}
