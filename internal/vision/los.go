package vision

import "github.com/samdwyer/torchlight/internal/world"

// lineClear walks the Bresenham line from (x0, y0) to (x1, y1) and
// reports whether every intermediate tile is transparent. Both endpoints
// are excluded: an opaque target tile (a wall face) can still be seen.
func lineClear(g *world.Grid, x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if x == x1 && y == y1 {
			return true
		}
		if !g.IsTransparent(x, y) {
			return false
		}
	}
}

// hasLineOfSight reports whether sight connects the two tiles. Bresenham
// rasterizes A→B and B→A differently around corners, so either clear ray
// counts; taking the OR makes the relation symmetric by construction.
func hasLineOfSight(g *world.Grid, x0, y0, x1, y1 int) bool {
	return lineClear(g, x0, y0, x1, y1) || lineClear(g, x1, y1, x0, y0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
