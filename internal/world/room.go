package world

// Rect is an axis-aligned room rectangle with inclusive bounds. It is
// used only while generating; carved floor is the lasting record.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from an origin and size. The rect spans
// w+1 by h+1 tiles; only the interior (edges excluded) is ever carved,
// so adjacent rects always leave at least a one-tile wall between rooms.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other. Bounds are inclusive:
// rects that merely touch or share an edge count as intersecting, which
// is what guarantees the one-tile wall buffer between accepted rooms.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
