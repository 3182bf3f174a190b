// Package vision computes the field of view from an observer position
// and records explored tiles on the grid.
package vision

import "github.com/samdwyer/torchlight/internal/world"

// State tracks whether the cached visible set matches the observer.
type State int

const (
	// StateStale means the observer moved (or the engine is new) and the
	// next Recompute must rescan.
	StateStale State = iota
	// StateFresh means the cached visible set is current.
	StateFresh
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// Point is one visible grid coordinate.
type Point struct {
	X, Y int
}

// Engine holds the view radius and the cached visible set for one
// observer. Explored memory is not stored here: it lives on the grid
// tiles and only ever grows.
type Engine struct {
	radius       int
	state        State
	lastX, lastY int
	visible      map[Point]struct{}
}

// NewEngine creates an engine with the given view radius. It starts
// stale so the first Recompute always scans.
func NewEngine(radius int) *Engine {
	return &Engine{radius: radius, state: StateStale, visible: make(map[Point]struct{})}
}

// Radius returns the view distance in tiles.
func (e *Engine) Radius() int {
	return e.radius
}

// State returns the current cache state.
func (e *Engine) State() State {
	return e.state
}

// MarkStale records that the observer moved since the last compute, so
// the next Recompute rescans even from the same coordinates.
func (e *Engine) MarkStale() {
	e.state = StateStale
}

// Visible reports whether (x, y) is in the current visible set.
func (e *Engine) Visible(x, y int) bool {
	_, ok := e.visible[Point{X: x, Y: y}]
	return ok
}

// Recompute returns the set of tiles visible from (ox, oy). While the
// engine is fresh and the observer has not moved, the cached set is
// returned without rescanning. A fresh scan marks every visible tile
// explored on the grid.
//
// A tile is visible when it lies within the radius (squared Euclidean
// distance) and line of sight to it is not fully occluded. The relation
// is symmetric: if this engine sees B from A, an equal-radius engine at
// B sees A on the same grid.
func (e *Engine) Recompute(grid *world.Grid, ox, oy int) map[Point]struct{} {
	if e.state == StateFresh && ox == e.lastX && oy == e.lastY {
		return e.visible
	}

	visible := make(map[Point]struct{})
	r := e.radius
	for y := oy - r; y <= oy+r; y++ {
		for x := ox - r; x <= ox+r; x++ {
			if !grid.InBounds(x, y) {
				continue
			}
			dx, dy := x-ox, y-oy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if !hasLineOfSight(grid, ox, oy, x, y) {
				continue
			}
			visible[Point{X: x, Y: y}] = struct{}{}
			grid.MarkExplored(x, y)
		}
	}

	e.visible = visible
	e.lastX, e.lastY = ox, oy
	e.state = StateFresh
	return e.visible
}
