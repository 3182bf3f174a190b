package game

import (
	"github.com/samdwyer/torchlight/internal/entity"
	"github.com/samdwyer/torchlight/internal/world"
)

// AttemptMove tries to displace the occupant at index by (dx, dy).
// The move is rejected when the target tile blocks movement or another
// alive, blocking occupant already stands there. On success the position
// is overwritten in place and true is returned; a rejected move mutates
// nothing. Valid dungeons keep every occupant inside the outer wall ring,
// so the grid accessor's bounds panic only fires on a broken invariant.
func AttemptMove(grid *world.Grid, reg *entity.Registry, index, dx, dy int) bool {
	o := reg.At(index)
	nx, ny := o.X+dx, o.Y+dy

	if grid.At(nx, ny).Blocked {
		return false
	}
	if reg.BlockedAt(nx, ny, index) {
		return false
	}

	o.SetPosition(nx, ny)
	return true
}
