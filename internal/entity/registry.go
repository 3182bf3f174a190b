package entity

import "github.com/google/uuid"

// PlayerIndex is the registry slot the player always occupies: it is
// appended first during generation and the registry has no removal.
const PlayerIndex = 0

// Registry holds all occupants in a stable, index-addressable order.
// Insertion order is identity: handing out indexes is safe because
// occupants are never destroyed within a session.
type Registry struct {
	occupants []*Occupant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds an occupant, assigns its ID, and returns its index.
func (r *Registry) Append(o *Occupant) int {
	o.ID = uuid.New()
	r.occupants = append(r.occupants, o)
	return len(r.occupants) - 1
}

// At returns the occupant at the given index.
func (r *Registry) At(i int) *Occupant {
	return r.occupants[i]
}

// Len returns the number of occupants.
func (r *Registry) Len() int {
	return len(r.occupants)
}

// All returns the occupants in insertion order. The slice is shared;
// callers iterate, they do not reshape it.
func (r *Registry) All() []*Occupant {
	return r.occupants
}

// Player returns the point-of-view occupant, or nil before generation.
func (r *Registry) Player() *Occupant {
	if len(r.occupants) == 0 {
		return nil
	}
	return r.occupants[PlayerIndex]
}

// BlockedAt reports whether any alive, blocking occupant other than the
// one at excluding sits on (x, y). Pass a negative index to exclude
// nobody.
func (r *Registry) BlockedAt(x, y, excluding int) bool {
	for i, o := range r.occupants {
		if i == excluding {
			continue
		}
		if o.Alive && o.Blocks && o.X == x && o.Y == y {
			return true
		}
	}
	return false
}
