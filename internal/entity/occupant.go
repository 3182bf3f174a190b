// Package entity provides the occupants of the dungeon grid: the player
// and the monsters that share it.
package entity

import "github.com/google/uuid"

// Role tags what an occupant is. The player is still stored at index 0
// of the registry, but callers branch on the role, not the index.
type Role int

const (
	// RolePlayer is the point-of-view occupant.
	RolePlayer Role = iota
	// RoleMonster is any hostile dungeon dweller.
	RoleMonster
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Occupant is a positioned, renderable thing on the grid. Glyph and
// Color are render hints the core never interprets; Color is a hex
// string straight from the monster definition.
type Occupant struct {
	ID     uuid.UUID
	Role   Role
	Kind   string // definition ID for monsters, "player" for the player
	Name   string
	Glyph  rune
	Color  string
	X, Y   int
	Blocks bool
	Alive  bool
}

// Position returns the occupant's current coordinates.
func (o *Occupant) Position() (int, int) {
	return o.X, o.Y
}

// SetPosition overwrites the occupant's coordinates.
func (o *Occupant) SetPosition(x, y int) {
	o.X = x
	o.Y = y
}
