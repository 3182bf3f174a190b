// Package game owns the session: one grid, one occupant registry, and
// the visibility engine derived from them.
package game

import "fmt"

// Config holds every generation and visibility parameter. They are
// explicit values handed to the session at construction, not package
// constants, so tests can vary map sizes freely.
type Config struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	RoomMinSize     int   `yaml:"room_min_size"`
	RoomMaxSize     int   `yaml:"room_max_size"`
	MaxRooms        int   `yaml:"max_rooms"`         // placement attempt budget
	MaxRoomMonsters int   `yaml:"max_room_monsters"` // per accepted room
	FOVRadius       int   `yaml:"fov_radius"`
	Seed            int64 `yaml:"seed"` // 0 means derive from the clock
}

// DefaultConfig mirrors the classic 80x45 dungeon.
func DefaultConfig() Config {
	return Config{
		Width:           80,
		Height:          45,
		RoomMinSize:     6,
		RoomMaxSize:     10,
		MaxRooms:        30,
		MaxRoomMonsters: 3,
		FOVRadius:       10,
	}
}

// Validate rejects parameter combinations that would make generation
// impossible. Catching these here keeps out-of-bounds carving a
// programmer error instead of a runtime surprise.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.RoomMinSize < 2 {
		return fmt.Errorf("room min size %d leaves no interior to carve", c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return fmt.Errorf("room max size %d below min size %d", c.RoomMaxSize, c.RoomMinSize)
	}
	if c.RoomMaxSize >= c.Width || c.RoomMaxSize >= c.Height {
		return fmt.Errorf("room max size %d does not fit a %dx%d grid with a wall border",
			c.RoomMaxSize, c.Width, c.Height)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms %d must be at least 1", c.MaxRooms)
	}
	if c.MaxRoomMonsters < 0 {
		return fmt.Errorf("max room monsters %d must not be negative", c.MaxRoomMonsters)
	}
	if c.FOVRadius < 0 {
		return fmt.Errorf("fov radius %d must not be negative", c.FOVRadius)
	}
	return nil
}
