package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchlight/internal/entity"
	"github.com/samdwyer/torchlight/internal/gamedata"
	"github.com/samdwyer/torchlight/internal/telemetry"
	"github.com/samdwyer/torchlight/internal/vision"
	"github.com/samdwyer/torchlight/internal/world"
)

// Session is the running simulation: it exclusively owns the grid and
// the occupant registry, and derives visibility from the pair. All
// mutation goes through generation (at construction) and MovePlayer
// (thereafter); the session is single-threaded by contract.
type Session struct {
	cfg      Config
	seed     int64
	grid     *world.Grid
	registry *entity.Registry
	vision   *vision.Engine
	rooms    []world.Rect
}

// NewSession validates cfg, generates a dungeon from a single seeded
// rng, and performs the initial visibility compute. A zero seed is
// replaced with the clock; the effective seed is kept for inspection.
func NewSession(ctx context.Context, cfg Config, defs *gamedata.MonsterRegistry) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := world.NewGrid(cfg.Width, cfg.Height)

	registry := entity.NewRegistry()
	pdef := defs.PlayerDef()
	registry.Append(&entity.Occupant{
		Role:   entity.RolePlayer,
		Kind:   pdef.ID,
		Name:   pdef.Name,
		Glyph:  pdef.GlyphRune(),
		Color:  pdef.Color,
		Blocks: true,
		Alive:  true,
	})

	gen := world.NewGenerator(world.Params{
		MaxRooms:        cfg.MaxRooms,
		RoomMinSize:     cfg.RoomMinSize,
		RoomMaxSize:     cfg.RoomMaxSize,
		MaxRoomMonsters: cfg.MaxRoomMonsters,
	}, rng, defs)
	result := gen.Generate(ctx, grid, registry)

	s := &Session{
		cfg:      cfg,
		seed:     seed,
		grid:     grid,
		registry: registry,
		vision:   vision.NewEngine(cfg.FOVRadius),
		rooms:    result.Rooms,
	}
	s.vision.Recompute(grid, result.PlayerX, result.PlayerY)

	span.SetAttributes(
		attribute.Int64("session.seed", seed),
		attribute.Int("session.rooms", len(s.rooms)),
		attribute.Int("session.occupants", registry.Len()),
	)
	return s, nil
}

// MovePlayer applies one movement intent for the point-of-view occupant
// and recomputes visibility when the position actually changed. The
// deltas come from the input shell and are each in {-1, 0, 1}.
func (s *Session) MovePlayer(dx, dy int) bool {
	moved := AttemptMove(s.grid, s.registry, entity.PlayerIndex, dx, dy)
	if moved {
		p := s.registry.Player()
		s.vision.MarkStale()
		s.vision.Recompute(s.grid, p.X, p.Y)
	}
	return moved
}

// Size returns the grid dimensions.
func (s *Session) Size() (int, int) {
	return s.grid.Width, s.grid.Height
}

// TileAt returns the tile at (x, y).
func (s *Session) TileAt(x, y int) world.Tile {
	return s.grid.At(x, y)
}

// Visible reports whether (x, y) is currently in the player's view.
func (s *Session) Visible(x, y int) bool {
	return s.vision.Visible(x, y)
}

// Explored reports whether (x, y) has ever been seen this session.
func (s *Session) Explored(x, y int) bool {
	return s.grid.At(x, y).Explored
}

// Occupants returns every occupant in registry order; index 0 is the
// player.
func (s *Session) Occupants() []*entity.Occupant {
	return s.registry.All()
}

// Player returns the point-of-view occupant.
func (s *Session) Player() *entity.Occupant {
	return s.registry.Player()
}

// Rooms returns the accepted rooms in acceptance order.
func (s *Session) Rooms() []world.Rect {
	return s.rooms
}

// Seed returns the seed generation actually used.
func (s *Session) Seed() int64 {
	return s.seed
}
