package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchlight/internal/entity"
	"github.com/samdwyer/torchlight/internal/gamedata"
	"github.com/samdwyer/torchlight/internal/telemetry"
)

// Params are the generation knobs, passed in at construction instead of
// living as package constants so tests can vary them freely.
type Params struct {
	MaxRooms        int // fixed attempt budget, not a guaranteed room count
	RoomMinSize     int
	RoomMaxSize     int
	MaxRoomMonsters int
}

// Result reports what a generation run produced.
type Result struct {
	Rooms            []Rect // accepted rooms, in acceptance order
	PlayerX, PlayerY int    // center of the first accepted room
}

// Generator carves rooms and corridors into an all-wall grid and
// populates them with monsters. All randomness flows through the single
// rng, so a fixed seed reproduces the dungeon exactly.
type Generator struct {
	params Params
	rng    *rand.Rand
	defs   *gamedata.MonsterRegistry
}

// NewGenerator creates a generator. Params are assumed validated by the
// session config.
func NewGenerator(params Params, rng *rand.Rand, defs *gamedata.MonsterRegistry) *Generator {
	return &Generator{params: params, rng: rng, defs: defs}
}

// Generate runs exactly MaxRooms placement attempts against grid.
// Candidates that intersect an already accepted room are rejected but
// still consume an attempt, so the final dungeon may hold fewer rooms
// than the budget. Each accepted room is carved, chained by an L-shaped
// corridor to the previously accepted room, and then populated using the
// grid state as it stands after carving. The registry must already hold
// the player at index 0; its position is set to the first room's center.
func (g *Generator) Generate(ctx context.Context, grid *Grid, reg *entity.Registry) Result {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	var result Result
	for attempt := 0; attempt < g.params.MaxRooms; attempt++ {
		w := g.params.RoomMinSize + g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1)
		h := g.params.RoomMinSize + g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1)
		x := g.rng.Intn(grid.Width - w)
		y := g.rng.Intn(grid.Height - h)

		room := NewRect(x, y, w, h)

		rejected := false
		for _, other := range result.Rooms {
			if room.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		g.carveRoom(grid, room)

		cx, cy := room.Center()
		if len(result.Rooms) == 0 {
			// First accepted room: the player starts at its center.
			result.PlayerX, result.PlayerY = cx, cy
			reg.Player().SetPosition(cx, cy)
		} else {
			px, py := result.Rooms[len(result.Rooms)-1].Center()
			g.carveCorridor(grid, px, py, cx, cy)
		}
		result.Rooms = append(result.Rooms, room)

		// Populate after all carving for this room so monster placement
		// sees the corridor floor as well.
		g.populateRoom(grid, reg, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", grid.Width),
		attribute.Int("dungeon.height", grid.Height),
		attribute.Int("dungeon.room_count", len(result.Rooms)),
		attribute.Int("dungeon.occupant_count", reg.Len()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return result
}

// carveRoom floors the room interior, leaving the rect edges as wall so
// accepted rooms always keep their one-tile margin.
func (g *Generator) carveRoom(grid *Grid, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			grid.Set(x, y, MakeFloor())
		}
	}
}

// carveCorridor digs an L-shaped tunnel between two room centers. The
// coinflip decides which leg runs first, which fixes the elbow corner.
func (g *Generator) carveCorridor(grid *Grid, x1, y1, x2, y2 int) {
	if g.rng.Intn(2) == 0 {
		g.carveHorizontal(grid, x1, x2, y1)
		g.carveVertical(grid, y1, y2, x2)
	} else {
		g.carveVertical(grid, y1, y2, x1)
		g.carveHorizontal(grid, x1, x2, y2)
	}
}

func (g *Generator) carveHorizontal(grid *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if grid.InBounds(x, y) {
			grid.Set(x, y, MakeFloor())
		}
	}
}

func (g *Generator) carveVertical(grid *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if grid.InBounds(x, y) {
			grid.Set(x, y, MakeFloor())
		}
	}
}

// populateRoom spawns a uniform [0, MaxRoomMonsters] count of monsters
// inside the room interior. A sampled position that lands on a blocked
// tile or another blocking occupant loses that monster; there is no
// retry.
func (g *Generator) populateRoom(grid *Grid, reg *entity.Registry, room Rect) {
	count := g.rng.Intn(g.params.MaxRoomMonsters + 1)

	for i := 0; i < count; i++ {
		x := room.X1 + 1 + g.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + g.rng.Intn(room.Y2-room.Y1-1)

		if grid.IsBlocked(x, y) || reg.BlockedAt(x, y, -1) {
			continue
		}

		def := g.defs.SpawnRandom(g.rng)
		if def == nil {
			continue
		}
		reg.Append(&entity.Occupant{
			Role:   entity.RoleMonster,
			Kind:   def.ID,
			Name:   def.Name,
			Glyph:  def.GlyphRune(),
			Color:  def.Color,
			X:      x,
			Y:      y,
			Blocks: true,
			Alive:  true,
		})
	}
}
