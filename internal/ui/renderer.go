package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchlight/internal/entity"
	"github.com/samdwyer/torchlight/internal/gamedata"
	"github.com/samdwyer/torchlight/internal/world"
)

// Scene is the query surface the renderer draws from. The session
// implements it; the renderer never reaches into simulation internals.
type Scene interface {
	Size() (int, int)
	TileAt(x, y int) world.Tile
	Visible(x, y int) bool
	Explored(x, y int) bool
	Occupants() []*entity.Occupant
}

// Tile backgrounds: lit colors inside the field of view, dimmed colors
// for explored memory outside it.
var (
	colorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	colorLightWall   = tcell.NewRGBColor(130, 110, 50)
	colorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	colorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: explored tiles as colored cells, then every
// occupant that is currently visible.
func (r *Renderer) Render(scene Scene) {
	r.screen.Clear()

	width, height := scene.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			visible := scene.Visible(x, y)
			if !visible && !scene.Explored(x, y) {
				continue // never seen: stays black
			}
			bg := tileColor(scene.TileAt(x, y), visible)
			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}

	for _, o := range scene.Occupants() {
		if !o.Alive || !scene.Visible(o.X, o.Y) {
			continue
		}
		style := tcell.StyleDefault.
			Foreground(occupantColor(o)).
			Background(tileColor(scene.TileAt(o.X, o.Y), true))
		r.screen.SetContent(o.X, o.Y, o.Glyph, style)
	}

	r.screen.Show()
}

func tileColor(t world.Tile, visible bool) tcell.Color {
	switch {
	case visible && t.BlocksSight:
		return colorLightWall
	case visible:
		return colorLightGround
	case t.BlocksSight:
		return colorDarkWall
	default:
		return colorDarkGround
	}
}

// occupantColor parses the occupant's hex render hint, falling back to
// white when the hint is malformed.
func occupantColor(o *entity.Occupant) tcell.Color {
	color, err := gamedata.ParseHexColor(o.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
