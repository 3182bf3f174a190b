package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchlight/internal/gamedata"
	"github.com/samdwyer/torchlight/internal/ui"
)

// Game is the terminal shell around a session: it translates key events
// into movement intents and redraws after every tick. All simulation
// state lives in the session.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance with an initialized screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run builds the session and executes the main loop: render, block on
// input, resolve the intent, repeat.
func (g *Game) Run(ctx context.Context) error {
	defs, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return err
	}

	g.session, err = NewSession(ctx, g.cfg, defs)
	if err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.session)
		g.handleInput()
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.MovePlayer(0, -1)
	case tcell.KeyDown:
		g.session.MovePlayer(0, 1)
	case tcell.KeyLeft:
		g.session.MovePlayer(-1, 0)
	case tcell.KeyRight:
		g.session.MovePlayer(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			g.session.MovePlayer(-1, 0)
		case 'j':
			g.session.MovePlayer(0, 1)
		case 'k':
			g.session.MovePlayer(0, -1)
		case 'l':
			g.session.MovePlayer(1, 0)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
