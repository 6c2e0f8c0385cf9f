package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tetra/internal/game"
)

// App runs a game in the terminal.
type App struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
	running  bool
}

// NewApp creates an app drawing g on screen.
func NewApp(screen *Screen, g *game.Game) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		game:     g,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.game.Advance(ctx); err != nil {
		return err
	}

	for a.running {
		a.renderer.Render(a.game)

		if err := a.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) error {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		state := a.game.State()
		inMenu := state == game.StateInventory || state == game.StateDropItem
		cmd, quit := KeyCommand(ev, inMenu)
		if quit {
			a.running = false
			return nil
		}
		return a.game.Submit(ctx, cmd)

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.renderer.SetMouse(x, y)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}
