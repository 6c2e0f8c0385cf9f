package game

import (
	"context"
	"fmt"
	"iter"

	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/gamelog"
	"github.com/samdwyer/tetra/internal/random"
	"github.com/samdwyer/tetra/internal/spawner"
	"github.com/samdwyer/tetra/internal/systems"
	"github.com/samdwyer/tetra/internal/telemetry"
	"github.com/samdwyer/tetra/internal/world"
)

// Welcome is the first message of every session.
const Welcome = "Welcome to tetra, young traveler !"

// Game holds the entire game state.
type Game struct {
	res      *systems.Resources
	pipeline *systems.Pipeline
	machine  *fsm.FSM
	turns    int
}

// New generates a dungeon from cfg, populates it and places the player in a
// randomly chosen room. The returned game is in StatePreRun.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	rng := random.New(cfg.Seed)

	var candidates iter.Seq[world.Room]
	switch cfg.Generator {
	case GeneratorBSP:
		candidates = world.BSPRooms(rng, cfg.Width, cfg.Height, cfg.RoomSettings())
	default:
		candidates = world.RandomRooms(rng, cfg.Width, cfg.Height, cfg.RoomSettings())
	}
	m := world.Generate(ctx, cfg.Width, cfg.Height, candidates)
	if len(m.Rooms) == 0 {
		return nil, fmt.Errorf("generator %q placed no rooms", cfg.Generator)
	}

	sp, err := spawner.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("loading game data: %w", err)
	}

	w := donburi.NewWorld()
	start := rng.Between(0, len(m.Rooms))
	for i, room := range m.Rooms {
		if i == start {
			continue
		}
		sp.Room(ctx, w, rng, room, cfg.SpawnSettings())
	}

	startX, startY := m.Rooms[start].Center()
	player := spawner.Player(w, startX, startY)

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.String("dungeon.generator", cfg.Generator),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)

	return newGame(systems.NewResources(w, m, gamelog.New(Welcome), player)), nil
}

func newGame(res *systems.Resources) *Game {
	return &Game{
		res:      res,
		pipeline: systems.NewPipeline(),
		machine:  newMachine(),
	}
}

// State returns the current run state.
func (g *Game) State() State {
	return parseState(g.machine.Current())
}

// Resources exposes the shared simulation state for rendering. Callers must
// treat it as read-only.
func (g *Game) Resources() *systems.Resources {
	return g.res
}

// Turns returns the number of completed player turns.
func (g *Game) Turns() int {
	return g.turns
}

// NeedsInput reports whether the game is waiting for a command.
func (g *Game) NeedsInput() bool {
	switch g.State() {
	case StateAwaitingInput, StateInventory, StateDropItem, StateGameOver:
		return true
	}
	return false
}

// Step runs the pipeline for the current non-interactive state, advances
// the state machine and then sweeps the dead. It does nothing while the game
// waits for input.
func (g *Game) Step(ctx context.Context) error {
	var event string
	switch g.State() {
	case StatePreRun:
		g.res.MonsterTurn = false
		event = eventStart
	case StatePlayerTurn:
		g.res.MonsterTurn = false
		event = eventEndTurn
	case StateMonsterTurn:
		g.res.MonsterTurn = true
		event = eventMonstersDone
	default:
		return nil
	}

	g.pipeline.Run(ctx, g.res)
	g.res.MonsterTurn = false
	if event == eventEndTurn {
		g.turns++
	}
	if err := g.fire(ctx, event); err != nil {
		return err
	}

	report := systems.DeleteTheDead(ctx, g.res)
	if report.PlayerDead {
		return g.fire(ctx, eventDie)
	}
	return nil
}

// Advance steps until the game waits for input again.
func (g *Game) Advance(ctx context.Context) error {
	for !g.NeedsInput() {
		if err := g.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Submit applies one player command and, if it ends the player's action,
// plays out the player and monster turns.
func (g *Game) Submit(ctx context.Context, cmd Command) error {
	var err error
	switch g.State() {
	case StateAwaitingInput:
		err = g.handleAwaiting(ctx, cmd)
	case StateInventory:
		err = g.handleInventory(ctx, cmd)
	case StateDropItem:
		err = g.handleDrop(ctx, cmd)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	return g.Advance(ctx)
}

func (g *Game) fire(ctx context.Context, event string) error {
	if !g.machine.Can(event) {
		return nil
	}
	if err := g.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("state %s: event %s: %w", g.machine.Current(), event, err)
	}
	return nil
}

func (g *Game) handleAwaiting(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CmdMove:
		systems.TryMove(g.res, g.res.Player, cmd.DX, cmd.DY)
		return g.fire(ctx, eventAct)

	case CmdPickup:
		g.pickup()
		return g.fire(ctx, eventAct)

	case CmdInventory:
		if len(g.Backpack()) == 0 {
			g.res.Log.Say("You have nothing in your backpack.")
			return nil
		}
		return g.fire(ctx, eventOpenInventory)

	case CmdDrop:
		if len(g.Backpack()) == 0 {
			g.res.Log.Say("You have nothing in your backpack.")
			return nil
		}
		return g.fire(ctx, eventOpenDrop)
	}
	return nil
}

func (g *Game) handleInventory(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CmdCancel:
		return g.fire(ctx, eventCancel)

	case CmdSelect:
		item, ok := g.backpackEntry(cmd.Index)
		if !ok {
			return nil
		}
		targets, ok := g.targetsFor(item)
		if !ok {
			g.res.Log.Say("There is no target in range for the %s.", ecs.NameOf(g.res.World, item, "item"))
			return g.fire(ctx, eventCancel)
		}
		ecs.Set(g.res.World, g.res.Player, ecs.WantsToUseItemComponent, ecs.WantsToUseItem{
			Item:    item,
			Targets: targets,
		})
		return g.fire(ctx, eventAct)
	}
	return nil
}

func (g *Game) handleDrop(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CmdCancel:
		return g.fire(ctx, eventCancel)

	case CmdSelect:
		item, ok := g.backpackEntry(cmd.Index)
		if !ok {
			return nil
		}
		ecs.Set(g.res.World, g.res.Player, ecs.WantsToDropItemComponent, ecs.WantsToDropItem{Item: item})
		return g.fire(ctx, eventAct)
	}
	return nil
}

// pickup records an intent to pick up the first item lying on the player's
// cell, or logs that there is none.
func (g *Game) pickup() {
	w := g.res.World
	here := *ecs.MustGet(w, g.res.Player, ecs.PositionComponent)

	for _, item := range ecs.Entities(w, ecs.ItemTag, ecs.PositionComponent) {
		if *ecs.MustGet(w, item, ecs.PositionComponent) != here {
			continue
		}
		ecs.Set(w, g.res.Player, ecs.WantsToPickupItemComponent, ecs.WantsToPickupItem{
			CollectedBy: g.res.Player,
			Item:        item,
		})
		return
	}
	g.res.Log.Say("There is nothing here to pickup.")
}

// Backpack returns the items the player carries in entity id order. Menu
// indices refer to this order.
func (g *Game) Backpack() []donburi.Entity {
	w := g.res.World
	var items []donburi.Entity
	for _, e := range ecs.Entities(w, ecs.InBackpackComponent) {
		if ecs.MustGet(w, e, ecs.InBackpackComponent).Owner == g.res.Player {
			items = append(items, e)
		}
	}
	return items
}

func (g *Game) backpackEntry(index int) (donburi.Entity, bool) {
	items := g.Backpack()
	if index < 0 || index >= len(items) {
		return donburi.Null, false
	}
	return items[index], true
}
