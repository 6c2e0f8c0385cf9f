package ui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/game"
	"github.com/samdwyer/tetra/internal/gamedata"
	"github.com/samdwyer/tetra/internal/world"
)

// logLines is how many recent messages the HUD shows.
const logLines = 5

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen

	mouseX, mouseY int
	colors         map[string]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		mouseX: -1,
		mouseY: -1,
		colors: make(map[string]tcell.Color),
	}
}

// SetMouse records the cell under the mouse pointer for tooltips.
func (r *Renderer) SetMouse(x, y int) {
	r.mouseX, r.mouseY = x, y
}

// Render draws the map, the visible entities, the HUD and any open menu.
func (r *Renderer) Render(g *game.Game) {
	r.screen.Clear()
	res := g.Resources()

	r.drawMap(g)
	r.drawEntities(g)
	r.drawHUD(g, res.Map.Height())

	switch g.State() {
	case game.StateInventory:
		r.drawMenu(g, "Inventory")
	case game.StateDropItem:
		r.drawMenu(g, "Drop Which Item?")
	case game.StateGameOver:
		r.drawBanner(res.Map, "You are dead. Press q to quit.")
	}

	r.drawTooltip(g)
	r.screen.Show()
}

// drawMap draws revealed terrain, brighter where it is currently visible.
func (r *Renderer) drawMap(g *game.Game) {
	res := g.Resources()
	m := res.Map
	player, ok := ecs.Get(res.World, res.Player, ecs.PlayerComponent)
	if !ok {
		return
	}
	visible := r.visible(g)

	player.Revealed.Each(func(idx int) {
		x, y := m.XY(idx)
		tile := m.Tiles.Data[idx]
		r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile, visible(idx)))
	})
}

// getTileStyle returns the style for a tile, dimmed when only remembered.
func (r *Renderer) getTileStyle(tile world.TileKind, inView bool) tcell.Style {
	if !inView {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	}
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	default:
		return tcell.StyleDefault
	}
}

// drawEntities draws every positioned entity in the player's view. Lower
// render orders end up on top.
func (r *Renderer) drawEntities(g *game.Game) {
	res := g.Resources()
	w := res.World
	visible := r.visible(g)

	type drawable struct {
		pos    ecs.Position
		render ecs.Renderable
	}
	var list []drawable
	for _, e := range ecs.Entities(w, ecs.PositionComponent, ecs.RenderableComponent) {
		pos := *ecs.MustGet(w, e, ecs.PositionComponent)
		if !visible(res.Map.Index(pos.X, pos.Y)) {
			continue
		}
		list = append(list, drawable{pos: pos, render: *ecs.MustGet(w, e, ecs.RenderableComponent)})
	}
	slices.SortStableFunc(list, func(a, b drawable) int {
		return cmp.Compare(b.render.Order, a.render.Order)
	})

	for _, d := range list {
		style := tcell.StyleDefault.Foreground(r.color(d.render.Color))
		if d.render.Order == 0 {
			style = style.Bold(true)
		}
		r.screen.SetContent(d.pos.X, d.pos.Y, d.render.Glyph, style)
	}
}

// drawHUD draws the hp line and the latest messages below the map.
func (r *Renderer) drawHUD(g *game.Game, top int) {
	res := g.Resources()
	if stats, ok := ecs.Get(res.World, res.Player, ecs.CombatStatsComponent); ok {
		hpStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		r.screen.Print(1, top, fmt.Sprintf("HP: %d / %d", stats.HP, stats.MaxHP), hpStyle)
		r.drawBar(18, top, 30, stats.HP, stats.MaxHP)
	}

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, msg := range res.Log.Last(logLines) {
		r.screen.Print(1, top+1+i, msg, msgStyle)
	}
}

func (r *Renderer) drawBar(x, y, width, value, maximum int) {
	filled := 0
	if maximum > 0 {
		filled = max(0, min(width, value*width/maximum))
	}
	for i := range width {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if i < filled {
			style = style.Background(tcell.ColorRed)
		}
		r.screen.SetContent(x+i, y, ' ', style)
	}
}

// drawMenu draws the backpack as a lettered list.
func (r *Renderer) drawMenu(g *game.Game, title string) {
	res := g.Resources()
	items := g.Backpack()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	titleStyle := style.Foreground(tcell.ColorYellow)

	x := 15
	y := max(0, 25-len(items)/2)
	r.screen.Print(x, y-2, title, titleStyle)
	for i, item := range items {
		if i >= 26 {
			break
		}
		name := ecs.NameOf(res.World, item, "?")
		r.screen.Print(x, y+i, fmt.Sprintf("(%c) %s", 'a'+i, name), style)
	}
	r.screen.Print(x, y+len(items)+1, "ESCAPE to cancel", titleStyle)
}

func (r *Renderer) drawBanner(m *world.Map, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.Print(max(0, (m.Width()-len(text))/2), m.Height()/2, text, style)
}

// drawTooltip names the visible entities under the mouse pointer.
func (r *Renderer) drawTooltip(g *game.Game) {
	res := g.Resources()
	m := res.Map
	if !m.InBounds(r.mouseX, r.mouseY) || !r.visible(g)(m.Index(r.mouseX, r.mouseY)) {
		return
	}

	var names []string
	for _, e := range ecs.Entities(res.World, ecs.PositionComponent, ecs.NameComponent) {
		pos := ecs.MustGet(res.World, e, ecs.PositionComponent)
		if pos.X == r.mouseX && pos.Y == r.mouseY {
			names = append(names, ecs.NameOf(res.World, e, ""))
		}
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)
	for i, name := range names {
		x := r.mouseX + 2
		if x+len(name) >= m.Width() {
			x = max(0, r.mouseX-len(name)-2)
		}
		r.screen.Print(x, r.mouseY+i, name, style)
	}
}

// visible returns a predicate over cell indices currently seen by the player.
func (r *Renderer) visible(g *game.Game) func(int) bool {
	res := g.Resources()
	vs, ok := ecs.Get(res.World, res.Player, ecs.ViewshedComponent)
	if !ok {
		return func(int) bool { return false }
	}
	return vs.Visible.Has
}

func (r *Renderer) color(hex string) tcell.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c, err := gamedata.ParseHexColor(hex)
	if err != nil {
		c = tcell.ColorWhite
	}
	r.colors[hex] = c
	return c
}
