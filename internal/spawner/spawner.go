// Package spawner builds the player, monsters and items and scatters them
// through the rooms of a freshly generated map.
package spawner

import (
	"context"

	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/gamedata"
	"github.com/samdwyer/tetra/internal/random"
	"github.com/samdwyer/tetra/internal/telemetry"
	"github.com/samdwyer/tetra/internal/world"
)

// Player starting values.
const (
	PlayerMaxHP      = 30
	PlayerPower      = 5
	PlayerDefense    = 2
	PlayerSightRange = 8
)

// Draw orders; lower draws on top.
const (
	orderPlayer  = 0
	orderMonster = 1
	orderItem    = 2
)

// Settings caps how much is placed in one room.
type Settings struct {
	MaxMonsters int
	MaxItems    int
}

// DefaultSettings is used for regular rooms.
var DefaultSettings = Settings{MaxMonsters: 4, MaxItems: 4}

// Spawner creates entities from the monster and item definitions.
type Spawner struct {
	monsters *gamedata.MonsterRegistry
	items    *gamedata.ItemRegistry
}

// New creates a spawner over the given registries.
func New(monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry) *Spawner {
	return &Spawner{monsters: monsters, items: items}
}

// NewDefault creates a spawner over the embedded definitions.
func NewDefault() (*Spawner, error) {
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, err
	}
	return New(monsters, items), nil
}

// Player creates the player at (x, y) with its starting stats, an empty fog
// memory and a dirty viewshed.
func Player(w donburi.World, x, y int) donburi.Entity {
	e := w.Create(
		ecs.PositionComponent,
		ecs.RenderableComponent,
		ecs.PlayerComponent,
		ecs.ViewshedComponent,
		ecs.NameComponent,
		ecs.CombatStatsComponent,
	)
	entry := w.Entry(e)
	ecs.PositionComponent.SetValue(entry, ecs.Position{X: x, Y: y})
	ecs.RenderableComponent.SetValue(entry, ecs.Renderable{Glyph: '@', Color: "#FFFF00", Order: orderPlayer})
	ecs.PlayerComponent.SetValue(entry, ecs.Player{Revealed: mapset.New[int]()})
	ecs.ViewshedComponent.SetValue(entry, ecs.NewViewshed(PlayerSightRange))
	ecs.NameComponent.SetValue(entry, ecs.Name{Name: "Player"})
	ecs.CombatStatsComponent.SetValue(entry, ecs.CombatStats{
		MaxHP:   PlayerMaxHP,
		HP:      PlayerMaxHP,
		Defense: PlayerDefense,
		Power:   PlayerPower,
	})
	return e
}

// Monster creates a monster of the given kind at (x, y).
func (s *Spawner) Monster(w donburi.World, def *gamedata.MonsterDef, x, y int) donburi.Entity {
	e := w.Create(
		ecs.PositionComponent,
		ecs.RenderableComponent,
		ecs.ViewshedComponent,
		ecs.NameComponent,
		ecs.CombatStatsComponent,
		ecs.MonsterTag,
		ecs.BlocksTileTag,
	)
	entry := w.Entry(e)
	ecs.PositionComponent.SetValue(entry, ecs.Position{X: x, Y: y})
	ecs.RenderableComponent.SetValue(entry, ecs.Renderable{Glyph: def.GlyphRune(), Color: def.Color, Order: orderMonster})
	ecs.ViewshedComponent.SetValue(entry, ecs.NewViewshed(def.SightRange))
	ecs.NameComponent.SetValue(entry, ecs.Name{Name: def.Name})
	ecs.CombatStatsComponent.SetValue(entry, ecs.CombatStats{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
	})
	return e
}

// Item creates an item of the given kind lying at (x, y). Only the effect
// components the definition asks for are attached.
func (s *Spawner) Item(w donburi.World, def *gamedata.ItemDef, x, y int) donburi.Entity {
	e := w.Create(
		ecs.PositionComponent,
		ecs.RenderableComponent,
		ecs.NameComponent,
		ecs.ItemTag,
	)
	entry := w.Entry(e)
	ecs.PositionComponent.SetValue(entry, ecs.Position{X: x, Y: y})
	ecs.RenderableComponent.SetValue(entry, ecs.Renderable{Glyph: def.GlyphRune(), Color: def.Color, Order: orderItem})
	ecs.NameComponent.SetValue(entry, ecs.Name{Name: def.Name})

	if def.Consumable {
		ecs.Tag(w, e, ecs.ConsumableTag)
	}
	if def.Heal > 0 {
		ecs.Set(w, e, ecs.ProvidesHealingComponent, ecs.ProvidesHealing{Amount: def.Heal})
	}
	if def.Damage > 0 {
		ecs.Set(w, e, ecs.InflictsDamageComponent, ecs.InflictsDamage{Damage: def.Damage})
	}
	if def.Range > 0 {
		ecs.Set(w, e, ecs.RangedComponent, ecs.Ranged{Range: def.Range})
	}
	if def.Radius > 0 {
		ecs.Set(w, e, ecs.AreaOfEffectComponent, ecs.AreaOfEffect{Radius: def.Radius})
	}
	return e
}

// RandomMonster creates a monster of a randomly rolled kind at (x, y).
func (s *Spawner) RandomMonster(w donburi.World, rng random.Rng, x, y int) donburi.Entity {
	return s.Monster(w, s.monsters.SpawnRandom(rng), x, y)
}

// RandomItem creates an item of a randomly rolled kind at (x, y).
func (s *Spawner) RandomItem(w donburi.World, rng random.Rng, x, y int) donburi.Entity {
	return s.Item(w, s.items.SpawnRandom(rng), x, y)
}

// Room populates the interior of room. It rolls how many monsters and items to
// place, reserves a distinct cell for each (monsters first, items never share
// a monster's cell), then rolls the kind of every entity in placement order.
func (s *Spawner) Room(ctx context.Context, w donburi.World, rng random.Rng, room world.Room, settings Settings) []donburi.Entity {
	_, span := telemetry.Tracer("spawner").Start(ctx, "spawner.room")
	defer span.End()

	nMonsters := rng.Between(0, settings.MaxMonsters)
	nItems := rng.Between(0, settings.MaxItems)

	area := max(0, room.Width()-1) * max(0, room.Height()-1)
	nMonsters = min(nMonsters, area)
	nItems = min(nItems, area-nMonsters)

	reserved := mapset.New[ecs.Position]()
	monsterCells := make([]ecs.Position, 0, nMonsters)
	for range nMonsters {
		monsterCells = append(monsterCells, reserveCell(rng, room, reserved))
	}
	itemCells := make([]ecs.Position, 0, nItems)
	for range nItems {
		itemCells = append(itemCells, reserveCell(rng, room, reserved))
	}

	spawned := make([]donburi.Entity, 0, nMonsters+nItems)
	for _, p := range monsterCells {
		spawned = append(spawned, s.RandomMonster(w, rng, p.X, p.Y))
	}
	for _, p := range itemCells {
		spawned = append(spawned, s.RandomItem(w, rng, p.X, p.Y))
	}

	span.SetAttributes(
		attribute.Int("spawn.monsters", nMonsters),
		attribute.Int("spawn.items", nItems),
	)
	return spawned
}

// maxSamples bounds random sampling before reserveCell falls back to a scan.
const maxSamples = 256

// reserveCell samples cells in [x1+1, x2) x [y1+1, y2) until it finds one not
// yet reserved, then reserves it. If sampling keeps colliding it takes the
// first free cell of the room's interior in row order. The caller guarantees
// a free cell exists.
func reserveCell(rng random.Rng, room world.Room, reserved mapset.Set[ecs.Position]) ecs.Position {
	for range maxSamples {
		p := ecs.Position{
			X: rng.Between(room.X1+1, room.X2),
			Y: rng.Between(room.Y1+1, room.Y2),
		}
		if !reserved.Has(p) {
			reserved.Put(p)
			return p
		}
	}

	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			p := ecs.Position{X: x, Y: y}
			if !reserved.Has(p) {
				reserved.Put(p)
				return p
			}
		}
	}
	panic("spawner: no free cell left in room")
}
