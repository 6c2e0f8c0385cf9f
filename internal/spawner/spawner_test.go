package spawner

import (
	"context"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/samdwyer/tetra/internal/ecs"
	"github.com/samdwyer/tetra/internal/random"
	"github.com/samdwyer/tetra/internal/world"
)

func newSpawner(t *testing.T) *Spawner {
	t.Helper()
	s, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault() error = %v", err)
	}
	return s
}

func TestPlayer(t *testing.T) {
	w := donburi.NewWorld()
	e := Player(w, 5, 7)

	pos := ecs.MustGet(w, e, ecs.PositionComponent)
	if pos.X != 5 || pos.Y != 7 {
		t.Errorf("Player position = %v, want (5,7)", *pos)
	}

	stats := ecs.MustGet(w, e, ecs.CombatStatsComponent)
	want := ecs.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5}
	if *stats != want {
		t.Errorf("Player stats = %+v, want %+v", *stats, want)
	}

	vs := ecs.MustGet(w, e, ecs.ViewshedComponent)
	if !vs.Dirty || vs.Range != 8 || vs.Visible.Size() != 0 {
		t.Errorf("Player viewshed = range %d dirty %v size %d", vs.Range, vs.Dirty, vs.Visible.Size())
	}

	p := ecs.MustGet(w, e, ecs.PlayerComponent)
	if p.Revealed.Size() != 0 {
		t.Errorf("Player starts with %d revealed cells", p.Revealed.Size())
	}

	if ecs.Has(w, e, ecs.BlocksTileTag) {
		t.Error("Player should not block its tile")
	}
}

func TestRoomScriptedRolls(t *testing.T) {
	s := newSpawner(t)
	w := donburi.NewWorld()
	room := world.NewRoom(0, 0, 6, 6)

	// counts, two monster cells, one item cell (first try collides), kinds
	rng := random.NewScripted(2, 1, 2, 2, 3, 3, 2, 2, 4, 4, 1, 0, 2)

	spawned := s.Room(context.Background(), w, rng, room, DefaultSettings)
	if len(spawned) != 3 {
		t.Fatalf("Room() spawned %d entities, want 3", len(spawned))
	}

	tests := []struct {
		name    string
		x, y    int
		monster bool
	}{
		{"Orc", 2, 2, true},
		{"Goblin", 3, 3, true},
		{"AOE Fireball Scroll", 4, 4, false},
	}

	for i, tt := range tests {
		e := spawned[i]
		if got := ecs.NameOf(w, e, ""); got != tt.name {
			t.Errorf("spawned[%d] name = %q, want %q", i, got, tt.name)
		}
		pos := ecs.MustGet(w, e, ecs.PositionComponent)
		if pos.X != tt.x || pos.Y != tt.y {
			t.Errorf("spawned[%d] at (%d,%d), want (%d,%d)", i, pos.X, pos.Y, tt.x, tt.y)
		}
		if ecs.Has(w, e, ecs.MonsterTag) != tt.monster {
			t.Errorf("spawned[%d] monster tag = %v, want %v", i, !tt.monster, tt.monster)
		}
		if ecs.Has(w, e, ecs.BlocksTileTag) != tt.monster {
			t.Errorf("spawned[%d] blocks tile = %v, want %v", i, !tt.monster, tt.monster)
		}
	}

	fireball := spawned[2]
	if d := ecs.MustGet(w, fireball, ecs.InflictsDamageComponent); d.Damage != 20 {
		t.Errorf("fireball damage = %d, want 20", d.Damage)
	}
	if a := ecs.MustGet(w, fireball, ecs.AreaOfEffectComponent); a.Radius != 3 {
		t.Errorf("fireball radius = %d, want 3", a.Radius)
	}
	if r := ecs.MustGet(w, fireball, ecs.RangedComponent); r.Range != 6 {
		t.Errorf("fireball range = %d, want 6", r.Range)
	}
	if !ecs.Has(w, fireball, ecs.ConsumableTag) || !ecs.Has(w, fireball, ecs.ItemTag) {
		t.Error("fireball should be a consumable item")
	}
	if ecs.Has(w, fireball, ecs.ProvidesHealingComponent) {
		t.Error("fireball should not heal")
	}
}

func TestRoomZeroCounts(t *testing.T) {
	s := newSpawner(t)
	w := donburi.NewWorld()

	spawned := s.Room(context.Background(), w, random.NewScripted(0, 0), world.NewRoom(0, 0, 6, 6), DefaultSettings)
	if len(spawned) != 0 {
		t.Errorf("Room() spawned %d entities, want 0", len(spawned))
	}
}

func TestRoomCountsCappedByArea(t *testing.T) {
	s := newSpawner(t)
	w := donburi.NewWorld()

	// A 2x2 room has a single spawnable cell.
	spawned := s.Room(context.Background(), w, random.NewScripted(3), world.NewRoom(0, 0, 2, 2), DefaultSettings)
	if len(spawned) != 1 {
		t.Fatalf("Room() spawned %d entities, want 1", len(spawned))
	}
	pos := ecs.MustGet(w, spawned[0], ecs.PositionComponent)
	if pos.X != 1 || pos.Y != 1 {
		t.Errorf("spawned at (%d,%d), want (1,1)", pos.X, pos.Y)
	}
}

func TestRoomFallsBackToScan(t *testing.T) {
	s := newSpawner(t)
	w := donburi.NewWorld()
	room := world.NewRoom(0, 0, 3, 3)

	// Every sample lands on (2,2), so all but the first cell come from the scan.
	spawned := s.Room(context.Background(), w, random.NewScripted(3), room, DefaultSettings)
	if len(spawned) != 4 {
		t.Fatalf("Room() spawned %d entities, want 4", len(spawned))
	}

	seen := make(map[ecs.Position]bool)
	for _, e := range spawned {
		pos := *ecs.MustGet(w, e, ecs.PositionComponent)
		if seen[pos] {
			t.Errorf("two entities share %v", pos)
		}
		seen[pos] = true
		if pos.X < 1 || pos.X >= 3 || pos.Y < 1 || pos.Y >= 3 {
			t.Errorf("entity placed outside the room interior at %v", pos)
		}
	}
}

func TestRoomSeededPlacement(t *testing.T) {
	s := newSpawner(t)
	rng := random.New(99)

	for i := 0; i < 50; i++ {
		w := donburi.NewWorld()
		room := world.NewRoom(10, 5, 8, 6)
		spawned := s.Room(context.Background(), w, rng, room, DefaultSettings)

		monsters, items := 0, 0
		seen := make(map[ecs.Position]bool)
		for _, e := range spawned {
			pos := *ecs.MustGet(w, e, ecs.PositionComponent)
			if !room.Contains(pos.X, pos.Y) {
				t.Errorf("entity at %v outside room %+v", pos, room)
			}
			if seen[pos] {
				t.Errorf("two entities share %v", pos)
			}
			seen[pos] = true
			if ecs.Has(w, e, ecs.MonsterTag) {
				monsters++
			} else {
				items++
			}
		}
		if monsters >= DefaultSettings.MaxMonsters || items >= DefaultSettings.MaxItems {
			t.Errorf("rolled %d monsters and %d items, want fewer than %d and %d",
				monsters, items, DefaultSettings.MaxMonsters, DefaultSettings.MaxItems)
		}
	}
}
