package world

import (
	"context"
	"slices"
	"testing"

	"github.com/samdwyer/tetra/internal/random"
)

func TestGenerateAllOverlappingKeepsFirst(t *testing.T) {
	candidates := []Room{
		NewRoom(2, 2, 6, 6),
		NewRoom(3, 3, 6, 6),
		NewRoom(4, 2, 5, 5),
		NewRoom(2, 2, 6, 6),
	}

	m := Generate(context.Background(), 20, 20, slices.Values(candidates))

	if len(m.Rooms) != 1 {
		t.Fatalf("len(Rooms) = %d, want 1", len(m.Rooms))
	}
	if m.Rooms[0] != candidates[0] {
		t.Errorf("Rooms[0] = %+v, want %+v", m.Rooms[0], candidates[0])
	}
	// Only the first room is carved: no corridors.
	if m.FloorCount() != 36 {
		t.Errorf("FloorCount() = %d, want 36", m.FloorCount())
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Tile(x, y) == TileFloor && !m.Rooms[0].Contains(x, y) {
				t.Errorf("floor outside the only room at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateConnectsConsecutiveRooms(t *testing.T) {
	a := NewRoom(1, 1, 4, 4)   // center (3,3)
	b := NewRoom(12, 8, 4, 4)  // center (14,10)
	m := Generate(context.Background(), 20, 15, slices.Values([]Room{a, b}))

	// Horizontal leg on a's center row, vertical leg on b's center column.
	for x := 3; x <= 14; x++ {
		if m.Tile(x, 3) != TileFloor {
			t.Errorf("Tile(%d,3) is not floor", x)
		}
	}
	for y := 3; y <= 10; y++ {
		if m.Tile(14, y) != TileFloor {
			t.Errorf("Tile(14,%d) is not floor", y)
		}
	}
	// The bend is at (14,3); the opposite corner stays wall.
	if m.Tile(3, 10) != TileWall {
		t.Error("corridor bent vertical-first")
	}
	if m.IsBlocked(10, 3) {
		t.Error("nav buffer not regenerated after corridor carving")
	}
}

func TestGeneratedRoomsNeverIntersect(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := random.New(seed)
		m := Generate(context.Background(), DefaultWidth, DefaultHeight,
			RandomRooms(rng, DefaultWidth, DefaultHeight, DefaultRoomSettings))

		if len(m.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed", seed)
		}
		for i := range m.Rooms {
			for j := i + 1; j < len(m.Rooms); j++ {
				if m.Rooms[i].Intersects(m.Rooms[j]) {
					t.Errorf("seed %d: rooms %d and %d intersect", seed, i, j)
				}
			}
		}
	}
}

func TestRandomRoomsFitTheMap(t *testing.T) {
	rng := random.New(7)
	n := 0
	for r := range RandomRooms(rng, DefaultWidth, DefaultHeight, DefaultRoomSettings) {
		n++
		if r.X1 < 0 || r.Y1 < 0 || r.X2 >= DefaultWidth || r.Y2 >= DefaultHeight {
			t.Errorf("candidate %+v leaves the map", r)
		}
		if r.Width() < DefaultRoomSettings.MinSize || r.Width() >= DefaultRoomSettings.MaxSize {
			t.Errorf("candidate width %d outside [%d,%d)", r.Width(), DefaultRoomSettings.MinSize, DefaultRoomSettings.MaxSize)
		}
	}
	if n != DefaultRoomSettings.Count {
		t.Errorf("RandomRooms yielded %d candidates, want %d", n, DefaultRoomSettings.Count)
	}
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	gen := func(seed int64) *Map {
		rng := random.New(seed)
		return Generate(ctx, DefaultWidth, DefaultHeight,
			RandomRooms(rng, DefaultWidth, DefaultHeight, DefaultRoomSettings))
	}

	m1, m2 := gen(12345), gen(12345)
	if !slices.Equal(m1.Rooms, m2.Rooms) {
		t.Fatalf("room lists differ for the same seed")
	}
	if !slices.Equal(m1.Tiles.Data, m2.Tiles.Data) {
		t.Error("tiles differ for the same seed")
	}

	m3 := gen(54321)
	if slices.Equal(m1.Rooms, m3.Rooms) {
		t.Error("maps with different seeds should not be identical")
	}
}

func TestBSPRoomsAreAllAccepted(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		var candidates []Room
		for r := range BSPRooms(random.New(seed), DefaultWidth, DefaultHeight, DefaultRoomSettings) {
			candidates = append(candidates, r)
		}
		if len(candidates) == 0 {
			t.Fatalf("seed %d: BSP produced no rooms", seed)
		}

		m := Generate(context.Background(), DefaultWidth, DefaultHeight, slices.Values(candidates))
		if len(m.Rooms) != len(candidates) {
			t.Errorf("seed %d: placed %d of %d BSP rooms", seed, len(m.Rooms), len(candidates))
		}
	}
}

func TestRoomSettingsFits(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		settings      RoomSettings
		wantErr       bool
	}{
		{"default map", DefaultWidth, DefaultHeight, DefaultRoomSettings, false},
		{"smallest fitting map", 11, 11, DefaultRoomSettings, false},
		{"map too small", 9, 9, DefaultRoomSettings, true},
		{"map too narrow", 10, DefaultHeight, DefaultRoomSettings, true},
		{"empty size range", DefaultWidth, DefaultHeight, RoomSettings{Count: 1, MinSize: 6, MaxSize: 6}, true},
		{"rooms too small", DefaultWidth, DefaultHeight, RoomSettings{Count: 1, MinSize: 1, MaxSize: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Fits(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fits(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSmallestFittingMap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := random.New(seed)
		m := Generate(context.Background(), 11, 11, RandomRooms(rng, 11, 11, DefaultRoomSettings))
		for _, r := range m.Rooms {
			if r.X1 < 0 || r.Y1 < 0 || r.X2 >= 11 || r.Y2 >= 11 {
				t.Fatalf("seed %d: room %+v leaves the 11x11 map", seed, r)
			}
		}
	}
}
