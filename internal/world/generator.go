package world

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tetra/internal/random"
	"github.com/samdwyer/tetra/internal/telemetry"
)

// RoomSettings bounds the candidate rooms drawn by RandomRooms.
type RoomSettings struct {
	Count   int // Number of candidates to draw
	MinSize int // Smallest room dimension
	MaxSize int // Largest room dimension (exclusive, see random.Rng)
}

// DefaultRoomSettings matches the classic 80x43 layout.
var DefaultRoomSettings = RoomSettings{
	Count:   30,
	MinSize: 6,
	MaxSize: 10,
}

// Fits reports whether every room the settings can draw fits inside a width
// by height map with its wall border, so placement never leaves the grid.
func (s RoomSettings) Fits(width, height int) error {
	if s.MinSize < 2 || s.MaxSize <= s.MinSize {
		return fmt.Errorf("room size range [%d, %d) is empty or too small", s.MinSize, s.MaxSize)
	}
	if s.MaxSize+1 > min(width, height) {
		return fmt.Errorf("rooms up to %d cells do not fit a %dx%d map", s.MaxSize-1, width, height)
	}
	return nil
}

// Generate builds a map from a finite stream of candidate rooms.
//
// Every candidate is offered to PlaceRoom once; a rejected candidate is simply
// dropped. After the stream is drained each placed room is joined to the one
// placed before it with an L-shaped corridor: horizontal along the previous
// room's center row, then vertical along the current room's center column.
func Generate(ctx context.Context, width, height int, candidates iter.Seq[Room]) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)

	offered := 0
	for r := range candidates {
		offered++
		m.PlaceRoom(r)
	}

	for i := 1; i < len(m.Rooms); i++ {
		prevX, prevY := m.Rooms[i-1].Center()
		curX, curY := m.Rooms[i].Center()

		m.CarveHorizontal(prevX, curX, prevY)
		m.CarveVertical(prevY, curY, curX)
	}
	m.RegenerateNav()

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.candidates", offered),
		attribute.Int("map.room_count", len(m.Rooms)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// RandomRooms yields settings.Count rooms of random size and position that fit
// inside a width by height map.
func RandomRooms(rng random.Rng, width, height int, settings RoomSettings) iter.Seq[Room] {
	return func(yield func(Room) bool) {
		for i := 0; i < settings.Count; i++ {
			w := rng.Between(settings.MinSize, settings.MaxSize)
			h := rng.Between(settings.MinSize, settings.MaxSize)
			x := rng.Between(1, width-w) - 1
			y := rng.Between(1, height-h) - 1
			if !yield(NewRoom(x, y, w, h)) {
				return
			}
		}
	}
}
