package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/tetra/internal/spawner"
	"github.com/samdwyer/tetra/internal/world"
)

// Map generators.
const (
	GeneratorRooms = "rooms"
	GeneratorBSP   = "bsp"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int

	// Room candidates drawn by the generator. Sizes follow random.Rng, so
	// MaxRoomSize is exclusive.
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	// Generator is GeneratorRooms or GeneratorBSP.
	Generator string

	// Per-room spawn caps, exclusive.
	MaxMonsters int
	MaxItems    int
}

// DefaultConfig returns the classic 80x43 setup.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		MaxRooms:    world.DefaultRoomSettings.Count,
		MinRoomSize: world.DefaultRoomSettings.MinSize,
		MaxRoomSize: world.DefaultRoomSettings.MaxSize,
		Generator:   GeneratorRooms,
		MaxMonsters: spawner.DefaultSettings.MaxMonsters,
		MaxItems:    spawner.DefaultSettings.MaxItems,
	}
}

// Validate reports the first setting that cannot produce a playable map.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("map size %dx%d too small", c.Width, c.Height)
	case c.MaxRooms < 1:
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	case c.MaxMonsters < 0 || c.MaxItems < 0:
		return errors.New("spawn caps must not be negative")
	case c.Generator != GeneratorRooms && c.Generator != GeneratorBSP:
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	return c.RoomSettings().Fits(c.Width, c.Height)
}

// RoomSettings returns the generator settings.
func (c Config) RoomSettings() world.RoomSettings {
	return world.RoomSettings{
		Count:   c.MaxRooms,
		MinSize: c.MinRoomSize,
		MaxSize: c.MaxRoomSize,
	}
}

// SpawnSettings returns the per-room spawn caps.
func (c Config) SpawnSettings() spawner.Settings {
	return spawner.Settings{
		MaxMonsters: c.MaxMonsters,
		MaxItems:    c.MaxItems,
	}
}
