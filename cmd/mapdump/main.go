// Command mapdump prints a generated dungeon to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/tetra/internal/random"
	"github.com/samdwyer/tetra/internal/world"
)

func main() {
	seed := flag.Int64("seed", 1, "generator seed, 0 for a random one")
	gen := flag.String("gen", "rooms", "generator: rooms or bsp")
	width := flag.Int("width", world.DefaultWidth, "map width")
	height := flag.Int("height", world.DefaultHeight, "map height")
	flag.Parse()

	settings := world.DefaultRoomSettings
	if err := settings.Fits(*width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "mapdump: %v\n", err)
		os.Exit(2)
	}
	rng := random.New(*seed)

	var candidates iter.Seq[world.Room]
	switch *gen {
	case "rooms":
		candidates = world.RandomRooms(rng, *width, *height, settings)
	case "bsp":
		candidates = world.BSPRooms(rng, *width, *height, settings)
	default:
		fmt.Fprintf(os.Stderr, "unknown generator %q\n", *gen)
		os.Exit(2)
	}

	m := world.Generate(context.Background(), *width, *height, candidates)
	fmt.Print(render(m))
	color.Cyan.Printf("%d rooms, %d floor tiles\n", len(m.Rooms), m.FloorCount())
}

func render(m *world.Map) string {
	wall := color.Style{color.FgGray}
	floor := color.Style{color.FgGreen}
	centre := color.Style{color.FgYellow, color.OpBold}

	centres := make(map[int]bool, len(m.Rooms))
	for _, r := range m.Rooms {
		x, y := r.Center()
		centres[m.Index(x, y)] = true
	}

	var b strings.Builder
	for y := range m.Height() {
		for x := range m.Width() {
			idx := m.Index(x, y)
			tile := m.Tile(x, y)
			switch {
			case centres[idx]:
				b.WriteString(centre.Sprint("+"))
			case tile == world.TileWall:
				b.WriteString(wall.Sprint(string(tile.Rune())))
			default:
				b.WriteString(floor.Sprint(string(tile.Rune())))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
