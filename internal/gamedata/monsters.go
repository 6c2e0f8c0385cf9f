package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster kind loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex color code (e.g., "#FF0000")
	HP          int    `json:"hp"`          // Starting and maximum hit points
	Power       int    `json:"power"`       // Melee power
	Defense     int    `json:"defense"`     // Damage subtracted from incoming melee
	SightRange  int    `json:"sightRange"`  // Viewshed radius
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// Key returns the registry key.
func (m MonsterDef) Key() string { return m.ID }

// Weight returns the spawn weight.
func (m MonsterDef) Weight() int { return m.SpawnWeight }

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	return glyphRune(m.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	return colorOr(m.Color, tcell.ColorWhite)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := decode[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	if err := checkDefs("monsters.json", file.Monsters); err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

func glyphRune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}
