package gamedata

import "github.com/gdamore/tcell/v2"

// ItemDef defines an item kind loaded from JSON. Zero-valued effect fields
// mean the item lacks that effect.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	Heal        int    `json:"heal"`       // hp restored on use
	Damage      int    `json:"damage"`     // damage dealt to each target
	Range       int    `json:"range"`      // targeting distance of ranged items
	Radius      int    `json:"radius"`     // blast radius of area items
	Consumable  bool   `json:"consumable"` // destroyed after a successful use
	SpawnWeight int    `json:"spawnWeight"`
}

// Key returns the registry key.
func (i ItemDef) Key() string { return i.ID }

// Weight returns the spawn weight.
func (i ItemDef) Weight() int { return i.SpawnWeight }

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	return glyphRune(i.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (i *ItemDef) TCellColor() tcell.Color {
	return colorOr(i.Color, tcell.ColorWhite)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := decode[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	if err := checkDefs("items.json", file.Items); err != nil {
		return nil, err
	}
	return file.Items, nil
}
