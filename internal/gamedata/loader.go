package gamedata

import (
	"encoding/json"
	"fmt"
)

// decode reads an embedded JSON file into a T.
func decode[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}

// checkDefs rejects definitions with a missing or repeated id, a negative
// spawn weight, or weights that are all zero.
func checkDefs[T Weighted](filename string, defs []T) error {
	seen := make(map[string]bool, len(defs))
	total := 0
	for i, d := range defs {
		switch id := d.Key(); {
		case id == "":
			return fmt.Errorf("%s: entry %d has no id", filename, i)
		case seen[id]:
			return fmt.Errorf("%s: duplicate id %q", filename, id)
		case d.Weight() < 0:
			return fmt.Errorf("%s: %q has negative spawn weight", filename, id)
		default:
			seen[id] = true
			total += d.Weight()
		}
	}
	if len(defs) > 0 && total == 0 {
		return fmt.Errorf("%s: no entry has a spawn weight", filename)
	}
	return nil
}
