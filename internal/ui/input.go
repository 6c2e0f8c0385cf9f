package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tetra/internal/game"
)

// moveKeys maps vi keys to movement deltas.
var moveKeys = map[rune][2]int{
	'h': {-1, 0},
	'j': {0, 1},
	'k': {0, -1},
	'l': {1, 0},
	'y': {-1, -1},
	'u': {1, -1},
	'b': {-1, 1},
	'n': {1, 1},
}

// KeyCommand translates a key press into a command. Inside a menu letters
// select entries; elsewhere they are actions. quit reports a request to leave
// the game.
func KeyCommand(ev *tcell.EventKey, inMenu bool) (cmd game.Command, quit bool) {
	return translate(ev.Key(), ev.Rune(), inMenu)
}

func translate(key tcell.Key, ch rune, inMenu bool) (game.Command, bool) {
	switch key {
	case tcell.KeyCtrlC:
		return game.Command{}, true
	case tcell.KeyEscape:
		return game.Cancel(), false
	case tcell.KeyUp:
		return game.Move(0, -1), false
	case tcell.KeyDown:
		return game.Move(0, 1), false
	case tcell.KeyLeft:
		return game.Move(-1, 0), false
	case tcell.KeyRight:
		return game.Move(1, 0), false
	case tcell.KeyRune:
		// handled below
	default:
		return game.Command{}, false
	}

	if inMenu {
		if ch >= 'a' && ch <= 'z' {
			return game.Select(int(ch - 'a')), false
		}
		return game.Command{}, false
	}

	if d, ok := moveKeys[ch]; ok {
		return game.Move(d[0], d[1]), false
	}
	switch ch {
	case 'g':
		return game.Pickup(), false
	case 'i':
		return game.OpenInventory(), false
	case 'd':
		return game.OpenDrop(), false
	case 'q', 'Q':
		return game.Command{}, true
	}
	return game.Command{}, false
}
