package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tetra/internal/game"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		ch       rune
		inMenu   bool
		want     game.Command
		wantQuit bool
	}{
		{"arrow up", tcell.KeyUp, 0, false, game.Move(0, -1), false},
		{"arrow right", tcell.KeyRight, 0, false, game.Move(1, 0), false},
		{"vi left", tcell.KeyRune, 'h', false, game.Move(-1, 0), false},
		{"vi down", tcell.KeyRune, 'j', false, game.Move(0, 1), false},
		{"diagonal y", tcell.KeyRune, 'y', false, game.Move(-1, -1), false},
		{"diagonal n", tcell.KeyRune, 'n', false, game.Move(1, 1), false},
		{"pickup", tcell.KeyRune, 'g', false, game.Pickup(), false},
		{"inventory", tcell.KeyRune, 'i', false, game.OpenInventory(), false},
		{"drop", tcell.KeyRune, 'd', false, game.OpenDrop(), false},
		{"escape", tcell.KeyEscape, 0, false, game.Cancel(), false},
		{"quit", tcell.KeyRune, 'q', false, game.Command{}, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, true, game.Command{}, true},
		{"unknown rune", tcell.KeyRune, 'z', false, game.Command{}, false},
		{"unknown key", tcell.KeyF1, 0, false, game.Command{}, false},
		{"menu first", tcell.KeyRune, 'a', true, game.Select(0), false},
		{"menu letter", tcell.KeyRune, 'h', true, game.Select(7), false},
		{"menu q selects", tcell.KeyRune, 'q', true, game.Select(16), false},
		{"menu escape", tcell.KeyEscape, 0, true, game.Cancel(), false},
		{"menu digit", tcell.KeyRune, '1', true, game.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := translate(tt.key, tt.ch, tt.inMenu)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("translate() = %+v, %v; want %+v, %v", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}
