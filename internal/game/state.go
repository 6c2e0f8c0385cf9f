// Package game drives a session: the run-state machine, player commands, the
// inventory and drop menus, and setting up a fresh dungeon.
package game

import "github.com/looplab/fsm"

// State represents the current run state.
type State int

const (
	// StatePreRun runs the pipeline once to establish visibility and indexing.
	StatePreRun State = iota
	// StateAwaitingInput waits for a single player command.
	StateAwaitingInput
	// StatePlayerTurn runs the pipeline with the player's intents.
	StatePlayerTurn
	// StateMonsterTurn runs the pipeline with monster AI enabled.
	StateMonsterTurn
	// StateInventory is the modal menu for using a carried item.
	StateInventory
	// StateDropItem is the modal menu for dropping a carried item.
	StateDropItem
	// StateGameOver is entered once the player dies. Commands are ignored.
	StateGameOver
)

var stateNames = [...]string{
	StatePreRun:        "pre_run",
	StateAwaitingInput: "awaiting_input",
	StatePlayerTurn:    "player_turn",
	StateMonsterTurn:   "monster_turn",
	StateInventory:     "inventory",
	StateDropItem:      "drop_item",
	StateGameOver:      "game_over",
}

// String returns a human-readable state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func parseState(name string) State {
	for i, n := range stateNames {
		if n == name {
			return State(i)
		}
	}
	return -1
}

// State machine events.
const (
	eventStart         = "start"
	eventAct           = "act"
	eventEndTurn       = "end_turn"
	eventMonstersDone  = "monsters_done"
	eventOpenInventory = "open_inventory"
	eventOpenDrop      = "open_drop"
	eventCancel        = "cancel"
	eventDie           = "die"
)

func newMachine() *fsm.FSM {
	s := func(states ...State) []string {
		out := make([]string, len(states))
		for i, st := range states {
			out[i] = st.String()
		}
		return out
	}

	return fsm.NewFSM(
		StatePreRun.String(),
		fsm.Events{
			{Name: eventStart, Src: s(StatePreRun), Dst: StateAwaitingInput.String()},
			{Name: eventAct, Src: s(StateAwaitingInput, StateInventory, StateDropItem), Dst: StatePlayerTurn.String()},
			{Name: eventEndTurn, Src: s(StatePlayerTurn), Dst: StateMonsterTurn.String()},
			{Name: eventMonstersDone, Src: s(StateMonsterTurn), Dst: StateAwaitingInput.String()},
			{Name: eventOpenInventory, Src: s(StateAwaitingInput), Dst: StateInventory.String()},
			{Name: eventOpenDrop, Src: s(StateAwaitingInput), Dst: StateDropItem.String()},
			{Name: eventCancel, Src: s(StateInventory, StateDropItem), Dst: StateAwaitingInput.String()},
			{
				Name: eventDie,
				Src:  s(StatePreRun, StateAwaitingInput, StatePlayerTurn, StateMonsterTurn, StateInventory, StateDropItem),
				Dst:  StateGameOver.String(),
			},
		},
		fsm.Callbacks{},
	)
}
