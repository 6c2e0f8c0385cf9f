package game

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdPickup
	CmdInventory
	CmdDrop
	CmdCancel
	CmdSelect
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdMove:
		return "move"
	case CmdPickup:
		return "pickup"
	case CmdInventory:
		return "inventory"
	case CmdDrop:
		return "drop"
	case CmdCancel:
		return "cancel"
	case CmdSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Command is one discrete player input.
type Command struct {
	Kind   CommandKind
	DX, DY int // CmdMove delta
	Index  int // CmdSelect menu entry
}

// Move returns a move-or-attack command.
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// Pickup returns a pick-up-here command.
func Pickup() Command { return Command{Kind: CmdPickup} }

// OpenInventory returns the command opening the inventory menu.
func OpenInventory() Command { return Command{Kind: CmdInventory} }

// OpenDrop returns the command opening the drop menu.
func OpenDrop() Command { return Command{Kind: CmdDrop} }

// Cancel returns the command leaving a menu.
func Cancel() Command { return Command{Kind: CmdCancel} }

// Select returns the command choosing menu entry index.
func Select(index int) Command { return Command{Kind: CmdSelect, Index: index} }
