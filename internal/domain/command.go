package domain

// CommandKind classifies an edit or submission request coming from the UI.
type CommandKind int

const (
	CommandInsert        CommandKind = iota // keypad text, implicit multiplication applies
	CommandType                             // raw keyboard text
	CommandDelete                           // backspace
	CommandDeleteForward                    // delete key
	CommandClear
	CommandSubmit  // explicit submit (button or Enter)
	CommandPreview // debounced live evaluation
	CommandMoveLeft
	CommandMoveRight
	CommandHome
	CommandEnd
	CommandSelectLeft
	CommandSelectRight
	CommandSelectHome
	CommandSelectEnd
	CommandSelectAll
	CommandSetCaret // Pos carries the target offset
	CommandHistoryPrev
	CommandHistoryNext
)

// String returns a human-readable command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandInsert:
		return "insert"
	case CommandType:
		return "type"
	case CommandDelete:
		return "delete"
	case CommandDeleteForward:
		return "delete_forward"
	case CommandClear:
		return "clear"
	case CommandSubmit:
		return "submit"
	case CommandPreview:
		return "preview"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandHome:
		return "home"
	case CommandEnd:
		return "end"
	case CommandSelectLeft:
		return "select_left"
	case CommandSelectRight:
		return "select_right"
	case CommandSelectHome:
		return "select_home"
	case CommandSelectEnd:
		return "select_end"
	case CommandSelectAll:
		return "select_all"
	case CommandSetCaret:
		return "set_caret"
	case CommandHistoryPrev:
		return "history_prev"
	case CommandHistoryNext:
		return "history_next"
	default:
		return "unknown"
	}
}

// Command is a single UI request processed by the engine.
type Command struct {
	Kind CommandKind
	Text string // for CommandInsert and CommandType
	Pos  int    // for CommandSetCaret
}

// Insert returns a keypad insertion command.
func Insert(text string) Command { return Command{Kind: CommandInsert, Text: text} }

// Type returns a raw keyboard insertion command.
func Type(text string) Command { return Command{Kind: CommandType, Text: text} }

// Delete returns a backspace command.
func Delete() Command { return Command{Kind: CommandDelete} }

// Clear returns a clear command.
func Clear() Command { return Command{Kind: CommandClear} }

// Submit returns an explicit submit command.
func Submit() Command { return Command{Kind: CommandSubmit} }

// Preview returns a live-evaluation command.
func Preview() Command { return Command{Kind: CommandPreview} }

// Mutates reports whether the command can change the buffer text.
func (c Command) Mutates() bool {
	switch c.Kind {
	case CommandInsert, CommandType, CommandDelete, CommandDeleteForward,
		CommandClear, CommandHistoryPrev, CommandHistoryNext:
		return true
	}
	return false
}
