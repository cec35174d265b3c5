package display

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the calculator key bindings. Field bindings apply while
// the expression field has focus; Pad bindings while the keypad has it.
type KeyMap struct {
	Submit, Clear            key.Binding
	Backspace, DeleteForward key.Binding
	Left, Right, Home, End   key.Binding

	SelectLeft, SelectRight, SelectHome, SelectEnd, SelectAll key.Binding

	HistoryPrev, HistoryNext key.Binding
	Paste                    key.Binding

	ToggleKeypad                      key.Binding
	PadUp, PadDown, PadLeft, PadRight key.Binding
	PadPress, PadLeave                key.Binding

	Help, Quit key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		DeleteForward: key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),

		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		SelectEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		HistoryPrev: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "older")),
		HistoryNext: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "newer")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ToggleKeypad: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "keypad")),
		PadUp:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		PadDown:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PadLeft:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		PadRight:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		PadPress:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		PadLeave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to field")),

		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.ToggleKeypad, k.HistoryPrev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear, k.Backspace, k.DeleteForward, k.Paste},
		{k.Left, k.Right, k.Home, k.End, k.SelectAll},
		{k.SelectLeft, k.SelectRight, k.SelectHome, k.SelectEnd},
		{k.HistoryPrev, k.HistoryNext, k.ToggleKeypad, k.PadPress, k.Quit},
	}
}
