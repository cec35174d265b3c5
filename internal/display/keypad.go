package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// Role marks what a keypad button does when pressed.
type Role int

const (
	RoleInsert Role = iota // insert Value literally
	RoleFunc               // insert a call opener such as "sin("
	RoleAction             // run the named Action in Value
)

// Named keypad actions.
const (
	ActionClear  = "clear"
	ActionDelete = "delete"
	ActionSubmit = "submit"
)

// Button is one keypad cell.
type Button struct {
	Label string
	Role  Role
	Value string
}

// Command maps the button to the engine command it triggers. Insert and
// function buttons share the keypad insertion path, so both get implicit
// multiplication.
func (b Button) Command() (domain.Command, bool) {
	switch b.Role {
	case RoleInsert, RoleFunc:
		return domain.Insert(b.Value), true
	case RoleAction:
		switch b.Value {
		case ActionClear:
			return domain.Clear(), true
		case ActionDelete:
			return domain.Delete(), true
		case ActionSubmit:
			return domain.Submit(), true
		}
	}
	return domain.Command{}, false
}

func lit(s string) Button { return Button{Label: s, Role: RoleInsert, Value: s} }
func litAs(label, s string) Button { return Button{Label: label, Role: RoleInsert, Value: s} }
func fn(name string) Button { return Button{Label: name, Role: RoleFunc, Value: name + "("} }
func action(label, name string) Button { return Button{Label: label, Role: RoleAction, Value: name} }

// DefaultKeypad returns the stock layout. The function row matches what the
// reference evaluator whitelists.
func DefaultKeypad() [][]Button {
	return [][]Button{
		{fn("sin"), fn("cos"), fn("tan"), fn("sqrt"), fn("log")},
		{fn("abs"), fn("pow"), fn("round"), lit("pi"), lit("e")},
		{lit("7"), lit("8"), lit("9"), litAs("÷", "/"), action("C", ActionClear)},
		{lit("4"), lit("5"), lit("6"), litAs("×", "*"), action("⌫", ActionDelete)},
		{lit("1"), lit("2"), lit("3"), litAs("−", "-"), lit("(")},
		{lit("0"), lit("."), lit(","), lit("+"), lit(")")},
		{litAs("xʸ", "**"), litAs("mod", "%"), action("=", ActionSubmit)},
	}
}

// keypadLeft is the left margin of the keypad grid.
const keypadLeft = 2

// keyGap separates adjacent cells.
const keyGap = 1

// cellWidthFor sizes cells to fit the widest label with a column of padding
// on each side.
func cellWidthFor(rows [][]Button) int {
	w := 1
	for _, row := range rows {
		for _, b := range row {
			if lw := runewidth.StringWidth(b.Label); lw > w {
				w = lw
			}
		}
	}
	return w + 2
}

func buttonStyle(b Button) lipgloss.Style {
	switch b.Role {
	case RoleFunc:
		return keyFuncStyle
	case RoleAction:
		return keyActionStyle
	default:
		return keyLiteralStyle
	}
}

// renderKeypad draws the grid. focusRow/focusCol mark the highlighted cell,
// or -1 when the keypad does not have focus.
func renderKeypad(rows [][]Button, cellW, focusRow, focusCol int) string {
	margin := strings.Repeat(" ", keypadLeft)
	gap := strings.Repeat(" ", keyGap)

	lines := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, b := range row {
			st := buttonStyle(b)
			if r == focusRow && c == focusCol {
				st = keyFocusStyle
			}
			cells[c] = st.Width(cellW).Align(lipgloss.Center).Render(b.Label)
		}
		lines[r] = margin + strings.Join(cells, gap)
	}
	return strings.Join(lines, "\n")
}

// keypadHit maps a position relative to the keypad's top-left line to a
// button. Gaps and the margin hit nothing.
func keypadHit(rows [][]Button, cellW, x, y int) (row, col int, ok bool) {
	if y < 0 || y >= len(rows) {
		return 0, 0, false
	}
	x -= keypadLeft
	if x < 0 {
		return 0, 0, false
	}
	stride := cellW + keyGap
	col = x / stride
	if x%stride >= cellW || col >= len(rows[y]) {
		return 0, 0, false
	}
	return y, col, true
}
