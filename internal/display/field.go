package display

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/ottocalc/internal/editor"
)

// prompt precedes the expression field. Kept unstyled in width math.
const prompt = "calc> "

// fieldStart returns the first visible rune so the caret cell fits in
// avail columns. The field scrolls horizontally; it never wraps.
func fieldStart(runes []rune, caret, avail int) int {
	used := 1 // caret cell
	start := caret
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if used+rw > avail {
			break
		}
		used += rw
		start--
	}
	return start
}

// renderField draws the visible window of the buffer with the selection
// highlighted and, when focused, a block caret.
func renderField(ed *editor.Editor, avail int, focused bool) string {
	runes := []rune(ed.Text())
	sel := ed.Selection()
	caret := ed.Caret()
	start := fieldStart(runes, caret, avail)

	var b strings.Builder
	used := 0
	for i := start; i < len(runes); i++ {
		rw := runewidth.RuneWidth(runes[i])
		if used+rw > avail {
			break
		}
		used += rw

		ch := string(runes[i])
		switch {
		case focused && i == caret:
			b.WriteString(caretStyle.Render(ch))
		case i >= sel.Start && i < sel.End:
			b.WriteString(fieldSelStyle.Render(ch))
		default:
			b.WriteString(fieldTextStyle.Render(ch))
		}
	}
	if focused && caret == len(runes) && used < avail {
		b.WriteString(caretStyle.Render(" "))
	}
	return b.String()
}

// fieldHit maps column x (relative to the start of the field, after the
// prompt) to a caret offset.
func fieldHit(ed *editor.Editor, avail, x int) int {
	runes := []rune(ed.Text())
	start := fieldStart(runes, ed.Caret(), avail)
	if x <= 0 {
		return start
	}
	col := 0
	for i := start; i < len(runes); i++ {
		rw := runewidth.RuneWidth(runes[i])
		// Clicking the right half of a wide rune lands after it.
		if x < col+rw {
			if rw > 1 && x-col >= rw/2 {
				return i + 1
			}
			return i
		}
		col += rw
	}
	return len(runes)
}
