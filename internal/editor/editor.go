// Package editor holds the expression buffer and its caret/selection state.
//
// Offsets are rune indices into the buffer. Every mutation keeps
// 0 <= Start <= End <= Len() for the selection. The editor performs no
// validation of the expression itself; any text is accepted.
package editor

import "strings"

// Selection is a half-open range [Start, End) of rune offsets. An empty
// selection is a plain caret.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection is a plain caret.
func (s Selection) Empty() bool { return s.Start == s.End }

// Editor is a single-line expression buffer. The zero value is an empty
// buffer with the caret at 0. Not safe for concurrent use.
type Editor struct {
	text []rune
	// anchor stays put while head moves during shift-extension.
	anchor int
	head   int
}

// New returns an empty editor.
func New() *Editor { return &Editor{} }

// Text returns the buffer contents.
func (e *Editor) Text() string { return string(e.text) }

// Len returns the buffer length in runes.
func (e *Editor) Len() int { return len(e.text) }

// Caret returns the moving end of the selection.
func (e *Editor) Caret() int { return e.head }

// Selection returns the normalized selection.
func (e *Editor) Selection() Selection {
	if e.anchor <= e.head {
		return Selection{Start: e.anchor, End: e.head}
	}
	return Selection{Start: e.head, End: e.anchor}
}

// Select sets the selection, clamping both ends into the buffer. The caret
// ends up at end.
func (e *Editor) Select(start, end int) {
	e.anchor = clamp(start, 0, len(e.text))
	e.head = clamp(end, 0, len(e.text))
}

// SetCaret collapses the selection to pos.
func (e *Editor) SetCaret(pos int) { e.Select(pos, pos) }

// SetText replaces the whole buffer and puts the caret at the end.
func (e *Editor) SetText(s string) {
	e.text = []rune(singleLine(s))
	e.SetCaret(len(e.text))
}

// Insert replaces the selection (or inserts at the caret) with text and
// places the caret right after it. A function opener typed after an operand
// gets a leading '*'; see NeedsImplicitMultiply. Returns the text actually
// inserted.
func (e *Editor) Insert(text string) string {
	sel := e.Selection()
	var prev rune
	if sel.Start > 0 {
		prev = e.text[sel.Start-1]
	}
	if NeedsImplicitMultiply(prev, text) {
		text = "*" + text
	}
	e.replace(sel, text)
	return text
}

// Type is Insert without the implicit-multiplication rule, matching what
// plain keystrokes do in a text field. Line breaks are dropped.
func (e *Editor) Type(text string) {
	e.replace(e.Selection(), singleLine(text))
}

// Delete removes the selection, or the rune before the caret. At offset 0
// with no selection it does nothing. Reports whether the buffer changed.
func (e *Editor) Delete() bool {
	sel := e.Selection()
	if !sel.Empty() {
		e.replace(sel, "")
		return true
	}
	if sel.Start == 0 {
		return false
	}
	e.replace(Selection{Start: sel.Start - 1, End: sel.Start}, "")
	return true
}

// DeleteForward removes the selection, or the rune after the caret.
func (e *Editor) DeleteForward() bool {
	sel := e.Selection()
	if !sel.Empty() {
		e.replace(sel, "")
		return true
	}
	if sel.End >= len(e.text) {
		return false
	}
	e.replace(Selection{Start: sel.End, End: sel.End + 1}, "")
	return true
}

// Clear empties the buffer.
func (e *Editor) Clear() {
	e.text = e.text[:0]
	e.anchor, e.head = 0, 0
}

// MoveLeft moves the caret one rune left. With extend the selection grows
// from its anchor; without it a non-empty selection collapses to its start.
func (e *Editor) MoveLeft(extend bool) {
	if extend {
		e.head = clamp(e.head-1, 0, len(e.text))
		return
	}
	sel := e.Selection()
	if !sel.Empty() {
		e.SetCaret(sel.Start)
		return
	}
	e.SetCaret(e.head - 1)
}

// MoveRight mirrors MoveLeft.
func (e *Editor) MoveRight(extend bool) {
	if extend {
		e.head = clamp(e.head+1, 0, len(e.text))
		return
	}
	sel := e.Selection()
	if !sel.Empty() {
		e.SetCaret(sel.End)
		return
	}
	e.SetCaret(e.head + 1)
}

// Home moves the caret to offset 0.
func (e *Editor) Home(extend bool) {
	if extend {
		e.head = 0
		return
	}
	e.SetCaret(0)
}

// End moves the caret past the last rune.
func (e *Editor) End(extend bool) {
	if extend {
		e.head = len(e.text)
		return
	}
	e.SetCaret(len(e.text))
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() { e.Select(0, len(e.text)) }

// replace swaps sel for text and collapses the caret after the new text.
func (e *Editor) replace(sel Selection, text string) {
	ins := []rune(text)
	next := make([]rune, 0, len(e.text)-(sel.End-sel.Start)+len(ins))
	next = append(next, e.text[:sel.Start]...)
	next = append(next, ins...)
	next = append(next, e.text[sel.End:]...)
	e.text = next
	e.SetCaret(sel.Start + len(ins))
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
