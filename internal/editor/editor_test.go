package editor

import (
	"strings"
	"testing"
)

func editorWith(text string, start, end int) *Editor {
	e := New()
	e.SetText(text)
	e.Select(start, end)
	return e
}

func TestInsertReplacesSelectionEverywhere(t *testing.T) {
	const buf = "12+3.4"
	inserts := []string{"7", "+", "sin(", "(", "pi", ""}

	n := len([]rune(buf))
	for s := 0; s <= n; s++ {
		for end := s; end <= n; end++ {
			for _, text := range inserts {
				e := editorWith(buf, s, end)
				got := e.Insert(text)

				want := text
				var prev rune
				if s > 0 {
					prev = rune(buf[s-1])
				}
				if NeedsImplicitMultiply(prev, text) {
					want = "*" + text
				}
				if got != want {
					t.Fatalf("Insert(%q) at [%d,%d): inserted %q, want %q", text, s, end, got, want)
				}
				if e.Text() != buf[:s]+want+buf[end:] {
					t.Fatalf("Insert(%q) at [%d,%d): buffer %q", text, s, end, e.Text())
				}
				caret := s + len(want)
				if sel := e.Selection(); sel.Start != caret || sel.End != caret {
					t.Fatalf("Insert(%q) at [%d,%d): selection %+v, want caret %d", text, s, end, sel, caret)
				}
			}
		}
	}
}

func TestInsertImplicitMultiplyExamples(t *testing.T) {
	tests := []struct {
		name  string
		buf   string
		caret int
		text  string
		want  string
	}{
		{"after digit", "5", 1, "sin(", "5*sin("},
		{"empty buffer", "", 0, "sin(", "sin("},
		{"after operator", "5+", 2, "sin(", "5+sin("},
		{"after close paren", "(2)", 3, "sqrt(", "(2)*sqrt("},
		{"after constant", "pi", 2, "cos(", "pi*cos("},
		{"after period", "3.", 2, "(", "3.*("},
		{"plain literal after digit", "5", 1, "pi", "5pi"},
		{"mid buffer", "2+3", 1, "log(", "2*log(+3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := editorWith(tt.buf, tt.caret, tt.caret)
			e.Insert(tt.text)
			if e.Text() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, e.Text())
			}
		})
	}
}

func TestTypeSkipsImplicitMultiply(t *testing.T) {
	e := editorWith("5", 1, 1)
	e.Type("(")
	if e.Text() != "5(" {
		t.Fatalf("expected %q, got %q", "5(", e.Text())
	}

	e.Type("1\n+2\r\n")
	if e.Text() != "5(1+2" {
		t.Fatalf("line breaks should be dropped, got %q", e.Text())
	}
	if e.Caret() != 5 {
		t.Fatalf("expected caret 5, got %d", e.Caret())
	}
}

func TestDeleteWithSelection(t *testing.T) {
	const buf = "sin(30)+1"
	n := len(buf)
	for s := 0; s <= n; s++ {
		for end := s + 1; end <= n; end++ {
			e := editorWith(buf, s, end)
			if !e.Delete() {
				t.Fatalf("Delete at [%d,%d) reported no change", s, end)
			}
			if e.Text() != buf[:s]+buf[end:] {
				t.Fatalf("Delete at [%d,%d): buffer %q", s, end, e.Text())
			}
			if sel := e.Selection(); sel.Start != s || sel.End != s {
				t.Fatalf("Delete at [%d,%d): selection %+v", s, end, sel)
			}
		}
	}
}

func TestDeleteAtCaret(t *testing.T) {
	const buf = "12*(3)"
	for s := 1; s <= len(buf); s++ {
		e := editorWith(buf, s, s)
		e.Delete()
		if e.Text() != buf[:s-1]+buf[s:] {
			t.Fatalf("Delete at %d: buffer %q", s, e.Text())
		}
		if e.Caret() != s-1 {
			t.Fatalf("Delete at %d: caret %d", s, e.Caret())
		}
	}

	e := editorWith(buf, 0, 0)
	if e.Delete() {
		t.Fatal("Delete at 0 should be a no-op")
	}
	if e.Text() != buf || e.Caret() != 0 {
		t.Fatalf("Delete at 0 changed state: %q caret=%d", e.Text(), e.Caret())
	}
}

func TestDeleteCountsRunes(t *testing.T) {
	e := New()
	e.SetText("2×π")
	e.Delete()
	if e.Text() != "2×" {
		t.Fatalf("expected one rune removed, got %q", e.Text())
	}
}

func TestDeleteForward(t *testing.T) {
	e := editorWith("123", 1, 1)
	e.DeleteForward()
	if e.Text() != "13" || e.Caret() != 1 {
		t.Fatalf("got %q caret=%d", e.Text(), e.Caret())
	}

	e.End(false)
	if e.DeleteForward() {
		t.Fatal("DeleteForward at end should be a no-op")
	}
}

func TestSelectClamps(t *testing.T) {
	e := New()
	e.SetText("abc")
	e.Select(-4, 99)
	sel := e.Selection()
	if sel.Start != 0 || sel.End != 3 {
		t.Fatalf("expected [0,3), got %+v", sel)
	}

	e.Select(3, 1)
	sel = e.Selection()
	if sel.Start != 1 || sel.End != 3 || e.Caret() != 1 {
		t.Fatalf("expected normalized [1,3) with caret 1, got %+v caret=%d", sel, e.Caret())
	}
}

func TestMovement(t *testing.T) {
	e := New()
	e.SetText("1+2")

	e.MoveLeft(false)
	e.MoveLeft(true)
	if sel := e.Selection(); sel.Start != 1 || sel.End != 2 {
		t.Fatalf("expected [1,2), got %+v", sel)
	}

	e.MoveRight(false)
	if e.Caret() != 2 || !e.Selection().Empty() {
		t.Fatalf("expected collapse to end 2, got caret=%d sel=%+v", e.Caret(), e.Selection())
	}

	e.Home(true)
	if sel := e.Selection(); sel.Start != 0 || sel.End != 2 {
		t.Fatalf("expected [0,2), got %+v", sel)
	}
	e.MoveLeft(false)
	if e.Caret() != 0 {
		t.Fatalf("expected collapse to start, got %d", e.Caret())
	}

	e.MoveLeft(false)
	if e.Caret() != 0 {
		t.Fatalf("caret went below 0: %d", e.Caret())
	}

	e.SelectAll()
	e.Type("9")
	if e.Text() != "9" {
		t.Fatalf("expected select-all replace, got %q", e.Text())
	}
}

func TestClear(t *testing.T) {
	e := New()
	e.SetText(strings.Repeat("9", 10))
	e.Select(2, 5)
	e.Clear()
	if e.Text() != "" || e.Len() != 0 || e.Caret() != 0 {
		t.Fatalf("expected empty buffer, got %q caret=%d", e.Text(), e.Caret())
	}
}
