package display

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/ottocalc/internal/editor"
)

func TestFieldStartKeepsCaretVisible(t *testing.T) {
	runes := []rune(strings.Repeat("9", 30))

	if got := fieldStart(runes, 5, 10); got != 0 {
		t.Fatalf("caret inside first window should not scroll, got %d", got)
	}
	// Caret at 30 needs 30 columns of text plus the caret cell in 10.
	if got := fieldStart(runes, 30, 10); got != 21 {
		t.Fatalf("expected start 21, got %d", got)
	}
}

func TestFieldStartWideRunes(t *testing.T) {
	// Each full-width plus is two columns.
	runes := []rune("1＋2＋3")

	tests := []struct {
		caret, avail, want int
	}{
		{5, 1, 5},
		{5, 2, 4},
		{5, 3, 4}, // the wide rune before 3 does not fit
		{5, 4, 3},
		{5, 8, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := fieldStart(runes, tt.caret, tt.avail); got != tt.want {
			t.Fatalf("fieldStart(caret=%d, avail=%d) = %d, want %d", tt.caret, tt.avail, got, tt.want)
		}
	}
}

func TestRenderFieldLongBuffer(t *testing.T) {
	ed := editor.New()
	ed.SetText(strings.Repeat("1+", 8000))

	begin := time.Now()
	for i := 0; i < 10; i++ {
		renderField(ed, 74, true)
		fieldHit(ed, 74, 10)
	}
	if elapsed := time.Since(begin); elapsed > 500*time.Millisecond {
		t.Fatalf("rendering a 16k-rune field 10 times took %s", elapsed)
	}

	// The window ends at the caret.
	out := stripANSI(renderField(ed, 74, true))
	if runewidth.StringWidth(out) != 74 {
		t.Fatalf("expected a full 74-column window, got %d columns", runewidth.StringWidth(out))
	}
}

func TestFieldHitWideRunes(t *testing.T) {
	ed := editor.New()
	ed.SetText("1＋2") // full-width plus occupies two columns
	ed.SetCaret(0)

	tests := []struct {
		x    int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{40, 3},
	}
	for _, tt := range tests {
		if got := fieldHit(ed, 20, tt.x); got != tt.want {
			t.Fatalf("fieldHit(x=%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRenderFieldShowsText(t *testing.T) {
	ed := editor.New()
	ed.SetText("sqrt(2)")
	out := renderField(ed, 40, false)
	if !strings.Contains(stripANSI(out), "sqrt(2)") {
		t.Fatalf("expected buffer text in %q", out)
	}
}

// stripANSI drops CSI sequences so assertions can look at plain text.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
