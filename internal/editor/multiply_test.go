package editor

import "testing"

func TestNeedsImplicitMultiply(t *testing.T) {
	tests := []struct {
		prev rune
		text string
		want bool
	}{
		{'5', "sin(", true},
		{'0', "(", true},
		{'x', "cos(", true},
		{'Z', "log(", true},
		{'.', "sqrt(", true},
		{')', "(", true},
		{0, "sin(", false},
		{'+', "sin(", false},
		{'(', "sin(", false},
		{' ', "sin(", false},
		{'π', "sin(", false},
		{'5', "pi", false},
		{'5', "7", false},
		{'5', "", false},
	}

	for _, tt := range tests {
		name := string(tt.prev) + "|" + tt.text
		t.Run(name, func(t *testing.T) {
			if got := NeedsImplicitMultiply(tt.prev, tt.text); got != tt.want {
				t.Fatalf("NeedsImplicitMultiply(%q, %q) = %v, want %v", tt.prev, tt.text, got, tt.want)
			}
		})
	}
}
