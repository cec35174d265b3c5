package editor

import "strings"

// NeedsImplicitMultiply reports whether inserting text right after prev
// should gain a leading '*'. It holds when text opens a call (ends in '(')
// and prev is an ASCII digit, an ASCII letter, '.', or ')'. prev is 0 at
// the start of the buffer.
//
//	NeedsImplicitMultiply('5', "sin(") == true   // 5*sin(
//	NeedsImplicitMultiply(0, "sin(")   == false  // sin(
//	NeedsImplicitMultiply('+', "sin(") == false  // +sin(
func NeedsImplicitMultiply(prev rune, text string) bool {
	if !strings.HasSuffix(text, "(") {
		return false
	}
	return isOperandTail(prev)
}

func isOperandTail(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '.' || r == ')':
		return true
	}
	return false
}
