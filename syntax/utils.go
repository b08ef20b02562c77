package syntax

// isSpace reports whitespace dropped outside quotes/escapes per §4.B.
// Extends the teacher's isSpace with plain ' ', which Unicode Set patterns
// also treat as insignificant outside a quote run.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\r', '\n', '\t', '\f', '\v':
		return true
	default:
		return false
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
