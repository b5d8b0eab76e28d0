package render

// tabWidth is the number of columns between tab stops.
const tabWidth = 4

// RuneWidth returns the number of screen cells a rune occupies: 0 for
// control characters, 2 for wide East Asian characters, 1 otherwise.
// Tabs count as control characters here; the View expands them to tab
// stops itself.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	if isWideRune(r) {
		return 2
	}
	return 1
}

// isWideRune reports whether a rune takes two cells. Covers the common
// East Asian wide and fullwidth blocks rather than the full Unicode
// width tables.
func isWideRune(r rune) bool {
	// Hangul Jamo
	if r >= 0x1100 && r <= 0x115F {
		return true
	}
	// Hangul Compatibility Jamo
	if r >= 0x3130 && r <= 0x318F {
		return true
	}
	// CJK Unified Ideographs and related
	if r >= 0x2E80 && r <= 0x9FFF {
		return true
	}
	// Hangul Syllables
	if r >= 0xAC00 && r <= 0xD7A3 {
		return true
	}
	// CJK Compatibility Ideographs
	if r >= 0xF900 && r <= 0xFAFF {
		return true
	}
	// Vertical forms
	if r >= 0xFE10 && r <= 0xFE1F {
		return true
	}
	// CJK Compatibility Forms
	if r >= 0xFE30 && r <= 0xFE6F {
		return true
	}
	// Fullwidth Forms
	if r >= 0xFF00 && r <= 0xFF60 {
		return true
	}
	// Fullwidth symbol variants
	if r >= 0xFFE0 && r <= 0xFFE6 {
		return true
	}
	// CJK Unified Ideographs Extension B and beyond
	if r >= 0x20000 && r <= 0x2FFFF {
		return true
	}
	// CJK Compatibility Ideographs Supplement
	if r >= 0x2F800 && r <= 0x2FA1F {
		return true
	}

	return false
}
