package buffer

// Search scans forward from the point for the search content, wrapping
// past the end of the text back to the start. The match is case
// sensitive. It returns the offset of the first rune of the match and
// never moves the point or mark; ErrNotFound means the content is
// empty or absent.
func (b *Buffer) Search() (int, error) {
	pat := []rune(b.searchContent)
	if len(pat) == 0 {
		return 0, ErrNotFound
	}

	text := []rune(b.store.StringAt(0, b.store.Len()))
	if i := indexRunes(text[b.point:], pat); i >= 0 {
		return b.point + i, nil
	}
	if i := indexRunes(text, pat); i >= 0 && i < b.point {
		return i, nil
	}
	return 0, ErrNotFound
}

// indexRunes returns the index of the first occurrence of pat in s, or
// -1 if pat is absent.
func indexRunes(s, pat []rune) int {
	for i := 0; i+len(pat) <= len(s); i++ {
		match := true
		for j := range pat {
			if s[i+j] != pat[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
