package buffer

// TransposeChars swaps the rune before pos with the rune at pos,
// hopping across line boundaries when one of the two candidates is a
// newline. It returns the offset the cursor should land on.
//
// When the rune at pos opens its line, the swap partner is the
// second-to-last rune of the nearest preceding line that holds more
// than a bare newline. When the rune at pos is itself the newline, the
// partner is the first rune of the nearest following line that does
// not open with one. Empty lines are skipped in both directions;
// running out of lines fails with ErrAtStart or ErrAtEnd.
func (b *Buffer) TransposeChars(pos int) (int, error) {
	if pos == b.store.Len() {
		return 0, ErrAtEnd
	}
	if pos == 0 {
		return 0, ErrAtStart
	}

	if b.store.RuneAt(pos) != '\n' {
		if b.store.ColOf(pos) == 0 {
			row := b.store.RowOf(pos) - 1
			for row >= 0 && b.store.LineLen(row) == 1 {
				row--
			}
			if row < 0 {
				return 0, ErrAtStart
			}
			b.swapRunes(pos, b.store.OffsetAt(row, b.store.LineLen(row)-2))
			return pos + 1, nil
		}
		b.swapRunes(pos-1, pos)
		return pos + 1, nil
	}

	// The rune at pos is the newline ending its row. Walk down past
	// rows that open with another newline.
	for row := b.store.RowOf(pos) + 1; ; row++ {
		start := b.store.OffsetAt(row, 0)
		if start == b.store.Len() {
			return 0, ErrAtEnd
		}
		if b.store.RuneAt(start) != '\n' {
			b.swapRunes(pos-1, start)
			return start + 1, nil
		}
	}
}

// swapRunes exchanges the runes at two offsets. It works on the store
// directly: a delete and reinsert at the same offset must leave the
// mark where it is, which the buffer-level edit ops would not.
func (b *Buffer) swapRunes(p1, p2 int) {
	low, high := p1, p2
	if low > high {
		low, high = high, low
	}
	if high >= b.store.Len() {
		panic("buffer: swap at end of buffer")
	}

	r1 := b.store.RuneAt(low)
	r2 := b.store.RuneAt(high)
	row := b.store.RowOf(b.point)
	structural := r1 == '\n' || r2 == '\n' ||
		b.store.RowOf(low) != row || b.store.RowOf(high) != row
	b.dirty.Note(structural, row)

	b.store.DeleteRune(high)
	b.store.InsertRune(high, r1)
	b.store.DeleteRune(low)
	b.store.InsertRune(low, r2)
	b.modified = true
}
