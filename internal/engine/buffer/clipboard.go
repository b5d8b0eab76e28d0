package buffer

import "github.com/dshills/editkit/internal/engine/textstore"

// Copy captures the inclusive range between two offsets into the
// clipboard register, replacing whatever it held. The offsets may come
// in either order; a high offset equal to the length is pulled back
// onto the final rune.
func (b *Buffer) Copy(back, front int) {
	low, n := b.clipRange(back, front)
	if n <= 0 {
		b.clip = textstore.Text{}
		return
	}
	b.clip = b.store.Slice(low, n)
}

// Cut captures the same inclusive range as Copy, then deletes it from
// the text through the standard range-delete path.
func (b *Buffer) Cut(back, front int) {
	low, n := b.clipRange(back, front)
	if n <= 0 {
		b.clip = textstore.Text{}
		return
	}
	b.clip = b.store.Slice(low, n)
	b.DeleteRange(low, n)
}

// Paste inserts the clipboard register at pos.
func (b *Buffer) Paste(pos int) {
	if b.clip.IsEmpty() {
		return
	}
	b.InsertText(pos, b.clip)
}

// clipRange orders two clip endpoints and returns the low offset and
// the inclusive length. The end-of-buffer sentinel as the high end is
// decremented so the captured range stays in bounds.
func (b *Buffer) clipRange(back, front int) (low, n int) {
	low, high := back, front
	if low > high {
		low, high = high, low
	}
	if high == b.store.Len() {
		high--
	}
	return low, high - low + 1
}
