package buffer

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/editkit/internal/engine/textstore"
)

// InsertRune inserts a single rune at pos. The edit is line-local
// unless the rune is a newline or pos sits on a different row than the
// point.
func (b *Buffer) InsertRune(pos int, r rune) {
	b.noteEdit(r == '\n', pos)
	b.store.InsertRune(pos, r)
	if pos <= b.mark {
		b.mark++
	}
	b.modified = true
}

// InsertString inserts a string at pos. Bulk inserts always count as
// structural damage.
func (b *Buffer) InsertString(pos int, s string) {
	b.dirty.NoteFull()
	b.store.InsertString(pos, s)
	if pos <= b.mark {
		b.mark += utf8.RuneCountInString(s)
	}
	b.modified = true
}

// InsertText inserts an immutable fragment at pos.
func (b *Buffer) InsertText(pos int, t textstore.Text) {
	b.dirty.NoteFull()
	b.store.InsertText(pos, t)
	if pos <= b.mark {
		b.mark += t.Len()
	}
	b.modified = true
}

// InsertStore inserts the whole contents of another store at pos.
func (b *Buffer) InsertStore(pos int, src textstore.Store) {
	b.InsertText(pos, src.Slice(0, src.Len()))
}

// Insert dispatches on the payload type: rune, string, textstore.Text,
// or textstore.Store. Anything else, including a bare int where a rune
// literal was meant, is rejected with ErrInvalidArgument.
func (b *Buffer) Insert(pos int, v any) error {
	switch x := v.(type) {
	case rune:
		b.InsertRune(pos, x)
	case string:
		b.InsertString(pos, x)
	case textstore.Text:
		b.InsertText(pos, x)
	case textstore.Store:
		b.InsertStore(pos, x)
	default:
		return fmt.Errorf("insert %T: %w", v, ErrInvalidArgument)
	}
	return nil
}

// DeleteRune removes the rune at pos. Line-local unless the rune is a
// newline or pos sits on a different row than the point.
func (b *Buffer) DeleteRune(pos int) {
	b.noteEdit(b.store.RuneAt(pos) == '\n', pos)
	b.store.DeleteRune(pos)
	if pos < b.mark {
		b.mark--
	}
	b.modified = true
	b.clampPoint()
}

// DeleteRange removes n runes starting at pos. Always structural. A
// mark inside the range collapses onto pos; one past it shifts back by
// n.
func (b *Buffer) DeleteRange(pos, n int) {
	b.dirty.NoteFull()
	b.store.DeleteRange(pos, n)
	if pos < b.mark {
		b.mark -= min(n, b.mark-pos)
	}
	b.modified = true
	b.clampPoint()
}

// noteEdit records damage for a single-rune edit at pos against the
// pre-edit point. Only an edit that avoids the newline and lands on
// the point's own row can get away with repainting one line.
func (b *Buffer) noteEdit(newline bool, pos int) {
	row := b.store.RowOf(b.point)
	b.dirty.Note(newline || b.store.RowOf(pos) != row, row)
}

// clampPoint pulls the point back inside the text after a delete
// shrinks it. The clamped point stays on the row the damage was noted
// against.
func (b *Buffer) clampPoint() {
	if n := b.store.Len(); b.point > n {
		b.point = n
	}
}
