package textstore

import "io"

// Store is the contract between the editor buffer and its character
// storage. All positions count runes; rows and columns are 0-indexed.
// Valid offsets span [0, Len()]: the value Len() itself addresses the
// end of the store and is legal everywhere except RuneAt and
// DeleteRune. Out-of-range arguments are contract violations and
// panic rather than returning an error.
type Store interface {
	// Len returns the total number of runes stored.
	Len() int

	// LineCount returns the number of lines. An empty store has one
	// empty line.
	LineCount() int

	// LineLen returns the length of a line in runes, counting its
	// terminating newline if it has one.
	LineLen(row int) int

	// LineText returns a line's text without its terminating newline.
	LineText(row int) string

	// RuneAt returns the rune at offset. Requires offset < Len().
	RuneAt(offset int) rune

	// RowOf returns the row containing offset. Offset Len() maps to
	// the last row.
	RowOf(offset int) int

	// ColOf returns the column of offset within its row.
	ColOf(offset int) int

	// OffsetAt returns the flat offset of (row, col). Requires
	// col <= LineLen(row).
	OffsetAt(row, col int) int

	// Slice returns an immutable copy of the n runes starting at
	// offset.
	Slice(offset, n int) Text

	// StringAt returns the n runes starting at offset as a string.
	StringAt(offset, n int) string

	// InsertRune inserts a single rune at offset.
	InsertRune(offset int, r rune)

	// InsertString inserts a string at offset.
	InsertString(offset int, s string)

	// InsertText inserts an immutable fragment at offset.
	InsertText(offset int, t Text)

	// DeleteRune removes the rune at offset. Requires offset < Len().
	DeleteRune(offset int)

	// DeleteRange removes the n runes starting at offset.
	DeleteRange(offset, n int)

	// Clear removes all content, leaving one empty line.
	Clear()

	// ReadFrom appends the reader's contents to the end of the store,
	// returning the number of bytes consumed. A read error leaves the
	// store unchanged.
	ReadFrom(r io.Reader) (int64, error)

	// WriteTo writes the store's contents to w, returning the number
	// of bytes written.
	WriteTo(w io.Writer) (int64, error)
}

// Text is an immutable fragment of store content. The zero value is
// the empty fragment.
type Text struct {
	runes []rune
}

// NewText creates a fragment from a string.
func NewText(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{runes: []rune(s)}
}

// Len returns the fragment's length in runes.
func (t Text) Len() int {
	return len(t.runes)
}

// IsEmpty returns true if the fragment holds no runes.
func (t Text) IsEmpty() bool {
	return len(t.runes) == 0
}

// String returns the fragment's content.
func (t Text) String() string {
	return string(t.runes)
}
