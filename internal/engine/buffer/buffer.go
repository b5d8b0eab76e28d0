package buffer

import (
	"errors"
	"fmt"

	"github.com/dshills/editkit/internal/engine/damage"
	"github.com/dshills/editkit/internal/engine/textstore"
)

// Errors returned by buffer operations.
var (
	ErrAtStart         = errors.New("at start of buffer")
	ErrAtEnd           = errors.New("at end of buffer")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NoMark is the mark value meaning no selection is active. It sits
// below every valid offset, so the mark adjustment rules skip it
// without a special case.
const NoMark = -1

// Buffer is the editable document's logical state. All offsets count
// runes. Not safe for concurrent use; the session driving the buffer
// is its only mutator.
type Buffer struct {
	store     textstore.Store
	display   Display
	messenger Messenger

	point    int
	mark     int
	modified bool
	filename string

	clip          textstore.Text
	searchContent string

	dirty damage.Tracker
}

// New creates a buffer over the given store.
func New(store textstore.Store, opts ...Option) *Buffer {
	if store == nil {
		panic("buffer: nil store")
	}

	b := &Buffer{
		store: store,
		mark:  NoMark,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Point returns the current cursor offset.
func (b *Buffer) Point() int {
	return b.point
}

// SetPoint moves the point. A pending line-level redraw is only valid
// while the point stays on the damaged row, so a row change escalates
// the damage before the move is stored.
func (b *Buffer) SetPoint(pos int) {
	if pos < 0 || pos > b.store.Len() {
		panic(fmt.Sprintf("buffer: point %d out of range [0,%d]", pos, b.store.Len()))
	}
	b.dirty.PointMoved(b.store.RowOf(pos))
	b.point = pos
}

// Mark returns the selection mark, or NoMark when no selection is
// active.
func (b *Buffer) Mark() int {
	return b.mark
}

// HasMark returns true if a selection mark is set.
func (b *Buffer) HasMark() bool {
	return b.mark != NoMark
}

// SetMark places the selection mark.
func (b *Buffer) SetMark(pos int) {
	if pos < 0 || pos > b.store.Len() {
		panic(fmt.Sprintf("buffer: mark %d out of range [0,%d]", pos, b.store.Len()))
	}
	b.mark = pos
}

// ClearMark deactivates the selection.
func (b *Buffer) ClearMark() {
	b.mark = NoMark
}

// Modified returns true if the buffer has unsaved changes.
func (b *Buffer) Modified() bool {
	return b.modified
}

// Filename returns the name set by the last successful Load or Save.
func (b *Buffer) Filename() string {
	return b.filename
}

// SetFilename sets the name Save writes to. Visiting a file that does
// not exist yet lands here.
func (b *Buffer) SetFilename(name string) {
	b.filename = name
}

// SearchContent returns the current search string.
func (b *Buffer) SearchContent() string {
	return b.searchContent
}

// SetSearchContent sets the string Search looks for.
func (b *Buffer) SetSearchContent(s string) {
	b.searchContent = s
}

// ClipText returns the clipboard register's contents.
func (b *Buffer) ClipText() string {
	return b.clip.String()
}

// Len returns the text length in runes.
func (b *Buffer) Len() int {
	return b.store.Len()
}

// LineCount returns the number of lines in the text.
func (b *Buffer) LineCount() int {
	return b.store.LineCount()
}

// Text returns the full text.
func (b *Buffer) Text() string {
	return b.store.StringAt(0, b.store.Len())
}
