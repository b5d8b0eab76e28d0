package buffer

import "github.com/dshills/editkit/internal/engine/damage"

// Display receives damage reports. Refresh scopes the redraw to the
// damage level with the cursor at (row, col); RefreshMarked adds the
// selection endpoint.
type Display interface {
	Refresh(lv damage.Level, row, col int)
	RefreshMarked(lv damage.Level, row, col, markRow, markCol int)
}

// Messenger is the sink for user-visible messages, typically a status
// line.
type Messenger interface {
	Messagef(format string, args ...any)
}

// Update reports the accumulated damage to the display along with the
// point's row and column, and the mark's when one is set, then resets
// the damage to clean. With no display attached the reset still
// happens.
func (b *Buffer) Update() {
	if b.display != nil {
		lv := b.dirty.Level()
		row := b.store.RowOf(b.point)
		col := b.store.ColOf(b.point)
		if b.HasMark() {
			b.display.RefreshMarked(lv, row, col, b.store.RowOf(b.mark), b.store.ColOf(b.mark))
		} else {
			b.display.Refresh(lv, row, col)
		}
	}
	b.dirty.Reset()
}

// ForceRewrite pends a full redraw for the next Update.
func (b *Buffer) ForceRewrite() {
	b.dirty.NoteFull()
}

// InitDisplay forces a full redraw and performs it immediately. Called
// once at session start.
func (b *Buffer) InitDisplay() {
	b.dirty.NoteFull()
	b.Update()
}

// Echo formats a message to the attached messenger. Macros and the
// interactive layer share this path for status-line output.
func (b *Buffer) Echo(format string, args ...any) {
	b.report(format, args...)
}

// report formats a message to the messenger, if one is attached.
func (b *Buffer) report(format string, args ...any) {
	if b.messenger != nil {
		b.messenger.Messagef(format, args...)
	}
}
