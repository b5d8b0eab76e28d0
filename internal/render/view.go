package render

import (
	"fmt"

	"github.com/dshills/editkit/internal/engine/damage"
	"github.com/dshills/editkit/internal/engine/textstore"
)

// View paints a text store onto a backend, honoring the buffer's
// damage protocol: Clean repositions the cursor, Line repaints the
// cursor's row, Full repaints the viewport. The bottom screen row is
// reserved for messages. Scrolling to keep the cursor visible upgrades
// any refresh to a full repaint. Tabs expand to tab stops, wide East
// Asian runes take two cells, and other control characters take none,
// so a rune column and its screen column can differ.
type View struct {
	store   textstore.Store
	backend Backend
	top     int
	message string
}

// NewView creates a view over the given store and backend. The
// backend must already be initialized.
func NewView(store textstore.Store, backend Backend) *View {
	if store == nil || backend == nil {
		panic("render: nil store or backend")
	}
	return &View{store: store, backend: backend}
}

// Refresh redraws per the damage level with the cursor at (row, col).
func (v *View) Refresh(lv damage.Level, row, col int) {
	v.render(lv, row, col, -1, -1)
}

// RefreshMarked redraws like Refresh with the selection between the
// cursor and mark shown in reverse video. The highlighted range is
// half-open: the rune under the higher endpoint stays plain.
func (v *View) RefreshMarked(lv damage.Level, row, col, markRow, markCol int) {
	lo := v.store.OffsetAt(row, col)
	hi := v.store.OffsetAt(markRow, markCol)
	if hi < lo {
		lo, hi = hi, lo
	}
	v.render(lv, row, col, lo, hi)
}

// Messagef writes a message on the bottom screen row. The message
// stays until the next one replaces it.
func (v *View) Messagef(format string, args ...any) {
	v.message = fmt.Sprintf(format, args...)
	w, h := v.backend.Size()
	if h < 1 {
		return
	}
	v.drawMessage(w, h)
	v.backend.Show()
}

func (v *View) render(lv damage.Level, row, col, selLo, selHi int) {
	w, h := v.backend.Size()
	if w < 1 || h < 2 {
		return
	}
	text := h - 1

	if v.follow(row, text) {
		lv = damage.Full
	}

	switch lv {
	case damage.Full:
		for r := v.top; r < v.top+text; r++ {
			v.drawRow(r, w, selLo, selHi)
		}
		v.drawMessage(w, h)
	case damage.Line:
		v.drawRow(row, w, selLo, selHi)
	}

	v.backend.ShowCursor(v.colToX(row, col), row-v.top)
	v.backend.Show()
}

// colToX maps a rune column on a row to the screen column where that
// rune starts. A column past the end of the line maps to the cell
// after the last glyph.
func (v *View) colToX(row, col int) int {
	if row >= v.store.LineCount() {
		return 0
	}
	x := 0
	for i, r := range []rune(v.store.LineText(row)) {
		if i >= col {
			break
		}
		if r == '\t' {
			x += tabWidth - x%tabWidth
			continue
		}
		x += RuneWidth(r)
	}
	return x
}

// follow scrolls the viewport to keep the cursor row visible. It
// reports whether the viewport moved.
func (v *View) follow(row, text int) bool {
	switch {
	case row < v.top:
		v.top = row
	case row >= v.top+text:
		v.top = row - text + 1
	default:
		return false
	}
	return true
}

// drawRow paints one text row, padded to the screen width. Runes whose
// offsets fall inside [selLo, selHi) are reversed; a tab's expansion
// cells and a wide rune's continuation cell inherit its style. A wide
// rune that would straddle the right edge is dropped.
func (v *View) drawRow(row, width, selLo, selHi int) {
	y := row - v.top
	var line []rune
	base := 0
	if row < v.store.LineCount() {
		line = []rune(v.store.LineText(row))
		base = v.store.OffsetAt(row, 0)
	}

	x := 0
	for i, r := range line {
		if x >= width {
			break
		}
		style := StyleDefault
		if off := base + i; off >= selLo && off < selHi {
			style = StyleReverse
		}
		if r == '\t' {
			for stop := min(x+tabWidth-x%tabWidth, width); x < stop; x++ {
				v.backend.SetCell(x, y, Cell{Rune: ' ', Style: style})
			}
			continue
		}
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		v.backend.SetCell(x, y, Cell{Rune: r, Style: style})
		if w == 2 {
			v.backend.SetCell(x+1, y, Cell{Style: style})
		}
		x += w
	}
	for ; x < width; x++ {
		v.backend.SetCell(x, y, Cell{Rune: ' '})
	}
}

// drawMessage paints the reserved bottom row.
func (v *View) drawMessage(w, h int) {
	x := 0
	for _, r := range v.message {
		rw := RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		v.backend.SetCell(x, h-1, Cell{Rune: r})
		if rw == 2 {
			v.backend.SetCell(x+1, h-1, Cell{})
		}
		x += rw
	}
	for ; x < w; x++ {
		v.backend.SetCell(x, h-1, Cell{Rune: ' '})
	}
}
