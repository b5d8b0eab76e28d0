package app

// maxCol returns the highest column the point may occupy on a row.
// Every row except the last ends in a newline the point can sit on;
// on the last row the point may rest one past the final rune.
func (a *App) maxCol(row int) int {
	if row < a.store.LineCount()-1 {
		return a.store.LineLen(row) - 1
	}
	return a.store.LineLen(row)
}

// lineTo moves the point to the given row, keeping the column when the
// row is long enough.
func (a *App) lineTo(row, col int) {
	if col > a.maxCol(row) {
		col = a.maxCol(row)
	}
	a.buf.SetPoint(a.store.OffsetAt(row, col))
}

func (a *App) forwardChar() {
	if p := a.buf.Point(); p < a.store.Len() {
		a.buf.SetPoint(p + 1)
	} else {
		a.backend.Beep()
	}
}

func (a *App) backwardChar() {
	if p := a.buf.Point(); p > 0 {
		a.buf.SetPoint(p - 1)
	} else {
		a.backend.Beep()
	}
}

func (a *App) nextLine() {
	p := a.buf.Point()
	row := a.store.RowOf(p)
	if row+1 >= a.store.LineCount() {
		if p == a.store.Len() {
			a.backend.Beep()
			return
		}
		a.buf.SetPoint(a.store.Len())
		return
	}
	a.lineTo(row+1, a.store.ColOf(p))
}

func (a *App) previousLine() {
	p := a.buf.Point()
	row := a.store.RowOf(p)
	if row == 0 {
		if p == 0 {
			a.backend.Beep()
			return
		}
		a.buf.SetPoint(0)
		return
	}
	a.lineTo(row-1, a.store.ColOf(p))
}

func (a *App) beginningOfLine() {
	a.buf.SetPoint(a.store.OffsetAt(a.store.RowOf(a.buf.Point()), 0))
}

func (a *App) endOfLine() {
	row := a.store.RowOf(a.buf.Point())
	a.buf.SetPoint(a.store.OffsetAt(row, a.maxCol(row)))
}

// pageStride is the number of rows a page motion covers: the text
// area less one row of overlap.
func (a *App) pageStride() int {
	_, h := a.backend.Size()
	if h <= 3 {
		return 1
	}
	return h - 3
}

func (a *App) pageDown() {
	a.pageMove(a.pageStride())
}

func (a *App) pageUp() {
	a.pageMove(-a.pageStride())
}

func (a *App) pageMove(rows int) {
	a.history.push(a.buf.State())
	p := a.buf.Point()
	row := a.store.RowOf(p) + rows
	if row < 0 {
		row = 0
	}
	if last := a.store.LineCount() - 1; row > last {
		row = last
	}
	a.lineTo(row, a.store.ColOf(p))
}

func (a *App) beginningOfText() {
	a.history.push(a.buf.State())
	a.buf.SetPoint(0)
}

func (a *App) endOfText() {
	a.history.push(a.buf.State())
	a.buf.SetPoint(a.store.Len())
}
