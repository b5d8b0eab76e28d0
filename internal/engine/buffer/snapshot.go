package buffer

// State is an immutable capture of the point and mark. It references
// no text, so it stays valid across later edits; the captured offsets
// may by then be out of range.
type State struct {
	Point int
	Mark  int
}

// State captures the current point and mark.
func (b *Buffer) State() State {
	return State{Point: b.point, Mark: b.mark}
}

// Restore writes a captured point and mark back into the buffer. The
// modified flag and filename are untouched. A restored point still
// inside the text goes through SetPoint and its damage re-check; a
// stale out-of-range one is written as-is, and the caller owns the
// consequences.
func (b *Buffer) Restore(s State) {
	if s.Point >= 0 && s.Point <= b.store.Len() {
		b.SetPoint(s.Point)
	} else {
		b.point = s.Point
	}
	b.mark = s.Mark
}
