// Package damage tracks how much of the display has gone stale between
// two screen updates. Most edits dirty a single row; the tracker's job
// is to remember the cheapest repaint that is still correct after an
// arbitrary batch of edits.
package damage

// Level describes how much of the display must be redrawn.
type Level uint8

const (
	// Clean means the display matches the model; nothing to redraw.
	Clean Level = iota

	// Line means exactly one row is stale.
	Line

	// Full means the entire display must be repainted.
	Full
)

// String returns the string representation of the damage level.
func (l Level) String() string {
	switch l {
	case Clean:
		return "clean"
	case Line:
		return "line"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Tracker accumulates damage between display updates. The zero value is
// a clean tracker ready for use.
//
// Escalation is monotone: within a batch the level only ever increases
// (Clean -> Line -> Full); Reset is the only way back down. While the
// level is Line, Row reports the single stale row. The owner must call
// PointMoved whenever the cursor changes rows, which keeps the
// invariant that Line-level damage always sits on the cursor's row.
type Tracker struct {
	level Level
	row   int
}

// Note records new damage. A structural change (one that adds or
// removes a line break, or touches a row other than the cursor's)
// escalates to Full; anything else is line-local damage on row.
func (t *Tracker) Note(structural bool, row int) {
	if structural {
		t.level = Full
		return
	}
	if t.level == Full {
		return
	}
	t.level = Line
	t.row = row
}

// NoteFull escalates straight to a full repaint.
func (t *Tracker) NoteFull() {
	t.level = Full
}

// PointMoved re-checks pending damage when the cursor lands on row.
// A line-local repaint is only trustworthy while the cursor stays on
// the damaged row; once it leaves, only a full repaint is safe.
func (t *Tracker) PointMoved(row int) {
	if t.level == Line && t.row != row {
		t.level = Full
	}
}

// Level reports the accumulated damage level.
func (t *Tracker) Level() Level {
	return t.level
}

// Row reports the stale row. Meaningful only while Level is Line.
func (t *Tracker) Row() int {
	return t.row
}

// Reset marks the display clean again. Called after each update.
func (t *Tracker) Reset() {
	t.level = Clean
	t.row = 0
}
