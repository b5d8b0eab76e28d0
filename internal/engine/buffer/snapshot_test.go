package buffer

import (
	"testing"

	"github.com/dshills/editkit/internal/engine/damage"
	"github.com/dshills/editkit/internal/engine/textstore"
)

func TestStateRoundTrip(t *testing.T) {
	b := New(textstore.FromString("abcdef"))
	b.SetPoint(3)
	b.SetMark(5)

	s := b.State()
	b.SetPoint(0)
	b.ClearMark()
	b.Restore(s)

	if got := b.Point(); got != 3 {
		t.Errorf("Point() = %d, want 3", got)
	}
	if got := b.Mark(); got != 5 {
		t.Errorf("Mark() = %d, want 5", got)
	}
}

func TestRestoreLeavesModifiedAndFilename(t *testing.T) {
	b := New(textstore.FromString("abcdef"))

	s := b.State()
	b.InsertRune(0, 'x')
	b.Restore(s)

	if !b.Modified() {
		t.Error("Modified() = false, want true after restore")
	}
	if got := b.Filename(); got != "" {
		t.Errorf("Filename() = %q, want \"\"", got)
	}
}

func TestRestoreRunsDamageRecheck(t *testing.T) {
	b := New(textstore.FromString("ab\ncd"))
	s := b.State() // point 0, row 0

	b.SetPoint(4)        // row 1
	b.InsertRune(4, 'x') // line damage on row 1
	b.Restore(s)         // point back to row 0

	if got := b.dirty.Level(); got != damage.Full {
		t.Errorf("level after cross-row restore = %v, want Full", got)
	}
}

func TestRestoreStalePointWrittenRaw(t *testing.T) {
	// A snapshot holds no text reference, so a later shrink can leave
	// its point past the end. Restore hands it back untouched.
	b := New(textstore.FromString("abcdef"))
	b.SetPoint(5)

	s := b.State()
	b.DeleteRange(0, 4)
	b.Restore(s)

	if got := b.Point(); got != 5 {
		t.Errorf("Point() = %d, want the captured 5", got)
	}
}

func TestRestoreUnsetMark(t *testing.T) {
	b := New(textstore.FromString("abcdef"))

	s := b.State()
	b.SetMark(2)
	b.Restore(s)

	if b.HasMark() {
		t.Error("HasMark() = true, want false after restoring unset mark")
	}
}
