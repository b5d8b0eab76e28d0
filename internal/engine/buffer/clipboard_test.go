package buffer

import (
	"testing"

	"github.com/dshills/editkit/internal/engine/textstore"
)

func TestCopyCapturesInclusiveRange(t *testing.T) {
	b := New(textstore.FromString("abc"))

	b.Copy(0, 2)

	if got := b.ClipText(); got != "abc" {
		t.Errorf("ClipText() = %q, want %q", got, "abc")
	}
	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	if b.Modified() {
		t.Error("Modified() = true after copy")
	}
}

func TestCutRemovesRangeKeepsClip(t *testing.T) {
	b := New(textstore.FromString("abc"))

	b.Cut(0, 2)

	if got := b.Text(); got != "" {
		t.Errorf("Text() = %q, want \"\"", got)
	}
	if got := b.ClipText(); got != "abc" {
		t.Errorf("ClipText() = %q, want %q", got, "abc")
	}
	if !b.Modified() {
		t.Error("Modified() = false after cut")
	}
}

func TestCopyOrdersOffsets(t *testing.T) {
	b := New(textstore.FromString("abcdef"))

	b.Copy(4, 1)

	if got := b.ClipText(); got != "bcde" {
		t.Errorf("ClipText() = %q, want %q", got, "bcde")
	}
}

func TestCopyPullsEndSentinelOntoFinalRune(t *testing.T) {
	b := New(textstore.FromString("abc"))

	b.Copy(1, 3)

	if got := b.ClipText(); got != "bc" {
		t.Errorf("ClipText() = %q, want %q", got, "bc")
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	b := New(textstore.FromString("one two three"))

	b.Copy(4, 6) // "two"
	b.Paste(0)

	if got := b.Text(); got != "twoone two three" {
		t.Errorf("Text() = %q, want %q", got, "twoone two three")
	}
	if got := b.ClipText(); got != "two" {
		t.Errorf("ClipText() = %q, want %q", got, "two")
	}
}

func TestCutAdjustsMarkPastRange(t *testing.T) {
	b := New(textstore.FromString("abcdef"))
	b.SetMark(5)

	b.Cut(1, 3) // removes "bcd"

	if got := b.Mark(); got != 2 {
		t.Errorf("Mark() = %d, want 2", got)
	}
	if got := b.Text(); got != "aef" {
		t.Errorf("Text() = %q, want %q", got, "aef")
	}
}

func TestCopyOnEmptyBufferClearsClip(t *testing.T) {
	b := New(textstore.FromString("ab"))
	b.Copy(0, 1)

	b.DeleteRange(0, 2)
	b.Copy(0, 0)

	if got := b.ClipText(); got != "" {
		t.Errorf("ClipText() = %q, want \"\"", got)
	}
}

func TestPasteEmptyClipIsNoop(t *testing.T) {
	b := New(textstore.FromString("ab"))

	b.Paste(1)

	if got := b.Text(); got != "ab" {
		t.Errorf("Text() = %q, want %q", got, "ab")
	}
	if b.Modified() {
		t.Error("Modified() = true after empty paste")
	}
}
