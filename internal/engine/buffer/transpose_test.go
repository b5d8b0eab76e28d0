package buffer

import (
	"errors"
	"testing"

	"github.com/dshills/editkit/internal/engine/damage"
	"github.com/dshills/editkit/internal/engine/textstore"
)

func TestTransposeAtStartFails(t *testing.T) {
	b := New(textstore.FromString("ab"))

	_, err := b.TransposeChars(0)
	if !errors.Is(err, ErrAtStart) {
		t.Errorf("TransposeChars(0) error = %v, want ErrAtStart", err)
	}
	if got := b.Text(); got != "ab" {
		t.Errorf("Text() = %q, want %q", got, "ab")
	}
}

func TestTransposeAtEndFails(t *testing.T) {
	b := New(textstore.FromString("ab"))

	_, err := b.TransposeChars(2)
	if !errors.Is(err, ErrAtEnd) {
		t.Errorf("TransposeChars(2) error = %v, want ErrAtEnd", err)
	}
}

func TestTransposeAdjacent(t *testing.T) {
	b := New(textstore.FromString("ab\ncd"))

	pos, err := b.TransposeChars(1)
	if err != nil {
		t.Fatalf("TransposeChars(1) error = %v", err)
	}
	if pos != 2 {
		t.Errorf("TransposeChars(1) = %d, want 2", pos)
	}
	if got := b.Text(); got != "ba\ncd" {
		t.Errorf("Text() = %q, want %q", got, "ba\ncd")
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestTransposeColumnZeroReachesPreviousLine(t *testing.T) {
	b := New(textstore.FromString("ab\ncd"))

	pos, err := b.TransposeChars(3)
	if err != nil {
		t.Fatalf("TransposeChars(3) error = %v", err)
	}
	if pos != 4 {
		t.Errorf("TransposeChars(3) = %d, want 4", pos)
	}
	if got := b.Text(); got != "ac\nbd" {
		t.Errorf("Text() = %q, want %q", got, "ac\nbd")
	}
}

func TestTransposeColumnZeroSkipsEmptyLines(t *testing.T) {
	b := New(textstore.FromString("ab\n\n\ncd"))

	pos, err := b.TransposeChars(5)
	if err != nil {
		t.Fatalf("TransposeChars(5) error = %v", err)
	}
	if pos != 6 {
		t.Errorf("TransposeChars(5) = %d, want 6", pos)
	}
	if got := b.Text(); got != "ac\n\n\nbd" {
		t.Errorf("Text() = %q, want %q", got, "ac\n\n\nbd")
	}
}

func TestTransposeColumnZeroAtTopFails(t *testing.T) {
	b := New(textstore.FromString("\nab"))

	_, err := b.TransposeChars(1)
	if !errors.Is(err, ErrAtStart) {
		t.Errorf("TransposeChars(1) error = %v, want ErrAtStart", err)
	}
}

func TestTransposeNewlineHopsToNextLine(t *testing.T) {
	b := New(textstore.FromString("ab\ncd"))

	pos, err := b.TransposeChars(2)
	if err != nil {
		t.Fatalf("TransposeChars(2) error = %v", err)
	}
	if pos != 4 {
		t.Errorf("TransposeChars(2) = %d, want 4", pos)
	}
	if got := b.Text(); got != "ac\nbd" {
		t.Errorf("Text() = %q, want %q", got, "ac\nbd")
	}
}

func TestTransposeNewlineSkipsEmptyLines(t *testing.T) {
	b := New(textstore.FromString("ab\n\n\ncd"))

	pos, err := b.TransposeChars(2)
	if err != nil {
		t.Fatalf("TransposeChars(2) error = %v", err)
	}
	if pos != 6 {
		t.Errorf("TransposeChars(2) = %d, want 6", pos)
	}
	if got := b.Text(); got != "ac\n\n\nbd" {
		t.Errorf("Text() = %q, want %q", got, "ac\n\n\nbd")
	}
}

func TestTransposeNewlineDragsThroughEmptyLine(t *testing.T) {
	b := New(textstore.FromString("ab\n\ncd"))

	pos, err := b.TransposeChars(3)
	if err != nil {
		t.Fatalf("TransposeChars(3) error = %v", err)
	}
	if pos != 5 {
		t.Errorf("TransposeChars(3) = %d, want 5", pos)
	}
	if got := b.Text(); got != "abc\n\nd" {
		t.Errorf("Text() = %q, want %q", got, "abc\n\nd")
	}
}

func TestTransposeNewlineAtBottomFails(t *testing.T) {
	b := New(textstore.FromString("ab\n"))

	_, err := b.TransposeChars(2)
	if !errors.Is(err, ErrAtEnd) {
		t.Errorf("TransposeChars(2) error = %v, want ErrAtEnd", err)
	}
}

func TestTransposeNewlineOnlyEmptyLinesBelowFails(t *testing.T) {
	b := New(textstore.FromString("ab\n\n\n"))

	_, err := b.TransposeChars(2)
	if !errors.Is(err, ErrAtEnd) {
		t.Errorf("TransposeChars(2) error = %v, want ErrAtEnd", err)
	}
}

func TestTransposeLeavesMarkAlone(t *testing.T) {
	b := New(textstore.FromString("abcd"))
	b.SetMark(2)

	if _, err := b.TransposeChars(2); err != nil {
		t.Fatalf("TransposeChars(2) error = %v", err)
	}

	if got := b.Mark(); got != 2 {
		t.Errorf("Mark() = %d, want 2", got)
	}
	if got := b.Text(); got != "acbd" {
		t.Errorf("Text() = %q, want %q", got, "acbd")
	}
}

func TestTransposeSameRowDamageIsLineLevel(t *testing.T) {
	b := New(textstore.FromString("abcd"))
	b.SetPoint(2)

	if _, err := b.TransposeChars(2); err != nil {
		t.Fatalf("TransposeChars(2) error = %v", err)
	}

	if got := b.dirty.Level(); got != damage.Line {
		t.Errorf("level = %v, want Line", got)
	}
	if !b.Modified() {
		t.Error("Modified() = false after transpose")
	}
}

func TestTransposeCrossRowDamageIsFull(t *testing.T) {
	b := New(textstore.FromString("ab\ncd"))
	b.SetPoint(3)

	if _, err := b.TransposeChars(3); err != nil {
		t.Fatalf("TransposeChars(3) error = %v", err)
	}

	if got := b.dirty.Level(); got != damage.Full {
		t.Errorf("level = %v, want Full", got)
	}
}
