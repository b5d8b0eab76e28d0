package buffer

import (
	"fmt"
	"os"
)

// Load replaces the buffer contents with the named file. The store is
// cleared and full damage pended before the read is attempted, so a
// failed load leaves an empty buffer with the redraw still owed. On
// success the filename is recorded and the modified flag cleared.
// Failures are reported through the messenger and returned.
func (b *Buffer) Load(name string) error {
	b.dirty.NoteFull()
	b.store.Clear()
	b.point = 0
	b.mark = NoMark

	f, err := os.Open(name)
	if err != nil {
		return b.ioFail("load", name, err)
	}
	defer f.Close()

	if _, err := b.store.ReadFrom(f); err != nil {
		return b.ioFail("load", name, err)
	}

	b.filename = name
	b.modified = false
	return nil
}

// Save writes the buffer contents to the named file. On success the
// filename is recorded and the modified flag cleared. Failures are
// reported through the messenger and returned.
func (b *Buffer) Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return b.ioFail("save", name, err)
	}

	if _, err := b.store.WriteTo(f); err != nil {
		f.Close()
		return b.ioFail("save", name, err)
	}
	if err := f.Close(); err != nil {
		return b.ioFail("save", name, err)
	}

	b.filename = name
	b.modified = false
	return nil
}

// ioFail reports an I/O failure to the messenger and wraps it for the
// caller. Load and save failures are ordinary editing outcomes, never
// fatal.
func (b *Buffer) ioFail(op, name string, err error) error {
	wrapped := fmt.Errorf("%s %s: %w", op, name, err)
	b.report("%v", wrapped)
	return wrapped
}
