package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/editkit/internal/render"
	"github.com/dshills/editkit/internal/script/lua"
	"github.com/dshills/editkit/internal/session"
)

// Run starts the session: initialize the backend, open the file, run
// any macro, then poll key events until quit. Blocks until the
// session ends.
func (a *App) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("backend init: %w", err)
	}
	defer a.backend.Shutdown()

	a.openInitialFile()
	a.buf.InitDisplay()

	if a.opts.Macro != "" {
		if err := a.runMacro(a.opts.Macro); err != nil && a.opts.Batch {
			return err
		}
		a.buf.Update()
	}
	if a.opts.Batch {
		return a.finishBatch()
	}

	return a.loop()
}

// loop is the interactive event loop. Any change while a selection is
// on screen forces a full repaint; the damage protocol only tracks
// the point's row, not the selection shape.
func (a *App) loop() error {
	for {
		ev := a.backend.PollEvent()
		switch ev.Type {
		case render.EventNone:
			return nil
		case render.EventResize:
			a.buf.ForceRewrite()
		case render.EventKey:
			hadMark := a.buf.HasMark()
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.saveSession()
					a.log.Info("quit")
					return nil
				}
				return err
			}
			if hadMark || a.buf.HasMark() {
				a.buf.ForceRewrite()
			}
		}
		a.buf.Update()
	}
}

// openInitialFile loads the startup file when one was given. A file
// that does not exist yet becomes a named empty buffer; other load
// failures leave the scratch buffer and are reported on the status
// line by the buffer itself.
func (a *App) openInitialFile() {
	name := a.opts.File
	if name == "" {
		return
	}

	if err := a.buf.Load(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.buf.SetFilename(name)
			a.buf.Echo("(New file)")
			a.log.Info("new file %s", name)
			return
		}
		a.log.WithComponent("file").Error("load %s: %v", name, err)
		return
	}
	a.log.Info("opened %s (%d lines)", name, a.buf.LineCount())
	a.restoreSession(name)
}

// restoreSession applies the persisted entry for the loaded file.
// Offsets from an older version of the file can be out of range; those
// are ignored rather than clamped, a stale position is not worth
// guessing about.
func (a *App) restoreSession(name string) {
	if a.sess == nil {
		return
	}
	if q := a.sess.Search(); q != "" {
		a.buf.SetSearchContent(q)
	}

	e, ok := a.sess.Lookup(name)
	if !ok {
		return
	}
	if e.Point >= 0 && e.Point <= a.buf.Len() {
		a.buf.SetPoint(e.Point)
	}
	if e.Mark >= 0 && e.Mark <= a.buf.Len() {
		a.buf.SetMark(e.Mark)
	}
	a.log.Debug("restored %s: point %d, mark %d", name, e.Point, e.Mark)
}

// saveSession persists the file entry and search string on quit.
func (a *App) saveSession() {
	if a.sess == nil {
		return
	}
	if name := a.buf.Filename(); name != "" {
		mark := -1
		if a.buf.HasMark() {
			mark = a.buf.Mark()
		}
		a.sess.Remember(name, session.Entry{Point: a.buf.Point(), Mark: mark})
	}
	a.sess.SetSearch(a.buf.SearchContent())
	if err := a.sess.Save(); err != nil {
		a.log.WithComponent("session").Warn("%v", err)
	}
}

// runMacro executes a Lua script against the buffer.
func (a *App) runMacro(path string) error {
	eng := lua.New(a.buf)
	defer eng.Close()

	a.log.Info("running macro %s", path)
	if err := eng.DoFile(path); err != nil {
		a.log.WithComponent("macro").Error("%s: %v", path, err)
		a.buf.Echo("Macro failed: %v", err)
		return fmt.Errorf("macro %s: %w", path, err)
	}
	return nil
}

// finishBatch ends a batch run: write the buffer back if the macro
// changed it, then persist the session.
func (a *App) finishBatch() error {
	if a.buf.Modified() {
		name := a.buf.Filename()
		if name == "" {
			return errors.New("batch: modified buffer has no file name")
		}
		if err := a.buf.Save(name); err != nil {
			return err
		}
		a.log.Info("saved %s", name)
	}
	a.saveSession()
	return nil
}
