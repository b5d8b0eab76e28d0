package app

import (
	"unicode/utf8"

	"github.com/dshills/editkit/internal/engine/buffer"
	"github.com/dshills/editkit/internal/render"
)

// handleKey dispatches one key event. The bindings are Emacs-flavored:
// control keys and arrows move and edit, C-x prefixes save and quit,
// Alt runes carry the meta commands. Unbound keys beep.
func (a *App) handleKey(ev render.Event) error {
	if a.prompt.active {
		a.handleSearchKey(ev)
		return nil
	}
	if a.ctrlX {
		a.ctrlX = false
		return a.handleCtrlX(ev)
	}

	confirmQuit := a.quitPending
	a.quitPending = false

	switch ev.Key {
	case render.KeyRune:
		if ev.Mod.Has(render.ModAlt) {
			a.handleMeta(ev.Rune)
			return nil
		}
		a.selfInsert(ev.Rune)
	case render.KeyEnter:
		a.selfInsert('\n')
	case render.KeyTab:
		a.selfInsert('\t')
	case render.KeyCtrlF, render.KeyRight:
		a.forwardChar()
	case render.KeyCtrlB, render.KeyLeft:
		a.backwardChar()
	case render.KeyCtrlN, render.KeyDown:
		a.nextLine()
	case render.KeyCtrlP, render.KeyUp:
		a.previousLine()
	case render.KeyCtrlA, render.KeyHome:
		a.beginningOfLine()
	case render.KeyCtrlE, render.KeyEnd:
		a.endOfLine()
	case render.KeyCtrlV, render.KeyPageDown:
		a.pageDown()
	case render.KeyPageUp:
		a.pageUp()
	case render.KeyCtrlD, render.KeyDelete:
		a.deleteChar()
	case render.KeyBackspace:
		a.deleteBackward()
	case render.KeyCtrlSpace:
		a.setMark()
	case render.KeyCtrlG, render.KeyEscape:
		a.keyboardQuit()
	case render.KeyCtrlW:
		a.killRegion()
	case render.KeyCtrlY:
		a.yank()
	case render.KeyCtrlT:
		a.transposeChars()
	case render.KeyCtrlS:
		a.startSearch()
	case render.KeyCtrlL:
		a.buf.ForceRewrite()
	case render.KeyCtrlU:
		a.popState()
	case render.KeyCtrlX:
		a.ctrlX = true
		a.quitPending = confirmQuit
	default:
		a.backend.Beep()
	}
	return nil
}

// handleCtrlX handles the key after a C-x prefix.
func (a *App) handleCtrlX(ev render.Event) error {
	confirmQuit := a.quitPending
	a.quitPending = false

	switch ev.Key {
	case render.KeyCtrlS:
		a.saveBuffer()
	case render.KeyCtrlC:
		if a.buf.Modified() && !confirmQuit {
			a.quitPending = true
			a.buf.Echo("Buffer modified; C-x C-s to save, C-x C-c again to quit")
			return nil
		}
		return ErrQuit
	default:
		a.backend.Beep()
	}
	return nil
}

// handleMeta handles Alt-modified runes.
func (a *App) handleMeta(r rune) {
	switch r {
	case 'w':
		a.copyRegion()
	case 'v':
		a.pageUp()
	case '<':
		a.beginningOfText()
	case '>':
		a.endOfText()
	default:
		a.backend.Beep()
	}
}

func (a *App) selfInsert(r rune) {
	p := a.buf.Point()
	a.buf.InsertRune(p, r)
	a.buf.SetPoint(p + 1)
}

func (a *App) deleteChar() {
	p := a.buf.Point()
	if p == a.store.Len() {
		a.backend.Beep()
		return
	}
	a.buf.DeleteRune(p)
}

func (a *App) deleteBackward() {
	p := a.buf.Point()
	if p == 0 {
		a.backend.Beep()
		return
	}
	a.buf.SetPoint(p - 1)
	a.buf.DeleteRune(p - 1)
}

func (a *App) setMark() {
	a.history.push(a.buf.State())
	a.buf.SetMark(a.buf.Point())
	a.buf.Echo("Mark set")
}

func (a *App) keyboardQuit() {
	a.buf.ClearMark()
	a.buf.Echo("Quit")
}

func (a *App) copyRegion() {
	if !a.buf.HasMark() {
		a.backend.Beep()
		a.buf.Echo("No mark set")
		return
	}
	a.buf.Copy(a.buf.Mark(), a.buf.Point())
	a.buf.ClearMark()
	a.buf.Echo("Region copied")
}

// killRegion cuts between mark and point. The point lands at the low
// end of the removed range.
func (a *App) killRegion() {
	if !a.buf.HasMark() {
		a.backend.Beep()
		a.buf.Echo("No mark set")
		return
	}
	a.history.push(a.buf.State())

	low := a.buf.Mark()
	if p := a.buf.Point(); p < low {
		low = p
	}
	a.buf.Cut(a.buf.Mark(), a.buf.Point())
	a.buf.ClearMark()
	a.buf.SetPoint(low)
}

// yank pastes the clipboard at the point and moves past it.
func (a *App) yank() {
	clip := a.buf.ClipText()
	if clip == "" {
		a.backend.Beep()
		a.buf.Echo("Clipboard is empty")
		return
	}
	a.history.push(a.buf.State())

	p := a.buf.Point()
	a.buf.Paste(p)
	a.buf.SetPoint(p + utf8.RuneCountInString(clip))
}

func (a *App) transposeChars() {
	pos, err := a.buf.TransposeChars(a.buf.Point())
	if err != nil {
		a.backend.Beep()
		a.buf.Echo("%v", err)
		return
	}
	a.buf.SetPoint(pos)
}

// popState restores the most recent position snapshot. Snapshots can
// outlive the text that made them valid, so stale offsets are clamped
// before the restore.
func (a *App) popState() {
	st, ok := a.history.pop()
	if !ok {
		a.backend.Beep()
		a.buf.Echo("No earlier position")
		return
	}
	if n := a.store.Len(); st.Point > n {
		st.Point = n
	}
	if st.Mark > a.store.Len() {
		st.Mark = buffer.NoMark
	}
	a.buf.Restore(st)
	a.buf.Echo("Position restored")
}

func (a *App) saveBuffer() {
	name := a.buf.Filename()
	if name == "" {
		a.backend.Beep()
		a.buf.Echo("No file name")
		return
	}
	if err := a.buf.Save(name); err != nil {
		a.log.Error("save %s: %v", name, err)
		return
	}
	a.log.Info("saved %s", name)
	a.buf.Echo("Wrote %s", name)
}
