package app

import (
	"unicode/utf8"

	"github.com/dshills/editkit/internal/engine/buffer"
	"github.com/dshills/editkit/internal/render"
)

// promptState is the status-line search prompt.
type promptState struct {
	active   bool
	query    []rune
	origin   buffer.State
	searched bool
}

// startSearch opens the search prompt. Inside the prompt, C-s jumps
// to the next match of the query (or of the previous search string
// while the query is empty), Enter keeps the position reached, and
// C-g returns to where the search began.
func (a *App) startSearch() {
	a.prompt = promptState{active: true, origin: a.buf.State()}
	a.showPrompt()
}

func (a *App) showPrompt() {
	a.buf.Echo("Search: %s", string(a.prompt.query))
}

func (a *App) handleSearchKey(ev render.Event) {
	switch ev.Key {
	case render.KeyRune:
		if ev.Mod.Has(render.ModAlt) {
			a.backend.Beep()
			return
		}
		a.prompt.query = append(a.prompt.query, ev.Rune)
		a.showPrompt()
	case render.KeyBackspace:
		if n := len(a.prompt.query); n > 0 {
			a.prompt.query = a.prompt.query[:n-1]
		}
		a.showPrompt()
	case render.KeyCtrlS:
		a.commitQuery()
		if a.jumpToMatch() {
			a.showPrompt()
		}
		a.prompt.searched = true
	case render.KeyEnter:
		a.commitQuery()
		ok := true
		if !a.prompt.searched {
			ok = a.jumpToMatch()
		}
		a.prompt.active = false
		if ok {
			a.buf.Echo("")
		}
	case render.KeyCtrlG, render.KeyEscape:
		a.prompt.active = false
		a.buf.Restore(a.prompt.origin)
		a.buf.Echo("Quit")
	default:
		a.backend.Beep()
	}
}

// commitQuery makes a non-empty query the buffer's search content. An
// empty query leaves the previous search string in place for repeats.
func (a *App) commitQuery() {
	if len(a.prompt.query) > 0 {
		a.buf.SetSearchContent(string(a.prompt.query))
	}
}

// jumpToMatch searches forward from the point and lands just past the
// match, so an immediate repeat finds the next one.
func (a *App) jumpToMatch() bool {
	needle := a.buf.SearchContent()
	if needle == "" {
		a.backend.Beep()
		a.buf.Echo("No search string")
		return false
	}

	hit, err := a.buf.Search()
	if err != nil {
		a.backend.Beep()
		a.buf.Echo("Failing search: %s", needle)
		return false
	}
	a.history.push(a.buf.State())
	a.buf.SetPoint(hit + utf8.RuneCountInString(needle))
	return true
}
