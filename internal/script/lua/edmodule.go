package lua

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editkit/internal/engine/buffer"
)

// edModule binds a buffer to the ed table a macro sees.
type edModule struct {
	buf *buffer.Buffer
}

// register installs the ed table into the Lua state.
func (m *edModule) register(vm *lua.LState) {
	mod := vm.NewTable()

	vm.SetField(mod, "text", vm.NewFunction(m.text))
	vm.SetField(mod, "len", vm.NewFunction(m.bufLen))
	vm.SetField(mod, "line_count", vm.NewFunction(m.lineCount))
	vm.SetField(mod, "point", vm.NewFunction(m.point))
	vm.SetField(mod, "set_point", vm.NewFunction(m.setPoint))
	vm.SetField(mod, "mark", vm.NewFunction(m.mark))
	vm.SetField(mod, "set_mark", vm.NewFunction(m.setMark))
	vm.SetField(mod, "clear_mark", vm.NewFunction(m.clearMark))
	vm.SetField(mod, "insert", vm.NewFunction(m.insert))
	vm.SetField(mod, "delete", vm.NewFunction(m.delete))
	vm.SetField(mod, "delete_range", vm.NewFunction(m.deleteRange))
	vm.SetField(mod, "search", vm.NewFunction(m.search))
	vm.SetField(mod, "set_search", vm.NewFunction(m.setSearch))
	vm.SetField(mod, "copy", vm.NewFunction(m.copy))
	vm.SetField(mod, "cut", vm.NewFunction(m.cut))
	vm.SetField(mod, "paste", vm.NewFunction(m.paste))
	vm.SetField(mod, "clip", vm.NewFunction(m.clip))
	vm.SetField(mod, "transpose", vm.NewFunction(m.transpose))
	vm.SetField(mod, "load", vm.NewFunction(m.load))
	vm.SetField(mod, "save", vm.NewFunction(m.save))
	vm.SetField(mod, "filename", vm.NewFunction(m.filename))
	vm.SetField(mod, "modified", vm.NewFunction(m.modified))
	vm.SetField(mod, "message", vm.NewFunction(m.message))

	vm.SetGlobal("ed", mod)
}

// checkPos validates an offset argument against the text bounds. The
// buffer treats out-of-range offsets as caller bugs and panics, so the
// macro layer screens them into Lua argument errors first.
func (m *edModule) checkPos(vm *lua.LState, narg, pos int) {
	if pos < 0 || pos > m.buf.Len() {
		vm.ArgError(narg, "offset out of range")
	}
}

// clipArgs resolves the endpoints for copy and cut: explicit arguments
// when given, otherwise the mark and the point.
func (m *edModule) clipArgs(vm *lua.LState, op string) (back, front int) {
	if vm.GetTop() == 0 && !m.buf.HasMark() {
		vm.RaiseError("%s: no mark set", op)
	}
	back = vm.OptInt(1, m.buf.Mark())
	front = vm.OptInt(2, m.buf.Point())
	m.checkPos(vm, 1, back)
	m.checkPos(vm, 2, front)
	return back, front
}

// text() -> string
// Returns the full buffer text.
func (m *edModule) text(vm *lua.LState) int {
	vm.Push(lua.LString(m.buf.Text()))
	return 1
}

// len() -> number
// Returns the text length in runes.
func (m *edModule) bufLen(vm *lua.LState) int {
	vm.Push(lua.LNumber(m.buf.Len()))
	return 1
}

// line_count() -> number
// Returns the number of lines.
func (m *edModule) lineCount(vm *lua.LState) int {
	vm.Push(lua.LNumber(m.buf.LineCount()))
	return 1
}

// point() -> number
// Returns the point offset.
func (m *edModule) point(vm *lua.LState) int {
	vm.Push(lua.LNumber(m.buf.Point()))
	return 1
}

// set_point(pos)
// Moves the point.
func (m *edModule) setPoint(vm *lua.LState) int {
	pos := vm.CheckInt(1)
	m.checkPos(vm, 1, pos)
	m.buf.SetPoint(pos)
	return 0
}

// mark() -> number | nil
// Returns the mark offset, or nil when no mark is set.
func (m *edModule) mark(vm *lua.LState) int {
	if !m.buf.HasMark() {
		vm.Push(lua.LNil)
		return 1
	}
	vm.Push(lua.LNumber(m.buf.Mark()))
	return 1
}

// set_mark([pos])
// Places the mark, at the point when pos is omitted.
func (m *edModule) setMark(vm *lua.LState) int {
	pos := vm.OptInt(1, m.buf.Point())
	m.checkPos(vm, 1, pos)
	m.buf.SetMark(pos)
	return 0
}

// clear_mark()
// Deactivates the mark.
func (m *edModule) clearMark(vm *lua.LState) int {
	m.buf.ClearMark()
	return 0
}

// insert(text [, at]) -> end_offset
// Inserts text at the given offset, at the point when omitted. Returns
// the offset just past the inserted text; the point does not move.
func (m *edModule) insert(vm *lua.LState) int {
	s := vm.CheckString(1)
	at := vm.OptInt(2, m.buf.Point())
	m.checkPos(vm, 2, at)

	m.buf.InsertString(at, s)
	vm.Push(lua.LNumber(at + utf8.RuneCountInString(s)))
	return 1
}

// delete([at])
// Removes the rune at the given offset, at the point when omitted.
func (m *edModule) delete(vm *lua.LState) int {
	at := vm.OptInt(1, m.buf.Point())
	if at < 0 || at >= m.buf.Len() {
		vm.ArgError(1, "offset out of range")
	}
	m.buf.DeleteRune(at)
	return 0
}

// delete_range(at, n)
// Removes n runes starting at the given offset.
func (m *edModule) deleteRange(vm *lua.LState) int {
	at := vm.CheckInt(1)
	n := vm.CheckInt(2)
	m.checkPos(vm, 1, at)
	if n < 0 {
		vm.ArgError(2, "count must be non-negative")
	}
	if at+n > m.buf.Len() {
		vm.ArgError(2, "range past end of text")
	}
	m.buf.DeleteRange(at, n)
	return 0
}

// search([needle]) -> number | nil
// Searches forward from the point, wrapping. A needle argument sets
// the search content first. Returns the match offset, or nil when
// nothing matched; the point does not move.
func (m *edModule) search(vm *lua.LState) int {
	if vm.GetTop() >= 1 {
		m.buf.SetSearchContent(vm.CheckString(1))
	}
	pos, err := m.buf.Search()
	if err != nil {
		vm.Push(lua.LNil)
		return 1
	}
	vm.Push(lua.LNumber(pos))
	return 1
}

// set_search(needle)
// Sets the search content without searching.
func (m *edModule) setSearch(vm *lua.LState) int {
	m.buf.SetSearchContent(vm.CheckString(1))
	return 0
}

// copy([back, front])
// Copies the inclusive range into the clipboard. Without arguments the
// range runs between the mark and the point.
func (m *edModule) copy(vm *lua.LState) int {
	back, front := m.clipArgs(vm, "copy")
	m.buf.Copy(back, front)
	return 0
}

// cut([back, front])
// Like copy, then deletes the range from the text.
func (m *edModule) cut(vm *lua.LState) int {
	back, front := m.clipArgs(vm, "cut")
	m.buf.Cut(back, front)
	return 0
}

// paste([at])
// Inserts the clipboard at the given offset, at the point when
// omitted.
func (m *edModule) paste(vm *lua.LState) int {
	at := vm.OptInt(1, m.buf.Point())
	m.checkPos(vm, 1, at)
	m.buf.Paste(at)
	return 0
}

// clip() -> string
// Returns the clipboard contents.
func (m *edModule) clip(vm *lua.LState) int {
	vm.Push(lua.LString(m.buf.ClipText()))
	return 1
}

// transpose([at]) -> number
// Swaps the runes around the given offset, around the point when
// omitted. Returns the offset the cursor should land on; pass it to
// set_point to follow the swap.
func (m *edModule) transpose(vm *lua.LState) int {
	at := vm.OptInt(1, m.buf.Point())
	m.checkPos(vm, 1, at)

	pos, err := m.buf.TransposeChars(at)
	if err != nil {
		vm.RaiseError("transpose: %v", err)
		return 0
	}
	vm.Push(lua.LNumber(pos))
	return 1
}

// load(path)
// Replaces the buffer contents with the named file.
func (m *edModule) load(vm *lua.LState) int {
	path := vm.CheckString(1)
	if err := m.buf.Load(path); err != nil {
		vm.RaiseError("load: %v", err)
		return 0
	}
	return 0
}

// save([path])
// Writes the buffer to the named file, to the buffer's filename when
// omitted.
func (m *edModule) save(vm *lua.LState) int {
	path := vm.OptString(1, m.buf.Filename())
	if path == "" {
		vm.RaiseError("save: no filename")
		return 0
	}
	if err := m.buf.Save(path); err != nil {
		vm.RaiseError("save: %v", err)
		return 0
	}
	return 0
}

// filename() -> string
// Returns the buffer's filename.
func (m *edModule) filename(vm *lua.LState) int {
	vm.Push(lua.LString(m.buf.Filename()))
	return 1
}

// modified() -> bool
// Returns true if the buffer has unsaved changes.
func (m *edModule) modified(vm *lua.LState) int {
	vm.Push(lua.LBool(m.buf.Modified()))
	return 1
}

// message(text)
// Shows text on the status line.
func (m *edModule) message(vm *lua.LState) int {
	m.buf.Echo("%s", vm.CheckString(1))
	return 0
}
