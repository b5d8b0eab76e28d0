package lua

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editkit/internal/engine/buffer"
)

// ErrEngineClosed is returned when running code on a closed engine.
var ErrEngineClosed = errors.New("macro engine is closed")

// Engine is a Lua runtime bound to one buffer. Scripts reach the
// buffer through the global ed table registered at construction.
type Engine struct {
	vm     *lua.LState
	buf    *buffer.Buffer
	closed bool
}

// New creates an engine over the given buffer.
func New(buf *buffer.Buffer) *Engine {
	if buf == nil {
		panic("lua: nil buffer")
	}

	vm := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(vm)

	e := &Engine{vm: vm, buf: buf}
	(&edModule{buf: buf}).register(vm)
	return e
}

// openSafeLibraries opens the Lua standard libraries a macro may use.
// io, os, debug and package stay closed: macros touch the world only
// through the ed module.
func openSafeLibraries(vm *lua.LState) {
	lua.OpenBase(vm)
	lua.OpenTable(vm)
	lua.OpenString(vm)
	lua.OpenMath(vm)
	vm.SetTop(0)

	// Base brings dofile and loadfile along. Script files enter
	// through the engine only.
	vm.SetGlobal("dofile", lua.LNil)
	vm.SetGlobal("loadfile", lua.LNil)
}

// DoString executes a Lua chunk. Execution is synchronous; the call
// blocks until completion or error.
func (e *Engine) DoString(code string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.doWithRecovery(func() error {
		return e.vm.DoString(code)
	})
}

// DoFile executes a Lua script file. Execution is synchronous; the
// call blocks until completion or error.
func (e *Engine) DoFile(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.doWithRecovery(func() error {
		return e.vm.DoFile(path)
	})
}

// doWithRecovery executes a function with panic recovery.
func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the Lua runtime. After Close, DoString and DoFile
// return ErrEngineClosed. Closing twice is a no-op.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.vm.Close()
	e.closed = true
	return nil
}
