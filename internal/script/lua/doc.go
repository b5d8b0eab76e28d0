// Package lua runs editing macros written in Lua against a buffer.
//
// This package wraps the gopher-lua library to provide:
//   - A macro engine bound to a single buffer
//   - The ed module exposing the buffer operations to scripts
//   - A restricted standard library (no io, os, debug or package)
//
// # Engine
//
// The Engine type owns the Lua runtime:
//
//	eng := lua.New(buf)
//	defer eng.Close()
//
//	if err := eng.DoFile("macro.lua"); err != nil {
//	    log.Error("macro failed: %v", err)
//	}
//
// # The ed module
//
// Scripts see the buffer through a global ed table:
//
//	ed.set_search("cat")
//	local at = ed.search()
//	if at then
//	    ed.set_point(at)
//	    ed.insert("the ")
//	end
//
// Offsets count runes, as everywhere in the model. Operations that
// fail, such as a transpose at the edge of the text, raise a Lua
// error; DoString and DoFile return it.
//
// Like the buffer it drives, an Engine is not safe for concurrent
// use. One caller at a time is the contract.
package lua
