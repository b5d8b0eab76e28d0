package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editkit/internal/engine/buffer"
	"github.com/dshills/editkit/internal/engine/textstore"
)

func newTestEngine(t *testing.T, text string) (*Engine, *buffer.Buffer) {
	t.Helper()

	buf := buffer.New(textstore.FromString(text))
	eng := New(buf)
	t.Cleanup(func() { eng.Close() })
	return eng, buf
}

func TestNewNilBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestDoStringAfterCloseFails(t *testing.T) {
	eng, _ := newTestEngine(t, "")
	eng.Close()

	if err := eng.DoString(`x = 1`); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("DoString after Close error = %v, want %v", err, ErrEngineClosed)
	}
}

func TestCloseTwiceIsNoop(t *testing.T) {
	eng, _ := newTestEngine(t, "")
	if err := eng.Close(); err != nil {
		t.Fatalf("first Close error = %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}

func TestDoStringSyntaxErrorReturned(t *testing.T) {
	eng, _ := newTestEngine(t, "")

	if err := eng.DoString(`this is not lua`); err == nil {
		t.Error("DoString with invalid code did not error")
	}
}

func TestUnsafeLibrariesClosed(t *testing.T) {
	eng, _ := newTestEngine(t, "")

	err := eng.DoString(`
		result = (os == nil) and (io == nil) and (debug == nil)
			and (dofile == nil) and (loadfile == nil)
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	if eng.vm.GetGlobal("result") != lua.LTrue {
		t.Error("unsafe globals are reachable from macros")
	}
}

func TestSafeLibrariesOpen(t *testing.T) {
	eng, _ := newTestEngine(t, "")

	err := eng.DoString(`
		result = string.upper("ab") .. tostring(math.max(1, 2)) .. table.concat({"x", "y"})
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	if got := eng.vm.GetGlobal("result").String(); got != "AB2xy" {
		t.Errorf("result = %q, want %q", got, "AB2xy")
	}
}

func TestDoFileRunsScript(t *testing.T) {
	eng, buf := newTestEngine(t, "")

	path := filepath.Join(t.TempDir(), "macro.lua")
	if err := os.WriteFile(path, []byte(`ed.insert("hi", 0)`), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	if err := eng.DoFile(path); err != nil {
		t.Fatalf("DoFile error = %v", err)
	}
	if got := buf.Text(); got != "hi" {
		t.Errorf("text = %q, want %q", got, "hi")
	}
}

func TestDoFileMissing(t *testing.T) {
	eng, _ := newTestEngine(t, "")

	if err := eng.DoFile(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("DoFile on a missing file did not error")
	}
}
