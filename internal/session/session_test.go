package session

import (
	"os"
	"path/filepath"
	"testing"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	s := Load(sessionPath(t))

	if _, ok := s.Lookup("/a/b.txt"); ok {
		t.Error("Lookup on empty session found an entry")
	}
	if got := s.Search(); got != "" {
		t.Errorf("Search() = %q, want empty", got)
	}
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	s := Load(path)
	if _, ok := s.Lookup("/a/b.txt"); ok {
		t.Error("Lookup on corrupt session found an entry")
	}

	s.Remember("/a/b.txt", Entry{Point: 4, Mark: -1})
	if err := s.Save(); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if _, ok := Load(path).Lookup("/a/b.txt"); !ok {
		t.Error("entry lost after replacing corrupt session")
	}
}

func TestRememberLookupRoundTrip(t *testing.T) {
	s := Load(sessionPath(t))

	s.Remember("/home/u/notes.txt", Entry{Point: 120, Mark: 7})

	e, ok := s.Lookup("/home/u/notes.txt")
	if !ok {
		t.Fatal("Lookup did not find the remembered file")
	}
	if e.Point != 120 || e.Mark != 7 {
		t.Errorf("entry = %+v, want {Point:120 Mark:7}", e)
	}
}

func TestRememberNoMark(t *testing.T) {
	s := Load(sessionPath(t))

	s.Remember("f.txt", Entry{Point: 3, Mark: -1})

	e, ok := s.Lookup("f.txt")
	if !ok {
		t.Fatal("Lookup did not find the remembered file")
	}
	if e.Mark != -1 {
		t.Errorf("mark = %d, want -1", e.Mark)
	}
}

func TestRememberReplacesPreviousEntry(t *testing.T) {
	s := Load(sessionPath(t))

	s.Remember("f.txt", Entry{Point: 1, Mark: -1})
	s.Remember("f.txt", Entry{Point: 9, Mark: 2})

	e, _ := s.Lookup("f.txt")
	if e.Point != 9 || e.Mark != 2 {
		t.Errorf("entry = %+v, want {Point:9 Mark:2}", e)
	}
}

func TestDottedFilenamesAreSingleKeys(t *testing.T) {
	s := Load(sessionPath(t))

	s.Remember("a.b", Entry{Point: 5, Mark: -1})

	if e, ok := s.Lookup("a.b"); !ok || e.Point != 5 {
		t.Errorf("Lookup(a.b) = %+v, %v; want Point 5, true", e, ok)
	}
	if _, ok := s.Lookup("a"); ok {
		t.Error("dotted filename leaked a nested entry under its prefix")
	}
}

func TestWildcardCharactersMatchExactly(t *testing.T) {
	s := Load(sessionPath(t))

	s.Remember("ab", Entry{Point: 1, Mark: -1})
	s.Remember("a*b", Entry{Point: 2, Mark: -1})

	if e, _ := s.Lookup("ab"); e.Point != 1 {
		t.Errorf("Lookup(ab).Point = %d, want 1", e.Point)
	}
	if e, _ := s.Lookup("a*b"); e.Point != 2 {
		t.Errorf("Lookup(a*b).Point = %d, want 2", e.Point)
	}
}

func TestSearchRoundTrip(t *testing.T) {
	s := Load(sessionPath(t))

	s.SetSearch("the cat")
	if got := s.Search(); got != "the cat" {
		t.Errorf("Search() = %q, want %q", got, "the cat")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := sessionPath(t)

	s := Load(path)
	s.Remember("/w/main.go", Entry{Point: 42, Mark: 10})
	s.SetSearch("func ")
	if err := s.Save(); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	loaded := Load(path)
	e, ok := loaded.Lookup("/w/main.go")
	if !ok {
		t.Fatal("entry lost across save and load")
	}
	if e.Point != 42 || e.Mark != 10 {
		t.Errorf("entry = %+v, want {Point:42 Mark:10}", e)
	}
	if got := loaded.Search(); got != "func " {
		t.Errorf("Search() = %q, want %q", got, "func ")
	}
}

func TestSaveFailureReported(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "no-such-dir", "session.json"))
	s.SetSearch("x")

	if err := s.Save(); err == nil {
		t.Error("Save into a missing directory did not error")
	}
}
