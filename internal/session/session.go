// Package session persists editing context across runs: the point and
// mark for each file, and the last search string.
//
// The state lives in a single JSON document:
//
//	{
//	  "files": {
//	    "/home/u/notes.txt": {"point": 120, "mark": -1}
//	  },
//	  "search": "cat"
//	}
//
// A missing or corrupt session file is not an error; the session
// starts empty and the next Save replaces it.
package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Entry is the remembered cursor state for one file. Mark is -1 when
// no mark was active.
type Entry struct {
	Point int
	Mark  int
}

// Session is an in-memory session document bound to a file path.
// Mutations accumulate in memory; Save writes them out. The first
// mutation error sticks and is reported by Save.
type Session struct {
	path string
	doc  []byte
	err  error
}

// Load reads the session document at path. A file that is missing or
// does not hold valid JSON yields an empty session.
func Load(path string) *Session {
	s := &Session{path: path, doc: []byte(`{}`)}

	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		return s
	}
	s.doc = data
	return s
}

// Path returns the file path the session was loaded from and saves to.
func (s *Session) Path() string {
	return s.path
}

// Lookup returns the remembered entry for a file.
func (s *Session) Lookup(file string) (Entry, bool) {
	rec := gjson.GetBytes(s.doc, "files."+escape(file))
	if !rec.Exists() {
		return Entry{}, false
	}

	e := Entry{Point: int(rec.Get("point").Int()), Mark: -1}
	if mv := rec.Get("mark"); mv.Exists() {
		e.Mark = int(mv.Int())
	}
	return e, true
}

// Remember records the entry for a file, replacing any previous one.
func (s *Session) Remember(file string, e Entry) {
	base := "files." + escape(file)
	s.set(base+".point", e.Point)
	s.set(base+".mark", e.Mark)
}

// Search returns the remembered search string.
func (s *Session) Search() string {
	return gjson.GetBytes(s.doc, "search").String()
}

// SetSearch records the search string.
func (s *Session) SetSearch(q string) {
	s.set("search", q)
}

// Save writes the document to the session path, pretty-printed so the
// file stays hand-editable.
func (s *Session) Save() error {
	if s.err != nil {
		return fmt.Errorf("session: %w", s.err)
	}
	if err := os.WriteFile(s.path, pretty.Pretty(s.doc), 0o644); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// set applies one mutation to the document, keeping the first error.
func (s *Session) set(path string, v any) {
	doc, err := sjson.SetBytes(s.doc, path, v)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.doc = doc
}

// escape protects a file path used as an object key from the query
// syntax: dots would otherwise read as key separators, and the
// wildcard and modifier characters have meanings of their own.
func escape(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
