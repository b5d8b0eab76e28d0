// Package textstore provides the line-indexed character storage the
// editor buffer delegates to. A store is addressed two ways: by a flat
// rune offset in [0, Len()], and by (row, col) line coordinates.
//
// The line model is exact and load-bearing for the buffer's cursor
// arithmetic: every line except the last ends with a newline, the
// newline belongs to its line and is counted by LineLen, and a lone
// newline is therefore a line of length 1. Text ending in a newline
// has a final empty line of length 0, so the end-of-store offset
// always maps to a valid (row, col) pair.
//
// Offsets, rows and columns are validated by the caller; handing a
// store an out-of-range position is a programming error and panics.
// See the Store interface for the full contract.
//
// LineStore is the provided implementation, holding one rune slice per
// line. It favors simple, obviously-correct coordinate math over
// asymptotic cleverness; replace it behind the Store interface if a
// workload ever needs a rope.
package textstore
