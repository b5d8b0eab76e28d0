package textstore

import (
	"fmt"
	"io"
	"strings"
)

// LineStore is the line-array Store implementation. It keeps one rune
// slice per line: every slice but the last ends with a newline, and
// the last never contains one (it may be empty). Not safe for
// concurrent use; the editor model is single-threaded by contract.
type LineStore struct {
	lines  [][]rune
	length int
}

var _ Store = (*LineStore)(nil)

// NewLineStore creates an empty store holding a single empty line.
func NewLineStore() *LineStore {
	return &LineStore{lines: [][]rune{nil}}
}

// FromString creates a store holding s.
func FromString(s string) *LineStore {
	ls := NewLineStore()
	if s != "" {
		ls.insertRunes(0, []rune(s))
	}
	return ls
}

// Len returns the total number of runes stored.
func (ls *LineStore) Len() int {
	return ls.length
}

// IsEmpty returns true if the store holds no runes.
func (ls *LineStore) IsEmpty() bool {
	return ls.length == 0
}

// LineCount returns the number of lines.
func (ls *LineStore) LineCount() int {
	return len(ls.lines)
}

// LineLen returns the length of a line in runes, counting its
// terminating newline if it has one.
func (ls *LineStore) LineLen(row int) int {
	ls.checkRow(row)
	return len(ls.lines[row])
}

// LineText returns a line's text without its terminating newline.
func (ls *LineStore) LineText(row int) string {
	ls.checkRow(row)
	line := ls.lines[row]
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return string(line)
}

// RuneAt returns the rune at offset.
func (ls *LineStore) RuneAt(offset int) rune {
	ls.checkOffset(offset, ls.length-1)
	row, col := ls.locate(offset)
	return ls.lines[row][col]
}

// RowOf returns the row containing offset. The end-of-store offset
// maps to the last row.
func (ls *LineStore) RowOf(offset int) int {
	ls.checkOffset(offset, ls.length)
	row, _ := ls.locate(offset)
	return row
}

// ColOf returns the column of offset within its row.
func (ls *LineStore) ColOf(offset int) int {
	ls.checkOffset(offset, ls.length)
	_, col := ls.locate(offset)
	return col
}

// OffsetAt returns the flat offset of (row, col).
func (ls *LineStore) OffsetAt(row, col int) int {
	ls.checkRow(row)
	if col < 0 || col > len(ls.lines[row]) {
		panic(fmt.Sprintf("textstore: column %d out of range [0,%d] on row %d",
			col, len(ls.lines[row]), row))
	}
	offset := col
	for i := 0; i < row; i++ {
		offset += len(ls.lines[i])
	}
	return offset
}

// Slice returns an immutable copy of the n runes starting at offset.
func (ls *LineStore) Slice(offset, n int) Text {
	ls.checkRange(offset, n)
	if n == 0 {
		return Text{}
	}
	out := make([]rune, 0, n)
	row, col := ls.locate(offset)
	for len(out) < n {
		line := ls.lines[row]
		take := n - len(out)
		if avail := len(line) - col; take > avail {
			take = avail
		}
		out = append(out, line[col:col+take]...)
		row++
		col = 0
	}
	return Text{runes: out}
}

// StringAt returns the n runes starting at offset as a string.
func (ls *LineStore) StringAt(offset, n int) string {
	return ls.Slice(offset, n).String()
}

// String returns the full store content.
func (ls *LineStore) String() string {
	var sb strings.Builder
	sb.Grow(ls.length)
	for _, line := range ls.lines {
		sb.WriteString(string(line))
	}
	return sb.String()
}

// InsertRune inserts a single rune at offset.
func (ls *LineStore) InsertRune(offset int, r rune) {
	ls.checkOffset(offset, ls.length)
	ls.insertRunes(offset, []rune{r})
}

// InsertString inserts a string at offset.
func (ls *LineStore) InsertString(offset int, s string) {
	ls.checkOffset(offset, ls.length)
	ls.insertRunes(offset, []rune(s))
}

// InsertText inserts an immutable fragment at offset.
func (ls *LineStore) InsertText(offset int, t Text) {
	ls.checkOffset(offset, ls.length)
	ls.insertRunes(offset, t.runes)
}

// DeleteRune removes the rune at offset.
func (ls *LineStore) DeleteRune(offset int) {
	ls.checkOffset(offset, ls.length-1)
	row, col := ls.locate(offset)
	line := ls.lines[row]
	if line[col] == '\n' {
		// The newline is always the last rune of its line, so removing
		// it joins this line with the one below.
		next := ls.lines[row+1]
		merged := make([]rune, 0, len(line)-1+len(next))
		merged = append(merged, line[:col]...)
		merged = append(merged, next...)
		ls.lines = splice(ls.lines, row, 2, [][]rune{merged})
	} else {
		ls.lines[row] = append(line[:col:col], line[col+1:]...)
	}
	ls.length--
}

// DeleteRange removes the n runes starting at offset.
func (ls *LineStore) DeleteRange(offset, n int) {
	ls.checkRange(offset, n)
	if n == 0 {
		return
	}
	r1, c1 := ls.locate(offset)
	r2, c2 := ls.locate(offset + n)
	if r1 == r2 {
		line := ls.lines[r1]
		ls.lines[r1] = append(line[:c1:c1], line[c2:]...)
	} else {
		head := ls.lines[r1][:c1]
		tail := ls.lines[r2][c2:]
		merged := make([]rune, 0, len(head)+len(tail))
		merged = append(merged, head...)
		merged = append(merged, tail...)
		ls.lines = splice(ls.lines, r1, r2-r1+1, [][]rune{merged})
	}
	ls.length -= n
}

// Clear removes all content, leaving one empty line.
func (ls *LineStore) Clear() {
	ls.lines = [][]rune{nil}
	ls.length = 0
}

// ReadFrom appends the reader's contents to the end of the store. It
// returns the number of bytes consumed. A read error discards what was
// consumed before it; the store only grows by a complete read.
func (ls *LineStore) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	if len(data) > 0 {
		ls.insertRunes(ls.length, []rune(string(data)))
	}
	return int64(len(data)), nil
}

// WriteTo writes the store's contents to w. It returns the number of
// bytes written.
func (ls *LineStore) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range ls.lines {
		if len(line) == 0 {
			continue
		}
		n, err := io.WriteString(w, string(line))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// locate maps a flat offset to (row, col). Offsets on a line boundary
// belong to the following line; the last line absorbs the remainder,
// so the end-of-store offset lands one past its final rune.
func (ls *LineStore) locate(offset int) (row, col int) {
	last := len(ls.lines) - 1
	for i, line := range ls.lines {
		if offset < len(line) || i == last {
			return i, offset
		}
		offset -= len(line)
	}
	return last, 0 // unreachable: the last line absorbs the remainder
}

// insertRunes splices rs into the located line and re-splits the
// result into line segments.
func (ls *LineStore) insertRunes(offset int, rs []rune) {
	if len(rs) == 0 {
		return
	}
	row, col := ls.locate(offset)
	line := ls.lines[row]
	merged := make([]rune, 0, len(line)+len(rs))
	merged = append(merged, line[:col]...)
	merged = append(merged, rs...)
	merged = append(merged, line[col:]...)

	segs := splitSegments(merged)
	if row < len(ls.lines)-1 {
		// A non-final line ends in a newline, so the split always has
		// an empty tail that would shadow the following line.
		segs = segs[:len(segs)-1]
	}
	ls.lines = splice(ls.lines, row, 1, segs)
	ls.length += len(rs)
}

// splitSegments cuts rs after every newline. The result always has at
// least one segment and its last segment never contains a newline.
func splitSegments(rs []rune) [][]rune {
	var segs [][]rune
	start := 0
	for i, r := range rs {
		if r == '\n' {
			seg := make([]rune, i+1-start)
			copy(seg, rs[start:i+1])
			segs = append(segs, seg)
			start = i + 1
		}
	}
	tail := make([]rune, len(rs)-start)
	copy(tail, rs[start:])
	return append(segs, tail)
}

// splice replaces lines[at:at+del] with repl.
func splice(lines [][]rune, at, del int, repl [][]rune) [][]rune {
	out := make([][]rune, 0, len(lines)-del+len(repl))
	out = append(out, lines[:at]...)
	out = append(out, repl...)
	out = append(out, lines[at+del:]...)
	return out
}

func (ls *LineStore) checkRow(row int) {
	if row < 0 || row >= len(ls.lines) {
		panic(fmt.Sprintf("textstore: row %d out of range [0,%d]", row, len(ls.lines)-1))
	}
}

func (ls *LineStore) checkOffset(offset, max int) {
	if offset < 0 || offset > max {
		panic(fmt.Sprintf("textstore: offset %d out of range [0,%d]", offset, max))
	}
}

func (ls *LineStore) checkRange(offset, n int) {
	if offset < 0 || n < 0 || offset+n > ls.length {
		panic(fmt.Sprintf("textstore: range [%d,%d) outside [0,%d]", offset, offset+n, ls.length))
	}
}
