package app

import "github.com/dshills/editkit/internal/engine/buffer"

// historyDepth bounds the position-undo stack.
const historyDepth = 100

// stateStack is a bounded stack of buffer snapshots driving C-u. Only
// point and mark are remembered; text changes are not undone.
type stateStack struct {
	states []buffer.State
}

// push records a snapshot. A snapshot equal to the top is skipped, and
// the oldest entry falls off past historyDepth.
func (s *stateStack) push(st buffer.State) {
	if n := len(s.states); n > 0 && s.states[n-1] == st {
		return
	}
	s.states = append(s.states, st)
	if len(s.states) > historyDepth {
		copy(s.states, s.states[1:])
		s.states = s.states[:historyDepth]
	}
}

// pop removes and returns the most recent snapshot.
func (s *stateStack) pop() (buffer.State, bool) {
	n := len(s.states)
	if n == 0 {
		return buffer.State{}, false
	}
	st := s.states[n-1]
	s.states = s.states[:n-1]
	return st, true
}

// depth returns the number of stored snapshots.
func (s *stateStack) depth() int {
	return len(s.states)
}
