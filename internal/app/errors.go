package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the session should exit normally. Key
	// handlers return it; the event loop translates it into a clean
	// shutdown.
	ErrQuit = errors.New("quit requested")
)
