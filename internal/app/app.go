// Package app drives an interactive editing session. It wires the
// text store, buffer, and view together, runs the key event loop, and
// carries session state across runs.
package app

import (
	"github.com/dshills/editkit/internal/engine/buffer"
	"github.com/dshills/editkit/internal/engine/textstore"
	"github.com/dshills/editkit/internal/render"
	"github.com/dshills/editkit/internal/session"
)

// Options configures the application.
type Options struct {
	// File is the file to open on startup. Empty opens a scratch
	// buffer.
	File string

	// Macro is the path of a Lua script to run against the buffer
	// after it loads.
	Macro string

	// Batch runs the macro without an interactive session: load, run,
	// save, exit.
	Batch bool

	// SessionPath is where per-file point and mark state persists.
	// Empty disables session persistence.
	SessionPath string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// Logger overrides the default logger. Used by tests.
	Logger *Logger
}

// App is the interactive session: one buffer, one view, one event
// loop.
type App struct {
	opts    Options
	log     *Logger
	backend render.Backend
	store   *textstore.LineStore
	buf     *buffer.Buffer
	view    *render.View
	sess    *session.Session
	history stateStack

	// Pending key state.
	ctrlX       bool
	quitPending bool
	prompt      promptState
}

// New creates an application drawing on the given backend. The
// backend is initialized by Run.
func New(backend render.Backend, opts Options) *App {
	if backend == nil {
		panic("app: nil backend")
	}

	log := opts.Logger
	if log == nil {
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(opts.LogLevel)
		log = NewLogger(cfg)
	}

	store := textstore.NewLineStore()
	view := render.NewView(store, backend)
	buf := buffer.New(store,
		buffer.WithDisplay(view),
		buffer.WithMessenger(view),
	)

	a := &App{
		opts:    opts,
		log:     log,
		backend: backend,
		store:   store,
		buf:     buf,
		view:    view,
	}
	if opts.SessionPath != "" {
		a.sess = session.Load(opts.SessionPath)
	}
	return a
}

// Buffer returns the application's buffer.
func (a *App) Buffer() *buffer.Buffer {
	return a.buf
}

// Logger returns the application's logger.
func (a *App) Logger() *Logger {
	return a.log
}
