// Package main is the entry point for the editkit editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/editkit/internal/app"
	"github.com/dshills/editkit/internal/render"
	"golang.org/x/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logFile := parseFlags()

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		cfg := app.DefaultLoggerConfig()
		cfg.Level = app.ParseLogLevel(opts.LogLevel)
		cfg.Output = f
		opts.Logger = app.NewLogger(cfg)
		opts.Logger.WithFields(map[string]any{"version": version, "commit": commit}).Info("starting")
	} else if !opts.Batch {
		// Full screen owns the terminal; stderr logging would paint
		// over it.
		opts.Logger = app.NullLogger
	}

	var backend render.Backend
	if opts.Batch {
		if opts.Macro == "" {
			fmt.Fprintf(os.Stderr, "Error: -batch needs a -macro to run\n")
			return 1
		}
		backend = render.NewNullBackend(80, 24)
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(os.Stderr, "Error: editkit needs a terminal; use -batch to run macros without one\n")
			return 1
		}
		t, err := render.NewTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		backend = t
	}

	application := app.New(backend, opts)

	// A signal tears the backend down, which ends the event loop.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		backend.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var logFile string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.Macro, "macro", "", "Lua macro to run against the buffer")
	flag.StringVar(&opts.Macro, "m", "", "Lua macro to run against the buffer (shorthand)")
	flag.BoolVar(&opts.Batch, "batch", false, "Run the macro and exit without a screen")
	flag.BoolVar(&opts.Batch, "b", false, "Run the macro and exit without a screen (shorthand)")
	flag.StringVar(&opts.SessionPath, "session", "", "Path to the session file")
	flag.StringVar(&opts.SessionPath, "s", "", "Path to the session file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", envOrDefault("EDITKIT_LOG_LEVEL", "info"), "Log level (debug, info, warn, error); $EDITKIT_LOG_LEVEL sets the default")
	flag.StringVar(&logFile, "log-file", "", "Append logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Editkit - a small Emacs-flavored text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editkit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  editkit notes.txt                  Edit a file\n")
		fmt.Fprintf(os.Stderr, "  editkit -m tidy.lua notes.txt      Run a macro, then edit\n")
		fmt.Fprintf(os.Stderr, "  editkit -b -m tidy.lua notes.txt   Apply a macro and save\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Editkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// The editor holds a single buffer.
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		opts.File = args[0]
	default:
		fmt.Fprintf(os.Stderr, "Error: at most one file may be opened\n")
		os.Exit(1)
	}

	return opts, logFile
}

// envOrDefault returns the environment variable value or a default.
func envOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
