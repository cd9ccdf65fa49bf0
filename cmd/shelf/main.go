package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/drake/shelf/config"
	"github.com/drake/shelf/library"
	"github.com/drake/shelf/lua"
	"github.com/drake/shelf/session"
	"github.com/drake/shelf/sizing"
	"github.com/drake/shelf/ui/tui"
	"github.com/drake/shelf/ui/tui/style"
)

func main() {
	minWidth := flag.Int("min-width", -1, "Minimum column width in cells (overrides SHELF_MIN_COLUMN_WIDTH)")
	noSeed := flag.Bool("no-seed", false, "Start with an empty shelf")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if *minWidth >= 0 {
		cfg.MinColumnWidth = *minWidth
	}
	if *noSeed {
		cfg.Seed = false
	}

	logFile, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	tracker, err := sizing.NewTracker[library.ID](cfg.MinColumnWidth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	styles := style.DefaultStyles()
	view := tui.NewView(styles)
	sess := session.New(library.NewStore(), tracker, view, slog.Default())

	if cfg.Seed {
		sess.Seed(session.StarterBooks)
	}

	luaEngine := lua.NewEngine(sess.LuaHost())
	defer luaEngine.Close()

	if err := luaEngine.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// User scripts: init.lua first, then command line args (after flags)
	if ran, err := luaEngine.DoFileIfExists(cfg.InitScript); err != nil {
		scriptFailed(sess, cfg.InitScript, err)
	} else if ran {
		slog.Info("init script loaded", slog.String("path", cfg.InitScript))
	}
	for _, path := range flag.Args() {
		if err := luaEngine.DoFile(path); err != nil {
			scriptFailed(sess, path, err)
		}
	}

	slog.Info("starting",
		slog.Int("books", len(sess.Books())),
		slog.Int("column", sess.ColumnWidth()),
	)

	// Block on UI
	if err := tui.New(sess, view, styles).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "UI error:", err)
		os.Exit(1)
	}
}

func scriptFailed(sess *session.Session, path string, err error) {
	slog.Warn("script failed", slog.String("path", path), slog.String("error", err.Error()))
	sess.Notify(fmt.Sprintf("Script %s: %v", path, err))
}

// setupLogger installs the default slog logger. The TUI owns the terminal,
// so logs go to SHELF_LOG_FILE or nowhere.
func setupLogger(cfg *config.Config) (*os.File, error) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var out io.Writer = io.Discard
	var file *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		out, file = f, f
	}

	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
	return file, nil
}
