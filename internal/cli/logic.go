package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/idelchi/iobench/internal/iobench"
	"github.com/idelchi/iobench/internal/walk"
)

// settings holds the parsed read-tree flags.
type settings struct {
	dirs       []string
	threads    int
	bufferSize string
	output     string
	verbosity  int
}

// newLogger returns a stderr console logger at a level derived from the
// -v count: info by default, debug at one, trace from two up.
func newLogger(verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel

	switch {
	case verbosity == 1:
		level = zerolog.DebugLevel
	case verbosity >= 2: //nolint:mnd // Two or more -v flags
		level = zerolog.TraceLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func readTree(ctx context.Context, cfg settings) error {
	allowedOutputs := []string{"table", "json"}
	if !slices.Contains(allowedOutputs, strings.ToLower(cfg.output)) {
		return fmt.Errorf("invalid output format %q: must be one of %v", cfg.output, allowedOutputs)
	}

	// Parse bufferSize string to bytes
	size, err := humanize.ParseBytes(cfg.bufferSize)
	if err != nil {
		return fmt.Errorf("invalid buffer-size: %w", err)
	}

	roots := cfg.dirs
	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		roots = []string{cwd}
	}

	log := newLogger(cfg.verbosity)

	enableProgress := strings.ToLower(cfg.output) != "json" &&
		cfg.verbosity == 0 &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Listing… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	lister := walk.New(walk.Options{
		Workers:  cfg.threads,
		Progress: progressHook,
		Logger:   &log,
	})

	report, err := iobench.Run(ctx, lister, roots, iobench.Options{
		Threads:    cfg.threads,
		BufferSize: int(size), //nolint:gosec // Size conversion from humanize is safe
		Logger:     &log,
	})

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(cfg.output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	default:
		return PrintTable(report, os.Stdout)
	}
}
