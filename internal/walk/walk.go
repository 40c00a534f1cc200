// Package walk lists the regular files under one or more roots using a
// parallel directory traversal.
package walk

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"

	"github.com/idelchi/iobench/internal/iobench"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configure a Lister.
type Options struct {
	// Workers is the traversal parallelism. Zero or below lets fastwalk
	// pick its own default.
	Workers int

	// Progress, if set, is invoked with the file and byte counts seen so
	// far on each ProgressInterval tick while a listing is running.
	Progress func(files, bytes int64)

	// ProgressInterval defaults to DefaultProgressInterval.
	ProgressInterval time.Duration

	// Logger receives debug output. Nil disables logging.
	Logger *zerolog.Logger
}

// Lister walks directory trees and collects the regular files they contain.
type Lister struct {
	opts Options
	log  zerolog.Logger
}

// New returns a Lister with the given options.
func New(opts Options) *Lister {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Lister{opts: opts, log: log}
}

// collector accumulates entries from the parallel walk callbacks.
type collector struct {
	mu      sync.Mutex
	entries []iobench.FileEntry
	bytes   int64
}

func (c *collector) add(entry iobench.FileEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, entry)
	c.bytes += entry.Size
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *collector) snapshot() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.entries)), c.bytes
}

// sortFrom orders the entries appended since start by path, so each root's
// files come out sorted while roots keep their argument order.
func (c *collector) sortFrom(start int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	segment := c.entries[start:]
	sort.Slice(segment, func(i, j int) bool {
		return segment[i].Path < segment[j].Path
	})
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// List walks each root in order and returns every regular file found,
// hidden files included. Symlinks are not followed. Entries are sorted by
// path within each root. A root that is itself a regular file contributes
// a single entry.
//
// The walk can be cancelled via ctx. Progress updates are sent to the
// configured hook while the listing runs.
func (l *Lister) List(ctx context.Context, roots []string) ([]iobench.FileEntry, error) {
	//nolint:varnamelen // c is idiomatic for collector
	c := &collector{}

	// Child context so the progress reporter stops with the listing
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, c, l.opts.Progress, l.opts.ProgressInterval)

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: l.opts.Workers,
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("accessing path %q: %w", root, err)
		}

		if !info.IsDir() {
			if info.Mode().IsRegular() {
				c.add(iobench.FileEntry{Path: root, Size: info.Size()})
			} else {
				l.log.Debug().Str("path", root).Msg("skipping irregular root")
			}

			continue
		}

		start := c.len()

		//nolint:varnamelen // d is standard for DirEntry
		walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				l.log.Debug().Err(err).Str("path", path).Msg("skipping inaccessible path")

				return nil // Silently skip errors
			}

			// Check cancellation periodically
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				l.log.Debug().Err(err).Str("path", path).Msg("skipping unstatable file")

				return nil //nolint:nilerr // Intentionally skip errors during walk
			}

			c.add(iobench.FileEntry{Path: path, Size: info.Size()})

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking %q: %w", root, walkErr)
		}

		c.sortFrom(start)
	}

	return c.entries, nil
}
