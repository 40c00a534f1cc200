package iobench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultBufferSize is the per-worker read buffer size, 64 KiB, used when
// Options.BufferSize is unset.
const DefaultBufferSize = 64 * 1024

// Options configure a benchmark run.
type Options struct {
	// Threads is the number of read workers. Values below one fall back
	// to runtime.NumCPU.
	Threads int

	// BufferSize is the per-worker read buffer in bytes. Values below
	// one fall back to DefaultBufferSize.
	BufferSize int

	// Logger receives debug and trace output. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) normalized() Options {
	if o.Threads <= 0 {
		o.Threads = runtime.NumCPU()
	}

	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}

	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}

	return o
}

// Run lists every file under roots with lister, then reads them all with
// opts.Threads workers, timing the two phases separately.
func Run(ctx context.Context, lister Lister, roots []string, opts Options) (*Report, error) {
	opts = opts.normalized()

	listStart := time.Now()

	entries, err := lister.List(ctx, roots)
	if err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}

	listDuration := time.Since(listStart)

	opts.Logger.Debug().Int("files", len(entries)).Dur("elapsed", listDuration).Msg("listing done")

	readStart := time.Now()

	stats, workers, err := readChunks(ctx, entries, opts)
	if err != nil {
		return nil, err
	}

	readDuration := time.Since(readStart)

	opts.Logger.Debug().
		Int64("files", stats.Files).
		Int64("bytes", stats.Bytes).
		Dur("elapsed", readDuration).
		Msg("reading done")

	return &Report{
		ListDuration: listDuration,
		ListedFiles:  int64(len(entries)),
		ReadDuration: readDuration,
		BytesRead:    stats.Bytes,
		FilesRead:    stats.Files,
		Threads:      opts.Threads,
		Workers:      workers,
		BufferSize:   opts.BufferSize,
	}, nil
}

// ReadEntries reads every entry with opts.Threads workers and returns the
// combined stats. It is the reading phase of Run for callers that already
// hold a listing.
func ReadEntries(ctx context.Context, entries []FileEntry, opts Options) (ReadStats, error) {
	opts = opts.normalized()

	stats, _, err := readChunks(ctx, entries, opts)

	return stats, err
}

// readChunks partitions entries and reads each chunk on its own goroutine.
// Every goroutine writes only its own results slot, so the fold below runs
// after all workers have returned and sees no concurrent writes.
func readChunks(ctx context.Context, entries []FileEntry, opts Options) (ReadStats, int, error) {
	chunks := partition(entries, opts.Threads)
	if len(chunks) == 0 {
		return ReadStats{}, 0, nil
	}

	results := make([]ReadStats, len(chunks))

	group, ctx := errgroup.WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		w := newWorker(i, opts.BufferSize, *opts.Logger)

		group.Go(func() error {
			stats, err := w.readAll(ctx, chunk)
			if err != nil {
				return err
			}

			results[i] = stats

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return ReadStats{}, 0, fmt.Errorf("reading: %w", err)
	}

	var total ReadStats
	for _, stats := range results {
		total = total.Combine(stats)
	}

	return total, len(chunks), nil
}
