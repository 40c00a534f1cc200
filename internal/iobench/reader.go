package iobench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// worker reads files sequentially through a single reusable buffer. Each
// worker owns its buffer and its stats, so workers never share mutable
// state while the benchmark is running.
type worker struct {
	id  int
	buf []byte
	log zerolog.Logger
}

func newWorker(id int, bufferSize int, log zerolog.Logger) *worker {
	return &worker{
		id:  id,
		buf: make([]byte, bufferSize),
		log: log.With().Int("worker", id).Logger(),
	}
}

// readAll reads every entry in order and returns the accumulated stats.
// The context is checked between files so cancellation does not wait for
// the rest of the chunk.
func (w *worker) readAll(ctx context.Context, entries []FileEntry) (ReadStats, error) {
	var stats ReadStats

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("worker %d: %w", w.id, err)
		}

		read, ok := w.readFile(entry)
		if !ok {
			continue
		}

		stats.Bytes += read
		stats.Files++
	}

	w.log.Trace().Int64("files", stats.Files).Int64("bytes", stats.Bytes).Msg("chunk done")

	return stats, nil
}

// readFile reads entry to EOF and returns the number of bytes consumed.
// The boolean is false only when the file could not be opened; a file
// that errors mid-read still counts, with the bytes read so far.
func (w *worker) readFile(entry FileEntry) (int64, bool) {
	file, err := os.Open(entry.Path)
	if err != nil {
		w.log.Debug().Err(err).Str("path", entry.Path).Msg("skipping unreadable file")

		return 0, false
	}
	defer file.Close()

	w.log.Trace().Str("path", entry.Path).Int64("size", entry.Size).Msg("file opened")

	var read int64

	for {
		n, err := file.Read(w.buf)
		read += int64(n)

		if n > 0 {
			w.log.Trace().Str("path", entry.Path).Int("bytes", n).Int64("total", read).Msg("buffer read")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			w.log.Debug().Err(err).Str("path", entry.Path).Int64("read", read).Msg("read aborted")

			return read, true
		}

		// The listed size is a snapshot; stop once the read passes it
		// rather than chasing a growing file.
		if read > entry.Size {
			w.log.Debug().Str("path", entry.Path).Int64("size", entry.Size).Int64("read", read).Msg("file grew during read")

			return read, true
		}
	}

	switch {
	case read < entry.Size:
		w.log.Debug().Str("path", entry.Path).Int64("size", entry.Size).Int64("read", read).Msg("file shrank during read")
	case read > entry.Size:
		w.log.Debug().Str("path", entry.Path).Int64("size", entry.Size).Int64("read", read).Msg("file grew during read")
	}

	w.log.Trace().Str("path", entry.Path).Int64("bytes", read).Msg("file read")

	return read, true
}
