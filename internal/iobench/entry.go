package iobench

import "context"

// FileEntry is a single file discovered during tree listing.
//
// Entries are immutable once produced and safe to share across workers. The
// size is a hint captured at listing time; the file on disk may have grown
// or shrunk by the time it is read, which the read workers detect as drift.
type FileEntry struct {
	// Path is the file path as produced by the lister.
	Path string
	// Size is the file size in bytes at listing time.
	Size int64
}

// Lister enumerates the files under one or more root paths.
//
// Implementations must return a finite, deterministically ordered sequence
// with directories excluded and hidden entries included. Entries that cannot
// be stat'ed during listing are omitted from the sequence rather than
// reported as errors.
type Lister interface {
	List(ctx context.Context, roots []string) ([]FileEntry, error)
}
