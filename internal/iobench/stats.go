package iobench

import "time"

// ReadStats accumulates byte and file counts for the reading phase.
//
// Each worker owns exactly one ReadStats while reading; the totals are
// merged with Combine once all workers have finished.
type ReadStats struct {
	// Bytes is the cumulative number of bytes read.
	Bytes int64 `json:"bytes"`
	// Files is the number of files read to completion, including files cut
	// short by size drift or a mid-read error. Files that failed to open are
	// not counted.
	Files int64 `json:"files"`
}

// Combine returns the element-wise sum of s and other.
//
// Combine is associative and commutative, so worker results may be folded
// in any completion order and still produce the same total.
func (s ReadStats) Combine(other ReadStats) ReadStats {
	return ReadStats{
		Bytes: s.Bytes + other.Bytes,
		Files: s.Files + other.Files,
	}
}

// Report holds the outcome of one benchmark invocation.
type Report struct {
	// ListDuration is the elapsed time of the listing phase.
	ListDuration time.Duration `json:"list_duration"`
	// ListedFiles is the number of entries produced by the lister.
	ListedFiles int64 `json:"listed_files"`
	// ReadDuration is the elapsed time of the reading phase.
	ReadDuration time.Duration `json:"read_duration"`
	// BytesRead is the total number of bytes read.
	BytesRead int64 `json:"bytes_read"`
	// FilesRead is the number of files read.
	FilesRead int64 `json:"files_read"`
	// Threads is the worker count the run was configured with.
	Threads int `json:"threads"`
	// Workers is the realized worker count. It is lower than Threads when
	// fewer files than threads were listed.
	Workers int `json:"workers"`
	// BufferSize is the per-worker read buffer size in bytes.
	BufferSize int `json:"buffer_size"`
}

// ListRate returns the listing throughput in files per second. The boolean
// is false when the phase completed below timer resolution.
func (r *Report) ListRate() (float64, bool) {
	return rate(r.ListedFiles, r.ListDuration)
}

// ReadByteRate returns the reading throughput in bytes per second. The
// boolean is false when the phase completed below timer resolution.
func (r *Report) ReadByteRate() (float64, bool) {
	return rate(r.BytesRead, r.ReadDuration)
}

// ReadFileRate returns the reading throughput in files per second. The
// boolean is false when the phase completed below timer resolution.
func (r *Report) ReadFileRate() (float64, bool) {
	return rate(r.FilesRead, r.ReadDuration)
}

func rate(count int64, elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}

	return float64(count) / elapsed.Seconds(), true
}
