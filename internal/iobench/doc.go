// Package iobench implements a concurrent filesystem read benchmark.
//
// It partitions a previously listed sequence of files into contiguous
// chunks, reads every file with a fixed pool of workers using reusable
// fixed-size buffers, and reduces the per-worker statistics into a single
// report covering the listing and reading phases separately.
package iobench
