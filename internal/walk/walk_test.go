package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/iobench/internal/iobench"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))

	return path
}

func TestListSortedWithinRoot(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "b.txt", 2)
	writeFile(t, dir, "a.txt", 1)
	writeFile(t, dir, "sub/c.txt", 3)
	writeFile(t, dir, ".hidden", 4)

	entries, err := New(Options{}).List(context.Background(), []string{dir})
	require.NoError(t, err)

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}

	assert.Equal(t, []string{
		filepath.Join(dir, ".hidden"),
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.txt"),
	}, paths)
}

func TestListRecordsSizes(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "data.bin", 1234)

	entries, err := New(Options{}).List(context.Background(), []string{dir})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.EqualValues(t, 1234, entries[0].Size)
}

func TestListSkipsDirsAndSymlinks(t *testing.T) {
	dir := t.TempDir()

	target := writeFile(t, dir, "real.txt", 10)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty-dir"), 0o755))

	if err := os.Symlink(target, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	entries, err := New(Options{}).List(context.Background(), []string{dir})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, target, entries[0].Path)
}

func TestListMultipleRootsKeepOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeFile(t, first, "z.txt", 1)
	writeFile(t, second, "a.txt", 1)

	entries, err := New(Options{}).List(context.Background(), []string{first, second})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(first, "z.txt"), entries[0].Path)
	assert.Equal(t, filepath.Join(second, "a.txt"), entries[1].Path)
}

func TestListFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "single.bin", 42)

	entries, err := New(Options{}).List(context.Background(), []string{path})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, iobench.FileEntry{Path: path, Size: 42}, entries[0])
}

func TestListMissingRoot(t *testing.T) {
	_, err := New(Options{}).List(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})

	require.Error(t, err)
}

func TestProgressReporter(t *testing.T) {
	//nolint:varnamelen // c is idiomatic for collector
	c := &collector{}
	c.add(iobench.FileEntry{Path: "x", Size: 7})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan [2]int64, 1)

	startProgressReporter(ctx, c, func(files, bytes int64) {
		select {
		case calls <- [2]int64{files, bytes}:
		default:
		}
	}, time.Millisecond)

	select {
	case got := <-calls:
		assert.Equal(t, [2]int64{1, 7}, got)
	case <-time.After(time.Second):
		t.Fatal("no progress update")
	}
}

func TestListFeedsBenchmark(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "a.bin", 10)
	writeFile(t, dir, "b.bin", 20)
	writeFile(t, dir, "sub/c.bin", 30)
	writeFile(t, dir, "sub/deep/d.bin", 40)

	report, err := iobench.Run(context.Background(), New(Options{}), []string{dir}, iobench.Options{Threads: 2})
	require.NoError(t, err)

	assert.EqualValues(t, 4, report.ListedFiles)
	assert.EqualValues(t, 4, report.FilesRead)
	assert.EqualValues(t, 100, report.BytesRead)
	assert.Equal(t, 2, report.Workers)
	assert.Greater(t, report.ListDuration, time.Duration(0))
	assert.Greater(t, report.ReadDuration, time.Duration(0))
}
