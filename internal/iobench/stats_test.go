package iobench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadStatsCombine(t *testing.T) {
	parts := []ReadStats{
		{Bytes: 100, Files: 1},
		{},
		{Bytes: 42, Files: 3},
		{Bytes: 7, Files: 1},
	}

	// Fold in both directions; the result must not depend on order.
	var forward, backward ReadStats

	for _, part := range parts {
		forward = forward.Combine(part)
	}

	for i := len(parts) - 1; i >= 0; i-- {
		backward = backward.Combine(parts[i])
	}

	assert.Equal(t, ReadStats{Bytes: 149, Files: 5}, forward)
	assert.Equal(t, forward, backward)
}

func TestReadStatsCombineZero(t *testing.T) {
	stats := ReadStats{Bytes: 10, Files: 2}

	assert.Equal(t, stats, stats.Combine(ReadStats{}))
	assert.Equal(t, stats, ReadStats{}.Combine(stats))
}

func TestReportRates(t *testing.T) {
	report := &Report{
		ListDuration: 2 * time.Second,
		ListedFiles:  10,
		ReadDuration: 4 * time.Second,
		BytesRead:    400,
		FilesRead:    8,
	}

	rate, ok := report.ListRate()
	assert.True(t, ok)
	assert.InDelta(t, 5.0, rate, 1e-9)

	rate, ok = report.ReadByteRate()
	assert.True(t, ok)
	assert.InDelta(t, 100.0, rate, 1e-9)

	rate, ok = report.ReadFileRate()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, rate, 1e-9)
}

func TestReportRatesZeroElapsed(t *testing.T) {
	report := &Report{ListedFiles: 10, BytesRead: 100, FilesRead: 10}

	_, ok := report.ListRate()
	assert.False(t, ok)

	_, ok = report.ReadByteRate()
	assert.False(t, ok)

	_, ok = report.ReadFileRate()
	assert.False(t, ok)
}
