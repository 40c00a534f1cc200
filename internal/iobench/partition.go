package iobench

// partition splits entries into at most threads contiguous chunks, each a
// subslice of the input. Chunk size is len(entries)/threads rounded down,
// with the final chunk absorbing the remainder. When there are fewer
// entries than threads the whole input becomes a single chunk.
func partition(entries []FileEntry, threads int) [][]FileEntry {
	if len(entries) == 0 {
		return nil
	}

	chunkSize := len(entries) / threads
	if chunkSize == 0 {
		return [][]FileEntry{entries}
	}

	chunks := make([][]FileEntry, 0, threads)

	for i := 0; i < threads; i++ {
		start := i * chunkSize
		end := start + chunkSize

		if i == threads-1 {
			end = len(entries)
		}

		chunks = append(chunks, entries[start:end])
	}

	return chunks
}
