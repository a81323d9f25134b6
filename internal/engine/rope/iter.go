package rope

// ChunkIterator walks the rope's chunks in order.
//
//	it := r.Chunks()
//	for it.Next() {
//		_ = it.Text()
//	}
type ChunkIterator struct {
	chunks  []chunk
	idx     int
	charOff int
	started bool
}

// Chunks returns an iterator over all chunks.
func (r Rope) Chunks() *ChunkIterator {
	return r.ChunksFrom(0)
}

// ChunksFrom returns an iterator positioned so that the first Next yields
// the chunk containing charIdx (or the last chunk for charIdx == Len).
func (r Rope) ChunksFrom(charIdx int) *ChunkIterator {
	it := &ChunkIterator{chunks: r.chunks}
	if len(r.chunks) == 0 {
		return it
	}
	charIdx = r.clamp(charIdx)
	i, rem := r.locate(charIdx)
	it.idx = i
	it.charOff = charIdx - rem
	return it
}

// Next advances to the next chunk. It returns false when exhausted.
func (it *ChunkIterator) Next() bool {
	if !it.started {
		it.started = true
		return it.idx < len(it.chunks)
	}
	if it.idx >= len(it.chunks) {
		return false
	}
	it.charOff += it.chunks[it.idx].chars
	it.idx++
	return it.idx < len(it.chunks)
}

// Text returns the current chunk's text.
func (it *ChunkIterator) Text() string {
	return it.chunks[it.idx].data
}

// CharOffset returns the character index at which the current chunk starts.
func (it *ChunkIterator) CharOffset() int {
	return it.charOff
}

// Chars returns the number of characters in the current chunk.
func (it *ChunkIterator) Chars() int {
	return it.chunks[it.idx].chars
}
