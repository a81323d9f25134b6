package rope

import "unicode/utf8"

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk (except for the last chunk).
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// chunk is a bounded run of text plus precomputed metrics.
// Chunks are immutable once created.
type chunk struct {
	data     string
	chars    int // Unicode scalar values in data
	newlines int // '\n' count in data
}

func newChunk(s string) chunk {
	return chunk{
		data:     s,
		chars:    utf8.RuneCountInString(s),
		newlines: countNewlines(s),
	}
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// byteOffsetOfChar returns the byte offset of the charIdx-th character
// within the chunk. charIdx must be in [0, c.chars].
func (c chunk) byteOffsetOfChar(charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	if charIdx >= c.chars {
		return len(c.data)
	}
	off := 0
	for i := 0; i < charIdx; i++ {
		_, size := utf8.DecodeRuneInString(c.data[off:])
		off += size
	}
	return off
}

// splitIntoChunks splits a string into chunks of appropriate size,
// preferring to cut just after a newline and always at UTF-8 boundaries.
func splitIntoChunks(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxChunkSize {
		return []chunk{newChunk(s)}
	}

	var chunks []chunk
	remaining := s
	for len(remaining) > 0 {
		if len(remaining) <= MaxChunkSize {
			chunks = append(chunks, newChunk(remaining))
			break
		}
		splitPoint := findSplitPoint(remaining, TargetChunkSize)
		chunks = append(chunks, newChunk(remaining[:splitPoint]))
		remaining = remaining[splitPoint:]
	}
	return chunks
}

// findSplitPoint finds a cut position near target. It prefers the position
// just after a nearby newline, and otherwise snaps to a UTF-8 boundary.
func findSplitPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	if target <= 0 {
		return 0
	}

	searchStart := target - MinChunkSize/4
	if searchStart < 0 {
		searchStart = 0
	}
	searchEnd := target + MinChunkSize/4
	if searchEnd > len(s) {
		searchEnd = len(s)
	}

	for i := target; i < searchEnd; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= searchStart; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	// No newline nearby; snap forward to a UTF-8 start byte.
	pos := target
	for pos < len(s) && !isUTF8Start(s[pos]) {
		pos++
	}
	if pos >= len(s) {
		pos = target
		for pos > 0 && !isUTF8Start(s[pos]) {
			pos--
		}
	}
	return pos
}

// isUTF8Start reports whether b begins a UTF-8 sequence.
// Continuation bytes are 10xxxxxx; anything else starts a sequence.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}
