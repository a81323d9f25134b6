package rope

import "strings"

// Rope stores text as an ordered sequence of chunks with aggregated
// character and line metrics. The zero value is an empty rope.
type Rope struct {
	chunks   []chunk
	chars    int
	newlines int
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a rope from a string.
func FromString(s string) Rope {
	chunks := splitIntoChunks(s)
	r := Rope{chunks: chunks}
	for _, c := range chunks {
		r.chars += c.chars
		r.newlines += c.newlines
	}
	return r
}

// Len returns the length of the rope in characters.
func (r Rope) Len() int {
	return r.chars
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.chars == 0
}

// String materializes the whole rope.
func (r Rope) String() string {
	var sb strings.Builder
	for _, c := range r.chunks {
		sb.WriteString(c.data)
	}
	return sb.String()
}

// ChunkCount returns the number of storage chunks.
func (r Rope) ChunkCount() int {
	return len(r.chunks)
}

// clamp restricts a character index to [0, r.chars].
func (r Rope) clamp(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > r.chars {
		return r.chars
	}
	return idx
}

// locate returns the chunk containing charIdx and the character offset of
// charIdx within that chunk. For charIdx == Len it returns the last chunk
// with an offset equal to its character count.
func (r Rope) locate(charIdx int) (int, int) {
	rem := charIdx
	for i, c := range r.chunks {
		if rem < c.chars || (rem == c.chars && i == len(r.chunks)-1) {
			return i, rem
		}
		rem -= c.chars
	}
	return 0, 0
}

// ChunkAt returns the chunk text containing charIdx and the character
// index at which that chunk starts. For an empty rope it returns ("", 0).
func (r Rope) ChunkAt(charIdx int) (string, int) {
	if len(r.chunks) == 0 {
		return "", 0
	}
	charIdx = r.clamp(charIdx)
	i, rem := r.locate(charIdx)
	return r.chunks[i].data, charIdx - rem
}

// Slice returns the text in the half-open character range [start, end).
// Out-of-range indices are clamped.
func (r Rope) Slice(start, end int) string {
	start = r.clamp(start)
	end = r.clamp(end)
	if start >= end {
		return ""
	}

	var sb strings.Builder
	pos := 0
	for _, c := range r.chunks {
		chunkStart := pos
		chunkEnd := pos + c.chars
		pos = chunkEnd
		if chunkEnd <= start {
			continue
		}
		if chunkStart >= end {
			break
		}
		lo := 0
		if start > chunkStart {
			lo = start - chunkStart
		}
		hi := c.chars
		if end < chunkEnd {
			hi = end - chunkStart
		}
		sb.WriteString(c.data[c.byteOffsetOfChar(lo):c.byteOffsetOfChar(hi)])
	}
	return sb.String()
}

// Insert returns a new rope with text inserted at the given character
// index. The index is clamped to [0, Len].
func (r Rope) Insert(at int, text string) Rope {
	if text == "" {
		return r
	}
	at = r.clamp(at)

	if len(r.chunks) == 0 {
		return FromString(text)
	}

	i, rem := r.locate(at)
	c := r.chunks[i]
	b := c.byteOffsetOfChar(rem)
	merged := c.data[:b] + text + c.data[b:]

	return r.splice(i, i+1, splitIntoChunks(merged))
}

// Delete returns a new rope with the half-open character range
// [start, end) removed. Indices are clamped; an empty range is a no-op.
func (r Rope) Delete(start, end int) Rope {
	start = r.clamp(start)
	end = r.clamp(end)
	if start >= end || len(r.chunks) == 0 {
		return r
	}

	i, remS := r.locate(start)
	j, remE := r.locate(end)
	head := r.chunks[i].data[:r.chunks[i].byteOffsetOfChar(remS)]
	tail := r.chunks[j].data[r.chunks[j].byteOffsetOfChar(remE):]

	return r.splice(i, j+1, splitIntoChunks(head+tail))
}

// splice replaces chunks[lo:hi] with replacement and recomputes metrics.
// The receiver's chunk slice is never aliased by the result.
func (r Rope) splice(lo, hi int, replacement []chunk) Rope {
	chunks := make([]chunk, 0, len(r.chunks)-(hi-lo)+len(replacement))
	chunks = append(chunks, r.chunks[:lo]...)
	chunks = append(chunks, replacement...)
	chunks = append(chunks, r.chunks[hi:]...)

	out := Rope{chunks: chunks}
	for _, c := range chunks {
		out.chars += c.chars
		out.newlines += c.newlines
	}
	return out
}

// LineCount returns the number of lines. An empty rope has one line.
func (r Rope) LineCount() int {
	return r.newlines + 1
}

// LineOf returns the line containing the given character index.
// Index Len belongs to the last line.
func (r Rope) LineOf(charIdx int) int {
	charIdx = r.clamp(charIdx)
	line := 0
	pos := 0
	for _, c := range r.chunks {
		if charIdx >= pos+c.chars {
			line += c.newlines
			pos += c.chars
			continue
		}
		// Count newlines among the first (charIdx - pos) characters.
		rem := charIdx - pos
		for _, rn := range c.data {
			if rem == 0 {
				break
			}
			if rn == '\n' {
				line++
			}
			rem--
		}
		return line
	}
	return line
}

// LineStart returns the character index of the first character of the
// given line. The line number is clamped to [0, LineCount-1].
func (r Rope) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line > r.newlines {
		line = r.newlines
	}

	// The start of line n is one past the n-th newline (1-based).
	seen := 0
	pos := 0
	for _, c := range r.chunks {
		if seen+c.newlines < line {
			seen += c.newlines
			pos += c.chars
			continue
		}
		for _, rn := range c.data {
			pos++
			if rn == '\n' {
				seen++
				if seen == line {
					return pos
				}
			}
		}
	}
	return r.chars
}

// LineLen returns the length of the given line in characters, excluding
// the line terminator.
func (r Rope) LineLen(line int) int {
	start := r.LineStart(line)
	if line >= r.newlines {
		return r.chars - start
	}
	return r.LineStart(line+1) - 1 - start
}

// LineText returns the text of the given line without its terminator.
func (r Rope) LineText(line int) string {
	start := r.LineStart(line)
	return r.Slice(start, start+r.LineLen(line))
}
