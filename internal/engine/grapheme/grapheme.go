// Package grapheme provides grapheme-cluster and word boundary queries
// over chunked text.
//
// All indices are character indices. Queries assemble a bounded window of
// local context around the query point, concatenating across chunk seams,
// and run Unicode segmentation on the window alone; segmentation state
// never spans the whole document. Index 0 and the buffer length are
// boundaries by definition, and a window in which no boundary is found
// falls back to the buffer extremity instead of erroring.
package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ContextWindow is the number of characters of context gathered on each
// side of a query point. Cluster and word boundaries depend on neighboring
// text, but never on text this far away.
const ContextWindow = 128

// Text is the storage contract the queries run against. A rope satisfies
// it; so does any chunked container with character-indexed access.
type Text interface {
	// Len returns the text length in characters.
	Len() int

	// ChunkAt returns the chunk containing the character index and the
	// character index at which that chunk starts.
	ChunkAt(charIdx int) (string, int)
}

// Width returns the display width in columns of the grapheme cluster at
// the start of s. It returns 0 for empty input and at least 1 otherwise.
func Width(s string) int {
	if s == "" {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	n := 0
	state := -1
	for s != "" {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n++
	}
	return n
}

// IsBoundary reports whether idx falls on a grapheme cluster boundary.
// 0 and Len are boundaries regardless of content.
func IsBoundary(t Text, idx int) bool {
	if idx <= 0 || idx >= t.Len() {
		return true
	}

	lo := idx - ContextWindow
	if lo < 0 {
		lo = 0
	}
	hi := idx + ContextWindow
	if hi > t.Len() {
		hi = t.Len()
	}
	win := window(t, lo, hi)

	pos := lo
	state := -1
	for win != "" {
		if pos == idx {
			return true
		}
		if pos > idx {
			return false
		}
		var cluster string
		cluster, win, _, state = uniseg.FirstGraphemeClusterInString(win, state)
		pos += utf8.RuneCountInString(cluster)
	}
	return pos == idx
}

// PrevBoundary returns the greatest grapheme boundary strictly less than
// idx, or 0 when idx is at or before the start.
func PrevBoundary(t Text, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx > t.Len() {
		idx = t.Len()
	}

	lo := idx - ContextWindow
	if lo < 0 {
		lo = 0
	}
	win := window(t, lo, idx)

	prev := 0
	pos := lo
	state := -1
	for win != "" {
		if pos >= idx {
			break
		}
		prev = pos
		var cluster string
		cluster, win, _, state = uniseg.FirstGraphemeClusterInString(win, state)
		pos += utf8.RuneCountInString(cluster)
	}
	return prev
}

// NextBoundary returns the least grapheme boundary strictly greater than
// idx, or Len when idx is at or past the end.
func NextBoundary(t Text, idx int) int {
	if idx >= t.Len() {
		return t.Len()
	}
	if idx < 0 {
		idx = 0
	}

	hi := idx + ContextWindow
	if hi > t.Len() {
		hi = t.Len()
	}
	win := window(t, idx, hi)
	if win == "" {
		return t.Len()
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(win, -1)
	return idx + utf8.RuneCountInString(cluster)
}

// PrevWordBoundary returns the greatest word boundary strictly less than
// idx per Unicode word segmentation, or 0 at the start.
func PrevWordBoundary(t Text, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx > t.Len() {
		idx = t.Len()
	}

	lo := idx - ContextWindow
	if lo < 0 {
		lo = 0
	}
	win := window(t, lo, idx)

	prev := lo
	pos := lo
	state := -1
	for win != "" {
		if pos >= idx {
			break
		}
		prev = pos
		var word string
		word, win, state = uniseg.FirstWordInString(win, state)
		pos += utf8.RuneCountInString(word)
	}
	return prev
}

// NextWordBoundary returns the least word boundary strictly greater than
// idx per Unicode word segmentation, or Len at the end.
func NextWordBoundary(t Text, idx int) int {
	if idx >= t.Len() {
		return t.Len()
	}
	if idx < 0 {
		idx = 0
	}

	hi := idx + ContextWindow
	if hi > t.Len() {
		hi = t.Len()
	}
	win := window(t, idx, hi)
	if win == "" {
		return t.Len()
	}

	word, _, _ := uniseg.FirstWordInString(win, -1)
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return t.Len()
	}
	return idx + n
}

// window materializes the characters in [lo, hi), concatenating across
// chunk seams. Both bounds must already be clamped to [0, Len].
func window(t Text, lo, hi int) string {
	if lo >= hi {
		return ""
	}

	var out []byte
	cur := lo
	for cur < hi {
		data, start := t.ChunkAt(cur)
		if data == "" {
			break
		}
		chars := utf8.RuneCountInString(data)
		from := byteOffset(data, cur-start)
		to := len(data)
		if start+chars > hi {
			to = byteOffset(data, hi-start)
		}
		out = append(out, data[from:to]...)
		cur = start + chars
	}
	return string(out)
}

// byteOffset returns the byte offset of the charIdx-th character in s.
func byteOffset(s string, charIdx int) int {
	off := 0
	for i := 0; i < charIdx && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
