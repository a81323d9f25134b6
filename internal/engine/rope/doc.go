// Package rope provides chunked, character-indexed text storage.
//
// Text is stored as an ordered sequence of immutable chunks. All public
// indices are in Unicode scalar values (characters), never bytes; byte
// offsets exist only inside chunk bookkeeping. The rope offers character
// insertion/removal over half-open ranges, line-count and line-slice
// queries, and chunk iteration for callers that need to assemble local
// context across chunk seams (grapheme segmentation in particular).
//
// Rope is a value type: mutating operations return a new Rope and leave
// the receiver untouched, so a snapshot taken under a read lock stays
// valid after later edits.
package rope
