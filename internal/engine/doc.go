// Package engine groups the text primitives the editor is built on.
//
// The engine is split into three sub-packages, leaves first:
//
//   - rope: chunked, immutable text storage addressed by character
//     index, with line queries and chunk iteration
//   - grapheme: cluster and word boundary queries over any
//     character-indexed text, including display width
//   - cursor: the single edit point, its movement primitives, and the
//     optional anchored selection
//
// None of these packages carry editor policy; modes, commands, and
// events live in internal/editor.
package engine
