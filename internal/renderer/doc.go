// Package renderer paints the editor onto a terminal-like output.
//
// Views implement the View contract: they consume editor events to
// decide whether they are dirty, and a render pass repaints only the
// dirty ones. The Output interface abstracts the actual terminal; the
// backend subpackage provides a tcell implementation and an in-memory
// one for tests.
//
// Cells hold whole grapheme clusters, not runes, so combining marks and
// multi-codepoint emoji occupy a single cell with the correct display
// width.
package renderer
