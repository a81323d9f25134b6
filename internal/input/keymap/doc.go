// Package keymap translates keyboard events into editor commands.
//
// Bindings are grouped into one Keymap per editor mode and looked up
// through a Registry. The insert keymap carries a fallback that turns
// any printable rune into a character insertion, so only the special
// keys need explicit bindings there.
//
// The key model is backend-neutral: the terminal layer converts its own
// key events into keymap.Event before resolution.
package keymap
