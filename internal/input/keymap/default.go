package keymap

import (
	"unicode"

	"github.com/lg2m/athena/internal/editor"
)

// LoadDefaults installs the default normal and insert keymaps.
func LoadDefaults(r *Registry) error {
	for _, km := range []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
	} {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}

// DefaultNormalKeymap returns the default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	km := New("default-normal", editor.ModeNormal)
	for _, b := range []Binding{
		{Event: Rune('q'), Command: editor.Quit(), Description: "Quit"},

		{Event: Rune('i'), Command: editor.UpdateMode(editor.ModeInsert), Description: "Insert before cursor"},
		{Event: Rune('a'), Command: editor.Append(), Description: "Insert after cursor"},
		{Event: Rune('I'), Command: editor.AppendStart(), Description: "Insert at line start"},
		{Event: Rune('A'), Command: editor.AppendEnd(), Description: "Insert at line end"},
		{Event: Rune('o'), Command: editor.AppendBelow(), Description: "Open line below"},
		{Event: Rune('O'), Command: editor.AppendAbove(), Description: "Open line above"},

		{Event: Rune('h'), Command: editor.MoveCursor(editor.Backward, editor.Character), Description: "Move left"},
		{Event: Rune('l'), Command: editor.MoveCursor(editor.Forward, editor.Character), Description: "Move right"},
		{Event: Rune('k'), Command: editor.MoveCursor(editor.Backward, editor.Line), Description: "Move up"},
		{Event: Rune('j'), Command: editor.MoveCursor(editor.Forward, editor.Line), Description: "Move down"},
		{Event: Special(KeyLeft), Command: editor.MoveCursor(editor.Backward, editor.Character), Description: "Move left"},
		{Event: Special(KeyRight), Command: editor.MoveCursor(editor.Forward, editor.Character), Description: "Move right"},
		{Event: Special(KeyUp), Command: editor.MoveCursor(editor.Backward, editor.Line), Description: "Move up"},
		{Event: Special(KeyDown), Command: editor.MoveCursor(editor.Forward, editor.Line), Description: "Move down"},

		{Event: Rune('w'), Command: editor.MoveCursor(editor.Forward, editor.Word), Description: "Next word"},
		{Event: Rune('b'), Command: editor.MoveCursor(editor.Backward, editor.Word), Description: "Previous word"},

		{Event: Ctrl('s'), Command: editor.SaveFile(), Description: "Save file"},
	} {
		km.Bind(b)
	}
	return km
}

// DefaultInsertKeymap returns the default insert mode bindings. Any
// printable rune not bound explicitly inserts itself.
func DefaultInsertKeymap() *Keymap {
	km := New("default-insert", editor.ModeInsert)
	for _, b := range []Binding{
		{Event: Special(KeyEscape), Command: editor.UpdateMode(editor.ModeNormal), Description: "Back to normal mode"},
		{Event: Special(KeyEnter), Command: editor.InsertNewLine(), Description: "Insert newline"},
		{Event: Special(KeyBackspace), Command: editor.DeleteChar(), Description: "Delete previous character"},

		{Event: Special(KeyLeft), Command: editor.MoveCursor(editor.Backward, editor.Character), Description: "Move left"},
		{Event: Special(KeyRight), Command: editor.MoveCursor(editor.Forward, editor.Character), Description: "Move right"},
		{Event: Special(KeyUp), Command: editor.MoveCursor(editor.Backward, editor.Line), Description: "Move up"},
		{Event: Special(KeyDown), Command: editor.MoveCursor(editor.Forward, editor.Line), Description: "Move down"},

		{Event: Ctrl('s'), Command: editor.SaveFile(), Description: "Save file"},
	} {
		km.Bind(b)
	}
	km.SetFallback(func(ev Event) (editor.Command, bool) {
		if ev.Key != KeyRune || ev.Ctrl || !unicode.IsGraphic(ev.Rune) {
			return editor.Command{}, false
		}
		return editor.InsertChar(ev.Rune), true
	})
	return km
}
