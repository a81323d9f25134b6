package keymap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lg2m/athena/internal/editor"
)

// specialKeys maps the names key strings may use for non-character
// keys. The names match Event.String output, so parsing round-trips.
var specialKeys = map[string]Key{
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"backspace": KeyBackspace,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// commands maps the names config files bind keys to.
var commands = map[string]editor.Command{
	"quit":           editor.Quit(),
	"save_file":      editor.SaveFile(),
	"insert_mode":    editor.UpdateMode(editor.ModeInsert),
	"normal_mode":    editor.UpdateMode(editor.ModeNormal),
	"append":         editor.Append(),
	"append_start":   editor.AppendStart(),
	"append_end":     editor.AppendEnd(),
	"open_below":     editor.AppendBelow(),
	"open_above":     editor.AppendAbove(),
	"move_left":      editor.MoveCursor(editor.Backward, editor.Character),
	"move_right":     editor.MoveCursor(editor.Forward, editor.Character),
	"move_up":        editor.MoveCursor(editor.Backward, editor.Line),
	"move_down":      editor.MoveCursor(editor.Forward, editor.Line),
	"prev_word":      editor.MoveCursor(editor.Backward, editor.Word),
	"next_word":      editor.MoveCursor(editor.Forward, editor.Word),
	"insert_newline": editor.InsertNewLine(),
	"delete_char":    editor.DeleteChar(),
}

// ParseEvent parses a key string: a single character ("a"), a control
// chord ("ctrl+s"), or a special key name ("escape").
func ParseEvent(s string) (Event, error) {
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || size != len(rest) {
			return Event{}, fmt.Errorf("keymap: bad key %q", s)
		}
		return Ctrl(r), nil
	}
	if k, ok := specialKeys[s]; ok {
		return Special(k), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return Event{}, fmt.Errorf("keymap: bad key %q", s)
	}
	return Rune(r), nil
}

// ParseCommand resolves a command name from a config file.
func ParseCommand(s string) (editor.Command, error) {
	cmd, ok := commands[s]
	if !ok {
		return editor.Command{}, fmt.Errorf("keymap: unknown command %q", s)
	}
	return cmd, nil
}

// ApplyOverrides layers key-string → command-name bindings over the
// registered keymap of the named mode ("normal" or "insert").
func ApplyOverrides(r *Registry, mode string, overrides map[string]string) error {
	var m editor.Mode
	switch mode {
	case "normal":
		m = editor.ModeNormal
	case "insert":
		m = editor.ModeInsert
	default:
		return fmt.Errorf("keymap: unknown mode %q", mode)
	}
	km, err := r.Keymap(m)
	if err != nil {
		return err
	}
	for key, name := range overrides {
		ev, err := ParseEvent(key)
		if err != nil {
			return err
		}
		cmd, err := ParseCommand(name)
		if err != nil {
			return err
		}
		km.Bind(Binding{Event: ev, Command: cmd, Description: name})
	}
	return nil
}
