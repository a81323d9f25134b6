package keymap

import (
	"testing"

	"github.com/lg2m/athena/internal/editor"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	return r
}

func TestNormalModeBindings(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		ev   Event
		want editor.Command
	}{
		{Rune('q'), editor.Quit()},
		{Rune('i'), editor.UpdateMode(editor.ModeInsert)},
		{Rune('a'), editor.Append()},
		{Rune('I'), editor.AppendStart()},
		{Rune('A'), editor.AppendEnd()},
		{Rune('o'), editor.AppendBelow()},
		{Rune('O'), editor.AppendAbove()},
		{Rune('h'), editor.MoveCursor(editor.Backward, editor.Character)},
		{Rune('l'), editor.MoveCursor(editor.Forward, editor.Character)},
		{Rune('k'), editor.MoveCursor(editor.Backward, editor.Line)},
		{Rune('j'), editor.MoveCursor(editor.Forward, editor.Line)},
		{Rune('w'), editor.MoveCursor(editor.Forward, editor.Word)},
		{Rune('b'), editor.MoveCursor(editor.Backward, editor.Word)},
		{Ctrl('s'), editor.SaveFile()},
	}
	for _, tt := range tests {
		cmd, ok := r.Lookup(editor.ModeNormal, tt.ev)
		if !ok {
			t.Errorf("%s: not bound", tt.ev)
			continue
		}
		if cmd != tt.want {
			t.Errorf("%s: resolved %v, want %v", tt.ev, cmd, tt.want)
		}
	}
}

func TestNormalModeUnboundRune(t *testing.T) {
	r := defaultRegistry(t)
	if cmd, ok := r.Lookup(editor.ModeNormal, Rune('z')); ok {
		t.Errorf("'z' resolved to %v, want unbound", cmd)
	}
}

func TestArrowKeysMatchDirectionInBothModes(t *testing.T) {
	r := defaultRegistry(t)
	for _, mode := range []editor.Mode{editor.ModeNormal, editor.ModeInsert} {
		cmd, ok := r.Lookup(mode, Special(KeyLeft))
		if !ok || cmd != editor.MoveCursor(editor.Backward, editor.Character) {
			t.Errorf("mode %s: left arrow = %v, want backward character", mode, cmd)
		}
		cmd, ok = r.Lookup(mode, Special(KeyRight))
		if !ok || cmd != editor.MoveCursor(editor.Forward, editor.Character) {
			t.Errorf("mode %s: right arrow = %v, want forward character", mode, cmd)
		}
	}
}

func TestInsertModeFallbackInsertsRunes(t *testing.T) {
	r := defaultRegistry(t)

	for _, ru := range []rune{'a', 'Z', '1', ' ', 'é', '世'} {
		cmd, ok := r.Lookup(editor.ModeInsert, Rune(ru))
		if !ok {
			t.Errorf("%q: not resolved", ru)
			continue
		}
		if cmd.Kind != editor.CmdInsertChar || cmd.Ch != ru {
			t.Errorf("%q: resolved %v, want InsertChar(%q)", ru, cmd, ru)
		}
	}
}

func TestInsertModeSpecialKeys(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		ev   Event
		want editor.Command
	}{
		{Special(KeyEscape), editor.UpdateMode(editor.ModeNormal)},
		{Special(KeyEnter), editor.InsertNewLine()},
		{Special(KeyBackspace), editor.DeleteChar()},
	}
	for _, tt := range tests {
		cmd, ok := r.Lookup(editor.ModeInsert, tt.ev)
		if !ok || cmd != tt.want {
			t.Errorf("%s: resolved %v (%t), want %v", tt.ev, cmd, ok, tt.want)
		}
	}
}

func TestInsertModeFallbackRejectsControlChords(t *testing.T) {
	r := defaultRegistry(t)
	if cmd, ok := r.Lookup(editor.ModeInsert, Ctrl('c')); ok {
		t.Errorf("ctrl+c resolved to %v, want unbound", cmd)
	}
}

func TestInsertModeRuneDoesNotQuit(t *testing.T) {
	// 'q' quits in normal mode but must insert in insert mode.
	r := defaultRegistry(t)
	cmd, ok := r.Lookup(editor.ModeInsert, Rune('q'))
	if !ok || cmd.Kind != editor.CmdInsertChar || cmd.Ch != 'q' {
		t.Errorf("'q' in insert mode = %v, want InsertChar('q')", cmd)
	}
}

func TestLookupUnregisteredMode(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup(editor.ModeNormal, Rune('q')); ok {
		t.Error("lookup on empty registry resolved")
	}
}

func TestRegisterNil(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) returned no error")
	}
}

func TestKeymapAccessor(t *testing.T) {
	r := defaultRegistry(t)
	km, err := r.Keymap(editor.ModeNormal)
	if err != nil {
		t.Fatalf("Keymap: %v", err)
	}
	if km.Name != "default-normal" || km.Len() == 0 {
		t.Errorf("keymap = %s with %d bindings", km.Name, km.Len())
	}
	if _, err := NewRegistry().Keymap(editor.ModeInsert); err == nil {
		t.Error("Keymap on empty registry returned no error")
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"a", Rune('a')},
		{"Q", Rune('Q')},
		{"é", Rune('é')},
		{"ctrl+s", Ctrl('s')},
		{"escape", Special(KeyEscape)},
		{"backspace", Special(KeyBackspace)},
	}
	for _, tt := range tests {
		got, err := ParseEvent(tt.in)
		if err != nil {
			t.Errorf("ParseEvent(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEvent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "abc", "ctrl+", "ctrl+ab"} {
		if got, err := ParseEvent(bad); err == nil {
			t.Errorf("ParseEvent(%q) = %v, want error", bad, got)
		}
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("save_file")
	if err != nil || cmd != editor.SaveFile() {
		t.Errorf("ParseCommand(save_file) = %v, %v", cmd, err)
	}
	if _, err := ParseCommand("teleport"); err == nil {
		t.Error("ParseCommand accepted unknown command")
	}
}

func TestApplyOverrides(t *testing.T) {
	r := defaultRegistry(t)
	err := ApplyOverrides(r, "normal", map[string]string{
		"ctrl+q": "quit",
		"x":      "delete_char",
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if cmd, ok := r.Lookup(editor.ModeNormal, Ctrl('q')); !ok || cmd != editor.Quit() {
		t.Errorf("ctrl+q = %v (%t), want quit", cmd, ok)
	}
	if cmd, ok := r.Lookup(editor.ModeNormal, Rune('x')); !ok || cmd != editor.DeleteChar() {
		t.Errorf("x = %v (%t), want delete_char", cmd, ok)
	}
	// Defaults not named by the override survive.
	if cmd, ok := r.Lookup(editor.ModeNormal, Rune('q')); !ok || cmd != editor.Quit() {
		t.Errorf("q = %v (%t), want quit", cmd, ok)
	}

	if err := ApplyOverrides(r, "visual", nil); err == nil {
		t.Error("ApplyOverrides accepted unknown mode")
	}
	if err := ApplyOverrides(r, "normal", map[string]string{"q": "teleport"}); err == nil {
		t.Error("ApplyOverrides accepted unknown command")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Rune('a'), "a"},
		{Ctrl('s'), "ctrl+s"},
		{Special(KeyEscape), "escape"},
		{Special(KeyLeft), "left"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
