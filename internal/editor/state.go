package editor

import (
	"github.com/lg2m/athena/internal/engine/cursor"
	"github.com/lg2m/athena/internal/engine/grapheme"
	"github.com/lg2m/athena/internal/engine/rope"
)

// State owns the buffer, cursor, selection, and mode. Commands applied
// outside their required mode are silent no-ops: they neither error nor
// mutate. Every command either fully applies or leaves the state
// untouched.
type State struct {
	buffer    rope.Rope
	cursor    *cursor.Cursor
	selection *cursor.Selection
	mode      Mode
}

// NewState creates editor state over the given initial text, in Normal
// mode with the cursor at the start.
func NewState(text string) *State {
	return &State{
		buffer:    rope.FromString(text),
		cursor:    cursor.New(),
		selection: cursor.NewSelection(),
		mode:      ModeNormal,
	}
}

// Buffer returns the current buffer snapshot. The rope is a value type,
// so the snapshot stays valid across later edits.
func (s *State) Buffer() rope.Rope {
	return s.buffer
}

// CursorIndex returns the cursor's character index.
func (s *State) CursorIndex() int {
	return s.cursor.Index()
}

// CursorCoords returns the cursor position as (line, col).
func (s *State) CursorCoords() (int, int) {
	return cursor.CoordsAtPos(s.buffer, s.cursor.Index())
}

// Selection returns the current selection.
func (s *State) Selection() *cursor.Selection {
	return s.selection
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Apply executes one command against the state and returns the events it
// produced, in emission order. Quit and SaveFile produce no state change
// here; the surrounding loop gives them their meaning.
func (s *State) Apply(cmd Command) []Event {
	switch cmd.Kind {
	case CmdInsertChar:
		return s.insertText(string(cmd.Ch))
	case CmdInsertNewLine:
		return s.insertText("\n")
	case CmdDeleteChar:
		return s.deleteChar()
	case CmdMoveCursor:
		return s.moveCursor(cmd.Dir, cmd.Gran)
	case CmdUpdateMode:
		return s.updateMode(cmd.Mode)
	case CmdAppend:
		return s.enterInsert(func() {
			s.cursor.MoveNextGrapheme(s.buffer)
		})
	case CmdAppendStart:
		return s.enterInsert(func() {
			s.cursor.MoveToStartOfLine(s.buffer)
		})
	case CmdAppendEnd:
		return s.enterInsert(func() {
			s.cursor.MoveToEndOfLine(s.buffer)
		})
	case CmdAppendBelow:
		return s.enterInsert(func() {
			s.cursor.MoveToEndOfLine(s.buffer)
			s.openLine()
		})
	case CmdAppendAbove:
		return s.enterInsert(func() {
			s.cursor.MoveToStartOfLine(s.buffer)
			s.openLine()
		})
	case CmdQuit, CmdSaveFile:
		return nil
	default:
		return nil
	}
}

// insertText inserts text at the cursor and advances one grapheme.
// Insert mode only.
func (s *State) insertText(text string) []Event {
	if s.mode != ModeInsert {
		return nil
	}
	idx := s.cursor.Index()
	s.buffer = s.buffer.Insert(idx, text)
	s.cursor.SetIndex(grapheme.NextBoundary(s.buffer, idx))
	return []Event{BufferChanged()}
}

// deleteChar removes the grapheme before the cursor. Insert mode only,
// and a no-op at the start of the buffer.
func (s *State) deleteChar() []Event {
	if s.mode != ModeInsert || s.cursor.Index() == 0 {
		return nil
	}
	idx := s.cursor.Index()
	prev := grapheme.PrevBoundary(s.buffer, idx)
	s.buffer = s.buffer.Delete(prev, idx)
	s.cursor.SetIndex(prev)
	s.selection.Clear()
	return []Event{BufferChanged()}
}

// moveCursor repositions the cursor. Movement works in both modes.
func (s *State) moveCursor(dir Direction, gran Granularity) []Event {
	switch gran {
	case Character:
		if dir == Backward {
			s.cursor.MovePrevGrapheme(s.buffer)
		} else {
			s.cursor.MoveNextGrapheme(s.buffer)
		}
	case Word:
		if dir == Backward {
			s.cursor.MovePrevWord(s.buffer)
		} else {
			s.cursor.MoveNextWord(s.buffer)
		}
	case Line:
		if dir == Backward {
			s.cursor.MovePrevLine(s.buffer)
		} else {
			s.cursor.MoveNextLine(s.buffer)
		}
	}
	line, col := s.CursorCoords()
	return []Event{CursorMoved(line, col)}
}

// updateMode performs an explicit mode switch. Leaving Insert steps the
// cursor back one grapheme (clamped at 0). Switching to the current mode
// is a no-op.
func (s *State) updateMode(mode Mode) []Event {
	if s.mode == mode {
		return nil
	}

	var events []Event
	if s.mode == ModeInsert && mode == ModeNormal {
		before := s.cursor.Index()
		s.cursor.MovePrevGrapheme(s.buffer)
		if s.cursor.Index() != before {
			line, col := s.CursorCoords()
			events = append(events, CursorMoved(line, col))
		}
	}
	s.mode = mode
	s.selection.Clear()
	return append(events, ModeChanged(mode))
}

// enterInsert runs a Normal-mode cursor placement and flips to Insert,
// emitting CursorMoved followed by ModeChanged.
func (s *State) enterInsert(place func()) []Event {
	if s.mode != ModeNormal {
		return nil
	}
	place()
	s.mode = ModeInsert
	s.selection.Clear()
	line, col := s.CursorCoords()
	return []Event{CursorMoved(line, col), ModeChanged(ModeInsert)}
}

// openLine inserts a newline at the cursor and moves past it.
func (s *State) openLine() {
	idx := s.cursor.Index()
	s.buffer = s.buffer.Insert(idx, "\n")
	s.cursor.SetIndex(idx + 1)
}

// SelectScope selects one unit at the cursor. Selection entry is a
// Normal-mode operation; in Insert it is a silent no-op.
func (s *State) SelectScope(scope cursor.Scope) bool {
	if s.mode != ModeNormal {
		return false
	}
	s.selection.SelectScope(s.cursor, scope, s.buffer)
	return true
}

// SelectToPrevWord extends a selection from the cursor back to the
// previous word boundary. Normal mode only.
func (s *State) SelectToPrevWord() bool {
	if s.mode != ModeNormal {
		return false
	}
	s.selection.SelectToPrevWord(s.cursor, s.buffer)
	s.selection.EnsureGraphemeBoundaries(s.buffer)
	return true
}

// SelectToNextWord extends a selection from the cursor to the next word
// boundary. Normal mode only.
func (s *State) SelectToNextWord() bool {
	if s.mode != ModeNormal {
		return false
	}
	s.selection.SelectToNextWord(s.cursor, s.buffer)
	s.selection.EnsureGraphemeBoundaries(s.buffer)
	return true
}

// SelectToEndOfLine extends a selection from the cursor to the next
// line's start, capped at the buffer length. Normal mode only.
func (s *State) SelectToEndOfLine() bool {
	if s.mode != ModeNormal {
		return false
	}
	s.selection.SelectToEndOfLine(s.cursor, s.buffer)
	s.selection.EnsureGraphemeBoundaries(s.buffer)
	return true
}
