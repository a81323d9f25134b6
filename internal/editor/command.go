package editor

// CommandKind identifies an intent in the closed command set.
type CommandKind int

const (
	// CmdQuit terminates the session.
	CmdQuit CommandKind = iota

	// CmdInsertChar inserts a character at the cursor (Insert mode).
	CmdInsertChar

	// CmdInsertNewLine inserts '\n' at the cursor (Insert mode).
	CmdInsertNewLine

	// CmdDeleteChar removes the grapheme before the cursor (Insert mode).
	CmdDeleteChar

	// CmdMoveCursor repositions the cursor (either mode).
	CmdMoveCursor

	// CmdSaveFile delegates to the external save hook (either mode).
	CmdSaveFile

	// CmdUpdateMode switches mode explicitly.
	CmdUpdateMode

	// CmdAppend enters Insert one grapheme forward (Normal mode).
	CmdAppend

	// CmdAppendBelow opens a line below and enters Insert (Normal mode).
	CmdAppendBelow

	// CmdAppendAbove opens a line above and enters Insert (Normal mode).
	CmdAppendAbove

	// CmdAppendEnd enters Insert at the end of the line (Normal mode).
	CmdAppendEnd

	// CmdAppendStart enters Insert at the start of the line (Normal mode).
	CmdAppendStart
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case CmdQuit:
		return "quit"
	case CmdInsertChar:
		return "insert-char"
	case CmdInsertNewLine:
		return "insert-newline"
	case CmdDeleteChar:
		return "delete-char"
	case CmdMoveCursor:
		return "move-cursor"
	case CmdSaveFile:
		return "save-file"
	case CmdUpdateMode:
		return "update-mode"
	case CmdAppend:
		return "append"
	case CmdAppendBelow:
		return "append-below"
	case CmdAppendAbove:
		return "append-above"
	case CmdAppendEnd:
		return "append-end"
	case CmdAppendStart:
		return "append-start"
	default:
		return "unknown"
	}
}

// Command is a single intent consumed by the editor state. Only the
// fields relevant to Kind are meaningful.
type Command struct {
	Kind CommandKind
	Ch   rune
	Dir  Direction
	Gran Granularity
	Mode Mode
}

// Quit returns the session-terminating command.
func Quit() Command {
	return Command{Kind: CmdQuit}
}

// InsertChar returns a character-insertion command.
func InsertChar(ch rune) Command {
	return Command{Kind: CmdInsertChar, Ch: ch}
}

// InsertNewLine returns a newline-insertion command.
func InsertNewLine() Command {
	return Command{Kind: CmdInsertNewLine}
}

// DeleteChar returns a backspace command.
func DeleteChar() Command {
	return Command{Kind: CmdDeleteChar}
}

// MoveCursor returns a movement command.
func MoveCursor(dir Direction, gran Granularity) Command {
	return Command{Kind: CmdMoveCursor, Dir: dir, Gran: gran}
}

// SaveFile returns a save command.
func SaveFile() Command {
	return Command{Kind: CmdSaveFile}
}

// UpdateMode returns an explicit mode-switch command.
func UpdateMode(mode Mode) Command {
	return Command{Kind: CmdUpdateMode, Mode: mode}
}

// Append returns the append-after-cursor command.
func Append() Command {
	return Command{Kind: CmdAppend}
}

// AppendBelow returns the open-line-below command.
func AppendBelow() Command {
	return Command{Kind: CmdAppendBelow}
}

// AppendAbove returns the open-line-above command.
func AppendAbove() Command {
	return Command{Kind: CmdAppendAbove}
}

// AppendEnd returns the append-at-line-end command.
func AppendEnd() Command {
	return Command{Kind: CmdAppendEnd}
}

// AppendStart returns the append-at-line-start command.
func AppendStart() Command {
	return Command{Kind: CmdAppendStart}
}
