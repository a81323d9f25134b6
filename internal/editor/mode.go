package editor

// Mode is the finite editing state gating which commands take effect.
type Mode int

const (
	// ModeNormal accepts navigation, selection entry, and mode switches.
	ModeNormal Mode = iota

	// ModeInsert accepts text edits.
	ModeInsert
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Abbrev returns the short status-bar form of the mode.
func (m Mode) Abbrev() string {
	switch m {
	case ModeNormal:
		return "NOR"
	case ModeInsert:
		return "INS"
	default:
		return "???"
	}
}

// Direction parameterizes movement; it is not stored state.
type Direction int

const (
	// Forward moves toward the end of the buffer.
	Forward Direction = iota

	// Backward moves toward the start of the buffer.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Granularity is the unit a movement operates over.
type Granularity int

const (
	// Character moves by grapheme cluster.
	Character Granularity = iota

	// Word moves by Unicode word boundary.
	Word

	// Line moves vertically, reclamping the column.
	Line
)

// String returns the granularity name.
func (g Granularity) String() string {
	switch g {
	case Character:
		return "character"
	case Word:
		return "word"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}
