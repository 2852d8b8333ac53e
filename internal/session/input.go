package session

// Mode is the top-level state of a session.
type Mode int

const (
	Browsing Mode = iota
	Editing
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Action is a logical command, independent of the physical key that
// produced it.
type Action int

const (
	ActionNone Action = iota

	// Browsing
	ActionQuit
	ActionDown
	ActionUp
	ActionFirst
	ActionLast
	ActionOpen
	ActionNew
	ActionDelete

	// Editing
	ActionInsert
	ActionNewline
	ActionBackspace
	ActionDeleteWord
	ActionCommit
	ActionCancel
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionDown:       "down",
	ActionUp:         "up",
	ActionFirst:      "first",
	ActionLast:       "last",
	ActionOpen:       "open",
	ActionNew:        "new",
	ActionDelete:     "delete",
	ActionInsert:     "insert",
	ActionNewline:    "newline",
	ActionBackspace:  "backspace",
	ActionDeleteWord: "delete-word",
	ActionCommit:     "commit",
	ActionCancel:     "cancel",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Input is one event delivered to a session. Text is only read by
// ActionInsert.
type Input struct {
	Action Action
	Text   string
}

// Do returns an input carrying only an action.
func Do(a Action) Input {
	return Input{Action: a}
}

// Type returns an ActionInsert input for text.
func Type(text string) Input {
	return Input{Action: ActionInsert, Text: text}
}
