package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabrielfornes/worklog/internal/session"
)

type binding struct {
	key.Binding
	action session.Action
}

// browseKeyMap holds the bindings active while browsing the list.
type browseKeyMap struct {
	New    binding
	Open   binding
	Down   binding
	Up     binding
	First  binding
	Last   binding
	Delete binding
	Quit   binding
}

var browseKeys = browseKeyMap{
	New: binding{key.NewBinding(
		key.WithKeys("o", "n"),
		key.WithHelp("o", "new"),
	), session.ActionNew},
	Open: binding{key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("space", "select"),
	), session.ActionOpen},
	Down: binding{key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	), session.ActionDown},
	Up: binding{key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	), session.ActionUp},
	First: binding{key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	), session.ActionFirst},
	Last: binding{key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	), session.ActionLast},
	Delete: binding{key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d d", "delete"),
	), session.ActionDelete},
	Quit: binding{key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	), session.ActionQuit},
}

func (k browseKeyMap) all() []binding {
	return []binding{k.New, k.Open, k.Down, k.Up, k.First, k.Last, k.Delete, k.Quit}
}

// ShortHelp implements help.KeyMap.
func (k browseKeyMap) ShortHelp() []key.Binding {
	return keys(k.all())
}

// FullHelp implements help.KeyMap.
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		keys([]binding{k.New, k.Open, k.Delete}),
		keys([]binding{k.Down, k.Up, k.First, k.Last}),
		keys([]binding{k.Quit}),
	}
}

// editKeyMap holds the bindings active while composing an entry. Any other
// printable key is typed into the entry.
type editKeyMap struct {
	Commit     binding
	Cancel     binding
	Newline    binding
	DeleteWord binding
	Backspace  binding
}

var editKeys = editKeyMap{
	// Most terminals cannot tell ctrl+enter from enter; those that can
	// send a line feed, which arrives as ctrl+j.
	Commit: binding{key.NewBinding(
		key.WithKeys("ctrl+o", "ctrl+j"),
		key.WithHelp("ctrl+o", "save"),
	), session.ActionCommit},
	Cancel: binding{key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	), session.ActionCancel},
	Newline: binding{key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "new line"),
	), session.ActionNewline},
	// ctrl+backspace arrives as ctrl+h.
	DeleteWord: binding{key.NewBinding(
		key.WithKeys("ctrl+h", "alt+backspace"),
		key.WithHelp("ctrl+h", "delete word"),
	), session.ActionDeleteWord},
	Backspace: binding{key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete"),
	), session.ActionBackspace},
}

func (k editKeyMap) all() []binding {
	return []binding{k.Commit, k.Cancel, k.Newline, k.DeleteWord, k.Backspace}
}

// ShortHelp implements help.KeyMap.
func (k editKeyMap) ShortHelp() []key.Binding {
	return keys(k.all())
}

// FullHelp implements help.KeyMap.
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys(k.all())}
}

func keys(bs []binding) []key.Binding {
	out := make([]key.Binding, len(bs))
	for i, b := range bs {
		out[i] = b.Binding
	}
	return out
}

func match(msg tea.KeyMsg, bs []binding) (session.Action, bool) {
	for _, b := range bs {
		if key.Matches(msg, b.Binding) {
			return b.action, true
		}
	}
	return session.ActionNone, false
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// translate turns a key press into a session input for the given mode.
func translate(mode session.Mode, msg tea.KeyMsg) (session.Input, bool) {
	switch mode {
	case session.Browsing:
		if a, ok := match(msg, browseKeys.all()); ok {
			return session.Do(a), true
		}
	case session.Editing:
		if msg.Paste {
			return session.Type(lineEndings.Replace(string(msg.Runes))), true
		}
		if a, ok := match(msg, editKeys.all()); ok {
			return session.Do(a), true
		}
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				return session.Type(string(msg.Runes)), true
			}
		case tea.KeySpace:
			return session.Type(" "), true
		case tea.KeyTab:
			return session.Type("\t"), true
		}
	}
	return session.Input{}, false
}
