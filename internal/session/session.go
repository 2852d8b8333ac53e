// Package session drives a work log from discrete inputs: browsing the
// list, composing an entry and confirming deletes.
//
// A Session is single-owner and synchronous. Handle runs a transition to
// completion, including any save, before it returns.
package session

import (
	"log"
	"time"

	"github.com/gabrielfornes/worklog/internal/editor"
	"github.com/gabrielfornes/worklog/internal/worklog"
)

// Saver persists the whole log.
type Saver interface {
	Save(l *worklog.Log) error
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

const none = -1

// Session is the interaction state layered over a log: the current mode,
// the selected row, the row armed for deletion and the open edit buffer.
// None of it is persisted.
type Session struct {
	entries *worklog.Log
	saver   Saver
	now     func() time.Time

	mode      Mode
	selection int
	armed     int
	buffer    *editor.Buffer
	done      bool
}

// New starts a session in Browsing mode with the first entry selected.
func New(l *worklog.Log, saver Saver, opts ...Option) *Session {
	s := &Session{
		entries:   l,
		saver:     saver,
		now:       time.Now,
		mode:      Browsing,
		selection: none,
		armed:     none,
	}
	for _, opt := range opts {
		opt(s)
	}
	if l.Len() > 0 {
		s.selection = 0
	}
	return s
}

type transition func(s *Session, in Input) error

// transitions maps every (mode, action) pair the session reacts to.
// Pairs missing from the table are ignored.
var transitions = map[Mode]map[Action]transition{
	Browsing: {
		ActionQuit:   (*Session).quit,
		ActionDown:   (*Session).down,
		ActionUp:     (*Session).up,
		ActionFirst:  (*Session).first,
		ActionLast:   (*Session).last,
		ActionOpen:   (*Session).open,
		ActionNew:    (*Session).create,
		ActionDelete: (*Session).delete,
	},
	Editing: {
		ActionInsert:     (*Session).insert,
		ActionNewline:    (*Session).newline,
		ActionBackspace:  (*Session).backspace,
		ActionDeleteWord: (*Session).deleteWord,
		ActionCommit:     (*Session).commit,
		ActionCancel:     (*Session).cancel,
	},
}

// Handle applies one input. The only error it returns comes from saving;
// the in-memory state is consistent either way.
func (s *Session) Handle(in Input) error {
	t, ok := transitions[s.mode][in.Action]
	if !ok {
		return nil
	}
	return t(s, in)
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Done reports whether the user asked to quit.
func (s *Session) Done() bool { return s.done }

// Entries returns the log in display order.
func (s *Session) Entries() []worklog.Entry { return s.entries.Entries() }

// Selection returns the selected display index.
func (s *Session) Selection() (int, bool) {
	return s.selection, s.selection != none
}

// Armed returns the display index awaiting a second delete press.
func (s *Session) Armed() (int, bool) {
	return s.armed, s.armed != none
}

// Buffer returns the open edit buffer, or nil outside Editing mode.
func (s *Session) Buffer() *editor.Buffer {
	return s.buffer
}

// --- Browsing ---

func (s *Session) quit(Input) error {
	s.armed = none
	s.done = true
	return nil
}

func (s *Session) down(Input) error {
	s.armed = none
	if n := s.entries.Len(); n > 0 {
		s.selection = min(s.selection+1, n-1)
	}
	return nil
}

func (s *Session) up(Input) error {
	s.armed = none
	if s.entries.Len() > 0 {
		s.selection = max(s.selection-1, 0)
	}
	return nil
}

func (s *Session) first(Input) error {
	s.armed = none
	if s.entries.Len() > 0 {
		s.selection = 0
	}
	return nil
}

func (s *Session) last(Input) error {
	s.armed = none
	if n := s.entries.Len(); n > 0 {
		s.selection = n - 1
	}
	return nil
}

// open edits the selected entry, or starts a new one when nothing is
// selected.
func (s *Session) open(in Input) error {
	e, ok := s.entries.At(s.selection)
	if !ok {
		return s.create(in)
	}
	s.edit(e)
	return nil
}

func (s *Session) create(Input) error {
	s.edit(worklog.NewEntry(s.now()))
	return nil
}

func (s *Session) edit(e worklog.Entry) {
	s.armed = none
	s.buffer = editor.New(e)
	s.mode = Editing
}

// delete needs two presses on the same row. The first arms it; the second
// removes the entry and saves.
func (s *Session) delete(Input) error {
	e, ok := s.entries.At(s.selection)
	if !ok {
		s.armed = none
		return nil
	}
	if s.armed != s.selection {
		s.armed = s.selection
		return nil
	}
	s.entries.Remove(e.ID)
	s.armed = none
	s.clampSelection()
	log.Printf("deleted entry %s", e.ID)
	return s.saver.Save(s.entries)
}

func (s *Session) clampSelection() {
	n := s.entries.Len()
	switch {
	case n == 0:
		s.selection = none
	case s.selection >= n:
		s.selection = n - 1
	case s.selection < 0:
		s.selection = 0
	}
}

// --- Editing ---

func (s *Session) insert(in Input) error {
	s.buffer.Insert(in.Text)
	return nil
}

func (s *Session) newline(Input) error {
	s.buffer.Newline()
	return nil
}

func (s *Session) backspace(Input) error {
	s.buffer.Backspace()
	return nil
}

func (s *Session) deleteWord(Input) error {
	s.buffer.DeleteWord()
	return nil
}

// commit writes the buffer into the log and saves. Effectively empty text
// is refused and leaves the session in Editing mode.
func (s *Session) commit(Input) error {
	if !s.buffer.Committable() {
		return nil
	}
	now := s.now()
	id := s.buffer.ID()
	if !s.entries.Update(id, s.buffer.Content(), now) {
		e := s.buffer.Entry()
		e.SetContent(e.Content, now)
		s.entries.Add(e)
	}
	s.buffer = nil
	s.mode = Browsing
	s.selection, _ = s.entries.Index(id)
	log.Printf("committed entry %s", id)
	return s.saver.Save(s.entries)
}

func (s *Session) cancel(Input) error {
	s.buffer = nil
	s.mode = Browsing
	s.clampSelection()
	return nil
}
