// Package editor implements the append-only text buffer used while an entry
// is being written.
package editor

import (
	"strings"
	"unicode"

	"github.com/gabrielfornes/worklog/internal/worklog"
)

var layoutStripper = strings.NewReplacer("\n", "", "\t", "")

// Buffer is a private working copy of an entry. Nothing written to it
// reaches the log until the owner commits it.
type Buffer struct {
	entry worklog.Entry
	text  []rune
}

// New seeds a buffer from e. The entry is copied, never aliased.
func New(e worklog.Entry) *Buffer {
	return &Buffer{
		entry: e,
		text:  []rune(e.Content),
	}
}

// ID returns the id of the entry being edited.
func (b *Buffer) ID() string {
	return b.entry.ID
}

// Entry returns the seed entry with the buffered text as its content.
// Timestamps are those of the seed.
func (b *Buffer) Entry() worklog.Entry {
	e := b.entry
	e.Content = b.Content()
	return e
}

// Content returns the text composed so far.
func (b *Buffer) Content() string {
	return string(b.text)
}

// Insert appends s at the end of the text.
func (b *Buffer) Insert(s string) {
	b.text = append(b.text, []rune(s)...)
}

// Newline appends a line break.
func (b *Buffer) Newline() {
	b.text = append(b.text, '\n')
}

// Backspace removes the last character, if any.
func (b *Buffer) Backspace() {
	if len(b.text) == 0 {
		return
	}
	b.text = b.text[:len(b.text)-1]
}

// DeleteWord drops trailing whitespace and then the last
// whitespace-delimited word, keeping the separator that preceded it.
func (b *Buffer) DeleteWord() {
	i := len(b.text)
	for i > 0 && unicode.IsSpace(b.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.text[i-1]) {
		i--
	}
	b.text = b.text[:i]
}

// Committable reports whether the text has anything left once newlines and
// tabs are stripped.
func (b *Buffer) Committable() bool {
	return layoutStripper.Replace(b.Content()) != ""
}
