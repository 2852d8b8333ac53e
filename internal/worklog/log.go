// Package worklog holds the in-memory model: entries and the ordered log
// that owns them.
package worklog

import (
	"sort"
	"time"
)

// Log is the ordered collection of entries, most recently created first.
type Log struct {
	entries []Entry
}

// NewLog returns a log holding entries, sorted by creation time.
func NewLog(entries ...Entry) *Log {
	l := &Log{entries: append([]Entry(nil), entries...)}
	l.sort()
	return l
}

// Add appends e and restores creation order. Ids are not deduplicated.
func (l *Log) Add(e Entry) {
	l.entries = append(l.entries, e)
	l.sort()
}

// Index returns the position of the entry with the given id.
func (l *Log) Index(id string) (int, bool) {
	for i, e := range l.entries {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Update replaces the content of the entry with the given id. Unknown ids
// are ignored and reported as false.
func (l *Log) Update(id, content string, now time.Time) bool {
	i, ok := l.Index(id)
	if !ok {
		return false
	}
	l.entries[i].SetContent(content, now)
	l.sort()
	return true
}

// Remove drops the entry with the given id, reporting whether one was found.
func (l *Log) Remove(id string) bool {
	i, ok := l.Index(id)
	if !ok {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Entries returns a copy of the entries in display order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// At returns the entry at display position i.
func (l *Log) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) sort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Created.After(l.entries[j].Created)
	})
}
