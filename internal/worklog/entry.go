package worklog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is how timestamps are shown to the user.
const TimeLayout = "2006-01-02 15:04:05"

// Entry is one timestamped log record.
//
// ID and Created are set once by NewEntry and never change afterwards.
// Modified follows every call to SetContent.
type Entry struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// NewEntry returns an empty entry created at now.
func NewEntry(now time.Time) Entry {
	return Entry{
		ID:       uuid.NewString(),
		Created:  now,
		Modified: now,
	}
}

// Create returns an empty entry stamped with the current local time.
func Create() Entry {
	return NewEntry(time.Now())
}

// SetContent replaces the content and bumps Modified.
func (e *Entry) SetContent(content string, now time.Time) {
	e.Content = content
	e.Modified = now
}

// Summary returns the first line of the content, marking truncated text
// with an ellipsis.
func (e Entry) Summary() string {
	first, rest, found := strings.Cut(e.Content, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return first + " …"
	}
	return first
}
