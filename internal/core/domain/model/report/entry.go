// Package report provides Entry, one timestamped line of the depot report.
package report

import (
	"fmt"
	"time"

	"depot/internal/core/domain/model/kernel"
)

// TimestampLayout renders wall-clock time as yyyy-MM-dd HH:mm:ss.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is a report line together with the moment it was written.
type Entry struct {
	at   time.Time
	text string
}

// NewEntry stamps text with at. at should be taken when the entry is written.
func NewEntry(at time.Time, text string) Entry {
	return Entry{at: at, text: text}
}

// At returns when the entry was written.
func (e Entry) At() time.Time {
	return e.at
}

// Text returns the entry without its timestamp.
func (e Entry) Text() string {
	return e.text
}

// Line is the entry as it appears in the report file, without the trailing newline.
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s", e.at.Format(TimestampLayout), e.text)
}

// ArchivedEntry is an entry kept by a report archive under its own identifier.
type ArchivedEntry struct {
	ID    kernel.UUID
	Entry Entry
}
