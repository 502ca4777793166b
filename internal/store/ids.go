package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDSource generates document-unique record ids. taken reports whether
// a candidate already exists anywhere in the document.
type IDSource interface {
	Next(now time.Time, taken func(string) bool) string
}

// TimestampIDs issues decimal millisecond strings, the layout the
// persisted document has always used. Candidates that collide with an
// existing id are bumped until free, so rapid sequential creates stay
// unique.
type TimestampIDs struct{}

// Next returns the first free decimal millisecond id at or after now.
func (TimestampIDs) Next(now time.Time, taken func(string) bool) string {
	candidate := now.UnixMilli()
	for taken(strconv.FormatInt(candidate, 10)) {
		candidate++
	}
	return strconv.FormatInt(candidate, 10)
}

// UUIDs issues random uuids for deployments that do not need the
// decimal id layout.
type UUIDs struct{}

// Next returns a free random uuid.
func (UUIDs) Next(now time.Time, taken func(string) bool) string {
	for {
		id := uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}
