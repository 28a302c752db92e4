package internal

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxDescriptionLength is the number of characters of a description shown in listings
const MaxDescriptionLength = 50

// Clock provides the zone event times are displayed in
type Clock interface {
	Location() *time.Location
}

// LocalClock displays times in the process's local zone
type LocalClock struct{}

// Location returns time.Local
func (LocalClock) Location() *time.Location {
	return time.Local
}

// FixedClock displays times in a fixed zone
type FixedClock struct {
	Loc *time.Location
}

// Location returns the fixed zone, or UTC when unset
func (c FixedClock) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// EventLine is a bookable event prepared for display or export
type EventLine struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Instructor  string `json:"instructor" yaml:"instructor"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	SignedUp    int    `json:"signed_up" yaml:"signed_up"`
	Waitlist    int    `json:"waitlist" yaml:"waitlist"`
	Description string `json:"description" yaml:"description"`
}

// Bookable reports whether an event is open for signup
func Bookable(e Event) bool {
	return e.CanBook && !e.IsCanceled
}

// FilterBookable returns the bookable events in their original order
func FilterBookable(events []Event) []Event {
	bookable := make([]Event, 0, len(events))
	for _, e := range events {
		if Bookable(e) {
			bookable = append(bookable, e)
		}
	}
	return bookable
}

// LocalTime renders t as HH:MM in loc
func LocalTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// FormatEvents filters events down to the bookable ones and prepares them for display
func FormatEvents(events []Event, clock Clock) []EventLine {
	loc := clock.Location()
	bookable := FilterBookable(events)

	lines := make([]EventLine, 0, len(bookable))
	for _, e := range bookable {
		lines = append(lines, EventLine{
			ID:          e.ID,
			Title:       e.Title,
			Instructor:  e.Instructor,
			Start:       LocalTime(e.StartDateTime, loc),
			End:         LocalTime(e.EndDateTime, loc),
			Capacity:    e.Capacity,
			SignedUp:    e.SignedUp(),
			Waitlist:    e.Waitlist(),
			Description: SanitizeDescription(e.Description),
		})
	}
	return lines
}

// SanitizeDescription escapes a description for a single-quoted terminal line
// and cuts it to MaxDescriptionLength characters of escaped text. The cut
// never lands inside an escape sequence.
func SanitizeDescription(description string) string {
	var b strings.Builder
	n := 0
	for _, r := range description {
		unit := escapeRune(r)
		width := utf8.RuneCountInString(unit)
		if n+width > MaxDescriptionLength {
			break
		}
		b.WriteString(unit)
		n += width
	}
	return b.String()
}

// EscapeDisplay escapes backslashes, single quotes and control characters
func EscapeDisplay(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(escapeRune(r))
	}
	return b.String()
}

func escapeRune(r rune) string {
	switch {
	case r == '\\':
		return `\\`
	case r == '\'':
		return `\'`
	case r == '\n':
		return `\n`
	case r == '\r':
		return `\r`
	case r == '\t':
		return `\t`
	case unicode.IsControl(r):
		return fmt.Sprintf(`\x%02x`, r)
	default:
		return string(r)
	}
}
