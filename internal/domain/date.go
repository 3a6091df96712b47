package domain

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical rendering used for storage and display,
// e.g. "Thu Jun 15 2023".
const DateLayout = "Mon Jan 02 2006"

// ErrInvalidDate is returned when a date string matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts lists accepted input forms, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"2006-1-2",
	"1/2/2006",
}

// ParseDate parses s as a calendar date and returns midnight UTC of that day.
// For inputs that carry a time and offset, the calendar day is taken in the
// input's own offset.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return CalendarDay(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// CalendarDay drops the time of day, keeping t's year, month and day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t in the canonical layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate parses s and re-renders it canonically.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}
