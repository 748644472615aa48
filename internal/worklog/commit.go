// Package worklog turns a commit history into per-day time estimates.
package worklog

import (
	"fmt"
	"time"
)

// Commit is a single commit as seen by the estimator
type Commit struct {
	Hash        string    `json:"hash,omitempty"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorDate  time.Time `json:"author_date"`
	Message     string    `json:"message"`
}

// Chronological returns the commits in reverse order.
// Sources list history newest first, the estimator needs oldest first.
// The input slice is left untouched.
func Chronological(newestFirst []Commit) []Commit {
	out := make([]Commit, len(newestFirst))
	for i, c := range newestFirst {
		out[len(newestFirst)-1-i] = c
	}
	return out
}

// Date is a calendar date in the zone of the commit it came from
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Before reports whether d comes before other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Compare returns -1, 0 or +1, for use with slices.SortFunc
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	default:
		return 0
	}
}

// Time returns midnight UTC of d
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format formats d with a time layout
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText encodes d as YYYY-MM-DD
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// WeekNumber returns the week of the year with Monday as the first day of
// the week. Days before the first Monday of the year are in week 0.
// This matches strftime's %W.
func (d Date) WeekNumber() int {
	t := d.Time()
	yday := t.YearDay() - 1
	mondayBased := (int(t.Weekday()) + 6) % 7
	return (yday + 7 - mondayBased) / 7
}

// ISOWeek returns the ISO 8601 week number of d
func (d Date) ISOWeek() int {
	_, w := d.Time().ISOWeek()
	return w
}
