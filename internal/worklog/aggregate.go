package worklog

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// MessageSeparator joins the commit messages of a day in the notes column
const MessageSeparator = " --- "

// Entry is one commit's contribution to a day
type Entry struct {
	Commit  Commit     `json:"commit"`
	Minutes float64    `json:"minutes"`
	Tickets []TicketID `json:"tickets,omitempty"`
}

// DailySummary accumulates the commits of one calendar date
type DailySummary struct {
	Date Date

	// AuthorName and AuthorEmail belong to the last commit of the day
	AuthorName  string
	AuthorEmail string

	Minutes     float64
	CommitCount int
	Entries     []Entry

	tickets map[TicketID]struct{}
}

func newDailySummary(d Date) *DailySummary {
	return &DailySummary{
		Date:    d,
		tickets: make(map[TicketID]struct{}),
	}
}

// add folds one commit into the day
func (s *DailySummary) add(c Commit, minutes float64) {
	tickets := ExtractTicketIDs(c.Message)

	s.AuthorName = c.AuthorName
	s.AuthorEmail = c.AuthorEmail
	s.Minutes += minutes
	s.CommitCount++
	s.Entries = append(s.Entries, Entry{Commit: c, Minutes: minutes, Tickets: tickets})
	s.AddTickets(tickets...)
}

// AddTickets unions ids into the day's ticket set
func (s *DailySummary) AddTickets(ids ...TicketID) {
	if s.tickets == nil {
		s.tickets = make(map[TicketID]struct{})
	}
	for _, id := range ids {
		s.tickets[id] = struct{}{}
	}
}

// Tickets returns the day's ticket IDs in ascending order
func (s *DailySummary) Tickets() []TicketID {
	return slices.SortedFunc(maps.Keys(s.tickets), TicketID.Compare)
}

// TicketCount returns the number of distinct tickets referenced that day
func (s *DailySummary) TicketCount() int {
	return len(s.tickets)
}

// MessageLog returns the day's commit messages in processing order
func (s *DailySummary) MessageLog() string {
	msgs := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		msgs[i] = e.Commit.Message
	}
	return strings.Join(msgs, MessageSeparator)
}

// Worklog maps calendar dates to their summaries
type Worklog struct {
	days map[Date]*DailySummary
}

// Aggregate folds chronologically ordered commits into a Worklog
func Aggregate(commits []Commit, est Estimator) *Worklog {
	timestamps := make([]time.Time, len(commits))
	for i, c := range commits {
		timestamps[i] = c.AuthorDate
	}

	w := &Worklog{days: make(map[Date]*DailySummary)}
	for i, c := range commits {
		d := DateOf(c.AuthorDate)
		day, ok := w.days[d]
		if !ok {
			day = newDailySummary(d)
			w.days[d] = day
		}
		day.add(c, est.Minutes(timestamps, i))
	}
	return w
}

// Days returns the summaries sorted by date
func (w *Worklog) Days() []*DailySummary {
	days := slices.Collect(maps.Values(w.days))
	slices.SortFunc(days, func(a, b *DailySummary) int {
		return a.Date.Compare(b.Date)
	})
	return days
}

// Day returns the summary for d, if any commit fell on it
func (w *Worklog) Day(d Date) (*DailySummary, bool) {
	s, ok := w.days[d]
	return s, ok
}

// Len returns the number of distinct dates
func (w *Worklog) Len() int {
	return len(w.days)
}

// TotalCommits returns the number of commits folded into the worklog
func (w *Worklog) TotalCommits() int {
	n := 0
	for _, s := range w.days {
		n += s.CommitCount
	}
	return n
}

// TotalMinutes returns the estimated minutes across all days
func (w *Worklog) TotalMinutes() float64 {
	var total float64
	for _, d := range w.Days() {
		total += d.Minutes
	}
	return total
}
