// Package report renders a worklog as a per-day time report.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
)

// Header names the report columns, in order
var Header = []string{
	"Date",
	"Git Commits Count",
	"Pivotal Stories Count",
	"Minutes",
	"Hours",
	"Person",
	"Email",
	"Project",
	"Notes",
	"Pivotal Stories",
	"Week Number",
	"Year",
}

const dateLayout = "01/02/2006"

// WeekNumbering selects how the Week Number column is computed
type WeekNumbering string

const (
	// WeekMonday counts weeks from the first Monday of the year (strftime %W)
	WeekMonday WeekNumbering = "monday"
	// WeekISO uses ISO 8601 week numbers
	WeekISO WeekNumbering = "iso"
)

// ParseWeekNumbering validates a week numbering name
func ParseWeekNumbering(s string) (WeekNumbering, error) {
	switch WeekNumbering(strings.ToLower(s)) {
	case WeekMonday, "":
		return WeekMonday, nil
	case WeekISO:
		return WeekISO, nil
	default:
		return "", fmt.Errorf("unknown week numbering: %s (valid: monday, iso)", s)
	}
}

// Options control how rows are built
type Options struct {
	Project string
	Weeks   WeekNumbering
}

// Row is one rendered day of the report
type Row struct {
	Date        worklog.Date       `json:"date"`
	CommitCount int                `json:"commit_count"`
	TicketCount int                `json:"ticket_count"`
	Minutes     int                `json:"minutes"`
	Hours       float64            `json:"hours"`
	Person      string             `json:"person"`
	Email       string             `json:"email"`
	Project     string             `json:"project"`
	Notes       string             `json:"notes"`
	Tickets     []worklog.TicketID `json:"tickets"`
	WeekNumber  int                `json:"week_number"`
	Year        int                `json:"year"`
}

// BuildRows converts the worklog into report rows, one per date in
// ascending order
func BuildRows(w *worklog.Worklog, opts Options) []Row {
	days := w.Days()
	rows := make([]Row, 0, len(days))
	for _, d := range days {
		week := d.Date.WeekNumber()
		if opts.Weeks == WeekISO {
			week = d.Date.ISOWeek()
		}

		tickets := d.Tickets()
		if tickets == nil {
			tickets = []worklog.TicketID{}
		}

		rows = append(rows, Row{
			Date:        d.Date,
			CommitCount: d.CommitCount,
			TicketCount: d.TicketCount(),
			Minutes:     int(d.Minutes),
			Hours:       RoundHours(d.Minutes),
			Person:      d.AuthorName,
			Email:       d.AuthorEmail,
			Project:     opts.Project,
			Notes:       d.MessageLog(),
			Tickets:     tickets,
			WeekNumber:  week,
			Year:        d.Date.Year,
		})
	}
	return rows
}

// RoundHours converts minutes to hours rounded to one decimal place,
// halves away from zero
func RoundHours(minutes float64) float64 {
	return math.Round(minutes/60.0*10) / 10
}

// FormatHours renders minutes as hours with one decimal, as in the report
func FormatHours(minutes float64) string {
	return strconv.FormatFloat(RoundHours(minutes), 'f', 1, 64)
}

// Fields returns the row as CSV fields matching Header
func (r Row) Fields() []string {
	return []string{
		r.Date.Format(dateLayout),
		strconv.Itoa(r.CommitCount),
		strconv.Itoa(r.TicketCount),
		strconv.Itoa(r.Minutes),
		strconv.FormatFloat(r.Hours, 'f', 1, 64),
		r.Person,
		r.Email,
		r.Project,
		r.Notes,
		joinTickets(r.Tickets),
		strconv.Itoa(r.WeekNumber),
		strconv.Itoa(r.Year),
	}
}

func joinTickets(ids []worklog.TicketID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, "; ")
}
